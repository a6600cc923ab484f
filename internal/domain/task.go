package domain

import "time"

// Task statuses as stored and exposed on the wire.
const (
	StatusPending  = "Pending"
	StatusFinished = "Finished"
)

const (
	MinPriority = 1
	MaxPriority = 5
)

type Task struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Priority  int       `json:"priority" db:"priority"`
	Status    string    `json:"status" db:"status"`
	StartTime time.Time `json:"startTime" db:"start_time"`
	EndTime   time.Time `json:"endTime" db:"end_time"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TaskPatch carries the fields of an edit request. A nil field was not
// supplied, so an explicit zero value is distinguishable from absence.
type TaskPatch struct {
	Title     *string
	Priority  *int
	Status    *string
	StartTime *time.Time
	EndTime   *time.Time
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusFinished
}

func ValidPriority(p int) bool {
	return p >= MinPriority && p <= MaxPriority
}
