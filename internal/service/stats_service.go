package service

import (
	"context"
	"time"

	"taskboard/internal/domain"
)

// PriorityGroup accumulates pending-task figures for one priority level.
// Times are hours. The wire keys follow the dashboard contract.
type PriorityGroup struct {
	PendingTaskCount int     `json:"PendingTask"`
	LapsedTime       float64 `json:"lapsedTime"`
	BalanceTime      float64 `json:"balanceTime"`
}

// Stats is the dashboard report for one owner's full task set.
type Stats struct {
	TotalTasks               int                    `json:"totalTasks"`
	CompletedTasks           int                    `json:"completedTasks"`
	PendingTasks             int                    `json:"pendingTasks"`
	PercentCompleted         float64                `json:"percentCompleted"`
	PercentPending           float64                `json:"percentPending"`
	AverageCompletionTime    float64                `json:"averageCompletionTime"`
	PendingGroupedByPriority map[int]*PriorityGroup `json:"pendingGroupedByPriority"`
}

// StatsService derives dashboard statistics from the task store's read path.
// Reports are recomputed on every call; nothing is cached.
type StatsService struct {
	tasks TaskStore
}

func NewStatsService(tasks TaskStore) *StatsService {
	return &StatsService{tasks: tasks}
}

func (s *StatsService) ForOwner(ctx context.Context, owner *domain.User) (*Stats, error) {
	tasks, err := s.tasks.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	return ComputeStats(tasks, time.Now()), nil
}

// ComputeStats aggregates a task list as of the given evaluation time.
// An empty list yields an all-zero report rather than an error.
func ComputeStats(tasks []*domain.Task, now time.Time) *Stats {
	stats := &Stats{
		TotalTasks:               len(tasks),
		PendingGroupedByPriority: make(map[int]*PriorityGroup),
	}

	var completionHours float64
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusFinished:
			stats.CompletedTasks++
			completionHours += t.EndTime.Sub(t.StartTime).Hours()
		case domain.StatusPending:
			stats.PendingTasks++

			group, ok := stats.PendingGroupedByPriority[t.Priority]
			if !ok {
				group = &PriorityGroup{}
				stats.PendingGroupedByPriority[t.Priority] = group
			}
			group.PendingTaskCount++
			// Hours already spent, floored so a future start contributes
			// nothing; hours remaining, floored so an overdue task does too.
			group.LapsedTime += max(0, now.Sub(t.StartTime).Hours())
			group.BalanceTime += max(0, t.EndTime.Sub(now).Hours())
		}
	}

	if stats.TotalTasks > 0 {
		stats.PercentCompleted = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
		stats.PercentPending = float64(stats.PendingTasks) / float64(stats.TotalTasks) * 100
	}

	// Denominator floors at one so an empty completed set averages to zero.
	stats.AverageCompletionTime = completionHours / float64(max(stats.CompletedTasks, 1))

	return stats
}
