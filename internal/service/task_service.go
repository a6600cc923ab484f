package service

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/domain"
)

// TaskStore is the slice of the persistence collaborator the task and stats
// services need. All reads and writes are scoped to an owner id.
type TaskStore interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, ownerID, id int64) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, ownerID, id int64) error
}

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

type CreateTaskInput struct {
	Title     string
	Priority  int
	Status    string
	StartTime time.Time
	EndTime   time.Time
}

func (s *TaskService) Create(ctx context.Context, owner *domain.User, in CreateTaskInput) (*domain.Task, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !domain.ValidPriority(in.Priority) {
		return nil, fmt.Errorf("%w: priority must be between %d and %d", domain.ErrValidation, domain.MinPriority, domain.MaxPriority)
	}
	if !domain.ValidStatus(in.Status) {
		return nil, fmt.Errorf("%w: status must be %q or %q", domain.ErrValidation, domain.StatusPending, domain.StatusFinished)
	}

	task := &domain.Task{
		UserID:    owner.ID,
		Title:     in.Title,
		Priority:  in.Priority,
		Status:    in.Status,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update applies a partial edit. Title is the required gate: an edit without
// one carries no changes. The remaining fields apply only when supplied, so a
// request can leave any of them untouched without resetting them.
func (s *TaskService) Update(ctx context.Context, owner *domain.User, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.Title == nil || *patch.Title == "" {
		return nil, fmt.Errorf("%w: no changes provided", domain.ErrValidation)
	}
	if patch.Priority != nil && !domain.ValidPriority(*patch.Priority) {
		return nil, fmt.Errorf("%w: priority must be between %d and %d", domain.ErrValidation, domain.MinPriority, domain.MaxPriority)
	}
	if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: status must be %q or %q", domain.ErrValidation, domain.StatusPending, domain.StatusFinished)
	}

	task, err := s.tasks.GetByID(ctx, owner.ID, id)
	if err != nil {
		return nil, err
	}

	task.Title = *patch.Title
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.StartTime != nil {
		task.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		task.EndTime = *patch.EndTime
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, owner *domain.User) ([]*domain.Task, error) {
	return s.tasks.ListByOwner(ctx, owner.ID)
}

func (s *TaskService) Delete(ctx context.Context, owner *domain.User, id int64) error {
	return s.tasks.Delete(ctx, owner.ID, id)
}
