package service

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, 0, stats.CompletedTasks)
	assert.Equal(t, 0, stats.PendingTasks)
	assert.Zero(t, stats.PercentCompleted)
	assert.Zero(t, stats.PercentPending)
	assert.Zero(t, stats.AverageCompletionTime)
	assert.Empty(t, stats.PendingGroupedByPriority)
}

func TestComputeStats_SinglePendingTask(t *testing.T) {
	now := time.Now()
	tasks := []*domain.Task{
		{
			Status:    domain.StatusPending,
			Priority:  2,
			StartTime: now.Add(-5 * time.Hour),
			EndTime:   now.Add(5 * time.Hour),
		},
	}

	stats := ComputeStats(tasks, now)

	assert.Equal(t, 1, stats.TotalTasks)
	assert.Equal(t, 1, stats.PendingTasks)
	assert.Equal(t, 0, stats.CompletedTasks)
	assert.InDelta(t, 100, stats.PercentPending, 1e-9)
	assert.InDelta(t, 0, stats.PercentCompleted, 1e-9)

	group, ok := stats.PendingGroupedByPriority[2]
	require.True(t, ok, "expected a group for priority 2")
	assert.Equal(t, 1, group.PendingTaskCount)
	assert.InDelta(t, 5, group.LapsedTime, 1e-6)
	assert.InDelta(t, 5, group.BalanceTime, 1e-6)
}

func TestComputeStats_FlooredAtZero(t *testing.T) {
	now := time.Now()
	tasks := []*domain.Task{
		// starts in the future: no lapsed time yet
		{
			Status:    domain.StatusPending,
			Priority:  1,
			StartTime: now.Add(3 * time.Hour),
			EndTime:   now.Add(10 * time.Hour),
		},
		// already overdue: no balance time left
		{
			Status:    domain.StatusPending,
			Priority:  1,
			StartTime: now.Add(-10 * time.Hour),
			EndTime:   now.Add(-2 * time.Hour),
		},
	}

	stats := ComputeStats(tasks, now)

	group, ok := stats.PendingGroupedByPriority[1]
	require.True(t, ok)
	assert.Equal(t, 2, group.PendingTaskCount)
	assert.InDelta(t, 10, group.LapsedTime, 1e-6)
	assert.InDelta(t, 7, group.BalanceTime, 1e-6)
}

func TestComputeStats_AverageCompletionTime(t *testing.T) {
	now := time.Now()
	tasks := []*domain.Task{
		{
			Status:    domain.StatusFinished,
			Priority:  3,
			StartTime: now.Add(-10 * time.Hour),
			EndTime:   now.Add(-6 * time.Hour), // 4h
		},
		{
			Status:    domain.StatusFinished,
			Priority:  5,
			StartTime: now.Add(-8 * time.Hour),
			EndTime:   now.Add(-2 * time.Hour), // 6h
		},
		{
			Status:    domain.StatusPending,
			Priority:  3,
			StartTime: now.Add(-1 * time.Hour),
			EndTime:   now.Add(1 * time.Hour),
		},
	}

	stats := ComputeStats(tasks, now)

	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 1, stats.PendingTasks)
	assert.InDelta(t, 5, stats.AverageCompletionTime, 1e-6)
	assert.InDelta(t, 2.0/3.0*100, stats.PercentCompleted, 1e-6)
	assert.InDelta(t, 1.0/3.0*100, stats.PercentPending, 1e-6)

	// completed tasks never land in the pending grouping
	group := stats.PendingGroupedByPriority[3]
	require.NotNil(t, group)
	assert.Equal(t, 1, group.PendingTaskCount)
	assert.NotContains(t, stats.PendingGroupedByPriority, 5)
}

func TestStatsService_ForOwner(t *testing.T) {
	store := newMemTaskStore()
	svc := NewStatsService(store)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.Create(ctx, &domain.Task{
		UserID:    alice.ID,
		Status:    domain.StatusPending,
		Priority:  2,
		StartTime: now.Add(-5 * time.Hour),
		EndTime:   now.Add(5 * time.Hour),
	}))
	require.NoError(t, store.Create(ctx, &domain.Task{
		UserID:    mallo.ID,
		Status:    domain.StatusFinished,
		Priority:  1,
		StartTime: now.Add(-4 * time.Hour),
		EndTime:   now.Add(-1 * time.Hour),
	}))

	// only the owner's tasks feed the report
	stats, err := svc.ForOwner(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Equal(t, 1, stats.PendingTasks)
	assert.Equal(t, 0, stats.CompletedTasks)
	assert.InDelta(t, 5, stats.PendingGroupedByPriority[2].LapsedTime, 0.01)
}

func TestComputeStats_GroupsByPriority(t *testing.T) {
	now := time.Now()
	var tasks []*domain.Task
	for i := 0; i < 3; i++ {
		tasks = append(tasks, &domain.Task{
			Status:    domain.StatusPending,
			Priority:  2,
			StartTime: now.Add(-2 * time.Hour),
			EndTime:   now.Add(2 * time.Hour),
		})
	}
	tasks = append(tasks, &domain.Task{
		Status:    domain.StatusPending,
		Priority:  4,
		StartTime: now.Add(-1 * time.Hour),
		EndTime:   now.Add(1 * time.Hour),
	})

	stats := ComputeStats(tasks, now)

	require.Len(t, stats.PendingGroupedByPriority, 2)
	assert.Equal(t, 3, stats.PendingGroupedByPriority[2].PendingTaskCount)
	assert.InDelta(t, 6, stats.PendingGroupedByPriority[2].LapsedTime, 1e-6)
	assert.Equal(t, 1, stats.PendingGroupedByPriority[4].PendingTaskCount)
}
