package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ahorro/internal/core"
)

// GoalStore is the storage surface the goal engine needs.
type GoalStore interface {
	SumSavings(ctx context.Context) (core.Money, error)
	SumSavingsBetween(ctx context.Context, from, to time.Time) (core.Money, error)
	ListMilestones(ctx context.Context) ([]core.Milestone, error)
	SeedMilestones(ctx context.Context, targets []core.Money) error
	CompleteMilestone(ctx context.Context, id int64, at time.Time) error
}

// GoalService computes savings progress and keeps the milestone ladder
// in sync with the ledger total.
type GoalService struct {
	store GoalStore
	now   func() time.Time
}

func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{
		store: store,
		now:   time.Now,
	}
}

// Statistics returns the aggregate view of the ledger: all-time total,
// current-month total and shortfall, and progress toward the next milestone.
func (s *GoalService) Statistics(ctx context.Context) (core.Statistics, error) {
	total, err := s.store.SumSavings(ctx)
	if err != nil {
		return core.Statistics{}, fmt.Errorf("sum savings: %w", err)
	}

	from, to := core.MonthWindow(s.now())
	monthTotal, err := s.store.SumSavingsBetween(ctx, from, to)
	if err != nil {
		return core.Statistics{}, fmt.Errorf("sum month savings: %w", err)
	}

	return core.ComputeStatistics(total, monthTotal), nil
}

// Milestones returns the ladder with completion flags up to date. The
// ladder is seeded on first use; completion is one-way, so a milestone
// once reached stays completed even if the total later drops.
func (s *GoalService) Milestones(ctx context.Context) ([]core.Milestone, error) {
	milestones, err := s.store.ListMilestones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}

	if len(milestones) == 0 {
		if err := s.store.SeedMilestones(ctx, core.MilestoneLadder); err != nil {
			return nil, fmt.Errorf("seed milestones: %w", err)
		}
		milestones, err = s.store.ListMilestones(ctx)
		if err != nil {
			return nil, fmt.Errorf("list milestones after seed: %w", err)
		}
	}

	total, err := s.store.SumSavings(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum savings: %w", err)
	}

	now := s.now()
	for i, m := range milestones {
		if m.Completed || total.Cents < m.Target.Cents {
			continue
		}
		if err := s.store.CompleteMilestone(ctx, m.ID, now); err != nil {
			return nil, fmt.Errorf("complete milestone %d: %w", m.ID, err)
		}
		completedAt := now
		milestones[i].Completed = true
		milestones[i].CompletedAt = &completedAt

		slog.InfoContext(ctx, "Milestone reached",
			"milestone_id", m.ID,
			"target_cents", m.Target.Cents,
			"total_cents", total.Cents)
	}

	return milestones, nil
}
