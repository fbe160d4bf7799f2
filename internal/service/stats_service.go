package service

import (
	"context"
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

const xpPerCompletion = 10

// StatsService maintains the singleton gamification record: XP, level,
// streak and lifetime counters.
type StatsService struct {
	repo *repository.StatsRepository
}

func NewStatsService(repo *repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Get(ctx context.Context) (*model.UserStats, error) {
	return s.repo.Get(ctx)
}

// Overwrite replaces the singleton record with caller-supplied values.
func (s *StatsService) Overwrite(ctx context.Context, stats *model.UserStats) error {
	return s.repo.Update(ctx, stats)
}

// ApplyCompletion records one completed task: +1 to the lifetime counter,
// +10 XP, and a single-step level-up when XP crosses level*100. Crossing two
// thresholds in one update is deliberately not iterated.
func (s *StatsService) ApplyCompletion(ctx context.Context, now time.Time) (*model.UserStats, error) {
	stats, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	stats.TotalTasksCompleted++
	stats.XP += xpPerCompletion
	if threshold := stats.Level * 100; stats.XP >= threshold {
		stats.Level++
		stats.XP -= threshold
	}

	today := now.Format(model.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(model.DateLayout)
	switch stats.LastActiveDate {
	case today:
		// already counted for today, except on a fresh record
		if stats.Streak == 0 {
			stats.Streak = 1
		}
	case yesterday:
		stats.Streak++
	default:
		stats.Streak = 1
	}
	stats.LastActiveDate = today

	if err := s.repo.Update(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// AddTimeSpent accumulates tracked seconds onto the lifetime counter.
func (s *StatsService) AddTimeSpent(ctx context.Context, seconds int) error {
	stats, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	stats.TotalTimeSpent += seconds
	return s.repo.Update(ctx, stats)
}
