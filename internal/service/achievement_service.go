package service

import (
	"context"
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// AchievementService advances progress on the fixed catalog and stamps
// unlock times when targets are reached.
type AchievementService struct {
	repo *repository.AchievementRepository
}

func NewAchievementService(repo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{repo: repo}
}

func (s *AchievementService) List(ctx context.Context) ([]model.Achievement, error) {
	return s.repo.List(ctx)
}

// Unlock stamps an achievement manually, regardless of progress.
func (s *AchievementService) Unlock(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Unlock(ctx, id, time.Now())
}

// RecordCompletion refreshes progress for every catalog entry after a task
// completion. Completion-count entries track the lifetime counter, the
// streak entry tracks the current streak.
func (s *AchievementService) RecordCompletion(ctx context.Context, stats *model.UserStats) error {
	achievements, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, ach := range achievements {
		progress := stats.TotalTasksCompleted
		if ach.ID == "streak_7" {
			progress = stats.Streak
		}

		if progress != ach.Progress {
			if err := s.repo.UpdateProgress(ctx, ach.ID, progress); err != nil {
				return err
			}
		}
		if ach.UnlockedAt == nil && ach.Target > 0 && progress >= ach.Target {
			if err := s.repo.Unlock(ctx, ach.ID, now); err != nil {
				return err
			}
		}
	}
	return nil
}
