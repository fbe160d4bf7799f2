package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

// AchievementRepository tracks unlock state and progress per catalog entry.
type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) List(ctx context.Context) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&achievements).Error; err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return achievements, nil
}

func (r *AchievementRepository) FindByID(ctx context.Context, id string) (*model.Achievement, error) {
	var achievement model.Achievement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

// Unlock stamps the unlock time. Unlocking an already-unlocked achievement
// refreshes the timestamp, matching the write-only original behavior.
func (r *AchievementRepository) Unlock(ctx context.Context, id string, at time.Time) error {
	if err := r.db.WithContext(ctx).Model(&model.Achievement{}).
		Where("id = ?", id).
		Update("unlocked_at", at).Error; err != nil {
		return fmt.Errorf("unlock achievement: %w", err)
	}
	return nil
}

func (r *AchievementRepository) UpdateProgress(ctx context.Context, id string, progress int) error {
	if err := r.db.WithContext(ctx).Model(&model.Achievement{}).
		Where("id = ?", id).
		Update("progress", progress).Error; err != nil {
		return fmt.Errorf("update achievement progress: %w", err)
	}
	return nil
}
