package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

// StatsRepository reads and overwrites the singleton user stats record.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Get(ctx context.Context) (*model.UserStats, error) {
	var stats model.UserStats
	if err := r.db.WithContext(ctx).
		Where("key = ?", model.DefaultStatsKey).
		First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// Update overwrites every column of the singleton record.
func (r *StatsRepository) Update(ctx context.Context, stats *model.UserStats) error {
	stats.Key = model.DefaultStatsKey
	if err := r.db.WithContext(ctx).Save(stats).Error; err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	return nil
}
