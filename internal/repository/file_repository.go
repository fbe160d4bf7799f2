package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

// FileRepository manages attachment rows. The stored bytes live under the
// uploads directory and are not touched here.
type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, file *model.File) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

func (r *FileRepository) ListByTask(ctx context.Context, taskID string) ([]model.File, error) {
	var files []model.File
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("uploaded_at DESC").
		Find(&files).Error; err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

func (r *FileRepository) CountByTask(ctx context.Context, taskID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.File{}).
		Where("task_id = ?", taskID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return count, nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.File{}).Error; err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}
