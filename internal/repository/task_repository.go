package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

// TaskRepository handles CRUD for tasks, including the delete cascade over
// subtasks, files and comments.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// List returns every task ordered by manual sort order first, recency second.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Order("sort_order DESC, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListSubtasks returns the direct children of a task, same ordering as List.
func (r *TaskRepository) ListSubtasks(ctx context.Context, parentID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("parent_task_id = ?", parentID).
		Order("sort_order DESC, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list subtasks: %w", err)
	}
	return tasks, nil
}

// Replace overwrites every mutable column of an existing task. The caller is
// responsible for carrying over immutable fields (id, created_at).
func (r *TaskRepository) Replace(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// UpdateSortOrder writes the single ordering column. Siblings are not
// renumbered; colliding values are allowed.
func (r *TaskRepository) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("sort_order", sortOrder).Error; err != nil {
		return fmt.Errorf("update sort order: %w", err)
	}
	return nil
}

// AddTime accumulates seconds onto a task's time_spent column.
func (r *TaskRepository) AddTime(ctx context.Context, id string, seconds int) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("time_spent", gorm.Expr("time_spent + ?", seconds)).Error; err != nil {
		return fmt.Errorf("add time: %w", err)
	}
	return nil
}

// DeleteCascade removes a task, its direct children (one level only), and any
// file or comment rows referencing those ids, in a single transaction.
// Grandchildren keep their rows and end up with a dangling parent reference.
func (r *TaskRepository) DeleteCascade(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var childIDs []string
		if err := tx.Model(&model.Task{}).
			Where("parent_task_id = ?", id).
			Pluck("id", &childIDs).Error; err != nil {
			return err
		}

		ids := append(childIDs, id)

		if err := tx.Where("id IN ?", ids).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id IN ?", ids).Delete(&model.File{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id IN ?", ids).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
