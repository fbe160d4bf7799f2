package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskdeck/internal/model"
	"taskdeck/internal/recurrence"
	"taskdeck/internal/repository"
)

// TaskService wraps task business logic: field defaulting, enum validation,
// the completed/completedAt convention, and the gamification hook fired on a
// completion transition.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	stats        *StatsService
	achievements *AchievementService
}

func NewTaskService(taskRepo *repository.TaskRepository, stats *StatsService, achievements *AchievementService) *TaskService {
	return &TaskService{taskRepo: taskRepo, stats: stats, achievements: achievements}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) ListSubtasks(ctx context.Context, parentID string) ([]model.Task, error) {
	return s.taskRepo.ListSubtasks(ctx, parentID)
}

// Create inserts a new task. A missing id gets a server-generated UUID so
// both client-generated and imported ids keep working.
func (s *TaskService) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if err := s.normalize(task); err != nil {
		return nil, err
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update performs a full-row overwrite of every mutable field. Omitted list
// fields reset to null; id and createdAt are carried over from the stored
// row. A completed transition (false to true) feeds the gamification
// counters.
func (s *TaskService) Update(ctx context.Context, id string, task *model.Task) (*model.Task, error) {
	existing, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.normalize(task); err != nil {
		return nil, err
	}
	task.ID = existing.ID
	task.CreatedAt = existing.CreatedAt

	if err := s.taskRepo.Replace(ctx, task); err != nil {
		return nil, err
	}

	if task.Completed && !existing.Completed {
		s.onCompleted(ctx)
	}
	return task, nil
}

// UpdateSortOrder writes the advisory ordering value for one task. Siblings
// keep their values; collisions are allowed.
func (s *TaskService) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	return s.taskRepo.UpdateSortOrder(ctx, id, sortOrder)
}

// AddTime accumulates tracked seconds onto a task and the lifetime stats
// counter. The task must exist.
func (s *TaskService) AddTime(ctx context.Context, id string, seconds int) error {
	if seconds < 0 {
		return validationf("timeSpent must not be negative, got %d", seconds)
	}
	if _, err := s.taskRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.taskRepo.AddTime(ctx, id, seconds); err != nil {
		return err
	}
	if err := s.stats.AddTimeSpent(ctx, seconds); err != nil {
		log.Printf("[warn] accumulate time spent: %v", err)
	}
	return nil
}

// Delete removes a task with its direct children and their attachment and
// comment rows. Deleting an absent id is a no-op, matching the write-only
// delete of the original API.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.taskRepo.DeleteCascade(ctx, id)
}

// Export returns the full task dump in list order.
func (s *TaskService) Export(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.List(ctx)
}

// Import creates one stored row per input item. Items without an id get a
// fresh one. Insertions are sequential; the first failure aborts the rest.
func (s *TaskService) Import(ctx context.Context, tasks []model.Task) (int, error) {
	for i := range tasks {
		if _, err := s.Create(ctx, &tasks[i]); err != nil {
			return i, err
		}
	}
	return len(tasks), nil
}

// normalize applies schema defaults and validates the fixed vocabularies.
// Completed and completedAt are kept consistent in the same row write.
func (s *TaskService) normalize(task *model.Task) error {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return validationf("title is required")
	}

	if task.Category == "" {
		task.Category = model.CategoryPersonal
	}
	if !model.ValidCategory(task.Category) {
		return validationf("unknown category %q", task.Category)
	}

	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if !model.ValidPriority(task.Priority) {
		return validationf("unknown priority %q", task.Priority)
	}

	if task.Status == "" {
		task.Status = model.StatusTodo
	}

	if task.Recurring != nil {
		if err := recurrence.Validate(*task.Recurring); err != nil {
			return validationf("invalid recurring rule: %v", err)
		}
	}

	if task.Completed && task.CompletedAt == nil {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}
	if !task.Completed {
		task.CompletedAt = nil
	}
	return nil
}

// onCompleted feeds stats and achievement progress after a completion
// transition. Gamification failures are logged, not propagated; the task
// write already succeeded.
func (s *TaskService) onCompleted(ctx context.Context) {
	stats, err := s.stats.ApplyCompletion(ctx, time.Now())
	if err != nil {
		log.Printf("[warn] apply completion to stats: %v", err)
		return
	}
	if err := s.achievements.RecordCompletion(ctx, stats); err != nil {
		log.Printf("[warn] record completion on achievements: %v", err)
	}
}
