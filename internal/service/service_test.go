package service

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"taskdeck/internal/repository"
)

// testStack wires the full service graph over a throwaway database.
type testStack struct {
	db           *gorm.DB
	tasks        *TaskService
	templates    *TemplateService
	stats        *StatsService
	achievements *AchievementService
	taskRepo     *repository.TaskRepository
	fileRepo     *repository.FileRepository
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}

	taskRepo := repository.NewTaskRepository(db)
	statsSvc := NewStatsService(repository.NewStatsRepository(db))
	achievementSvc := NewAchievementService(repository.NewAchievementRepository(db))
	taskSvc := NewTaskService(taskRepo, statsSvc, achievementSvc)

	return &testStack{
		db:           db,
		tasks:        taskSvc,
		templates:    NewTemplateService(repository.NewTemplateRepository(db), taskSvc),
		stats:        statsSvc,
		achievements: achievementSvc,
		taskRepo:     taskRepo,
		fileRepo:     repository.NewFileRepository(db),
	}
}
