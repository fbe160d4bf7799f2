package repository

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	return db
}

func TestSeedStatsSingleton(t *testing.T) {
	db := newTestDB(t)
	repo := NewStatsRepository(db)

	stats, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stats.Level != 1 {
		t.Errorf("seeded level = %d, want 1", stats.Level)
	}
	if stats.XP != 0 || stats.TotalTasksCompleted != 0 {
		t.Errorf("seeded counters = %d xp / %d completed, want zero", stats.XP, stats.TotalTasksCompleted)
	}
}

func TestSeedAchievementCatalog(t *testing.T) {
	db := newTestDB(t)
	repo := NewAchievementRepository(db)

	achievements, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(achievements) != len(model.AchievementCatalog()) {
		t.Fatalf("seeded %d achievements, want %d", len(achievements), len(model.AchievementCatalog()))
	}
	for _, ach := range achievements {
		if ach.UnlockedAt != nil {
			t.Errorf("achievement %s seeded unlocked", ach.ID)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := NewDB(path)
	if err != nil {
		t.Fatalf("first NewDB: %v", err)
	}
	repo := NewStatsRepository(db)
	stats, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	stats.XP = 42
	if err := repo.Update(context.Background(), stats); err != nil {
		t.Fatalf("Update: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.Close()

	db, err = NewDB(path)
	if err != nil {
		t.Fatalf("second NewDB: %v", err)
	}
	stats, err = NewStatsRepository(db).Get(context.Background())
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if stats.XP != 42 {
		t.Errorf("xp after reopen = %d, want 42 (seed must not clobber)", stats.XP)
	}
}
