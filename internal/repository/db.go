package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskdeck/internal/model"
)

// NewDB opens a SQLite database, runs migrations and seeds the fixed records
// (singleton stats row, achievement catalog).
func NewDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "taskdeck.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Task{},
		&model.Template{},
		&model.Achievement{},
		&model.UserStats{},
		&model.File{},
		&model.Comment{},
	); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	if err := seed(db); err != nil {
		return nil, fmt.Errorf("seed db: %w", err)
	}

	return db, nil
}

// seed inserts the singleton stats record and the achievement catalog if the
// database is fresh. Existing rows are left untouched.
func seed(db *gorm.DB) error {
	stats := model.UserStats{
		Key:            model.DefaultStatsKey,
		Level:          1,
		LastActiveDate: time.Now().Format(model.DateLayout),
	}
	if err := db.Where(model.UserStats{Key: model.DefaultStatsKey}).FirstOrCreate(&stats).Error; err != nil {
		return fmt.Errorf("seed stats: %w", err)
	}

	for _, ach := range model.AchievementCatalog() {
		record := ach
		if err := db.Where(model.Achievement{ID: ach.ID}).FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("seed achievement %s: %w", ach.ID, err)
		}
	}

	return nil
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory or network.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
