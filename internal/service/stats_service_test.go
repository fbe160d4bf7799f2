package service

import (
	"context"
	"testing"
	"time"

	"taskdeck/internal/model"
)

func TestApplyCompletionAwardsXP(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	stats, err := stack.stats.ApplyCompletion(ctx, time.Now())
	if err != nil {
		t.Fatalf("ApplyCompletion: %v", err)
	}
	if stats.TotalTasksCompleted != 1 {
		t.Errorf("totalTasksCompleted = %d, want 1", stats.TotalTasksCompleted)
	}
	if stats.XP != 10 {
		t.Errorf("xp = %d, want 10", stats.XP)
	}
	if stats.Level != 1 {
		t.Errorf("level = %d, want 1", stats.Level)
	}
}

func TestApplyCompletionLevelUpSingleStep(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	base, err := stack.stats.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	base.XP = 95
	if err := stack.stats.Overwrite(ctx, base); err != nil {
		t.Fatalf("Overwrite: %v", err)
	}

	stats, err := stack.stats.ApplyCompletion(ctx, time.Now())
	if err != nil {
		t.Fatalf("ApplyCompletion: %v", err)
	}
	if stats.Level != 2 {
		t.Errorf("level = %d, want 2", stats.Level)
	}
	if stats.XP != 5 {
		t.Errorf("xp = %d, want 5 (105 - 100)", stats.XP)
	}
}

func TestApplyCompletionLevelUpNotIterated(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	base, err := stack.stats.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	// far over two thresholds: crossing is applied exactly once
	base.XP = 295
	if err := stack.stats.Overwrite(ctx, base); err != nil {
		t.Fatalf("Overwrite: %v", err)
	}

	stats, err := stack.stats.ApplyCompletion(ctx, time.Now())
	if err != nil {
		t.Fatalf("ApplyCompletion: %v", err)
	}
	if stats.Level != 2 {
		t.Errorf("level = %d, want 2 (single-step rule)", stats.Level)
	}
	if stats.XP != 205 {
		t.Errorf("xp = %d, want 205", stats.XP)
	}
}

func TestApplyCompletionStreak(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		lastActive string
		streak     int
		want       int
	}{
		{"first completion ever", now.Format(model.DateLayout), 0, 1},
		{"same day keeps streak", now.Format(model.DateLayout), 3, 3},
		{"consecutive day increments", now.AddDate(0, 0, -1).Format(model.DateLayout), 3, 4},
		{"gap resets", now.AddDate(0, 0, -5).Format(model.DateLayout), 9, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stack := newTestStack(t)
			ctx := context.Background()

			base, err := stack.stats.Get(ctx)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			base.LastActiveDate = tc.lastActive
			base.Streak = tc.streak
			if err := stack.stats.Overwrite(ctx, base); err != nil {
				t.Fatalf("Overwrite: %v", err)
			}

			stats, err := stack.stats.ApplyCompletion(ctx, now)
			if err != nil {
				t.Fatalf("ApplyCompletion: %v", err)
			}
			if stats.Streak != tc.want {
				t.Errorf("streak = %d, want %d", stats.Streak, tc.want)
			}
			if stats.LastActiveDate != now.Format(model.DateLayout) {
				t.Errorf("lastActiveDate = %q, want today", stats.LastActiveDate)
			}
		})
	}
}

func TestAddTimeSpent(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	if err := stack.stats.AddTimeSpent(ctx, 120); err != nil {
		t.Fatalf("AddTimeSpent: %v", err)
	}
	if err := stack.stats.AddTimeSpent(ctx, 60); err != nil {
		t.Fatalf("AddTimeSpent: %v", err)
	}

	stats, err := stack.stats.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stats.TotalTimeSpent != 180 {
		t.Errorf("totalTimeSpent = %d, want 180", stats.TotalTimeSpent)
	}
}
