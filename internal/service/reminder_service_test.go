package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"taskdeck/internal/model"
)

func TestDueSummaryReportsPastReminders(t *testing.T) {
	stack := newTestStack(t)
	svc := NewReminderService(stack.taskRepo)
	ctx := context.Background()

	now := time.Now()
	past := now.Add(-time.Hour).Format(time.RFC3339)
	future := now.Add(time.Hour).Format(time.RFC3339)

	for _, task := range []model.Task{
		{Title: "overdue call", ReminderTime: &past},
		{Title: "later email", ReminderTime: &future},
		{Title: "done already", ReminderTime: &past, Completed: true},
	} {
		rec := task
		if _, err := stack.tasks.Create(ctx, &rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	summary, err := svc.DueSummary(ctx, now)
	if err != nil {
		t.Fatalf("DueSummary: %v", err)
	}
	if !strings.Contains(summary, "overdue call") {
		t.Errorf("summary missing overdue task:\n%s", summary)
	}
	if strings.Contains(summary, "later email") {
		t.Errorf("summary includes future reminder:\n%s", summary)
	}
	if strings.Contains(summary, "done already") {
		t.Errorf("summary includes completed task:\n%s", summary)
	}
}

func TestDueSummaryRecurring(t *testing.T) {
	stack := newTestStack(t)
	svc := NewReminderService(stack.taskRepo)
	ctx := context.Background()

	task := model.Task{
		Title:     "water plants",
		Recurring: &model.RecurringRule{Frequency: "daily"},
		CreatedAt: time.Now().AddDate(0, 0, -3),
	}
	if _, err := stack.tasks.Create(ctx, &task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	summary, err := svc.DueSummary(ctx, time.Now())
	if err != nil {
		t.Fatalf("DueSummary: %v", err)
	}
	if !strings.Contains(summary, "water plants") {
		t.Errorf("summary missing due recurring task:\n%s", summary)
	}
}

func TestDueSummaryEmptyWhenNothingDue(t *testing.T) {
	stack := newTestStack(t)
	svc := NewReminderService(stack.taskRepo)

	summary, err := svc.DueSummary(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("DueSummary: %v", err)
	}
	if summary != "" {
		t.Errorf("summary = %q, want empty", summary)
	}
}
