package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/recurrence"
	"taskdeck/internal/repository"
)

// reminderLayouts are the accepted wire formats for a task's reminderTime.
var reminderLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ReminderService sweeps for tasks whose reminder has passed and recurring
// tasks that are due per their rule, and builds a log-friendly summary.
type ReminderService struct {
	taskRepo *repository.TaskRepository
}

func NewReminderService(taskRepo *repository.TaskRepository) *ReminderService {
	return &ReminderService{taskRepo: taskRepo}
}

// DueSummary returns a human-readable report of due reminders and recurring
// tasks, or the empty string when nothing is due.
func (s *ReminderService) DueSummary(ctx context.Context, now time.Time) (string, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return "", err
	}

	var dueReminders []model.Task
	var dueRecurring []model.Task

	for _, task := range tasks {
		if task.Completed {
			continue
		}
		if when, ok := parseReminderTime(task.ReminderTime); ok && !when.After(now) {
			dueReminders = append(dueReminders, task)
		}
		if task.Recurring != nil && s.recurringDue(task, now) {
			dueRecurring = append(dueRecurring, task)
		}
	}

	if len(dueReminders) == 0 && len(dueRecurring) == 0 {
		return "", nil
	}

	var builder strings.Builder
	if len(dueReminders) > 0 {
		builder.WriteString("due reminders:\n")
		for _, task := range dueReminders {
			fmt.Fprintf(&builder, "  [%s] %s (reminder %s)\n", task.Priority, task.Title, *task.ReminderTime)
		}
	}
	if len(dueRecurring) > 0 {
		builder.WriteString("recurring tasks due:\n")
		for _, task := range dueRecurring {
			fmt.Fprintf(&builder, "  [%s] %s (%s)\n", task.Priority, task.Title, task.Recurring.Frequency)
		}
	}
	return strings.TrimRight(builder.String(), "\n"), nil
}

// recurringDue reports whether the rule has produced an occurrence since the
// task was last completed (or created, if never completed).
func (s *ReminderService) recurringDue(task model.Task, now time.Time) bool {
	after := task.CreatedAt
	if task.CompletedAt != nil && task.CompletedAt.After(after) {
		after = *task.CompletedAt
	}

	next, ok, err := recurrence.Next(*task.Recurring, task.CreatedAt, after)
	if err != nil || !ok {
		return false
	}
	return !next.After(now)
}

func parseReminderTime(raw *string) (time.Time, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return time.Time{}, false
	}
	for _, layout := range reminderLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(*raw), time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
