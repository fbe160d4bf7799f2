package service

import (
	"context"
	"testing"

	"taskdeck/internal/model"
)

func TestSuggestFallbackWithoutAPIKey(t *testing.T) {
	svc := NewSuggestService("", "", "gpt-4o-mini")

	tasks := make([]model.Task, 7)
	for i := range tasks {
		tasks[i] = model.Task{ID: string(rune('a' + i)), Title: "task"}
	}

	result, err := svc.Suggest(context.Background(), tasks, "busy week")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(result.Suggestions) == 0 {
		t.Error("no fallback suggestions")
	}
	if len(result.PrioritizedTasks) != maxEchoedTasks {
		t.Errorf("echoed %d tasks, want %d", len(result.PrioritizedTasks), maxEchoedTasks)
	}
}

func TestSuggestEchoesShortLists(t *testing.T) {
	svc := NewSuggestService("", "", "gpt-4o-mini")

	result, err := svc.Suggest(context.Background(), []model.Task{{ID: "1", Title: "only"}}, "")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(result.PrioritizedTasks) != 1 {
		t.Errorf("echoed %d tasks, want 1", len(result.PrioritizedTasks))
	}
}
