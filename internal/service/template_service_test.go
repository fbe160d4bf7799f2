package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

func TestTemplateCreateAndList(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.templates.Create(ctx, &model.Template{
		Name: "morning routine",
		Tasks: model.TaskSkeletonList{
			{Title: "stretch", Category: model.CategoryHealth},
			{Title: "plan the day", Priority: model.PriorityHigh},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("template id not generated")
	}

	templates, err := stack.templates.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("templates = %d, want 1", len(templates))
	}
	if len(templates[0].Tasks) != 2 {
		t.Errorf("skeletons round-trip = %d, want 2", len(templates[0].Tasks))
	}
}

func TestTemplateCreateRequiresName(t *testing.T) {
	stack := newTestStack(t)

	_, err := stack.templates.Create(context.Background(), &model.Template{Name: "  "})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestApplyInstantiatesEverySkeleton(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	template, err := stack.templates.Create(ctx, &model.Template{
		Name: "sprint prep",
		Tasks: model.TaskSkeletonList{
			{Title: "groom backlog", Category: model.CategoryWork, Priority: model.PriorityHigh},
			{Title: "book room", Category: model.CategoryWork},
			{Title: "send agenda", Tags: model.StringList{"email"}},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created, err := stack.templates.Apply(ctx, template.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created %d tasks, want 3", len(created))
	}

	seen := make(map[string]bool)
	for _, task := range created {
		if task.ID == "" || seen[task.ID] {
			t.Errorf("task id %q not distinct", task.ID)
		}
		seen[task.ID] = true
		if task.TemplateID == nil || *task.TemplateID != template.ID {
			t.Errorf("templateId = %v, want %s", task.TemplateID, template.ID)
		}
		if task.CreatedAt.IsZero() {
			t.Error("instantiated task missing createdAt")
		}
	}

	all, err := stack.tasks.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("stored %d tasks, want 3", len(all))
	}

	// the template itself is never mutated by application
	again, err := stack.templates.Apply(ctx, template.ID)
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if len(again) != 3 {
		t.Errorf("second application created %d tasks, want 3", len(again))
	}
}

func TestApplyMissingTemplate(t *testing.T) {
	stack := newTestStack(t)

	_, err := stack.templates.Apply(context.Background(), "ghost")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
