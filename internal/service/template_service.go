package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// TemplateService manages reusable task bundles and their instantiation.
type TemplateService struct {
	templateRepo *repository.TemplateRepository
	tasks        *TaskService
}

func NewTemplateService(templateRepo *repository.TemplateRepository, tasks *TaskService) *TemplateService {
	return &TemplateService{templateRepo: templateRepo, tasks: tasks}
}

func (s *TemplateService) List(ctx context.Context) ([]model.Template, error) {
	return s.templateRepo.List(ctx)
}

func (s *TemplateService) Create(ctx context.Context, template *model.Template) (*model.Template, error) {
	if strings.TrimSpace(template.Name) == "" {
		return nil, validationf("name is required")
	}
	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	if template.CreatedAt.IsZero() {
		template.CreatedAt = time.Now().UTC()
	}
	if template.Tasks == nil {
		template.Tasks = model.TaskSkeletonList{}
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	return s.templateRepo.Delete(ctx, id)
}

// Apply instantiates every skeleton of a template as an independent task
// with a fresh id, current timestamp and a back-reference to the template.
// Insertions are sequential with no rollback; a mid-sequence failure leaves
// the earlier tasks in place.
func (s *TemplateService) Apply(ctx context.Context, id string) ([]model.Task, error) {
	template, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	created := make([]model.Task, 0, len(template.Tasks))
	for _, skeleton := range template.Tasks {
		task := model.Task{
			ID:                 uuid.NewString(),
			Title:              skeleton.Title,
			Description:        skeleton.Description,
			Category:           skeleton.Category,
			Priority:           skeleton.Priority,
			Notes:              skeleton.Notes,
			Tags:               skeleton.Tags,
			EstimatedPomodoros: skeleton.EstimatedPomodoros,
			TemplateID:         &template.ID,
			CreatedAt:          time.Now().UTC(),
		}
		if _, err := s.tasks.Create(ctx, &task); err != nil {
			return created, err
		}
		created = append(created, task)
	}
	return created, nil
}
