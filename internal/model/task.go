package model

import "time"

// Task categories and priorities form fixed vocabularies; anything else is
// rejected at the service layer.
const (
	CategoryPersonal = "personal"
	CategoryWork     = "work"
	CategoryShopping = "shopping"
	CategoryHealth   = "health"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	StatusTodo = "todo"
)

// Task represents a single unit of work, optionally nested one level under a
// parent task. Ids are strings so client-generated ids survive import.
type Task struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	Title              string         `gorm:"not null" json:"title"`
	Description        string         `json:"description"`
	Completed          bool           `gorm:"default:false" json:"completed"`
	CompletedAt        *time.Time     `json:"completedAt"`
	Category           string         `gorm:"not null" json:"category"`
	Priority           string         `gorm:"not null" json:"priority"`
	DueDate            *string        `json:"dueDate"`
	CreatedAt          time.Time      `json:"createdAt"`
	Tags               StringList     `gorm:"type:text" json:"tags"`
	Notes              string         `json:"notes"`
	Recurring          *RecurringRule `gorm:"type:text" json:"recurring"`
	PomodoroCount      int            `gorm:"default:0" json:"pomodoroCount"`
	EstimatedPomodoros int            `gorm:"default:0" json:"estimatedPomodoros"`
	ParentTaskID       *string        `gorm:"index" json:"parentTaskId"`
	SortOrder          int            `gorm:"default:0" json:"sortOrder"`
	TimeSpent          int            `gorm:"default:0" json:"timeSpent"`
	Dependencies       StringList     `gorm:"type:text" json:"dependencies"`
	AssignedTo         string         `json:"assignedTo"`
	ReminderTime       *string        `json:"reminderTime"`
	TemplateID         *string        `gorm:"index" json:"templateId"`
	Status             string         `gorm:"default:todo" json:"status"`
}

// ValidCategory reports whether name is one of the fixed task categories.
func ValidCategory(name string) bool {
	switch name {
	case CategoryPersonal, CategoryWork, CategoryShopping, CategoryHealth:
		return true
	}
	return false
}

// ValidPriority reports whether name is one of the fixed task priorities.
func ValidPriority(name string) bool {
	switch name {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
