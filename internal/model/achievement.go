package model

import "time"

// Achievement tracks unlock state and progress for one catalog entry.
// A nil UnlockedAt means the achievement is still locked.
type Achievement struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	UnlockedAt  *time.Time `json:"unlockedAt"`
	Progress    int        `gorm:"default:0" json:"progress"`
	Target      int        `gorm:"default:100" json:"target"`
}

// AchievementCatalog returns the fixed set of achievements seeded on first
// run. Progress for the completion-count entries tracks total completed
// tasks; the streak entry tracks the current streak.
func AchievementCatalog() []Achievement {
	return []Achievement{
		{ID: "first_task", Name: "First Step", Description: "Complete your first task", Icon: "🎯", Target: 1},
		{ID: "task_master_10", Name: "Task Master", Description: "Complete 10 tasks", Icon: "🏆", Target: 10},
		{ID: "task_master_50", Name: "Super Productive", Description: "Complete 50 tasks", Icon: "⭐", Target: 50},
		{ID: "streak_7", Name: "Week Streak", Description: "Complete tasks 7 days in a row", Icon: "🔥", Target: 7},
	}
}
