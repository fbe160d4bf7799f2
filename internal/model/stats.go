package model

// DefaultStatsKey identifies the singleton user stats record.
const DefaultStatsKey = "default"

// DateLayout is the calendar-day format used for streak accounting.
const DateLayout = "2006-01-02"

// UserStats is the singleton gamification record: one row per installation,
// addressed by a well-known key.
type UserStats struct {
	Key                 string `gorm:"primaryKey" json:"-"`
	Streak              int    `gorm:"default:0" json:"streak"`
	LastActiveDate      string `json:"lastActiveDate"`
	TotalTasksCompleted int    `gorm:"default:0" json:"totalTasksCompleted"`
	TotalTimeSpent      int    `gorm:"default:0" json:"totalTimeSpent"`
	Level               int    `gorm:"default:1" json:"level"`
	XP                  int    `gorm:"default:0;column:xp" json:"xp"`
}

// TableName keeps the historical table name.
func (UserStats) TableName() string { return "user_stats" }
