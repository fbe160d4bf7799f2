package model

import "time"

// Comment is declared in storage for forward compatibility. No HTTP surface
// uses it yet; rows only participate in the task delete cascade.
type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	TaskID    string    `gorm:"index" json:"taskId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
