package model

import "time"

// Template is a reusable named bundle of task skeletons. Applying one
// instantiates every skeleton as an independent task; the template itself is
// never mutated by application.
type Template struct {
	ID          string           `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	Tasks       TaskSkeletonList `gorm:"type:text" json:"tasks"`
	CreatedAt   time.Time        `json:"createdAt"`
}
