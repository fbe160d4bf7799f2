package model

import "time"

// File is an attachment owned by a task. Filepath is the storage-relative
// name under the uploads directory, not the original filename.
type File struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	TaskID     string    `gorm:"index" json:"taskId"`
	Filename   string    `json:"filename"`
	Filepath   string    `json:"filepath"`
	Size       int64     `json:"size"`
	Mimetype   string    `json:"mimetype"`
	UploadedAt time.Time `json:"uploadedAt"`
}
