package model

import "time"

type FileObject struct {
	ID       string `json:"id" gorm:"primaryKey"`
	UserID   uint   `json:"user_id" gorm:"index;uniqueIndex:idx_file_name"`
	FolderID string `json:"folder_id" gorm:"index;uniqueIndex:idx_file_name"`
	Name     string `json:"name" gorm:"uniqueIndex:idx_file_name" binding:"required"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
	// Hash is the hex sha256 of the content
	Hash      string    `json:"hash"`
	Driver    string    `json:"driver"`
	ObjectKey string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
