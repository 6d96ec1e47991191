package model

import "time"

// Folder forms a per-user tree. ParentID is empty for the root folder;
// every user gets exactly one root created at registration.
type Folder struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_folder_name"`
	ParentID  string    `json:"parent_id" gorm:"index;uniqueIndex:idx_folder_name"`
	Name      string    `json:"name" gorm:"uniqueIndex:idx_folder_name" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Folder) IsRoot() bool {
	return f.ParentID == ""
}
