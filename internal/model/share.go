package model

import "time"

const (
	SharePermRead  = "read"
	SharePermWrite = "write"
)

// Share grants access to a file or a folder through a public token.
// Exactly one of FileID and FolderID is set.
type Share struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"index"`
	FileID     string     `json:"file_id"`
	FolderID   string     `json:"folder_id"`
	Permission string     `json:"permission"`
	PwdHash    string     `json:"-"`
	ExpiresAt  *time.Time `json:"expires_at"`
	Downloads  int64      `json:"downloads"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (s *Share) Expired() bool {
	return s.ExpiresAt != nil && time.Now().After(*s.ExpiresAt)
}

func (s *Share) Protected() bool {
	return s.PwdHash != ""
}
