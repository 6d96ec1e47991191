package model

import "time"

// Session is the server-tracked record backing a JWT. The JWT carries
// the session key; deleting the row invalidates the token early.
type Session struct {
	Key       string    `json:"key" gorm:"primaryKey" binding:"required"`
	UserID    uint      `json:"user_id" gorm:"index"`
	UserAgent string    `json:"user_agent"`
	IP        string    `json:"ip"`
	ExpiresAt time.Time `json:"expires_at"`
	Modified  time.Time `json:"modified"`
}

func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
