package model

import "time"

// Quota tracks per-user byte usage. LimitBytes of 0 means unlimited.
type Quota struct {
	UserID     uint      `json:"user_id" gorm:"primaryKey"`
	UsedBytes  int64     `json:"used_bytes"`
	LimitBytes int64     `json:"limit_bytes"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (q *Quota) Exceeds(n int64) bool {
	return q.LimitBytes > 0 && q.UsedBytes+n > q.LimitBytes
}
