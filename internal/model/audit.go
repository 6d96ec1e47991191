package model

import "time"

type AuditEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Username  string    `json:"username"`
	Action    string    `json:"action" gorm:"index"`
	Object    string    `json:"object"`
	IP        string    `json:"ip"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
