package model

import "time"

const (
	GENERAL = iota
	GUEST
	ADMIN
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique" binding:"required"`
	PwdHash  string `json:"-"`
	// OtpSecret enables TOTP second factor when non-empty
	OtpSecret string    `json:"-"`
	Role      int       `json:"role"`
	BasePath  string    `json:"base_path"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == ADMIN
}

func (u *User) IsGuest() bool {
	return u.Role == GUEST
}
