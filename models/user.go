package models

import "time"

// User - auth_user table, an admin account
type User struct {
	ID          int64      `gorm:"primary_key" json:"id"`
	Username    string     `gorm:"size:150;unique_index" json:"username"`
	Password    string     `gorm:"size:128" json:"-"`
	IsStaff     bool       `gorm:"column:is_staff" json:"is_staff"`
	IsSuperuser bool       `gorm:"column:is_superuser" json:"is_superuser"`
	IsActive    bool       `gorm:"column:is_active" json:"is_active"`
	LastLogin   *time.Time `gorm:"column:last_login" json:"last_login"`
	DateJoined  time.Time  `gorm:"column:date_joined" json:"date_joined"`
}

// TableName -
func (User) TableName() string {
	return "auth_user"
}

// CanUseAdmin - active staff may open the admin screens
func (u *User) CanUseAdmin() bool {
	return u != nil && u.IsActive && (u.IsStaff || u.IsSuperuser)
}

// Token - tokens table, issued admin tokens
type Token struct {
	Username  string    `gorm:"size:150;primary_key" json:"username"`
	Token     string    `gorm:"type:text" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName -
func (Token) TableName() string {
	return "tokens"
}

// All - every table this service migrates
func All() []interface{} {
	return []interface{}{
		&User{}, &Token{}, &Gateway{}, &Campaign{}, &Callrequest{}, &VoIPCall{},
	}
}
