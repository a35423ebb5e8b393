package model

import (
	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	gorm.Model
	Username     string   `gorm:"column:username;type:varchar(255);not null;uniqueIndex" json:"username"`
	Email        string   `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string   `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         UserRole `gorm:"column:role;type:varchar(20);not null;default:'user'" json:"role"`
	IsBanned     bool     `gorm:"column:is_banned;not null;default:false" json:"is_banned"`
	RefreshToken *string  `gorm:"column:refresh_token;type:text" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Principal is the authenticated identity threaded explicitly into every
// controller call. It is resolved once by the auth middleware and never read
// from ambient state.
type Principal struct {
	UserID   uint
	Role     UserRole
	IsBanned bool
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}
