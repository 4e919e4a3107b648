package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// IsAdmin reports whether the role grants access to admin-only operations.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID       string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email        string `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string `gorm:"size:100;column:password_hash" json:"-"`
	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	Role         Role   `gorm:"type:enum('USER','ADMIN','SUPER_ADMIN');default:'USER'" json:"role"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Session is a DB-backed bearer credential; the token is handed out at login
// and checked on every authenticated request.
type Session struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Token     string    `gorm:"size:32;uniqueIndex:ux_sessions_token"`
	UserID    uint64    `gorm:"not null;index:idx_sessions_user"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Session) TableName() string { return "sessions" }
