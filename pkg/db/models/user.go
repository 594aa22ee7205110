package models

import (
	"time"

	"github.com/stockroomhq/stockroom-backend/pkg/enums"
	"github.com/stockroomhq/stockroom-backend/pkg/identifier"
	"gorm.io/gorm"
)

// User represents one authenticable principal. PasswordHash only ever holds
// the argon2id digest, never the plaintext.
type User struct {
	ID           string         `gorm:"column:id;type:char(24);primaryKey"`
	Email        string         `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Role         enums.UserRole `gorm:"column:role;not null;default:'user'"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = identifier.New()
	}
	if u.Role == "" {
		u.Role = enums.UserRoleUser
	}
	return nil
}
