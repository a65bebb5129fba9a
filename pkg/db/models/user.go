package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/pkg/enums"
)

// UserStatusActive is the only status that may authenticate.
const UserStatusActive = "active"

// User represents a principal able to authenticate.
type User struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"column:name;not null"`
	Email        string         `gorm:"column:email;type:text;not null"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Role         enums.Role     `gorm:"column:role;type:text;not null;default:coder"`
	Status       string         `gorm:"column:status;type:text;not null;default:active"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string { return "users" }
