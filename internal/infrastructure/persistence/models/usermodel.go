package models

import (
	"time"

	"crest/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
type UserModel struct {
	ID             uint   `gorm:"primarykey"`
	Email          string `gorm:"uniqueIndex;not null;size:255"`
	DisplayName    string `gorm:"not null;size:100"`
	PasswordHash   string `gorm:"not null;size:255"`
	Role           string `gorm:"not null;default:user;size:20;index:idx_user_role"`
	Active         bool   `gorm:"not null;default:true"`
	Readonly       bool   `gorm:"not null;default:false"`
	SuspendedUntil *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (UserModel) TableName() string {
	return constants.TableUsers
}
