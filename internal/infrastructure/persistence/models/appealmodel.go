package models

import (
	"time"

	"crest/internal/shared/constants"
)

// AppealModel represents the database persistence model for appeals.
type AppealModel struct {
	ID         uint   `gorm:"primarykey"`
	UserID     uint   `gorm:"not null;index:idx_appeal_user"`
	Message    string `gorm:"not null;type:text"`
	Status     string `gorm:"not null;default:pending;size:20;index:idx_appeal_status"`
	ReviewedBy *uint
	ReviewedAt *time.Time
	ReviewNote string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index:idx_appeal_created"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (AppealModel) TableName() string {
	return constants.TableAppeals
}
