package models

import (
	"time"

	"gorm.io/datatypes"

	"crest/internal/shared/constants"
)

// NotificationModel represents the database persistence model for
// notifications. Metadata is a JSON column carrying the correlation IDs
// (report_id / ticket_id / appeal_id) the purge queries match on.
type NotificationModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_notification_user"`
	Type      string `gorm:"not null;size:32"`
	Title     string `gorm:"not null;size:255"`
	Message   string `gorm:"not null;type:text"`
	Read      bool   `gorm:"column:is_read;not null;default:false;index:idx_notification_read"`
	ActionURL string `gorm:"size:500"`
	Metadata  datatypes.JSON

	CreatedAt time.Time `gorm:"index:idx_notification_created"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
