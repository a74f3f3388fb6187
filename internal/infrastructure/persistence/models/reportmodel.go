package models

import (
	"time"

	"crest/internal/shared/constants"
)

// ReportModel represents the database persistence model for reports.
type ReportModel struct {
	ID             uint    `gorm:"primarykey"`
	ReporterUserID uint    `gorm:"not null;index:idx_report_reporter"`
	ReportedUserID *uint   `gorm:"index:idx_report_reported"`
	ContentID      *uint   `gorm:"index:idx_report_content"`
	ContentType    *string `gorm:"size:32"`
	Reason         string  `gorm:"not null;type:text"`
	Status         string  `gorm:"not null;default:pending;size:20;index:idx_report_status"`
	HandledBy      *uint   `gorm:"index:idx_report_handler"`
	HandledAt      *time.Time
	Urgent         bool `gorm:"not null;default:false;index:idx_report_urgent"`

	CreatedAt time.Time `gorm:"index:idx_report_created"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (ReportModel) TableName() string {
	return constants.TableReports
}
