package models

import (
	"time"

	"gorm.io/datatypes"

	"crest/internal/shared/constants"
)

// AuditLogModel represents the database persistence model for audit
// entries. Rows are append-only; there is no UpdatedAt.
type AuditLogModel struct {
	ID      uint   `gorm:"primarykey"`
	ActorID uint   `gorm:"not null;index:idx_audit_actor"`
	Action  string `gorm:"not null;size:64;index:idx_audit_action"`
	Reason  string `gorm:"type:text"`
	Payload datatypes.JSON

	CreatedAt time.Time `gorm:"index:idx_audit_created"`
}

// TableName specifies the table name for GORM.
func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
