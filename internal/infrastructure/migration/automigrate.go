package migration

import (
	"crest/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.ConversationMessageModel{},
		&models.ReportModel{},
		&models.AppealModel{},
		&models.NotificationModel{},
		&models.AuditLogModel{},
		&models.ProfileModel{},
		&models.ProfilePairModel{},
		&models.EmoteModel{},
		&models.WallpaperModel{},
		&models.EmojiComboModel{},
	}
}
