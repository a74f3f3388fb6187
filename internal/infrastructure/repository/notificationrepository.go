package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"crest/internal/domain/notification"
	"crest/internal/infrastructure/persistence/mappers"
	"crest/internal/infrastructure/persistence/models"
	"crest/internal/shared/db"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(gormDB *gorm.DB) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	ms := make([]*models.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		model, err := r.mapper.ToModel(n)
		if err != nil {
			return err
		}
		ms = append(ms, model)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&ms).Error; err != nil {
		return fmt.Errorf("failed to bulk create notifications: %w", err)
	}

	for i, n := range notifications {
		if err := n.SetID(ms[i].ID); err != nil {
			return fmt.Errorf("failed to set notification ID: %w", err)
		}
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get notification by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NotificationRepositoryImpl) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NotificationModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var ms []*models.NotificationModel
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.mapper.ToEntities(ms)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.NotificationModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// DeleteByMetadataExcept removes every notification of the given type
// whose metadata carries the given correlation key/value, sparing the
// handler's own rows. The type filter keeps outcome notifications with the
// same correlation id out of the purge. The JSON match goes through
// datatypes.JSONQuery so the same code runs on MySQL and the sqlite used
// in tests.
func (r *NotificationRepositoryImpl) DeleteByMetadataExcept(ctx context.Context, notificationType notification.Type, metaKey string, correlationID uint, exceptUserID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("type = ?", string(notificationType)).
		Where(datatypes.JSONQuery("metadata").Equals(correlationID, metaKey)).
		Where("user_id <> ?", exceptUserID).
		Delete(&models.NotificationModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to purge notifications: %w", err)
	}
	return nil
}
