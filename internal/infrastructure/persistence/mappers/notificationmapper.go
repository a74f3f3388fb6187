package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"crest/internal/domain/notification"
	"crest/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between domain entities and
// persistence models, including the JSON metadata column.
type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type notificationMapper struct{}

func NewNotificationMapper() NotificationMapper {
	return &notificationMapper{}
}

func (m *notificationMapper) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification metadata: %w", err)
		}
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notification.Type(model.Type),
		model.Title,
		model.Message,
		model.Read,
		model.ActionURL,
		metadata,
		model.CreatedAt,
	)
}

func (m *notificationMapper) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	metadata, err := json.Marshal(entity.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification metadata: %w", err)
	}

	return &models.NotificationModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		Type:      string(entity.Type()),
		Title:     entity.Title(),
		Message:   entity.Message(),
		Read:      entity.Read(),
		ActionURL: entity.ActionURL(),
		Metadata:  datatypes.JSON(metadata),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (m *notificationMapper) ToEntities(ms []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
