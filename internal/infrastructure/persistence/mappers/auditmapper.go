package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"crest/internal/domain/audit"
	"crest/internal/infrastructure/persistence/models"
)

// AuditMapper handles the conversion between audit entries and their
// persistence models, including the JSON payload column.
type AuditMapper interface {
	ToEntity(model *models.AuditLogModel) (*audit.Entry, error)
	ToModel(entity *audit.Entry) (*models.AuditLogModel, error)
	ToEntities(models []*models.AuditLogModel) ([]*audit.Entry, error)
}

type auditMapper struct{}

func NewAuditMapper() AuditMapper {
	return &auditMapper{}
}

func (m *auditMapper) ToEntity(model *models.AuditLogModel) (*audit.Entry, error) {
	if model == nil {
		return nil, nil
	}

	var payload map[string]interface{}
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit payload: %w", err)
		}
	}

	return audit.ReconstructEntry(
		model.ID,
		model.ActorID,
		model.Action,
		model.Reason,
		payload,
		model.CreatedAt,
	)
}

func (m *auditMapper) ToModel(entity *audit.Entry) (*models.AuditLogModel, error) {
	if entity == nil {
		return nil, nil
	}

	payload, err := json.Marshal(entity.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit payload: %w", err)
	}

	return &models.AuditLogModel{
		ID:        entity.ID(),
		ActorID:   entity.ActorID(),
		Action:    entity.Action(),
		Reason:    entity.Reason(),
		Payload:   datatypes.JSON(payload),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (m *auditMapper) ToEntities(ms []*models.AuditLogModel) ([]*audit.Entry, error) {
	entities := make([]*audit.Entry, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
