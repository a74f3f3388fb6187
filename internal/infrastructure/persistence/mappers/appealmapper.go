package mappers

import (
	"crest/internal/domain/appeal"
	"crest/internal/infrastructure/persistence/models"
)

// AppealMapper handles the conversion between domain entities and
// persistence models.
type AppealMapper interface {
	ToEntity(model *models.AppealModel) (*appeal.Appeal, error)
	ToModel(entity *appeal.Appeal) *models.AppealModel
	ToEntities(models []*models.AppealModel) ([]*appeal.Appeal, error)
}

type appealMapper struct{}

func NewAppealMapper() AppealMapper {
	return &appealMapper{}
}

func (m *appealMapper) ToEntity(model *models.AppealModel) (*appeal.Appeal, error) {
	if model == nil {
		return nil, nil
	}

	return appeal.ReconstructAppeal(
		model.ID,
		model.UserID,
		model.Message,
		appeal.Status(model.Status),
		model.ReviewedBy,
		model.ReviewedAt,
		model.ReviewNote,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *appealMapper) ToModel(entity *appeal.Appeal) *models.AppealModel {
	if entity == nil {
		return nil
	}

	return &models.AppealModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		Message:    entity.Message(),
		Status:     string(entity.Status()),
		ReviewedBy: entity.ReviewedBy(),
		ReviewedAt: entity.ReviewedAt(),
		ReviewNote: entity.ReviewNote(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *appealMapper) ToEntities(ms []*models.AppealModel) ([]*appeal.Appeal, error) {
	entities := make([]*appeal.Appeal, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
