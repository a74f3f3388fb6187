package mappers

import (
	"crest/internal/domain/user"
	"crest/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and
// persistence models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.DisplayName,
		model.PasswordHash,
		model.Role,
		model.Active,
		model.Readonly,
		model.SuspendedUntil,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:             entity.ID(),
		Email:          entity.Email(),
		DisplayName:    entity.DisplayName(),
		PasswordHash:   entity.PasswordHash(),
		Role:           entity.Role(),
		Active:         entity.Active(),
		Readonly:       entity.Readonly(),
		SuspendedUntil: entity.SuspendedUntil(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *userMapper) ToEntities(ms []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
