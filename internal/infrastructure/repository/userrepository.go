package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crest/internal/domain/user"
	"crest/internal/infrastructure/persistence/mappers"
	"crest/internal/infrastructure/persistence/models"
	"crest/internal/shared/auth"
	"crest/internal/shared/db"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gormDB *gorm.DB) user.Repository {
	return &UserRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDs performs one batched lookup over the distinct set of IDs.
// Missing IDs are simply absent from the result.
func (r *UserRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	result := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var ms []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}

	for _, model := range ms {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result[entity.ID()] = entity
	}
	return result, nil
}

func (r *UserRepositoryImpl) ListStaff(ctx context.Context) ([]*user.User, error) {
	var ms []*models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("role IN ? AND active = ?", auth.StaffRoles(), true).
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	return r.mapper.ToEntities(ms)
}
