package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crest/internal/domain/appeal"
	"crest/internal/infrastructure/persistence/mappers"
	"crest/internal/infrastructure/persistence/models"
	"crest/internal/shared/db"
)

type AppealRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AppealMapper
}

func NewAppealRepository(gormDB *gorm.DB) appeal.Repository {
	return &AppealRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewAppealMapper(),
	}
}

func (r *AppealRepositoryImpl) Save(ctx context.Context, a *appeal.Appeal) error {
	model := r.mapper.ToModel(a)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create appeal: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set appeal ID: %w", err)
	}
	return nil
}

func (r *AppealRepositoryImpl) Update(ctx context.Context, a *appeal.Appeal) error {
	model := r.mapper.ToModel(a)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update appeal: %w", err)
	}
	return nil
}

func (r *AppealRepositoryImpl) GetByID(ctx context.Context, id uint) (*appeal.Appeal, error) {
	var model models.AppealModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get appeal by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AppealRepositoryImpl) List(ctx context.Context, status *appeal.Status, page, pageSize int) ([]*appeal.Appeal, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AppealModel{})

	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count appeals: %w", err)
	}

	var ms []*models.AppealModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list appeals: %w", err)
	}

	entities, err := r.mapper.ToEntities(ms)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
