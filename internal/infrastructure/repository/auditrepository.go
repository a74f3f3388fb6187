package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crest/internal/domain/audit"
	"crest/internal/infrastructure/persistence/mappers"
	"crest/internal/infrastructure/persistence/models"
	"crest/internal/shared/db"
)

type AuditRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AuditMapper
}

func NewAuditRepository(gormDB *gorm.DB) audit.Repository {
	return &AuditRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewAuditMapper(),
	}
}

func (r *AuditRepositoryImpl) Save(ctx context.Context, e *audit.Entry) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set audit entry ID: %w", err)
	}
	return nil
}

func (r *AuditRepositoryImpl) List(ctx context.Context, actorID *uint, page, pageSize int) ([]*audit.Entry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AuditLogModel{})

	if actorID != nil {
		query = query.Where("actor_id = ?", *actorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var ms []*models.AuditLogModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entities, err := r.mapper.ToEntities(ms)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
