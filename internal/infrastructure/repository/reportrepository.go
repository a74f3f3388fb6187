package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crest/internal/domain/report"
	"crest/internal/infrastructure/persistence/mappers"
	"crest/internal/infrastructure/persistence/models"
	"crest/internal/shared/db"
)

type ReportRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
}

func NewReportRepository(gormDB *gorm.DB) report.Repository {
	return &ReportRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewReportMapper(),
	}
}

func (r *ReportRepositoryImpl) Save(ctx context.Context, rep *report.Report) error {
	model := r.mapper.ToModel(rep)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	if err := rep.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set report ID: %w", err)
	}
	return nil
}

func (r *ReportRepositoryImpl) Update(ctx context.Context, rep *report.Report) error {
	model := r.mapper.ToModel(rep)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}

func (r *ReportRepositoryImpl) GetByID(ctx context.Context, reportID uint) (*report.Report, error) {
	var model models.ReportModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, reportID).Error; err != nil {
		return nil, fmt.Errorf("failed to get report by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ReportRepositoryImpl) List(ctx context.Context, filter report.Filter) ([]*report.Report, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ReportModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Urgent != nil {
		query = query.Where("urgent = ?", *filter.Urgent)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	var ms []*models.ReportModel
	offset := (filter.Page - 1) * filter.PageSize
	// Urgent items surface first within the queue.
	err := query.Order("urgent DESC, created_at DESC").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}

	entities, err := r.mapper.ToEntities(ms)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
