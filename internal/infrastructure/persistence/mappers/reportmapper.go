package mappers

import (
	"fmt"

	"crest/internal/domain/report"
	vo "crest/internal/domain/report/valueobjects"
	"crest/internal/infrastructure/persistence/models"
)

// ReportMapper handles the conversion between domain entities and
// persistence models.
type ReportMapper interface {
	ToEntity(model *models.ReportModel) (*report.Report, error)
	ToModel(entity *report.Report) *models.ReportModel
	ToEntities(models []*models.ReportModel) ([]*report.Report, error)
}

type reportMapper struct{}

func NewReportMapper() ReportMapper {
	return &reportMapper{}
}

func (m *reportMapper) ToEntity(model *models.ReportModel) (*report.Report, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map report status: %w", err)
	}

	contentType := ""
	if model.ContentType != nil {
		contentType = *model.ContentType
	}

	return report.ReconstructReport(
		model.ID,
		model.ReporterUserID,
		model.ReportedUserID,
		model.ContentID,
		contentType,
		model.Reason,
		status,
		model.HandledBy,
		model.HandledAt,
		model.Urgent,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *reportMapper) ToModel(entity *report.Report) *models.ReportModel {
	if entity == nil {
		return nil
	}

	var contentType *string
	if entity.ContentType() != "" {
		ct := entity.ContentType()
		contentType = &ct
	}

	return &models.ReportModel{
		ID:             entity.ID(),
		ReporterUserID: entity.ReporterUserID(),
		ReportedUserID: entity.ReportedUserID(),
		ContentID:      entity.ContentID(),
		ContentType:    contentType,
		Reason:         entity.Reason(),
		Status:         string(entity.Status()),
		HandledBy:      entity.HandledBy(),
		HandledAt:      entity.HandledAt(),
		Urgent:         entity.Urgent(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *reportMapper) ToEntities(ms []*models.ReportModel) ([]*report.Report, error) {
	entities := make([]*report.Report, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
