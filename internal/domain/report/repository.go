package report

import (
	"context"

	vo "crest/internal/domain/report/valueobjects"
)

// Filter narrows a report listing.
type Filter struct {
	Status   *vo.Status
	Urgent   *bool
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, r *Report) error
	Update(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, reportID uint) (*Report, error)
	List(ctx context.Context, filter Filter) ([]*Report, int64, error)
}
