package appeal

import "context"

type Repository interface {
	Save(ctx context.Context, a *Appeal) error
	Update(ctx context.Context, a *Appeal) error
	GetByID(ctx context.Context, id uint) (*Appeal, error)
	List(ctx context.Context, status *Status, page, pageSize int) ([]*Appeal, int64, error)
}
