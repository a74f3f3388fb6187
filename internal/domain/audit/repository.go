package audit

import "context"

type Repository interface {
	Save(ctx context.Context, e *Entry) error
	List(ctx context.Context, actorID *uint, page, pageSize int) ([]*Entry, int64, error)
}
