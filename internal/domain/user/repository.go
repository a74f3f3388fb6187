package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByIDs performs one batched lookup over the distinct set of IDs,
	// for display-name resolution without N+1 queries. Missing IDs are
	// simply absent from the result.
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*User, error)

	// ListStaff returns every user whose role is admin, moderator or
	// staff; the fan-out audience.
	ListStaff(ctx context.Context) ([]*User, error)
}
