package account

import (
	"context"

	domain "prodojo/internal/domain/account"
)

// Store persists Admin state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (domain.Admin, error)
	Save(ctx context.Context, value domain.Admin) error
	Count(ctx context.Context) (int, error)
}
