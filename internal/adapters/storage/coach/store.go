package coach

import (
	"context"

	domain "prodojo/internal/domain/coach"
)

// Store persists Coach state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Coach, error)
	Save(ctx context.Context, value domain.Coach) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Coach, error)
}
