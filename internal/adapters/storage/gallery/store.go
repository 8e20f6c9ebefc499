package gallery

import (
	"context"

	domain "prodojo/internal/domain/gallery"
)

// Store persists gallery Item state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Item, error)
	Save(ctx context.Context, value domain.Item) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Item, error)
}
