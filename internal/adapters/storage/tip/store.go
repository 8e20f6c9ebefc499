package tip

import (
	"context"

	domain "prodojo/internal/domain/tip"
)

// Store persists Tip state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Tip, error)
	Save(ctx context.Context, value domain.Tip) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Tip, error)
}
