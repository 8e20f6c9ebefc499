package endorsement

import (
	"context"

	domain "prodojo/internal/domain/endorsement"
)

// Store persists Endorsement state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Endorsement, error)
	Save(ctx context.Context, value domain.Endorsement) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Endorsement, error)
}
