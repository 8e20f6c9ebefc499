package successstory

import (
	"context"

	domain "prodojo/internal/domain/successstory"
)

// Store persists success Story state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Story, error)
	Save(ctx context.Context, value domain.Story) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Story, error)
}
