package contact

import (
	"context"

	domain "prodojo/internal/domain/contact"
)

// Store persists contact Messages.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Message, error)
	Insert(ctx context.Context, value domain.Message) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Message, error)
}
