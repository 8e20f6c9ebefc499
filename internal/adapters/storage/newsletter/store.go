package newsletter

import (
	"context"

	domain "prodojo/internal/domain/newsletter"
)

// Store persists newsletter Subscriptions.
type Store interface {
	GetByEmail(ctx context.Context, email string) (domain.Subscription, error)
	Insert(ctx context.Context, value domain.Subscription) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Subscription, error)
}
