package status

import (
	"context"

	domain "prodojo/internal/domain/status"
)

// Store persists health Checks.
type Store interface {
	Insert(ctx context.Context, value domain.Check) error
	List(ctx context.Context, limit int) ([]domain.Check, error)
}
