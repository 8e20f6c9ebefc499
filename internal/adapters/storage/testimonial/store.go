package testimonial

import (
	"context"

	domain "prodojo/internal/domain/testimonial"
)

// Store persists Testimonial state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Testimonial, error)
	Save(ctx context.Context, value domain.Testimonial) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Testimonial, error)
}
