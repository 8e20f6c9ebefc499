package schedule

import (
	"context"

	domain "prodojo/internal/domain/schedule"
)

// Store persists ClassTemplate state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.ClassTemplate, error)
	Save(ctx context.Context, value domain.ClassTemplate) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.ClassTemplate, error)
	ListByDay(ctx context.Context, day string) ([]domain.ClassTemplate, error)
}

// OverrideStore persists per-occurrence Override records.
type OverrideStore interface {
	GetByID(ctx context.Context, id string) (domain.Override, error)
	GetByOccurrence(ctx context.Context, classID, date string) (domain.Override, error)
	Insert(ctx context.Context, value domain.Override) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Override, error)
}
