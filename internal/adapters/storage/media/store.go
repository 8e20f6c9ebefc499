package media

import (
	"context"

	domain "prodojo/internal/domain/media"
)

// Store persists media Asset metadata. The file bytes live on disk.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Asset, error)
	Insert(ctx context.Context, value domain.Asset) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Asset, error)
}
