package media

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/media"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new media asset store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, filename, path, url, content_type, size_bytes, uploaded_at"

// GetByID retrieves an Asset by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Asset, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM media_asset WHERE id = ?", id)
	entity, err := scanAsset(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Asset{}, fmt.Errorf("media asset not found: %w", err)
	}
	return entity, err
}

// Insert stores metadata for a newly uploaded Asset.
// PRE: the file has been written to disk
// POST: A new row exists
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Asset) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO media_asset (id, filename, path, url, content_type, size_bytes, uploaded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entity.ID, entity.Filename, entity.Path, entity.URL, entity.ContentType,
		entity.SizeBytes, entity.UploadedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes an Asset row from the database. The caller is
// responsible for removing the file on disk.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM media_asset WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Assets, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Asset, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM media_asset ORDER BY uploaded_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Asset
	for rows.Next() {
		entity, err := scanAsset(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanAsset(scan func(dest ...any) error) (domain.Asset, error) {
	var entity domain.Asset
	var uploadedAt string
	err := scan(&entity.ID, &entity.Filename, &entity.Path, &entity.URL, &entity.ContentType,
		&entity.SizeBytes, &uploadedAt)
	if err != nil {
		return domain.Asset{}, err
	}
	entity.UploadedAt, _ = time.Parse(time.RFC3339, uploadedAt)
	return entity, nil
}
