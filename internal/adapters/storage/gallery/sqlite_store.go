package gallery

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/gallery"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new gallery store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, title, section, type, url, description, display_order, created_at"

// GetByID retrieves a gallery Item by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Item, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM gallery_item WHERE id = ?", id)
	entity, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Item{}, fmt.Errorf("gallery item not found: %w", err)
	}
	return entity, err
}

// Save persists a gallery Item to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Item) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO gallery_item (id, title, section, type, url, description, display_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title=excluded.title, section=excluded.section, type=excluded.type,
		 url=excluded.url, description=excluded.description, display_order=excluded.display_order`,
		entity.ID, entity.Title, entity.Section, entity.Type, entity.URL, entity.Description,
		entity.DisplayOrder, entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a gallery Item from the database.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM gallery_item WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all gallery Items grouped by section and ordered for display.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM gallery_item ORDER BY section, display_order, created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Item
	for rows.Next() {
		entity, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanItem(scan func(dest ...any) error) (domain.Item, error) {
	var entity domain.Item
	var createdAt string
	err := scan(&entity.ID, &entity.Title, &entity.Section, &entity.Type, &entity.URL,
		&entity.Description, &entity.DisplayOrder, &createdAt)
	if err != nil {
		return domain.Item{}, err
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}
