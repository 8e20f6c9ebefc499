package endorsement

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/endorsement"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new endorsement store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, title, video_url, description, display_order, created_at"

// GetByID retrieves an Endorsement by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Endorsement, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM endorsement WHERE id = ?", id)
	entity, err := scanEndorsement(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Endorsement{}, fmt.Errorf("endorsement not found: %w", err)
	}
	return entity, err
}

// Save persists an Endorsement to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Endorsement) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO endorsement (id, title, video_url, description, display_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title=excluded.title, video_url=excluded.video_url,
		 description=excluded.description, display_order=excluded.display_order`,
		entity.ID, entity.Title, entity.VideoURL, entity.Description, entity.DisplayOrder,
		entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes an Endorsement from the database.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM endorsement WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Endorsements ordered for display.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Endorsement, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM endorsement ORDER BY display_order, created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Endorsement
	for rows.Next() {
		entity, err := scanEndorsement(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanEndorsement(scan func(dest ...any) error) (domain.Endorsement, error) {
	var entity domain.Endorsement
	var createdAt string
	err := scan(&entity.ID, &entity.Title, &entity.VideoURL, &entity.Description,
		&entity.DisplayOrder, &createdAt)
	if err != nil {
		return domain.Endorsement{}, err
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}
