package status

import (
	"context"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/status"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new status check store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Insert stores a new Check.
// PRE: entity has been validated
// POST: A new row exists
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Check) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO status_check (id, client_name, timestamp) VALUES (?, ?, ?)`,
		entity.ID, entity.ClientName, entity.Timestamp.UTC().Format(time.RFC3339),
	)
	return err
}

// List retrieves the most recent Checks, newest first.
// PRE: limit > 0
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]domain.Check, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, client_name, timestamp FROM status_check ORDER BY timestamp DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Check
	for rows.Next() {
		var entity domain.Check
		var ts string
		if err := rows.Scan(&entity.ID, &entity.ClientName, &ts); err != nil {
			return nil, err
		}
		entity.Timestamp, _ = time.Parse(time.RFC3339, ts)
		results = append(results, entity)
	}
	return results, rows.Err()
}
