package contact

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/contact"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new contact message store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, name, email, phone, subject, message, created_at"

// GetByID retrieves a Message by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Message, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM contact_message WHERE id = ?", id)
	entity, err := scanMessage(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Message{}, fmt.Errorf("contact message not found: %w", err)
	}
	return entity, err
}

// Insert stores a new Message. Messages are immutable once submitted.
// PRE: entity has been validated
// POST: A new row exists
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_message (id, name, email, phone, subject, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entity.ID, entity.Name, entity.Email, entity.Phone, entity.Subject, entity.Message,
		entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a Message from the database.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contact_message WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Messages, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM contact_message ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Message
	for rows.Next() {
		entity, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanMessage(scan func(dest ...any) error) (domain.Message, error) {
	var entity domain.Message
	var createdAt string
	err := scan(&entity.ID, &entity.Name, &entity.Email, &entity.Phone, &entity.Subject,
		&entity.Message, &createdAt)
	if err != nil {
		return domain.Message{}, err
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}
