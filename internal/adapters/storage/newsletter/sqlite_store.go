package newsletter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/newsletter"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new subscription store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, email, subscribed_at"

// GetByEmail retrieves a Subscription by its normalized email.
// PRE: email is normalized
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Subscription, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM newsletter_subscription WHERE email = ?", email)
	entity, err := scanSubscription(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Subscription{}, fmt.Errorf("subscription not found: %w", err)
	}
	return entity, err
}

// Insert stores a new Subscription. The email column carries a UNIQUE
// constraint; a duplicate maps to ErrAlreadySubscribed.
// PRE: entity has been validated, email is normalized
// POST: A new row exists, or ErrAlreadySubscribed
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Subscription) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO newsletter_subscription (id, email, subscribed_at) VALUES (?, ?, ?)`,
		entity.ID, entity.Email, entity.SubscribedAt.UTC().Format(time.RFC3339),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrAlreadySubscribed
	}
	return err
}

// Delete removes a Subscription from the database.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM newsletter_subscription WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Subscriptions, oldest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Subscription, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM newsletter_subscription ORDER BY subscribed_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Subscription
	for rows.Next() {
		entity, err := scanSubscription(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanSubscription(scan func(dest ...any) error) (domain.Subscription, error) {
	var entity domain.Subscription
	var subscribedAt string
	err := scan(&entity.ID, &entity.Email, &subscribedAt)
	if err != nil {
		return domain.Subscription{}, err
	}
	entity.SubscribedAt, _ = time.Parse(time.RFC3339, subscribedAt)
	return entity, nil
}
