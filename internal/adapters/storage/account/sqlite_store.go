package account

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/account"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new admin store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const adminColumns = "id, username, password_hash, created_at, failed_logins, locked_until"

// GetByID retrieves an Admin by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+adminColumns+" FROM admin WHERE id = ?", id)
	entity, err := scanAdmin(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Admin{}, fmt.Errorf("admin not found: %w", err)
	}
	return entity, err
}

// GetByUsername retrieves an Admin by username.
// PRE: username is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (domain.Admin, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+adminColumns+" FROM admin WHERE username = ?", username)
	entity, err := scanAdmin(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Admin{}, fmt.Errorf("admin not found: %w", err)
	}
	return entity, err
}

// Save persists an Admin to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Admin) error {
	lockedUntil := ""
	if !entity.LockedUntil.IsZero() {
		lockedUntil = entity.LockedUntil.UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admin (id, username, password_hash, created_at, failed_logins, locked_until)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET username=excluded.username, password_hash=excluded.password_hash,
		 failed_logins=excluded.failed_logins, locked_until=excluded.locked_until`,
		entity.ID, entity.Username, entity.PasswordHash,
		entity.CreatedAt.UTC().Format(time.RFC3339), entity.FailedLogins, lockedUntil,
	)
	return err
}

// Count returns the number of admin accounts.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admin").Scan(&n)
	return n, err
}

func scanAdmin(scan func(dest ...any) error) (domain.Admin, error) {
	var entity domain.Admin
	var createdAt, lockedUntil string
	err := scan(&entity.ID, &entity.Username, &entity.PasswordHash, &createdAt,
		&entity.FailedLogins, &lockedUntil)
	if err != nil {
		return domain.Admin{}, err
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if lockedUntil != "" {
		entity.LockedUntil, _ = time.Parse(time.RFC3339, lockedUntil)
	}
	return entity, nil
}
