package schedule

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/schedule"
)

// OverrideSQLiteStore implements OverrideStore using SQLite.
type OverrideSQLiteStore struct {
	db storage.SQLDB
}

// NewOverrideSQLiteStore creates a new override store.
func NewOverrideSQLiteStore(db storage.SQLDB) *OverrideSQLiteStore {
	return &OverrideSQLiteStore{db: db}
}

const overrideColumns = "id, class_id, class_date, status, reason, rescheduled_time, created_at"

// GetByID retrieves an Override by its ID.
// PRE: id is non-empty
// POST: Returns the entity, or ErrOverrideNotFound
func (s *OverrideSQLiteStore) GetByID(ctx context.Context, id string) (domain.Override, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+overrideColumns+" FROM class_override WHERE id = ?", id)
	entity, err := scanOverride(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Override{}, domain.ErrOverrideNotFound
	}
	return entity, err
}

// GetByOccurrence retrieves the override for one (class, date) pair.
// PRE: classID and date are non-empty
// POST: Returns the entity, or ErrOverrideNotFound
func (s *OverrideSQLiteStore) GetByOccurrence(ctx context.Context, classID, date string) (domain.Override, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+overrideColumns+" FROM class_override WHERE class_id = ? AND class_date = ?",
		classID, date)
	entity, err := scanOverride(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Override{}, domain.ErrOverrideNotFound
	}
	return entity, err
}

// Insert persists a new Override. The unique index on (class_id, class_date)
// enforces at most one override per occurrence; a conflicting insert
// surfaces as ErrDuplicateOverride.
// PRE: entity has been validated
// POST: Entity is persisted, or ErrDuplicateOverride on conflict
func (s *OverrideSQLiteStore) Insert(ctx context.Context, entity domain.Override) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO class_override (id, class_id, class_date, status, reason, rescheduled_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entity.ID, entity.ClassID, entity.Date, entity.Status, entity.Reason,
		entity.RescheduledTime, entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrDuplicateOverride
	}
	return err
}

// Delete removes an Override by id.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *OverrideSQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM class_override WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Overrides.
func (s *OverrideSQLiteStore) List(ctx context.Context) ([]domain.Override, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+overrideColumns+" FROM class_override ORDER BY class_date, class_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Override
	for rows.Next() {
		entity, err := scanOverride(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanOverride(scan func(dest ...any) error) (domain.Override, error) {
	var entity domain.Override
	var createdAt string
	err := scan(&entity.ID, &entity.ClassID, &entity.Date, &entity.Status,
		&entity.Reason, &entity.RescheduledTime, &createdAt)
	if err != nil {
		return domain.Override{}, err
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}
