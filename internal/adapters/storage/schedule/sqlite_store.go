package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/schedule"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new class template store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const templateColumns = "id, day, time, title, instructor, level, spots, class_type, description"

// GetByID retrieves a ClassTemplate by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.ClassTemplate, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+templateColumns+" FROM class WHERE id = ?", id)
	entity, err := scanTemplate(row.Scan)
	if err == sql.ErrNoRows {
		return domain.ClassTemplate{}, fmt.Errorf("class template not found: %w", err)
	}
	return entity, err
}

// Save persists a ClassTemplate to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.ClassTemplate) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO class (id, day, time, title, instructor, level, spots, class_type, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET day=excluded.day, time=excluded.time, title=excluded.title,
		 instructor=excluded.instructor, level=excluded.level, spots=excluded.spots,
		 class_type=excluded.class_type, description=excluded.description`,
		entity.ID, entity.Day, entity.Time, entity.Title, entity.Instructor,
		entity.Level, entity.Spots, entity.ClassType, entity.Description,
	)
	return err
}

// Delete removes a ClassTemplate from the database. Overrides referencing
// the template are intentionally left in place.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM class WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all ClassTemplates.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.ClassTemplate, error) {
	return s.queryTemplates(ctx, "SELECT "+templateColumns+" FROM class ORDER BY day, time")
}

// ListByDay retrieves ClassTemplates for a specific day.
// PRE: day is a valid weekday
// POST: Returns templates for the given day
func (s *SQLiteStore) ListByDay(ctx context.Context, day string) ([]domain.ClassTemplate, error) {
	return s.queryTemplates(ctx, "SELECT "+templateColumns+" FROM class WHERE day = ? ORDER BY time", day)
}

func (s *SQLiteStore) queryTemplates(ctx context.Context, query string, args ...any) ([]domain.ClassTemplate, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ClassTemplate
	for rows.Next() {
		entity, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanTemplate(scan func(dest ...any) error) (domain.ClassTemplate, error) {
	var entity domain.ClassTemplate
	err := scan(&entity.ID, &entity.Day, &entity.Time, &entity.Title, &entity.Instructor,
		&entity.Level, &entity.Spots, &entity.ClassType, &entity.Description)
	return entity, err
}
