package coach

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/coach"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new coach store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, name, aka, title, specialty, experience, bio, achievements, photo_url, display_order, created_at"

// GetByID retrieves a Coach by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Coach, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM coach WHERE id = ?", id)
	entity, err := scanCoach(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Coach{}, fmt.Errorf("coach not found: %w", err)
	}
	return entity, err
}

// Save persists a Coach to the database. Achievements are stored as a
// JSON array in a TEXT column.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Coach) error {
	achievements, err := json.Marshal(entity.Achievements)
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO coach (id, name, aka, title, specialty, experience, bio, achievements, photo_url, display_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, aka=excluded.aka, title=excluded.title,
		 specialty=excluded.specialty, experience=excluded.experience, bio=excluded.bio,
		 achievements=excluded.achievements, photo_url=excluded.photo_url, display_order=excluded.display_order`,
		entity.ID, entity.Name, entity.Aka, entity.Title, entity.Specialty, entity.Experience,
		entity.Bio, string(achievements), entity.PhotoURL, entity.DisplayOrder,
		entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a Coach from the database.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM coach WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Coaches ordered for display.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Coach, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM coach ORDER BY display_order, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Coach
	for rows.Next() {
		entity, err := scanCoach(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanCoach(scan func(dest ...any) error) (domain.Coach, error) {
	var entity domain.Coach
	var achievements, createdAt string
	err := scan(&entity.ID, &entity.Name, &entity.Aka, &entity.Title, &entity.Specialty,
		&entity.Experience, &entity.Bio, &achievements, &entity.PhotoURL,
		&entity.DisplayOrder, &createdAt)
	if err != nil {
		return domain.Coach{}, err
	}
	if err := json.Unmarshal([]byte(achievements), &entity.Achievements); err != nil {
		return domain.Coach{}, fmt.Errorf("failed to decode achievements: %w", err)
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}
