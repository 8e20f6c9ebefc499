package trainer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/trainer"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new trainer store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, name, aka, title, specialty, experience, bio, achievements, created_at"

// GetByID retrieves a Trainer by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Trainer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM trainer WHERE id = ?", id)
	entity, err := scanTrainer(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Trainer{}, fmt.Errorf("trainer not found: %w", err)
	}
	return entity, err
}

// Save persists a Trainer to the database. Achievements are stored as a
// JSON array in a TEXT column.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Trainer) error {
	achievements, err := json.Marshal(entity.Achievements)
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO trainer (id, name, aka, title, specialty, experience, bio, achievements, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, aka=excluded.aka, title=excluded.title,
		 specialty=excluded.specialty, experience=excluded.experience, bio=excluded.bio,
		 achievements=excluded.achievements`,
		entity.ID, entity.Name, entity.Aka, entity.Title, entity.Specialty, entity.Experience,
		entity.Bio, string(achievements), entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a Trainer from the database.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trainer WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Trainers ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Trainer, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM trainer ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Trainer
	for rows.Next() {
		entity, err := scanTrainer(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanTrainer(scan func(dest ...any) error) (domain.Trainer, error) {
	var entity domain.Trainer
	var achievements, createdAt string
	err := scan(&entity.ID, &entity.Name, &entity.Aka, &entity.Title, &entity.Specialty,
		&entity.Experience, &entity.Bio, &achievements, &createdAt)
	if err != nil {
		return domain.Trainer{}, err
	}
	if err := json.Unmarshal([]byte(achievements), &entity.Achievements); err != nil {
		return domain.Trainer{}, fmt.Errorf("failed to decode achievements: %w", err)
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}
