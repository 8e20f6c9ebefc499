package successstory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/successstory"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new success story store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, name, promotion, achievement, year_graduated, bio, photo_url, display_order, created_at"

// GetByID retrieves a Story by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Story, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM success_story WHERE id = ?", id)
	entity, err := scanStory(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Story{}, fmt.Errorf("success story not found: %w", err)
	}
	return entity, err
}

// Save persists a Story to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Story) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO success_story (id, name, promotion, achievement, year_graduated, bio, photo_url, display_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, promotion=excluded.promotion,
		 achievement=excluded.achievement, year_graduated=excluded.year_graduated, bio=excluded.bio,
		 photo_url=excluded.photo_url, display_order=excluded.display_order`,
		entity.ID, entity.Name, entity.Promotion, entity.Achievement, entity.YearGraduated,
		entity.Bio, entity.PhotoURL, entity.DisplayOrder, entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a Story from the database.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM success_story WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Stories ordered for display.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Story, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM success_story ORDER BY display_order, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Story
	for rows.Next() {
		entity, err := scanStory(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanStory(scan func(dest ...any) error) (domain.Story, error) {
	var entity domain.Story
	var createdAt string
	err := scan(&entity.ID, &entity.Name, &entity.Promotion, &entity.Achievement,
		&entity.YearGraduated, &entity.Bio, &entity.PhotoURL, &entity.DisplayOrder, &createdAt)
	if err != nil {
		return domain.Story{}, err
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}
