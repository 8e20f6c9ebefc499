package testimonial

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prodojo/internal/adapters/storage"
	domain "prodojo/internal/domain/testimonial"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new testimonial store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, name, role, text, photo_url, video_url, created_at"

// GetByID retrieves a Testimonial by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Testimonial, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM testimonial WHERE id = ?", id)
	entity, err := scanTestimonial(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Testimonial{}, fmt.Errorf("testimonial not found: %w", err)
	}
	return entity, err
}

// Save persists a Testimonial to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Testimonial) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO testimonial (id, name, role, text, photo_url, video_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, role=excluded.role, text=excluded.text,
		 photo_url=excluded.photo_url, video_url=excluded.video_url`,
		entity.ID, entity.Name, entity.Role, entity.Text, entity.PhotoURL, entity.VideoURL,
		entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a Testimonial from the database.
// PRE: id is non-empty
// POST: Returns true if a row was removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM testimonial WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves all Testimonials, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM testimonial ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Testimonial
	for rows.Next() {
		entity, err := scanTestimonial(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanTestimonial(scan func(dest ...any) error) (domain.Testimonial, error) {
	var entity domain.Testimonial
	var createdAt string
	err := scan(&entity.ID, &entity.Name, &entity.Role, &entity.Text, &entity.PhotoURL,
		&entity.VideoURL, &createdAt)
	if err != nil {
		return domain.Testimonial{}, err
	}
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return entity, nil
}
