package successstory

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("story name cannot be empty")
	ErrEmptyPromotion = errors.New("story promotion cannot be empty")
)

// Story profiles a graduate who went pro. Bio is markdown; the public
// endpoint serves it rendered to HTML.
type Story struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Promotion     string    `json:"promotion"`
	Achievement   string    `json:"achievement"`
	YearGraduated string    `json:"year_graduated"`
	Bio           string    `json:"bio"`
	PhotoURL      string    `json:"photo_url"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate checks if the Story has valid data.
func (s *Story) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.Promotion) == "" {
		return ErrEmptyPromotion
	}
	return nil
}
