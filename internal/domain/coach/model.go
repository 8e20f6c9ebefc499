package coach

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyName  = errors.New("coach name cannot be empty")
	ErrEmptyTitle = errors.New("coach title cannot be empty")
)

// Coach is a profile shown on the public coaches page.
type Coach struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Aka          string    `json:"aka"`
	Title        string    `json:"title"`
	Specialty    string    `json:"specialty"`
	Experience   string    `json:"experience"`
	Bio          string    `json:"bio"`
	Achievements []string  `json:"achievements"`
	PhotoURL     string    `json:"photo_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks if the Coach has valid data.
// PRE: Coach struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Coach) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
