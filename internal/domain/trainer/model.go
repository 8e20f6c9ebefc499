package trainer

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyName = errors.New("trainer name cannot be empty")

// Trainer is a guest or staff trainer profile. Distinct from Coach: the
// training page and the coaches page are curated independently.
type Trainer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Aka          string    `json:"aka"`
	Title        string    `json:"title"`
	Specialty    string    `json:"specialty"`
	Experience   string    `json:"experience"`
	Bio          string    `json:"bio"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks if the Trainer has valid data.
func (t *Trainer) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
