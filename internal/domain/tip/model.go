package tip

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyTitle = errors.New("tip title cannot be empty")

// Tip is a training tip video with a markdown description, shown on the
// training page ordered by DisplayOrder.
type Tip struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"video_url"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks if the Tip has valid data.
func (t *Tip) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
