package endorsement

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyTitle    = errors.New("endorsement title cannot be empty")
	ErrEmptyVideoURL = errors.New("endorsement video URL cannot be empty")
)

// Endorsement is a video shout-out from a pro, shown on the home page.
type Endorsement struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"video_url"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks if the Endorsement has valid data.
func (e *Endorsement) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(e.VideoURL) == "" {
		return ErrEmptyVideoURL
	}
	return nil
}
