package gallery

import (
	"errors"
	"strings"
	"time"
)

// Media type constants
const (
	TypeImage = "image"
	TypeVideo = "video"
)

// Domain errors
var (
	ErrEmptyTitle  = errors.New("gallery item title cannot be empty")
	ErrEmptyURL    = errors.New("gallery item URL cannot be empty")
	ErrInvalidType = errors.New("gallery item type must be image or video")
)

// Item is one entry in the photo/video gallery, grouped into sections on
// the public page and ordered by DisplayOrder within a section.
type Item struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Section      string    `json:"section"`
	Type         string    `json:"type"` // image | video
	URL          string    `json:"url"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks if the Item has valid data.
// PRE: Item struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(i.URL) == "" {
		return ErrEmptyURL
	}
	if i.Type != TypeImage && i.Type != TypeVideo {
		return ErrInvalidType
	}
	return nil
}
