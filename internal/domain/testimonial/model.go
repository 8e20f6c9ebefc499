package testimonial

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyName = errors.New("testimonial name cannot be empty")
	ErrEmptyText = errors.New("testimonial text cannot be empty")
)

// Testimonial is a quote from a student or parent, optionally with a
// photo or video attached.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	PhotoURL  string    `json:"photo_url"`
	VideoURL  string    `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the Testimonial has valid data.
func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	return nil
}
