package media

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyFilename = errors.New("filename cannot be empty")
	ErrEmptyPath     = errors.New("stored path cannot be empty")
)

// Asset is one uploaded file in the media library. The file itself lives
// on disk under the media directory; this row is its metadata.
type Asset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Path        string    `json:"path"` // relative to the media directory
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Validate checks if the Asset has valid data.
func (a *Asset) Validate() error {
	if strings.TrimSpace(a.Filename) == "" {
		return ErrEmptyFilename
	}
	if strings.TrimSpace(a.Path) == "" {
		return ErrEmptyPath
	}
	return nil
}
