package newsletter

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrInvalidEmail      = errors.New("email must contain '@'")
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)

// Subscription is one newsletter list entry, deduplicated by email.
type Subscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// Validate checks if the Subscription has valid data.
func (s *Subscription) Validate() error {
	if !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail lowercases and trims an address for dedup comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
