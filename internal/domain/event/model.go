package event

import (
	"errors"
	"strings"
	"time"
)

// DateFormat is the calendar-date form used for event dates.
const DateFormat = "2006-01-02"

// Domain errors
var (
	ErrEmptyTitle    = errors.New("event title cannot be empty")
	ErrInvalidDate   = errors.New("event date must be in YYYY-MM-DD form")
	ErrEmptyLocation = errors.New("event location cannot be empty")
)

// Event is a one-off happening (show, seminar, tryout) shown on the
// events page, split into upcoming and past by date.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Attendees   string    `json:"attendees"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks if the Event has valid data.
// PRE: Event struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if _, err := time.Parse(DateFormat, e.Date); err != nil {
		return ErrInvalidDate
	}
	if strings.TrimSpace(e.Location) == "" {
		return ErrEmptyLocation
	}
	return nil
}

// IsPast returns true if the event date is strictly before today.
// INVARIANT: Event fields are not mutated
func (e *Event) IsPast(now time.Time) bool {
	d, err := time.Parse(DateFormat, e.Date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}
