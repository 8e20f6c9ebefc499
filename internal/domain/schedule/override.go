package schedule

import (
	"errors"
	"strings"
	"time"
)

// Override status constants
const (
	StatusCancelled   = "cancelled"
	StatusRescheduled = "rescheduled"
)

// DefaultReason is stored when no cancellation reason is supplied.
const DefaultReason = "No reason provided"

// DateFormat is the calendar-date form used for occurrence dates.
const DateFormat = "2006-01-02"

// Domain errors
var (
	ErrEmptyClassID      = errors.New("class ID cannot be empty")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidStatus     = errors.New("status must be cancelled or rescheduled")
	ErrMissingNewTime    = errors.New("rescheduled overrides require a new time range")
	ErrUnexpectedNewTime = errors.New("cancelled overrides cannot carry a new time range")
	ErrDuplicateOverride = errors.New("an override already exists for this class and date")
	ErrOverrideNotFound  = errors.New("override not found")
)

// Override changes the effective status of exactly one occurrence of a
// recurring class, without altering the template. ClassID is a weak
// reference; deleting a template leaves its overrides in place.
type Override struct {
	ID              string    `json:"id"`
	ClassID         string    `json:"class_id"`
	Date            string    `json:"cancelled_date"` // occurrence date, YYYY-MM-DD
	Status          string    `json:"status"`         // cancelled | rescheduled
	Reason          string    `json:"reason"`
	RescheduledTime string    `json:"rescheduled_time,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Validate checks if the Override has valid data.
// PRE: Override struct is populated
// POST: Returns nil if valid, error otherwise
func (o *Override) Validate() error {
	if strings.TrimSpace(o.ClassID) == "" {
		return ErrEmptyClassID
	}
	if _, err := time.Parse(DateFormat, o.Date); err != nil {
		return ErrInvalidDate
	}
	switch o.Status {
	case StatusCancelled:
		if o.RescheduledTime != "" {
			return ErrUnexpectedNewTime
		}
	case StatusRescheduled:
		if strings.TrimSpace(o.RescheduledTime) == "" {
			return ErrMissingNewTime
		}
		if _, err := ParseTimeRange(o.RescheduledTime); err != nil {
			return err
		}
	default:
		return ErrInvalidStatus
	}
	return nil
}
