package schedule

import (
	"errors"
	"strings"
)

// Day of week constants
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// ValidDays contains all valid day values.
var ValidDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Skill level constants
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelAllLevels    = "All Levels"
)

// ValidLevels contains all valid level values.
var ValidLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAllLevels}

// Domain errors
var (
	ErrEmptyTitle      = errors.New("class title cannot be empty")
	ErrEmptyInstructor = errors.New("instructor cannot be empty")
	ErrInvalidDay      = errors.New("day must be a valid day of the week")
	ErrInvalidLevel    = errors.New("level must be one of Beginner, Intermediate, Advanced, All Levels")
	ErrNegativeSpots   = errors.New("spots cannot be negative")
)

// ClassTemplate represents a recurring weekly class slot.
// The displayed week is resolved on-the-fly from templates + per-date overrides.
type ClassTemplate struct {
	ID          string `json:"id"`
	Day         string `json:"day"`  // monday, tuesday, etc.
	Time        string `json:"time"` // "6:00 PM - 8:00 PM"
	Title       string `json:"title"`
	Instructor  string `json:"instructor"`
	Level       string `json:"level"`
	Spots       int    `json:"spots"`
	ClassType   string `json:"class_type"`
	Description string `json:"description,omitempty"`
}

// Validate checks if the ClassTemplate has valid data.
// PRE: ClassTemplate struct is populated
// POST: Returns nil if valid, error otherwise
func (c *ClassTemplate) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(c.Instructor) == "" {
		return ErrEmptyInstructor
	}
	if !isValidDay(c.Day) {
		return ErrInvalidDay
	}
	if !isValidLevel(c.Level) {
		return ErrInvalidLevel
	}
	if c.Spots < 0 {
		return ErrNegativeSpots
	}
	if _, err := ParseTimeRange(c.Time); err != nil {
		return err
	}
	return nil
}

func isValidDay(day string) bool {
	for _, d := range ValidDays {
		if d == day {
			return true
		}
	}
	return false
}

func isValidLevel(level string) bool {
	for _, l := range ValidLevels {
		if l == level {
			return true
		}
	}
	return false
}
