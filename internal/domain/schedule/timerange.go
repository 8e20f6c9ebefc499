package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GridStartHour is the first hour shown in the weekly grid (8 AM).
// GridEndHour is the exclusive end of the grid (10 PM). Times outside
// the grid still parse; their slot index simply falls outside [0, 14).
const (
	GridStartHour = 8
	GridEndHour   = 22
)

// DefaultDurationHours is used when a time string has no "start - end" separator.
const DefaultDurationHours = 2.0

var (
	ErrEmptyTimeRange   = errors.New("time range cannot be empty")
	ErrInvalidTimeRange = errors.New("time range must look like \"6:00 PM - 8:00 PM\"")
)

// ClockTime is a wall-clock time in 24-hour representation.
type ClockTime struct {
	Hour   int
	Minute int
}

// Hours returns the time as fractional hours since midnight.
// INVARIANT: ClockTime fields are not mutated
func (c ClockTime) Hours() float64 {
	return float64(c.Hour) + float64(c.Minute)/60.0
}

// TimeRange is a parsed start/end wall-clock pair within one day.
type TimeRange struct {
	Start ClockTime
	End   ClockTime
}

// SlotIndex returns the start-hour bucket in the weekly grid (8 AM = 0).
// Minutes are ignored: a 6:30 PM class lands in the 6 PM row, matching
// the displayed layout. Values outside [0, 14) are returned as-is.
// INVARIANT: TimeRange fields are not mutated
func (tr TimeRange) SlotIndex() int {
	return tr.Start.Hour - GridStartHour
}

// DurationHours returns end minus start as fractional hours.
// INVARIANT: TimeRange fields are not mutated
func (tr TimeRange) DurationHours() float64 {
	return tr.End.Hours() - tr.Start.Hours()
}

// Validate checks the within-day ordering invariant (no overnight ranges).
// PRE: TimeRange was produced by ParseTimeRange
// POST: Returns nil if start < end
func (tr TimeRange) Validate() error {
	if tr.DurationHours() <= 0 {
		return ErrInvalidTimeRange
	}
	return nil
}

// ParseClock parses a single 12-hour clock time like "6:00 PM" or "12:30 pm".
// A leading zero on the hour is accepted; minutes are required after a colon.
// PRE: text is a candidate clock time
// POST: Returns the 24-hour ClockTime or an error
func ParseClock(text string) (ClockTime, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, text)
	}
	hourMin, period := fields[0], strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, text)
	}

	hm := strings.SplitN(hourMin, ":", 2)
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, text)
	}
	minute := 0
	if len(hm) == 2 {
		minute, err = strconv.Atoi(hm[1])
		if err != nil || minute < 0 || minute > 59 {
			return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, text)
		}
	}

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ParseTimeRange parses the textual "h:mm AM/PM - h:mm AM/PM" form used
// throughout templates and reschedule overrides.
// PRE: text is a candidate time range
// POST: Returns the parsed range or an error; start must precede end
func ParseTimeRange(text string) (TimeRange, error) {
	if strings.TrimSpace(text) == "" {
		return TimeRange{}, ErrEmptyTimeRange
	}
	parts := strings.SplitN(text, " - ", 2)
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, text)
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return TimeRange{}, err
	}
	tr := TimeRange{Start: start, End: end}
	if err := tr.Validate(); err != nil {
		return TimeRange{}, err
	}
	return tr, nil
}

// DisplayDuration returns the duration in hours for grid layout purposes.
// Strings without a recognizable "start - end" separator get the default
// two-hour block rather than an error, matching the rendered schedule.
// PRE: text is arbitrary time text
// POST: Returns fractional hours, DefaultDurationHours on unparseable input
func DisplayDuration(text string) float64 {
	tr, err := ParseTimeRange(text)
	if err != nil {
		return DefaultDurationHours
	}
	return tr.DurationHours()
}

// MondayOf returns the Monday of the week containing ref, at midnight UTC.
// Sunday counts as the last day of the week, so it maps six days back.
// PRE: ref is a valid time
// POST: Returned date is a Monday with zeroed clock
func MondayOf(ref time.Time) time.Time {
	offset := 1 - int(ref.Weekday())
	if ref.Weekday() == time.Sunday {
		offset = -6
	}
	day := ref.AddDate(0, 0, offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
