package schedule

import (
	"sort"
	"strings"
	"time"
)

// Occurrence status constants. Normal means the template runs as scheduled.
const (
	StatusNormal = "normal"
)

// ResolvedOccurrence is one concrete class instance on one calendar date,
// combining a template with at most one override for that date. It is
// derived on every resolution and never persisted.
type ResolvedOccurrence struct {
	ClassID    string `json:"class_id"`
	OverrideID string `json:"override_id,omitempty"`
	Date       string `json:"date"` // YYYY-MM-DD
	Day        string `json:"day"`
	Status     string `json:"status"` // normal | cancelled | rescheduled
	Time       string `json:"time"`   // effective displayed time
	// OriginalTime carries the template time when Status is rescheduled,
	// so clients can render "original -> new".
	OriginalTime string `json:"original_time,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Title        string `json:"title"`
	Instructor   string `json:"instructor"`
	Level        string `json:"level"`
	Spots        int    `json:"spots"`
	ClassType    string `json:"class_type"`
}

// overrideKey identifies the single occurrence an override applies to.
type overrideKey struct {
	classID string
	date    string
}

// ResolveWeek computes the effective schedule for the week starting at
// weekStart (normalized to its Monday). For each of the seven dates, every
// template whose day matches the date's weekday yields one occurrence,
// annotated with the override for that (template, date) pair when present.
//
// Resolution is a pure function of its inputs: no store access, no
// mutation, same output for same input. Within a date, occurrences are
// ordered by start time, ties broken by class ID.
// PRE: templates and overrides are loaded snapshots
// POST: Returns occurrences ordered by date, then start time, then class ID
func ResolveWeek(weekStart time.Time, templates []ClassTemplate, overrides []Override) []ResolvedOccurrence {
	monday := MondayOf(weekStart)

	byOccurrence := make(map[overrideKey]Override, len(overrides))
	for _, o := range overrides {
		byOccurrence[overrideKey{classID: o.ClassID, date: o.Date}] = o
	}

	var resolved []ResolvedOccurrence
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		dateStr := date.Format(DateFormat)
		dayName := strings.ToLower(date.Weekday().String())

		var matching []ClassTemplate
		for _, t := range templates {
			if t.Day == dayName {
				matching = append(matching, t)
			}
		}

		// Order by template start time so rescheduled classes keep their
		// original position in the grid, ties broken by ID for determinism.
		sort.SliceStable(matching, func(a, b int) bool {
			at, bt := startHours(matching[a].Time), startHours(matching[b].Time)
			if at != bt {
				return at < bt
			}
			return matching[a].ID < matching[b].ID
		})

		for _, t := range matching {
			resolved = append(resolved, resolveOccurrence(t, dateStr, byOccurrence))
		}
	}
	return resolved
}

// resolveOccurrence combines one template with the override for dateStr, if any.
func resolveOccurrence(t ClassTemplate, dateStr string, byOccurrence map[overrideKey]Override) ResolvedOccurrence {
	occ := ResolvedOccurrence{
		ClassID:    t.ID,
		Date:       dateStr,
		Day:        t.Day,
		Status:     StatusNormal,
		Time:       t.Time,
		Title:      t.Title,
		Instructor: t.Instructor,
		Level:      t.Level,
		Spots:      t.Spots,
		ClassType:  t.ClassType,
	}

	o, ok := byOccurrence[overrideKey{classID: t.ID, date: dateStr}]
	if !ok {
		return occ
	}

	occ.OverrideID = o.ID
	occ.Reason = o.Reason
	switch o.Status {
	case StatusCancelled:
		// Cancelled classes keep the template time; clients strike it through.
		occ.Status = StatusCancelled
	case StatusRescheduled:
		occ.Status = StatusRescheduled
		occ.Time = o.RescheduledTime
		occ.OriginalTime = t.Time
	}
	return occ
}

// startHours returns the time range's start as fractional hours.
// Unparseable times sort first.
func startHours(text string) float64 {
	tr, err := ParseTimeRange(text)
	if err != nil {
		return -1
	}
	return tr.Start.Hours()
}
