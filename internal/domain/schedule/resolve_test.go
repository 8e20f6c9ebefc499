package schedule_test

import (
	"testing"
	"time"

	"prodojo/internal/domain/schedule"
)

// Week of Monday 2025-03-03; 2025-03-05 is the Wednesday.
var testWeek = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func beginnerWednesday() schedule.ClassTemplate {
	return schedule.ClassTemplate{
		ID:         "tpl-1",
		Day:        schedule.Wednesday,
		Time:       "6:00 PM - 8:00 PM",
		Title:      "Beginner Pro Wrestling",
		Instructor: "Coach Mike",
		Level:      schedule.LevelBeginner,
		Spots:      8,
		ClassType:  "wrestling",
	}
}

// TestResolveWeek_WeekdayFiltering tests that a template emits exactly one
// occurrence, on the date matching its weekday.
func TestResolveWeek_WeekdayFiltering(t *testing.T) {
	occs := schedule.ResolveWeek(testWeek, []schedule.ClassTemplate{beginnerWednesday()}, nil)

	if len(occs) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(occs))
	}
	if occs[0].Date != "2025-03-05" {
		t.Errorf("date = %s, want 2025-03-05", occs[0].Date)
	}
	if occs[0].Status != schedule.StatusNormal {
		t.Errorf("status = %s, want normal", occs[0].Status)
	}
}

// TestResolveWeek_CancelledOverride tests that a cancellation changes the
// status but keeps the template time for struck-through display.
func TestResolveWeek_CancelledOverride(t *testing.T) {
	ov := schedule.Override{
		ID:      "ov-1",
		ClassID: "tpl-1",
		Date:    "2025-03-05",
		Status:  schedule.StatusCancelled,
		Reason:  "Instructor ill",
	}

	occs := schedule.ResolveWeek(testWeek, []schedule.ClassTemplate{beginnerWednesday()}, []schedule.Override{ov})

	if len(occs) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(occs))
	}
	got := occs[0]
	if got.Status != schedule.StatusCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}
	if got.Time != "6:00 PM - 8:00 PM" {
		t.Errorf("time = %s, want template time preserved", got.Time)
	}
	if got.Reason != "Instructor ill" {
		t.Errorf("reason = %s, want Instructor ill", got.Reason)
	}
	if got.OverrideID != "ov-1" {
		t.Errorf("override ID = %s, want ov-1", got.OverrideID)
	}
}

// TestResolveWeek_RescheduledOverride tests time substitution with the
// original time retained for "original -> new" display.
func TestResolveWeek_RescheduledOverride(t *testing.T) {
	ov := schedule.Override{
		ID:              "ov-2",
		ClassID:         "tpl-1",
		Date:            "2025-03-05",
		Status:          schedule.StatusRescheduled,
		Reason:          "Venue double-booked",
		RescheduledTime: "7:00 PM - 9:00 PM",
	}

	occs := schedule.ResolveWeek(testWeek, []schedule.ClassTemplate{beginnerWednesday()}, []schedule.Override{ov})

	if len(occs) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(occs))
	}
	got := occs[0]
	if got.Status != schedule.StatusRescheduled {
		t.Errorf("status = %s, want rescheduled", got.Status)
	}
	if got.Time != "7:00 PM - 9:00 PM" {
		t.Errorf("time = %s, want rescheduled time", got.Time)
	}
	if got.OriginalTime != "6:00 PM - 8:00 PM" {
		t.Errorf("original time = %s, want template time", got.OriginalTime)
	}
}

// TestResolveWeek_OverrideOtherWeek tests that an override for a different
// date leaves this week's occurrence untouched.
func TestResolveWeek_OverrideOtherWeek(t *testing.T) {
	ov := schedule.Override{
		ID:      "ov-3",
		ClassID: "tpl-1",
		Date:    "2025-03-12", // the following Wednesday
		Status:  schedule.StatusCancelled,
		Reason:  schedule.DefaultReason,
	}

	occs := schedule.ResolveWeek(testWeek, []schedule.ClassTemplate{beginnerWednesday()}, []schedule.Override{ov})

	if len(occs) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(occs))
	}
	if occs[0].Status != schedule.StatusNormal {
		t.Errorf("status = %s, want normal", occs[0].Status)
	}
	if occs[0].OverrideID != "" {
		t.Errorf("override ID = %s, want empty", occs[0].OverrideID)
	}
}

// TestResolveWeek_Ordering tests within-day ordering by template start
// time with ID tie-breaks, and that rescheduling does not reorder.
func TestResolveWeek_Ordering(t *testing.T) {
	templates := []schedule.ClassTemplate{
		{ID: "tpl-c", Day: schedule.Monday, Time: "8:00 PM - 10:00 PM", Title: "Advanced", Instructor: "Coach Sarah", Level: schedule.LevelAdvanced, Spots: 5},
		{ID: "tpl-b", Day: schedule.Monday, Time: "6:00 PM - 8:00 PM", Title: "Beginner", Instructor: "Coach Mike", Level: schedule.LevelBeginner, Spots: 8},
		{ID: "tpl-a", Day: schedule.Monday, Time: "6:00 PM - 8:00 PM", Title: "Boxing", Instructor: "Coach Tony", Level: schedule.LevelBeginner, Spots: 12},
	}
	// Push the 6 PM beginner class to 9 PM; it must keep its slot order.
	ov := schedule.Override{
		ID:              "ov-4",
		ClassID:         "tpl-b",
		Date:            "2025-03-03",
		Status:          schedule.StatusRescheduled,
		Reason:          schedule.DefaultReason,
		RescheduledTime: "9:00 PM - 10:00 PM",
	}

	occs := schedule.ResolveWeek(testWeek, templates, []schedule.Override{ov})

	wantOrder := []string{"tpl-a", "tpl-b", "tpl-c"}
	if len(occs) != len(wantOrder) {
		t.Fatalf("got %d occurrences, want %d", len(occs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if occs[i].ClassID != want {
			t.Errorf("occs[%d].ClassID = %s, want %s", i, occs[i].ClassID, want)
		}
	}
}

// TestResolveWeek_Pure tests that resolution does not mutate its inputs
// and is repeatable.
func TestResolveWeek_Pure(t *testing.T) {
	templates := []schedule.ClassTemplate{beginnerWednesday()}
	overrides := []schedule.Override{{
		ID:      "ov-5",
		ClassID: "tpl-1",
		Date:    "2025-03-05",
		Status:  schedule.StatusCancelled,
		Reason:  schedule.DefaultReason,
	}}

	first := schedule.ResolveWeek(testWeek, templates, overrides)
	second := schedule.ResolveWeek(testWeek, templates, overrides)

	if len(first) != len(second) {
		t.Fatalf("resolution not repeatable: %d vs %d occurrences", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("occurrence %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
	if templates[0].Time != "6:00 PM - 8:00 PM" {
		t.Error("template mutated by resolution")
	}
}

// TestResolveWeek_OrphanedOverride tests that overrides referencing a
// deleted template drop out of resolution without erroring.
func TestResolveWeek_OrphanedOverride(t *testing.T) {
	ov := schedule.Override{
		ID:      "ov-6",
		ClassID: "tpl-gone",
		Date:    "2025-03-05",
		Status:  schedule.StatusCancelled,
		Reason:  schedule.DefaultReason,
	}

	occs := schedule.ResolveWeek(testWeek, []schedule.ClassTemplate{beginnerWednesday()}, []schedule.Override{ov})

	for _, occ := range occs {
		if occ.OverrideID == "ov-6" {
			t.Error("orphaned override appeared in resolved week")
		}
	}
}

// TestResolveWeek_NormalizesToMonday tests that any reference date within
// the week resolves the same Monday-first week.
func TestResolveWeek_NormalizesToMonday(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

	fromMonday := schedule.ResolveWeek(testWeek, []schedule.ClassTemplate{beginnerWednesday()}, nil)
	fromSunday := schedule.ResolveWeek(sunday, []schedule.ClassTemplate{beginnerWednesday()}, nil)

	if len(fromMonday) != 1 || len(fromSunday) != 1 {
		t.Fatalf("got %d and %d occurrences, want 1 and 1", len(fromMonday), len(fromSunday))
	}
	if fromMonday[0].Date != fromSunday[0].Date {
		t.Errorf("dates differ: %s vs %s", fromMonday[0].Date, fromSunday[0].Date)
	}
}
