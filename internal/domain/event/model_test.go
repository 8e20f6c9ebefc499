package event_test

import (
	"testing"
	"time"

	"prodojo/internal/domain/event"
)

// TestEvent_Validate tests validation of Event.
func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		e       event.Event
		wantErr bool
	}{
		{
			name:    "valid event",
			e:       event.Event{ID: "1", Title: "Summer Slam Tryouts", Date: "2026-01-15", Time: "6:00 PM", Location: "Main Gym"},
			wantErr: false,
		},
		{
			name:    "empty title",
			e:       event.Event{ID: "2", Title: "", Date: "2026-01-15", Location: "Main Gym"},
			wantErr: true,
		},
		{
			name:    "bad date",
			e:       event.Event{ID: "3", Title: "Tryouts", Date: "Jan 15", Location: "Main Gym"},
			wantErr: true,
		},
		{
			name:    "empty location",
			e:       event.Event{ID: "4", Title: "Tryouts", Date: "2026-01-15", Location: " "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.e.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Event.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestEvent_IsPast tests the upcoming/past split boundary.
func TestEvent_IsPast(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	yesterday := event.Event{Date: "2025-06-14"}
	today := event.Event{Date: "2025-06-15"}
	tomorrow := event.Event{Date: "2025-06-16"}

	if !yesterday.IsPast(now) {
		t.Error("yesterday's event should be past")
	}
	if today.IsPast(now) {
		t.Error("today's event should not be past")
	}
	if tomorrow.IsPast(now) {
		t.Error("tomorrow's event should not be past")
	}
}
