package projections

import (
	"context"
	"strings"
	"testing"
	"time"

	"prodojo/internal/domain/event"
	"prodojo/internal/domain/successstory"
)

// mockEventStore implements EventStoreForList for testing.
type mockEventStore struct {
	events []event.Event
}

func (m *mockEventStore) List(_ context.Context) ([]event.Event, error) {
	return m.events, nil
}

// TestQueryGetEvents_SplitsByDate verifies today counts as upcoming and
// past events come back newest first.
func TestQueryGetEvents_SplitsByDate(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	store := &mockEventStore{events: []event.Event{
		{ID: "ev-001", Title: "Winter Showcase", Date: "2025-01-10", Location: "Main Gym"},
		{ID: "ev-002", Title: "February Tryouts", Date: "2025-02-20", Location: "Main Gym"},
		{ID: "ev-003", Title: "Today's Seminar", Date: "2025-03-15", Location: "Main Gym"},
		{ID: "ev-004", Title: "Spring Show", Date: "2025-04-05", Location: "Main Gym"},
	}}

	split, err := QueryGetEvents(context.Background(), now, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(split.Upcoming) != 2 {
		t.Fatalf("upcoming = %d, want 2", len(split.Upcoming))
	}
	if split.Upcoming[0].ID != "ev-003" {
		t.Errorf("first upcoming = %q, want ev-003 (today)", split.Upcoming[0].ID)
	}
	if len(split.Past) != 2 {
		t.Fatalf("past = %d, want 2", len(split.Past))
	}
	if split.Past[0].ID != "ev-002" {
		t.Errorf("first past = %q, want ev-002 (most recent)", split.Past[0].ID)
	}
}

// TestQueryGetEvents_Empty verifies empty slices, not nil, so JSON encodes
// as [].
func TestQueryGetEvents_Empty(t *testing.T) {
	split, err := QueryGetEvents(context.Background(), time.Now(), &mockEventStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if split.Upcoming == nil || split.Past == nil {
		t.Error("expected non-nil slices")
	}
}

// mockStoryStore implements StoryStoreForList for testing.
type mockStoryStore struct {
	stories []successstory.Story
}

func (m *mockStoryStore) List(_ context.Context) ([]successstory.Story, error) {
	return m.stories, nil
}

// TestQueryGetSuccessStories_BioRenderedToHTML verifies bios come back as HTML.
func TestQueryGetSuccessStories_BioRenderedToHTML(t *testing.T) {
	store := &mockStoryStore{stories: []successstory.Story{
		{ID: "st-001", Name: "Alex Storm", Promotion: "NWA", Bio: "Signed in **2023** after two years of training."},
	}}

	stories, err := QueryGetSuccessStories(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stories) != 1 {
		t.Fatalf("stories = %d, want 1", len(stories))
	}
	if stories[0].BioHTML == stories[0].Bio {
		t.Error("BioHTML should differ from raw markdown")
	}
	if want := "<strong>2023</strong>"; !strings.Contains(stories[0].BioHTML, want) {
		t.Errorf("BioHTML = %q, want it to contain %q", stories[0].BioHTML, want)
	}
}
