package projections

import (
	"context"
	"time"

	"prodojo/internal/domain/event"
)

// EventStoreForList defines the store interface needed by this projection.
type EventStoreForList interface {
	List(ctx context.Context) ([]event.Event, error)
}

// EventsSplit groups events into upcoming and past relative to today.
type EventsSplit struct {
	Upcoming []event.Event `json:"upcoming"`
	Past     []event.Event `json:"past"`
}

// QueryGetEvents splits all events by date. Today's events count as
// upcoming. Past events come back newest first; upcoming stay in date order.
func QueryGetEvents(ctx context.Context, now time.Time, store EventStoreForList) (EventsSplit, error) {
	events, err := store.List(ctx)
	if err != nil {
		return EventsSplit{}, err
	}

	split := EventsSplit{Upcoming: []event.Event{}, Past: []event.Event{}}
	for _, e := range events {
		if e.IsPast(now) {
			split.Past = append(split.Past, e)
		} else {
			split.Upcoming = append(split.Upcoming, e)
		}
	}

	// The store lists in ascending date order; reverse past for recency.
	for i, j := 0, len(split.Past)-1; i < j; i, j = i+1, j-1 {
		split.Past[i], split.Past[j] = split.Past[j], split.Past[i]
	}
	return split, nil
}
