package web

import (
	"net/http"
	"strings"

	"prodojo/internal/application/projections"
	eventDomain "prodojo/internal/domain/event"
)

// handleEvents handles GET /api/events: upcoming and past, split by date.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	split, err := projections.QueryGetEvents(r.Context(), timeNow().UTC(), stores.EventStore)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, split)
}

// handleAdminEvents handles GET/POST for /api/admin/events.
func handleAdminEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		events, err := stores.EventStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if events == nil {
			events = []eventDomain.Event{}
		}
		writeJSON(w, http.StatusOK, events)
		return
	}

	if r.Method == "POST" {
		var input struct {
			Title       string `json:"title"`
			Date        string `json:"date"`
			Time        string `json:"time"`
			Location    string `json:"location"`
			Description string `json:"description"`
			Attendees   string `json:"attendees"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		ev := eventDomain.Event{
			ID:          generateID(),
			Title:       input.Title,
			Date:        input.Date,
			Time:        input.Time,
			Location:    input.Location,
			Description: input.Description,
			Attendees:   input.Attendees,
			CreatedAt:   timeNow().UTC(),
		}
		if err := ev.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.EventStore.Save(ctx, ev); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ev)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminEventByID handles PUT/DELETE for /api/admin/events/{id}.
func handleAdminEventByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/events/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "event id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.EventStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		var input struct {
			Title       string `json:"title"`
			Date        string `json:"date"`
			Time        string `json:"time"`
			Location    string `json:"location"`
			Description string `json:"description"`
			Attendees   string `json:"attendees"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		ev := eventDomain.Event{
			ID:          existing.ID,
			Title:       input.Title,
			Date:        input.Date,
			Time:        input.Time,
			Location:    input.Location,
			Description: input.Description,
			Attendees:   input.Attendees,
			CreatedAt:   existing.CreatedAt,
		}
		if err := ev.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.EventStore.Save(ctx, ev); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ev)
		return
	}

	if r.Method == "DELETE" {
		deleted, err := stores.EventStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
