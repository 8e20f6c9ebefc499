package web

import (
	"net/http"
	"strconv"
	"time"

	statusDomain "prodojo/internal/domain/status"
)

// handleRoot handles GET /api/.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/" && r.URL.Path != "/api" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// handleStatus handles POST (record a client ping) and GET (recent pings)
// for /api/status.
func handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "POST":
		var input struct {
			ClientName string `json:"client_name"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		check := statusDomain.Check{
			ID:         generateID(),
			ClientName: input.ClientName,
			Timestamp:  timeNow().UTC(),
		}
		if err := check.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.StatusStore.Insert(ctx, check); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, check)

	case "GET":
		checks, err := stores.StatusStore.List(ctx, 1000)
		if err != nil {
			internalError(w, err)
			return
		}
		if checks == nil {
			checks = []statusDomain.Check{}
		}
		writeJSON(w, http.StatusOK, checks)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleAdminPerf handles GET /api/admin/perf. Optional query params:
// minutes (lookback window, default 60) and top (slowest paths, default 10).
func handleAdminPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	minutes := 60
	if v := r.URL.Query().Get("minutes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "minutes must be a positive integer", http.StatusBadRequest)
			return
		}
		minutes = n
	}
	topN := 10
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "top must be a positive integer", http.StatusBadRequest)
			return
		}
		topN = n
	}

	since := timeNow().Add(-time.Duration(minutes) * time.Minute)
	writeJSON(w, http.StatusOK, perfCollector.Snapshot(since, topN))
}
