package web

import (
	"net/http"
	"strings"
	"time"

	"prodojo/internal/application/orchestrators"
	"prodojo/internal/application/projections"
	scheduleDomain "prodojo/internal/domain/schedule"
)

// handleClasses handles GET /api/classes: the raw weekly templates.
func handleClasses(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	day := r.URL.Query().Get("day")
	var classes []scheduleDomain.ClassTemplate
	var err error
	if day != "" {
		classes, err = stores.ClassStore.ListByDay(r.Context(), strings.ToLower(day))
	} else {
		classes, err = stores.ClassStore.List(r.Context())
	}
	if err != nil {
		internalError(w, err)
		return
	}
	if classes == nil {
		classes = []scheduleDomain.ClassTemplate{}
	}
	writeJSON(w, http.StatusOK, classes)
}

// handleClassesResolved handles GET /api/classes/resolved?week=YYYY-MM-DD.
// Any date within a week selects that week; omitted means the current one.
func handleClassesResolved(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	ref := timeNow().UTC()
	if weekParam := r.URL.Query().Get("week"); weekParam != "" {
		parsed, err := time.Parse(scheduleDomain.DateFormat, weekParam)
		if err != nil {
			http.Error(w, "week must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		ref = parsed
	}

	week, err := projections.QueryResolveWeek(r.Context(), ref, projections.ResolveWeekDeps{
		ClassStore:    stores.ClassStore,
		OverrideStore: stores.OverrideStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	if week.Classes == nil {
		week.Classes = []scheduleDomain.ResolvedOccurrence{}
	}
	writeJSON(w, http.StatusOK, week)
}

// handleClassesCancelled handles GET /api/classes/cancelled: every stored
// override, including orphans whose template is gone.
func handleClassesCancelled(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	overrides, err := stores.OverrideStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if overrides == nil {
		overrides = []scheduleDomain.Override{}
	}
	writeJSON(w, http.StatusOK, overrides)
}

// handleAdminClasses handles GET/POST for /api/admin/classes.
func handleAdminClasses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		classes, err := stores.ClassStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if classes == nil {
			classes = []scheduleDomain.ClassTemplate{}
		}
		writeJSON(w, http.StatusOK, classes)
		return
	}

	if r.Method == "POST" {
		var input struct {
			Day         string `json:"day"`
			Time        string `json:"time"`
			Title       string `json:"title"`
			Instructor  string `json:"instructor"`
			Level       string `json:"level"`
			Spots       int    `json:"spots"`
			ClassType   string `json:"class_type"`
			Description string `json:"description"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		class := scheduleDomain.ClassTemplate{
			ID:          generateID(),
			Day:         strings.ToLower(input.Day),
			Time:        input.Time,
			Title:       input.Title,
			Instructor:  input.Instructor,
			Level:       input.Level,
			Spots:       input.Spots,
			ClassType:   input.ClassType,
			Description: input.Description,
		}
		if err := class.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ClassStore.Save(ctx, class); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, class)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminClassByID handles PUT/DELETE for /api/admin/classes/{id}.
func handleAdminClassByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/classes/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "class id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.ClassStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "class not found", http.StatusNotFound)
			return
		}
		var input struct {
			Day         string `json:"day"`
			Time        string `json:"time"`
			Title       string `json:"title"`
			Instructor  string `json:"instructor"`
			Level       string `json:"level"`
			Spots       int    `json:"spots"`
			ClassType   string `json:"class_type"`
			Description string `json:"description"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		class := scheduleDomain.ClassTemplate{
			ID:          existing.ID,
			Day:         strings.ToLower(input.Day),
			Time:        input.Time,
			Title:       input.Title,
			Instructor:  input.Instructor,
			Level:       input.Level,
			Spots:       input.Spots,
			ClassType:   input.ClassType,
			Description: input.Description,
		}
		if err := class.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ClassStore.Save(ctx, class); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, class)
		return
	}

	if r.Method == "DELETE" {
		// Overrides for this class stay in place; they simply stop
		// resolving once the template is gone.
		deleted, err := stores.ClassStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "class not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleCancelClass handles POST /api/admin/classes/cancel. The status
// field selects between a plain cancellation and a reschedule.
func handleCancelClass(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		ClassID         string `json:"class_id"`
		CancelledDate   string `json:"cancelled_date"`
		Status          string `json:"status"`
		Reason          string `json:"reason"`
		RescheduledTime string `json:"rescheduled_time"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if input.Status == "" {
		input.Status = scheduleDomain.StatusCancelled
	}

	deps := orchestrators.OverrideDeps{
		ClassStore:    stores.ClassStore,
		OverrideStore: stores.OverrideStore,
	}

	var override scheduleDomain.Override
	var err error
	switch input.Status {
	case scheduleDomain.StatusCancelled:
		override, err = orchestrators.ExecuteCancelClass(r.Context(), orchestrators.CancelClassInput{
			ClassID: input.ClassID,
			Date:    input.CancelledDate,
			Reason:  input.Reason,
		}, deps)
	case scheduleDomain.StatusRescheduled:
		override, err = orchestrators.ExecuteRescheduleClass(r.Context(), orchestrators.RescheduleClassInput{
			ClassID: input.ClassID,
			Date:    input.CancelledDate,
			Reason:  input.Reason,
			NewTime: input.RescheduledTime,
		}, deps)
	default:
		http.Error(w, scheduleDomain.ErrInvalidStatus.Error(), http.StatusBadRequest)
		return
	}

	switch err {
	case nil:
	case orchestrators.ErrClassNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case scheduleDomain.ErrDuplicateOverride:
		http.Error(w, err.Error(), http.StatusConflict)
		return
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, override)
}

// handleRestoreClass handles DELETE /api/admin/classes/cancel/{overrideId}.
func handleRestoreClass(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	overrideID := strings.TrimPrefix(r.URL.Path, "/api/admin/classes/cancel/")
	if overrideID == "" || strings.Contains(overrideID, "/") {
		http.Error(w, "override id is required", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteRestoreClass(r.Context(), overrideID, orchestrators.OverrideDeps{
		ClassStore:    stores.ClassStore,
		OverrideStore: stores.OverrideStore,
	})
	if err == scheduleDomain.ErrOverrideNotFound {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
