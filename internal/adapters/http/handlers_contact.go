package web

import (
	"net/http"
	"strconv"
	"strings"

	"prodojo/internal/application/listutil"
	"prodojo/internal/application/orchestrators"
	"prodojo/internal/application/projections"
	contactDomain "prodojo/internal/domain/contact"
	newsletterDomain "prodojo/internal/domain/newsletter"
)

// handleContact handles POST /api/contact.
func handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	msg, err := orchestrators.ExecuteSubmitContact(r.Context(), orchestrators.SubmitContactInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}, orchestrators.SubmitContactDeps{
		ContactStore: stores.ContactStore,
		Sender:       emailSender,
		NotifyTo:     contactNotifyAddress,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// handleAdminContacts handles GET for /api/admin/contacts and DELETE for
// /api/admin/contacts/{id}.
func handleAdminContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		messages, err := stores.ContactStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if messages == nil {
			messages = []contactDomain.Message{}
		}
		if q := r.URL.Query(); listutil.Requested(q) {
			p := listutil.ParsePageParams(q)
			info := listutil.NewPageInfo(p.Page, p.PerPage, len(messages))
			w.Header().Set("X-Total-Count", strconv.Itoa(info.Total))
			w.Header().Set("X-Total-Pages", strconv.Itoa(info.TotalPages))
			messages = messages[info.Offset():info.End()]
		}
		writeJSON(w, http.StatusOK, messages)
		return
	}

	if r.Method == "DELETE" {
		id := strings.TrimPrefix(r.URL.Path, "/api/admin/contacts/")
		if id == "" || id == r.URL.Path || strings.Contains(id, "/") {
			http.Error(w, "message id is required", http.StatusBadRequest)
			return
		}
		deleted, err := stores.ContactStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "message not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleSubscribe handles POST /api/newsletter/subscribe.
func handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	sub, err := orchestrators.ExecuteSubscribe(r.Context(), input.Email, orchestrators.SubscribeDeps{
		SubscriptionStore: stores.SubscriptionStore,
		Sender:            emailSender,
	})
	switch err {
	case nil:
	case newsletterDomain.ErrAlreadySubscribed:
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case newsletterDomain.ErrInvalidEmail:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// handleAdminSubscriptions handles GET for /api/admin/newsletter-subscriptions
// and DELETE for /api/admin/newsletter-subscriptions/{id}.
func handleAdminSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		subs, err := stores.SubscriptionStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if subs == nil {
			subs = []newsletterDomain.Subscription{}
		}
		if q := r.URL.Query(); listutil.Requested(q) {
			p := listutil.ParsePageParams(q)
			info := listutil.NewPageInfo(p.Page, p.PerPage, len(subs))
			w.Header().Set("X-Total-Count", strconv.Itoa(info.Total))
			w.Header().Set("X-Total-Pages", strconv.Itoa(info.TotalPages))
			subs = subs[info.Offset():info.End()]
		}
		writeJSON(w, http.StatusOK, subs)
		return
	}

	if r.Method == "DELETE" {
		id := strings.TrimPrefix(r.URL.Path, "/api/admin/newsletter-subscriptions/")
		if id == "" || id == r.URL.Path || strings.Contains(id, "/") {
			http.Error(w, "subscription id is required", http.StatusBadRequest)
			return
		}
		deleted, err := stores.SubscriptionStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "subscription not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleExportSubscriptions handles
// GET /api/admin/newsletter-subscriptions/export?format=csv|xlsx.
func handleExportSubscriptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	deps := projections.ExportSubscribersDeps{SubscriptionStore: stores.SubscriptionStore}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		data, err := projections.QueryExportSubscribersCSV(r.Context(), deps)
		if err != nil {
			internalError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="subscribers.csv"`)
		w.Write(data)
	case "xlsx":
		data, err := projections.QueryExportSubscribersXLSX(r.Context(), deps)
		if err != nil {
			internalError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="subscribers.xlsx"`)
		w.Write(data)
	default:
		http.Error(w, "format must be csv or xlsx", http.StatusBadRequest)
	}
}

// handleBroadcast handles POST /api/admin/newsletter-subscriptions/broadcast.
func handleBroadcast(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Subject string `json:"subject"`
		HTML    string `json:"html"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.HTML) == "" {
		http.Error(w, "subject and html are required", http.StatusBadRequest)
		return
	}

	n, err := orchestrators.ExecuteBroadcast(r.Context(), orchestrators.BroadcastInput{
		Subject: input.Subject,
		HTML:    input.HTML,
	}, orchestrators.SubscribeDeps{
		SubscriptionStore: stores.SubscriptionStore,
		Sender:            emailSender,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"recipients": n})
}
