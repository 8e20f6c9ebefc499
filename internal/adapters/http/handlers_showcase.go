package web

import (
	"net/http"
	"strings"

	"prodojo/internal/application/projections"
	endorsementDomain "prodojo/internal/domain/endorsement"
	galleryDomain "prodojo/internal/domain/gallery"
	tipDomain "prodojo/internal/domain/tip"
)

// --- Gallery ---

// handleGallery handles GET /api/gallery.
func handleGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	items, err := stores.GalleryStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if items == nil {
		items = []galleryDomain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

type galleryInput struct {
	Title        string `json:"title"`
	Section      string `json:"section"`
	Type         string `json:"type"`
	URL          string `json:"url"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// handleAdminGallery handles GET/POST for /api/admin/gallery.
func handleAdminGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		items, err := stores.GalleryStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if items == nil {
			items = []galleryDomain.Item{}
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	if r.Method == "POST" {
		var input galleryInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		item := galleryDomain.Item{
			ID:           generateID(),
			Title:        input.Title,
			Section:      input.Section,
			Type:         input.Type,
			URL:          input.URL,
			Description:  input.Description,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    timeNow().UTC(),
		}
		if err := item.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.GalleryStore.Save(ctx, item); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminGalleryByID handles PUT/DELETE for /api/admin/gallery/{id}.
func handleAdminGalleryByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/gallery/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "gallery item id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.GalleryStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "gallery item not found", http.StatusNotFound)
			return
		}
		var input galleryInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		item := galleryDomain.Item{
			ID:           existing.ID,
			Title:        input.Title,
			Section:      input.Section,
			Type:         input.Type,
			URL:          input.URL,
			Description:  input.Description,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    existing.CreatedAt,
		}
		if err := item.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.GalleryStore.Save(ctx, item); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
		return
	}

	if r.Method == "DELETE" {
		deleted, err := stores.GalleryStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "gallery item not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// --- Endorsements ---

// handleEndorsements handles GET /api/endorsements.
func handleEndorsements(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	endorsements, err := stores.EndorsementStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if endorsements == nil {
		endorsements = []endorsementDomain.Endorsement{}
	}
	writeJSON(w, http.StatusOK, endorsements)
}

type endorsementInput struct {
	Title        string `json:"title"`
	VideoURL     string `json:"video_url"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// handleAdminEndorsements handles GET/POST for /api/admin/endorsements.
func handleAdminEndorsements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		endorsements, err := stores.EndorsementStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if endorsements == nil {
			endorsements = []endorsementDomain.Endorsement{}
		}
		writeJSON(w, http.StatusOK, endorsements)
		return
	}

	if r.Method == "POST" {
		var input endorsementInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		e := endorsementDomain.Endorsement{
			ID:           generateID(),
			Title:        input.Title,
			VideoURL:     input.VideoURL,
			Description:  input.Description,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    timeNow().UTC(),
		}
		if err := e.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.EndorsementStore.Save(ctx, e); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, e)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminEndorsementByID handles PUT/DELETE for /api/admin/endorsements/{id}.
func handleAdminEndorsementByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/endorsements/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "endorsement id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.EndorsementStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "endorsement not found", http.StatusNotFound)
			return
		}
		var input endorsementInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		e := endorsementDomain.Endorsement{
			ID:           existing.ID,
			Title:        input.Title,
			VideoURL:     input.VideoURL,
			Description:  input.Description,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    existing.CreatedAt,
		}
		if err := e.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.EndorsementStore.Save(ctx, e); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, e)
		return
	}

	if r.Method == "DELETE" {
		deleted, err := stores.EndorsementStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "endorsement not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// --- Training tips ---

// handleTips handles GET /api/tips. Descriptions are rendered from
// markdown for the public payload.
func handleTips(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	tips, err := projections.QueryGetTips(r.Context(), stores.TipStore)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tips)
}

type tipInput struct {
	Title        string `json:"title"`
	VideoURL     string `json:"video_url"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// handleAdminTips handles GET/POST for /api/admin/tips.
func handleAdminTips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		tips, err := stores.TipStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if tips == nil {
			tips = []tipDomain.Tip{}
		}
		writeJSON(w, http.StatusOK, tips)
		return
	}

	if r.Method == "POST" {
		var input tipInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t := tipDomain.Tip{
			ID:           generateID(),
			Title:        input.Title,
			VideoURL:     input.VideoURL,
			Description:  input.Description,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    timeNow().UTC(),
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.TipStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminTipByID handles PUT/DELETE for /api/admin/tips/{id}.
func handleAdminTipByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/tips/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "tip id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.TipStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "tip not found", http.StatusNotFound)
			return
		}
		var input tipInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t := tipDomain.Tip{
			ID:           existing.ID,
			Title:        input.Title,
			VideoURL:     input.VideoURL,
			Description:  input.Description,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    existing.CreatedAt,
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.TipStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
		return
	}

	if r.Method == "DELETE" {
		deleted, err := stores.TipStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "tip not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
