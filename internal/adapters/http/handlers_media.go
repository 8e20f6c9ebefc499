package web

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	mediaDomain "prodojo/internal/domain/media"
)

// maxUploadBytes caps a single media upload at 10 MiB.
const maxUploadBytes = 10 << 20

// sanitizeFilename keeps only the final path element and strips characters
// that are unsafe in a filename served back over HTTP.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// handleAdminUpload handles POST /api/admin/upload. The file is stored on
// disk under the media directory with a unique prefix so repeated uploads
// of the same filename never collide, and an Asset row records the metadata.
func handleAdminUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "upload too large or malformed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	clean := sanitizeFilename(header.Filename)
	if clean == "" || clean == "." {
		http.Error(w, "filename is invalid", http.StatusBadRequest)
		return
	}

	id := generateID()
	storedName := id + "_" + clean
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		internalError(w, err)
		return
	}
	dst, err := os.Create(filepath.Join(mediaDir, storedName))
	if err != nil {
		internalError(w, err)
		return
	}
	size, err := io.Copy(dst, file)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filepath.Join(mediaDir, storedName))
		internalError(w, err)
		return
	}

	asset := mediaDomain.Asset{
		ID:          id,
		Filename:    header.Filename,
		Path:        storedName,
		URL:         "/media/" + storedName,
		ContentType: header.Header.Get("Content-Type"),
		SizeBytes:   size,
		UploadedAt:  timeNow().UTC(),
	}
	if err := asset.Validate(); err != nil {
		os.Remove(filepath.Join(mediaDir, storedName))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := stores.MediaStore.Insert(r.Context(), asset); err != nil {
		os.Remove(filepath.Join(mediaDir, storedName))
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

// handleAdminMedia handles GET /api/admin/media.
func handleAdminMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	assets, err := stores.MediaStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if assets == nil {
		assets = []mediaDomain.Asset{}
	}
	writeJSON(w, http.StatusOK, assets)
}

// handleAdminMediaByID handles DELETE /api/admin/media/{id}. The metadata
// row is removed first; deleting the file on disk is best-effort.
func handleAdminMediaByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/admin/media/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "asset id is required", http.StatusBadRequest)
		return
	}

	asset, err := stores.MediaStore.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	}

	deleted, err := stores.MediaStore.Delete(r.Context(), id)
	if err != nil {
		internalError(w, err)
		return
	}
	if !deleted {
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	}
	os.Remove(filepath.Join(mediaDir, filepath.Base(asset.Path)))
	w.WriteHeader(http.StatusNoContent)
}
