package handlers

import (
	"net/http"

	"photo-catalog/internal/media"
)

// Thumbnail serves a JPEG thumbnail for one photo, generating and
// caching it on first request.
func (h *Handlers) Thumbnail(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSONError(w, http.StatusBadRequest, "path parameter required")
		return
	}

	var photo media.PhotoItem
	found := false
	for _, item := range h.lib.Snapshot() {
		if item.AbsolutePath == path {
			photo = item
			found = true
			break
		}
	}
	if !found {
		writeJSONError(w, http.StatusNotFound, "photo not in catalog")
		return
	}

	data, ok := h.cache.Get(photo.ID)
	if !ok {
		data = h.thumbs.Generate(photo)
		if data == nil {
			writeJSONError(w, http.StatusUnprocessableEntity, "cannot generate thumbnail")
			return
		}
		h.cache.Put(photo.ID, data)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
