package handlers

import (
	"encoding/json"
	"net/http"

	"photo-catalog/internal/library"
	"photo-catalog/internal/logging"
	"photo-catalog/internal/media"
	"photo-catalog/internal/usermeta"
)

// Handlers bundles the HTTP endpoints with their collaborators.
type Handlers struct {
	lib    *library.Library
	store  usermeta.Store
	thumbs *media.ThumbnailGenerator
	cache  *media.ThumbnailCache
}

// New wires the endpoint set.
func New(lib *library.Library, store usermeta.Store, thumbs *media.ThumbnailGenerator, cache *media.ThumbnailCache) *Handlers {
	return &Handlers{
		lib:    lib,
		store:  store,
		thumbs: thumbs,
		cache:  cache,
	}
}

// Health reports liveness and basic catalog state.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"scanned": h.lib.Scanned(),
		"photos":  len(h.lib.Snapshot()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
