package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"photo-catalog/internal/logging"
	"photo-catalog/internal/usermeta"
)

// Metadata returns the user-editable metadata for one photo path.
func (h *Handlers) Metadata(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSONError(w, http.StatusBadRequest, "path parameter required")
		return
	}
	writeJSON(w, http.StatusOK, h.store.Get(r.Context(), path))
}

type metadataUpdate struct {
	Path     string                `json:"path"`
	Metadata usermeta.UserMetadata `json:"metadata"`
}

// UpdateMetadata persists new user metadata for a photo. The write
// replaces the stored value entirely; it does not merge.
func (h *Handlers) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	var req metadataUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeJSONError(w, http.StatusBadRequest, "path required")
		return
	}

	patched, inCatalog, err := h.lib.UpdateMetadata(r.Context(), req.Path, req.Metadata)
	if err != nil {
		logging.Error("Metadata update failed for %s: %v", req.Path, err)
		writeJSONError(w, http.StatusInternalServerError, "failed to persist metadata")
		return
	}

	resp := map[string]any{"path": req.Path, "inCatalog": inCatalog}
	if inCatalog {
		resp["photo"] = patched
	}
	writeJSON(w, http.StatusOK, resp)
}

type renameRequest struct {
	Path    string `json:"path"`
	NewName string `json:"newName"`
}

// Rename renames a photo file on disk and updates the catalog. The new
// name is a base name only; directory changes are rejected.
func (h *Handlers) Rename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Path == "" || strings.TrimSpace(req.NewName) == "" {
		writeJSONError(w, http.StatusBadRequest, "path and newName required")
		return
	}

	renamed, err := h.lib.Rename(r.Context(), req.Path, req.NewName)
	if err != nil {
		logging.Warn("Rename failed for %s: %v", req.Path, err)
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// The thumbnail is keyed by the old identity.
	h.cache.Remove(req.Path)

	writeJSON(w, http.StatusOK, renamed)
}
