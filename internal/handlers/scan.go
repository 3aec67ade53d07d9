package handlers

import (
	"errors"
	"net/http"

	"photo-catalog/internal/library"
	"photo-catalog/internal/logging"
)

// Rescan walks the photo roots and replaces the catalog. If a newer
// rescan starts while this one runs, this request reports 409 and the
// newer result stands.
func (h *Handlers) Rescan(w http.ResponseWriter, r *http.Request) {
	items, err := h.lib.Rescan(r.Context())
	if err != nil {
		if errors.Is(err, library.ErrScanSuperseded) {
			writeJSONError(w, http.StatusConflict, "superseded by a newer scan request")
			return
		}
		logging.Error("Rescan failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"photos": len(items)})
}

// ScanStatus reports whether a scan is running and how the last one
// ended.
func (h *Handlers) ScanStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.lib.Status())
}
