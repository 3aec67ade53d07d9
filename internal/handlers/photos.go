package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"photo-catalog/internal/media"
	"photo-catalog/internal/metrics"
	"photo-catalog/internal/search"
	"photo-catalog/internal/sorting"
)

// Photos lists the catalog filtered by the query parameters:
//
//	q          comma-separated keywords
//	mode       "and" or "or" (default or)
//	ext        comma-separated extension whitelist
//	from, to   inclusive capture-date range (RFC 3339 or YYYY-MM-DD)
//	sort       a sort order name
//	normalize  "true" expands keywords through the bilingual dictionary
func (h *Handlers) Photos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode := parseMode(q.Get("mode"))
	extensions := parseExtensions(q.Get("ext"))

	dateRange, err := parseDateRange(q.Get("from"), q.Get("to"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := h.lib.Snapshot()

	start := time.Now()
	if q.Get("normalize") == "true" {
		items = search.FilterNormalized(items, q.Get("q"), extensions, dateRange, mode)
	} else {
		items = search.Filter(items, q.Get("q"), extensions, dateRange, mode)
	}
	metrics.SearchesTotal.WithLabelValues("keyword").Inc()
	metrics.SearchDuration.WithLabelValues("keyword").Observe(time.Since(start).Seconds())

	if order := sorting.Order(q.Get("sort")); order != "" {
		if !sorting.Valid(order) {
			writeJSONError(w, http.StatusBadRequest, "unknown sort order: "+string(order))
			return
		}
		items = sorting.Sort(items, order)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(items),
		"photos": items,
	})
}

// Fields returns the static searchable-field registry.
func (h *Handlers) Fields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, search.DefinedFields)
}

// FieldValues returns the distinct values present per field across the
// current catalog.
func (h *Handlers) FieldValues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, search.AvailableValues(h.lib.Snapshot()))
}

type advancedRequest struct {
	search.AdvancedConfig
	Sort sorting.Order `json:"sort,omitempty"`
}

// AdvancedSearch filters the catalog by structured per-field criteria.
func (h *Handlers) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	var req advancedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	for key := range req.FieldFilters {
		if _, ok := search.FieldByKey(key); !ok {
			writeJSONError(w, http.StatusBadRequest, "unknown field: "+key)
			return
		}
	}

	start := time.Now()
	items := search.Advanced(h.lib.Snapshot(), req.AdvancedConfig)
	metrics.SearchesTotal.WithLabelValues("advanced").Inc()
	metrics.SearchDuration.WithLabelValues("advanced").Observe(time.Since(start).Seconds())

	if req.Sort != "" {
		if !sorting.Valid(req.Sort) {
			writeJSONError(w, http.StatusBadRequest, "unknown sort order: "+string(req.Sort))
			return
		}
		items = sorting.Sort(items, req.Sort)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(items),
		"photos": items,
	})
}

func parseMode(s string) search.Mode {
	if strings.EqualFold(s, string(search.ModeAND)) {
		return search.ModeAND
	}
	return search.ModeOR
}

func parseExtensions(s string) map[string]bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	set := make(map[string]bool)
	for _, ext := range strings.Split(s, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" {
			set[ext] = true
		}
	}
	return set
}

func parseDateRange(from, to string) (*media.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	r := &media.DateRange{
		From: time.Time{},
		To:   time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	if from != "" {
		t, err := parseTime(from)
		if err != nil {
			return nil, err
		}
		r.From = t
	}
	if to != "" {
		t, err := parseTime(to)
		if err != nil {
			return nil, err
		}
		// A bare date means the whole day, inclusive.
		if len(to) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		r.To = t
	}
	return r, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
