package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"photo-catalog/internal/library"
	"photo-catalog/internal/media"
	"photo-catalog/internal/usermeta"
)

func newTestHandlers(t *testing.T) (*Handlers, string) {
	t.Helper()
	dir := t.TempDir()

	for _, name := range []string{"beach.jpg", "city.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("fake"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	store := usermeta.NewCached(usermeta.NewSidecarStore())
	t.Cleanup(func() { store.Close() })

	lib := library.New(media.NewScanner(store), store, dir, media.DefaultScanFilters())
	if _, err := lib.Rescan(context.Background()); err != nil {
		t.Fatal(err)
	}

	return New(lib, store, media.NewThumbnailGenerator(200), media.NewThumbnailCache(16)), dir
}

type photosResponse struct {
	Count  int               `json:"count"`
	Photos []media.PhotoItem `json:"photos"`
}

func decodePhotos(t *testing.T, rec *httptest.ResponseRecorder) photosResponse {
	t.Helper()
	var resp photosResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp
}

func TestPhotosEndpoint(t *testing.T) {
	h, _ := newTestHandlers(t)

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantFirst string
	}{
		{"all photos sorted", "sort=name_asc", 2, "beach.jpg"},
		{"keyword filter", "q=beach", 1, "beach.jpg"},
		{"extension filter", "ext=png", 1, "city.png"},
		{"no matches", "q=nothing-matches-this", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Photos(rec, httptest.NewRequest(http.MethodGet, "/api/photos?"+tt.query, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
			}
			resp := decodePhotos(t, rec)
			if resp.Count != tt.wantCount {
				t.Fatalf("count = %d, want %d", resp.Count, tt.wantCount)
			}
			if tt.wantFirst != "" && resp.Photos[0].DisplayName != tt.wantFirst {
				t.Errorf("first = %q, want %q", resp.Photos[0].DisplayName, tt.wantFirst)
			}
		})
	}
}

func TestPhotosRejectsUnknownSort(t *testing.T) {
	h, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.Photos(rec, httptest.NewRequest(http.MethodGet, "/api/photos?sort=bogus", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestFieldsEndpoint(t *testing.T) {
	h, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.Fields(rec, httptest.NewRequest(http.MethodGet, "/api/fields", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var fields []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&fields); err != nil {
		t.Fatal(err)
	}
	if len(fields) == 0 {
		t.Error("field registry should not be empty")
	}
}

func TestAdvancedSearchEndpoint(t *testing.T) {
	h, _ := newTestHandlers(t)

	t.Run("empty filters return everything", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"fieldFilters": {}, "matchMode": "and"}`)
		h.AdvancedSearch(rec, httptest.NewRequest(http.MethodPost, "/api/search/advanced", body))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
		}
		if resp := decodePhotos(t, rec); resp.Count != 2 {
			t.Errorf("count = %d, want 2", resp.Count)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"fieldFilters": {"Bogus:Field": {"fieldKey": "Bogus:Field", "selectedValues": ["x"]}}}`)
		h.AdvancedSearch(rec, httptest.NewRequest(http.MethodPost, "/api/search/advanced", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.AdvancedSearch(rec, httptest.NewRequest(http.MethodPost, "/api/search/advanced", strings.NewReader("{")))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestMetadataEndpoints(t *testing.T) {
	h, dir := newTestHandlers(t)
	path := filepath.Join(dir, "beach.jpg")

	putBody, _ := json.Marshal(map[string]any{
		"path": path,
		"metadata": map[string]any{
			"title": "Beach day", "tags": []string{"sea"}, "comment": "warm",
		},
	})
	rec := httptest.NewRecorder()
	h.UpdateMetadata(rec, httptest.NewRequest(http.MethodPut, "/api/metadata", strings.NewReader(string(putBody))))
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	h.Metadata(rec, httptest.NewRequest(http.MethodGet, "/api/metadata?path="+path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var got usermeta.UserMetadata
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Title != "Beach day" || len(got.Tags) != 1 || got.Comment != "warm" {
		t.Errorf("round trip = %+v", got)
	}

	// The catalog listing reflects the edit.
	rec = httptest.NewRecorder()
	h.Photos(rec, httptest.NewRequest(http.MethodGet, "/api/photos?q=Beach+day", nil))
	if resp := decodePhotos(t, rec); resp.Count != 1 {
		t.Errorf("edited title not searchable, count = %d", resp.Count)
	}
}

func TestMetadataRequiresPath(t *testing.T) {
	h, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.Metadata(rec, httptest.NewRequest(http.MethodGet, "/api/metadata", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestThumbnailUnknownPhoto(t *testing.T) {
	h, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.Thumbnail(rec, httptest.NewRequest(http.MethodGet, "/api/thumbnail?path=/nope.jpg", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestScanEndpoints(t *testing.T) {
	h, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.Rescan(rec, httptest.NewRequest(http.MethodPost, "/api/rescan", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("rescan status = %d, body %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	h.ScanStatus(rec, httptest.NewRequest(http.MethodGet, "/api/scan/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status endpoint = %d", rec.Code)
	}

	var st library.Status
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatal(err)
	}
	if st.PhotoCount != 2 || st.Scanning {
		t.Errorf("Status = %+v", st)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body)
	}
}
