package usermeta

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSidecarRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		meta UserMetadata
	}{
		{"full", UserMetadata{Title: "Sunset", Tags: []string{"beach", "summer"}, Comment: "Golden hour"}},
		{"title only", UserMetadata{Title: "Sunset"}},
		{"tags only", UserMetadata{Tags: []string{"one"}}},
		{"repeated tags kept", UserMetadata{Tags: []string{"dup", "dup"}}},
		{"special characters escaped", UserMetadata{Title: "a <b> & \"c\"", Comment: "x < y"}},
		{"japanese text", UserMetadata{Title: "夕焼け", Tags: []string{"海"}, Comment: "きれい"}},
	}

	store := NewSidecarStore()
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photo := filepath.Join(t.TempDir(), "photo.jpg")

			if err := store.Set(ctx, photo, tt.meta); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got := store.Get(ctx, photo)
			if !reflect.DeepEqual(got, tt.meta) {
				t.Errorf("round trip = %+v, want %+v", got, tt.meta)
			}
		})
	}
}

func TestSidecarGetMissingReturnsZero(t *testing.T) {
	store := NewSidecarStore()
	got := store.Get(context.Background(), filepath.Join(t.TempDir(), "nothing.jpg"))
	if !got.IsZero() {
		t.Errorf("Get on missing sidecar = %+v, want zero value", got)
	}
}

func TestSidecarSetZeroRemovesSidecar(t *testing.T) {
	store := NewSidecarStore()
	ctx := context.Background()
	photo := filepath.Join(t.TempDir(), "photo.jpg")

	if err := store.Set(ctx, photo, UserMetadata{Title: "temp"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, photo, UserMetadata{}); err != nil {
		t.Fatalf("Set zero: %v", err)
	}

	if _, err := os.Stat(sidecarPath(photo)); !os.IsNotExist(err) {
		t.Errorf("sidecar still exists after clearing, stat err = %v", err)
	}
	if got := store.Get(ctx, photo); !got.IsZero() {
		t.Errorf("Get after clear = %+v, want zero value", got)
	}
}

func TestSidecarSetZeroOnUnsetPathSucceeds(t *testing.T) {
	store := NewSidecarStore()
	photo := filepath.Join(t.TempDir(), "never-edited.jpg")
	if err := store.Set(context.Background(), photo, UserMetadata{}); err != nil {
		t.Errorf("Set zero on unset path: %v", err)
	}
}

func TestSidecarGetUnparsableReturnsZero(t *testing.T) {
	dir := t.TempDir()
	photo := filepath.Join(dir, "photo.jpg")

	sc := sidecarPath(photo)
	if err := os.MkdirAll(filepath.Dir(sc), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sc, []byte("not xml at all <"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := NewSidecarStore().Get(context.Background(), photo); !got.IsZero() {
		t.Errorf("Get on corrupt sidecar = %+v, want zero value", got)
	}
}

func TestSidecarPathLayout(t *testing.T) {
	got := sidecarPath(filepath.Join("photos", "trip", "img.jpg"))
	want := filepath.Join("photos", "trip", ".xmp", "img.jpg.xmp")
	if got != want {
		t.Errorf("sidecarPath = %q, want %q", got, want)
	}
}
