package startup

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PHOTO_DIRS", "/photos")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.MetadataBackend != BackendSidecar {
		t.Errorf("MetadataBackend = %q, want sidecar", cfg.MetadataBackend)
	}
	if !cfg.WatchEnabled || !cfg.ScanOnStart {
		t.Errorf("WatchEnabled/ScanOnStart defaults wrong: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PHOTO_DIRS", "/a,/b")
	t.Setenv("PORT", "9000")
	t.Setenv("METADATA_BACKEND", "sqlite")
	t.Setenv("DB_PATH", "/var/lib/catalog.db")
	t.Setenv("THUMBNAIL_CACHE_SIZE", "64")
	t.Setenv("WATCH_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 9000 || cfg.MetadataBackend != BackendSQLite ||
		cfg.DBPath != "/var/lib/catalog.db" || cfg.ThumbnailCacheSize != 64 || cfg.WatchEnabled {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			"missing photo dirs",
			map[string]string{},
			"PHOTO_DIRS",
		},
		{
			"port out of range",
			map[string]string{"PHOTO_DIRS": "/p", "PORT": "70000"},
			"PORT",
		},
		{
			"unknown backend",
			map[string]string{"PHOTO_DIRS": "/p", "METADATA_BACKEND": "redis"},
			"METADATA_BACKEND",
		},
		{
			"zero cache size",
			map[string]string{"PHOTO_DIRS": "/p", "THUMBNAIL_CACHE_SIZE": "0"},
			"THUMBNAIL_CACHE_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PHOTO_DIRS", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("PHOTO_DIRS", "/p")
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want fallback 8080", cfg.Port)
	}
}
