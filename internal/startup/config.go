package startup

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"photo-catalog/internal/logging"
	"photo-catalog/internal/media"
)

// Metadata backend names accepted by METADATA_BACKEND.
const (
	BackendSidecar = "sidecar"
	BackendSQLite  = "sqlite"
)

// Config carries every runtime setting, populated from the environment
// (optionally seeded from a .env file).
type Config struct {
	// PhotoDirs is the comma-separated list of root directories to scan.
	PhotoDirs string

	// Port the HTTP server listens on.
	Port int

	// MetadataBackend selects where user metadata persists: XMP sidecar
	// files next to the photos, or a single SQLite database.
	MetadataBackend string

	// DBPath is the SQLite database location, used only with the sqlite
	// backend.
	DBPath string

	// ThumbnailCacheSize bounds the in-memory thumbnail LRU.
	ThumbnailCacheSize int

	// ThumbnailMaxDim is the bounding-box edge for generated thumbnails.
	ThumbnailMaxDim int

	// WatchEnabled turns on filesystem watching of the photo roots; a
	// change triggers a rescan.
	WatchEnabled bool

	// ScanOnStart runs an initial scan before the server accepts
	// requests.
	ScanOnStart bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present but never required.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		logging.Debug("Loaded configuration from .env")
	}

	cfg := Config{
		PhotoDirs:          os.Getenv("PHOTO_DIRS"),
		Port:               envInt("PORT", 8080),
		MetadataBackend:    envString("METADATA_BACKEND", BackendSidecar),
		DBPath:             envString("DB_PATH", "data/catalog.db"),
		ThumbnailCacheSize: envInt("THUMBNAIL_CACHE_SIZE", media.DefaultThumbnailCacheSize),
		ThumbnailMaxDim:    envInt("THUMBNAIL_MAX_DIM", 200),
		WatchEnabled:       envBool("WATCH_ENABLED", true),
		ScanOnStart:        envBool("SCAN_ON_START", true),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.PhotoDirs) == "" {
		return fmt.Errorf("PHOTO_DIRS must name at least one directory")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	switch c.MetadataBackend {
	case BackendSidecar, BackendSQLite:
	default:
		return fmt.Errorf("METADATA_BACKEND must be %q or %q, got %q",
			BackendSidecar, BackendSQLite, c.MetadataBackend)
	}
	if c.ThumbnailCacheSize < 1 {
		return fmt.Errorf("THUMBNAIL_CACHE_SIZE must be positive, got %d", c.ThumbnailCacheSize)
	}
	if c.ThumbnailMaxDim < 16 {
		return fmt.Errorf("THUMBNAIL_MAX_DIM too small: %d", c.ThumbnailMaxDim)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logging.Warn("Ignoring invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logging.Warn("Ignoring invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return b
}
