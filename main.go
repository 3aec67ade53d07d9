package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"photo-catalog/internal/database"
	"photo-catalog/internal/handlers"
	"photo-catalog/internal/library"
	"photo-catalog/internal/logging"
	"photo-catalog/internal/media"
	"photo-catalog/internal/middleware"
	"photo-catalog/internal/startup"
	"photo-catalog/internal/usermeta"
)

func main() {
	cfg, err := startup.Load()
	if err != nil {
		logging.Fatal("Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		logging.Fatal("Failed to open metadata store: %v", err)
	}
	defer store.Close()

	scanner := media.NewScanner(store)
	lib := library.New(scanner, store, cfg.PhotoDirs, media.DefaultScanFilters())

	thumbs := media.NewThumbnailGenerator(cfg.ThumbnailMaxDim)
	cache := media.NewThumbnailCache(cfg.ThumbnailCacheSize)

	if cfg.ScanOnStart {
		if _, err := lib.Rescan(ctx); err != nil && !errors.Is(err, library.ErrScanSuperseded) {
			logging.Fatal("Initial scan failed: %v", err)
		}
	}

	var watcher *media.Watcher
	if cfg.WatchEnabled {
		watcher, err = startWatcher(ctx, cfg.PhotoDirs, lib, cache)
		if err != nil {
			logging.Warn("Filesystem watching disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	h := handlers.New(lib, store, thumbs, cache)
	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      setupRouter(h),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logging.Info("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logging.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Shutdown error: %v", err)
	}
}

// buildStore selects the metadata backend and wraps it in the
// read-through cache.
func buildStore(ctx context.Context, cfg startup.Config) (usermeta.Store, error) {
	switch cfg.MetadataBackend {
	case startup.BackendSQLite:
		db, err := database.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		logging.Info("User metadata backend: sqlite (%s)", cfg.DBPath)
		return usermeta.NewCached(db), nil
	default:
		logging.Info("User metadata backend: xmp sidecar files")
		return usermeta.NewCached(usermeta.NewSidecarStore()), nil
	}
}

// startWatcher triggers a debounced rescan when the photo tree changes.
// Bursts of filesystem events (a copy of many files) collapse into one
// rescan.
func startWatcher(ctx context.Context, roots string, lib *library.Library, cache *media.ThumbnailCache) (*media.Watcher, error) {
	changes := make(chan struct{}, 1)
	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	watcher, err := media.NewWatcher(media.SplitRoots(roots), notify)
	if err != nil {
		return nil, err
	}

	go func() {
		const debounce = 2 * time.Second
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				if timer == nil {
					timer = time.NewTimer(debounce)
					fire = timer.C
				} else {
					timer.Reset(debounce)
				}
			case <-fire:
				timer = nil
				fire = nil
				logging.Info("Photo tree changed, rescanning")
				cache.Clear()
				if _, err := lib.Rescan(ctx); err != nil && !errors.Is(err, library.ErrScanSuperseded) {
					logging.Error("Watch-triggered rescan failed: %v", err)
				}
			}
		}
	}()

	return watcher, nil
}

func setupRouter(h *handlers.Handlers) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/photos", h.Photos).Methods(http.MethodGet)
	api.HandleFunc("/fields", h.Fields).Methods(http.MethodGet)
	api.HandleFunc("/fields/values", h.FieldValues).Methods(http.MethodGet)
	api.HandleFunc("/search/advanced", h.AdvancedSearch).Methods(http.MethodPost)
	api.HandleFunc("/metadata", h.Metadata).Methods(http.MethodGet)
	api.HandleFunc("/metadata", h.UpdateMetadata).Methods(http.MethodPut)
	api.HandleFunc("/rename", h.Rename).Methods(http.MethodPost)
	api.HandleFunc("/thumbnail", h.Thumbnail).Methods(http.MethodGet)
	api.HandleFunc("/rescan", h.Rescan).Methods(http.MethodPost)
	api.HandleFunc("/scan/status", h.ScanStatus).Methods(http.MethodGet)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return middleware.Logging(middleware.Metrics(r))
}
