package media

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"photo-catalog/internal/logging"
	"photo-catalog/internal/metrics"
	"photo-catalog/internal/usermeta"
	"photo-catalog/internal/workers"
)

// Scanner walks filesystem trees and produces PhotoItems. A single file
// that cannot be read or parsed is skipped; only failing to enumerate
// every root aborts the scan.
type Scanner struct {
	store      usermeta.Store
	numWorkers int
}

// NewScanner creates a Scanner that merges user metadata from store
// into scanned items. Metadata extraction is mixed CPU/I-O work, so the
// worker pool is sized accordingly.
func NewScanner(store usermeta.Store) *Scanner {
	return &Scanner{
		store:      store,
		numWorkers: workers.ForMixed(8),
	}
}

// Scan walks every root in the comma-separated roots string and returns
// the photos that pass filters. Result order is whatever the walk
// yields; callers impose ordering through the sort layer.
//
// Roots that cannot be enumerated are reported but do not abort the
// scan for the remaining roots; the scan only fails when no root could
// be walked at all.
func (s *Scanner) Scan(ctx context.Context, roots string, filters ScanFilters) ([]PhotoItem, error) {
	start := time.Now()

	var paths []string
	var rootErrs []error
	walked := 0

	for _, root := range SplitRoots(roots) {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			if err == nil {
				err = fmt.Errorf("not a directory")
			}
			rootErrs = append(rootErrs, fmt.Errorf("root %s: %w", root, err))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				logging.Debug("skipping unreadable entry %s: %v", path, err)
				metrics.ScanFilesSkipped.WithLabelValues("unreadable").Inc()
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				// sidecar and other dot directories are never photos
				if strings.HasPrefix(d.Name(), ".") && path != root {
					return fs.SkipDir
				}
				return nil
			}
			if !matchesExtension(d.Name(), filters.Extensions) {
				metrics.ScanFilesSkipped.WithLabelValues("extension").Inc()
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			rootErrs = append(rootErrs, fmt.Errorf("root %s: %w", root, err))
			continue
		}
		walked++
	}

	for _, err := range rootErrs {
		logging.Warn("scan: %v", err)
	}
	if walked == 0 && len(rootErrs) > 0 {
		return nil, fmt.Errorf("no scannable roots: %v", rootErrs[0])
	}

	items := s.extractAll(ctx, paths, filters)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	metrics.ScanFilesTotal.Add(float64(len(items)))
	metrics.ScanDuration.Observe(time.Since(start).Seconds())
	logging.Info("scan complete: %d photos from %d files in %v", len(items), len(paths), time.Since(start))
	return items, nil
}

// extractAll fans metadata extraction out over the worker pool.
func (s *Scanner) extractAll(ctx context.Context, paths []string, filters ScanFilters) []PhotoItem {
	jobs := make(chan string)
	results := make(chan PhotoItem)

	var wg sync.WaitGroup
	for i := 0; i < s.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				item, err := s.toPhotoItem(ctx, path)
				if err != nil {
					logging.Debug("skipping %s: %v", path, err)
					metrics.ScanFilesSkipped.WithLabelValues("unreadable").Inc()
					continue
				}
				if !matchesDate(item.CapturedAt, filters.DateRange) {
					metrics.ScanFilesSkipped.WithLabelValues("date_range").Inc()
					continue
				}
				select {
				case results <- item:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	items := make([]PhotoItem, 0, len(paths))
	for item := range results {
		items = append(items, item)
	}
	return items
}

// toPhotoItem builds the immutable catalog value for one file.
func (s *Scanner) toPhotoItem(ctx context.Context, path string) (PhotoItem, error) {
	info, err := os.Stat(path)
	if err != nil {
		return PhotoItem{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	ex := readEXIF(abs)

	width, height := ex.width, ex.height
	if width == 0 || height == 0 {
		if w, h, err := readDimensions(abs); err == nil {
			width, height = w, h
		}
	}

	modTime := info.ModTime()
	userMeta := s.store.Get(ctx, abs)

	return PhotoItem{
		ID:           abs,
		DisplayName:  filepath.Base(abs),
		AbsolutePath: abs,
		CapturedAt:   ex.capturedAt,
		ModifiedAt:   &modTime,
		Width:        width,
		Height:       height,
		SizeBytes:    info.Size(),
		Extension:    extensionOf(abs),
		Metadata:     ex.meta,
		Title:        userMeta.Title,
		Tags:         userMeta.Tags,
		Comment:      userMeta.Comment,
	}, nil
}

// SplitRoots parses the comma-separated multi-root form.
func SplitRoots(roots string) []string {
	var out []string
	for _, r := range strings.Split(roots, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// extensionOf returns the lower-cased extension without the leading dot.
func extensionOf(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return strings.TrimPrefix(ext, ".")
}

func matchesExtension(name string, allowed map[string]bool) bool {
	if len(allowed) == 0 {
		return true
	}
	return allowed[extensionOf(name)]
}

// matchesDate applies the inclusive capture-date filter. An unknown
// capture date always passes; the range cannot exclude what it cannot
// see.
func matchesDate(capturedAt *time.Time, r *DateRange) bool {
	if r == nil || capturedAt == nil {
		return true
	}
	return r.Contains(*capturedAt)
}
