package library

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"photo-catalog/internal/logging"
	"photo-catalog/internal/media"
	"photo-catalog/internal/metrics"
	"photo-catalog/internal/usermeta"
)

// ErrScanSuperseded reports that a newer scan request replaced this one
// before its result could be installed. The caller's catalog already
// reflects the newer scan.
var ErrScanSuperseded = errors.New("scan superseded by a newer request")

// Library owns the in-memory photo catalog. Scans rebuild the catalog
// from the configured roots; edits publish a patched copy so the catalog
// stays consistent with the store without a rescan.
//
// Published snapshots are immutable: every mutation replaces l.items
// with a fresh slice, never writes into one a reader may already hold.
type Library struct {
	scanner *media.Scanner
	store   usermeta.Store
	roots   string
	filters media.ScanFilters

	// scanToken orders scan requests. A scan only installs its result if
	// no newer request started while it ran (last request wins).
	scanToken atomic.Uint64
	scanning  atomic.Bool

	mu         sync.RWMutex
	items      []media.PhotoItem
	lastScan   time.Time
	lastErr    error
	scannedAny bool
}

// New builds a library over the comma-separated root directories.
func New(scanner *media.Scanner, store usermeta.Store, roots string, filters media.ScanFilters) *Library {
	return &Library{
		scanner: scanner,
		store:   store,
		roots:   roots,
		filters: filters,
	}
}

// Snapshot returns the current catalog. The returned slice is never
// mutated afterwards; edits and rescans publish a replacement instead,
// so callers may filter and sort it without holding any lock.
func (l *Library) Snapshot() []media.PhotoItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items
}

// replaceItem publishes a copy of the catalog with the entry for path
// swapped out. Copy-on-write keeps previously returned snapshots
// untouched. Reports whether the path was present.
func (l *Library) replaceItem(path string, item media.PhotoItem) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].AbsolutePath != path {
			continue
		}
		next := make([]media.PhotoItem, len(l.items))
		copy(next, l.items)
		next[i] = item
		l.items = next
		return true
	}
	return false
}

// Status describes the library's scan state.
type Status struct {
	Scanning   bool      `json:"scanning"`
	PhotoCount int       `json:"photoCount"`
	LastScan   time.Time `json:"lastScan,omitzero"`
	LastError  string    `json:"lastError,omitempty"`
}

// Status reports whether a scan is running and how the last one ended.
func (l *Library) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()

	st := Status{
		Scanning:   l.scanning.Load(),
		PhotoCount: len(l.items),
		LastScan:   l.lastScan,
	}
	if l.lastErr != nil {
		st.LastError = l.lastErr.Error()
	}
	return st
}

// Scanned reports whether any scan has completed since startup.
func (l *Library) Scanned() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.scannedAny
}

// Rescan walks the roots and replaces the catalog. Concurrent calls are
// safe: each call claims a token, and a result is only installed when no
// newer call has claimed one since, so a slow older scan can never
// clobber a newer result. The superseded caller gets ErrScanSuperseded.
func (l *Library) Rescan(ctx context.Context) ([]media.PhotoItem, error) {
	token := l.scanToken.Add(1)

	l.scanning.Store(true)
	metrics.ScanIsRunning.Set(1)
	defer func() {
		if l.scanToken.Load() == token {
			l.scanning.Store(false)
			metrics.ScanIsRunning.Set(0)
		}
	}()

	// Drop cached user metadata so edits made outside the process are
	// picked up by this scan.
	if c, ok := l.store.(interface{ Clear() }); ok {
		c.Clear()
	}

	start := time.Now()
	items, err := l.scanner.Scan(ctx, l.roots, l.filters)

	if l.scanToken.Load() != token {
		logging.Info("Discarding superseded scan result (%d photos)", len(items))
		metrics.ScansTotal.WithLabelValues("superseded").Inc()
		return nil, ErrScanSuperseded
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastScan = time.Now()
	l.lastErr = err
	l.scannedAny = true
	if err != nil {
		metrics.ScansTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	l.items = items
	metrics.ScansTotal.WithLabelValues("success").Inc()
	logging.Info("Catalog refreshed: %d photos in %s", len(items), time.Since(start).Round(time.Millisecond))
	return items, nil
}

// UpdateMetadata persists the user-editable fields for a photo and
// patches the in-memory catalog so reads stay consistent without a
// rescan. The photo need not be in the current catalog; the write still
// succeeds and takes effect on the next scan.
func (l *Library) UpdateMetadata(ctx context.Context, path string, meta usermeta.UserMetadata) (media.PhotoItem, bool, error) {
	if err := l.store.Set(ctx, path, meta); err != nil {
		return media.PhotoItem{}, false, err
	}

	l.mu.RLock()
	var patched media.PhotoItem
	found := false
	for i := range l.items {
		if l.items[i].AbsolutePath == path {
			patched = l.items[i]
			found = true
			break
		}
	}
	l.mu.RUnlock()

	if !found {
		return media.PhotoItem{}, false, nil
	}

	patched.Title = meta.Title
	patched.Tags = meta.Tags
	patched.Comment = meta.Comment
	l.replaceItem(path, patched)
	return patched, true, nil
}

// Rename renames the photo on disk, re-keys its user metadata to the
// new path and publishes the patched catalog entry. Metadata is moved
// through the Store interface so every backend stays associated, not
// just sidecar files.
//
// Once the file is renamed the catalog is updated to match the disk
// regardless of how re-keying goes; a re-keying failure is reported
// alongside the renamed item so the caller can distinguish "rename
// failed" from "renamed but metadata needs re-editing".
func (l *Library) Rename(ctx context.Context, path, newBaseName string) (media.PhotoItem, error) {
	l.mu.RLock()
	var photo media.PhotoItem
	found := false
	for i := range l.items {
		if l.items[i].AbsolutePath == path {
			photo = l.items[i]
			found = true
			break
		}
	}
	l.mu.RUnlock()

	if !found {
		return media.PhotoItem{}, errors.New("photo not in catalog: " + path)
	}

	meta := l.store.Get(ctx, path)

	renamed, err := l.scanner.Rename(ctx, photo, newBaseName)
	if err != nil {
		return media.PhotoItem{}, err
	}

	l.replaceItem(path, renamed)

	if !meta.IsZero() {
		if err := l.store.Set(ctx, renamed.AbsolutePath, meta); err != nil {
			return renamed, fmt.Errorf("renamed but failed to move metadata: %w", err)
		}
		if err := l.store.Set(ctx, path, usermeta.UserMetadata{}); err != nil {
			return renamed, fmt.Errorf("renamed but failed to clear old metadata key: %w", err)
		}
	}
	return renamed, nil
}
