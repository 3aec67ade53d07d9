package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"photo-catalog/internal/logging"
	"photo-catalog/internal/metrics"
)

// Default timeout for database operations
const defaultTimeout = 5 * time.Second

// Database is the SQLite-backed user metadata store: one index file per
// catalog mapping absolute photo path to {title, tags, comment}. It
// implements usermeta.Store.
type Database struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// New opens (or creates) the catalog index database at dbPath, creating
// the parent directory when needed.
func New(ctx context.Context, dbPath string) (*Database, error) {
	logging.Info("Metadata database path: %s", dbPath)

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// WAL keeps readers unblocked during writes; busy_timeout prevents
	// "database is locked" errors under concurrent scan workers.
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close database after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	d := &Database{
		db:     db,
		dbPath: dbPath,
	}

	if err := d.initialize(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close database after initialization failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	logging.Info("Metadata database initialized at %s", dbPath)
	return d, nil
}

func (d *Database) initialize(ctx context.Context) error {
	schema := `
	-- One row per edited photo, keyed by absolute path
	CREATE TABLE IF NOT EXISTS photos (
		path TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		comment TEXT NOT NULL DEFAULT '',
		updated_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);

	CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE,
		created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);

	CREATE INDEX IF NOT EXISTS idx_tags_name ON tags(name COLLATE NOCASE);

	-- Photo-tag relationship. position preserves the user's tag order;
	-- no uniqueness constraint, the tag list allows repeats.
	CREATE TABLE IF NOT EXISTS photo_tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		photo_path TEXT NOT NULL,
		tag_id INTEGER NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_photo_tags_path ON photo_tags(photo_path);
	CREATE INDEX IF NOT EXISTS idx_photo_tags_tag ON photo_tags(tag_id);
	`

	_, err := d.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// observeQuery records store operation metrics; the returned func is
// called with the operation's error (nil on success).
func observeQuery(operation string) func(error) {
	start := time.Now()
	return func(err error) {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.MetadataQueryTotal.WithLabelValues(operation, status).Inc()
		metrics.MetadataQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
