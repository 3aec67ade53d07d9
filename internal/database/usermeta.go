package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"photo-catalog/internal/logging"
	"photo-catalog/internal/usermeta"
)

// Get returns the stored metadata for path, or the zero value when the
// photo was never edited. Query failures degrade to the zero value; the
// store contract promises Get never fails.
func (d *Database) Get(ctx context.Context, path string) usermeta.UserMetadata {
	done := observeQuery("get")

	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var meta usermeta.UserMetadata
	err := d.db.QueryRowContext(ctx,
		"SELECT title, comment FROM photos WHERE path = ?", path,
	).Scan(&meta.Title, &meta.Comment)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return usermeta.UserMetadata{}
	}
	if err != nil {
		logging.Error("metadata lookup failed for %s: %v", path, err)
		done(err)
		return usermeta.UserMetadata{}
	}

	tags, err := d.photoTags(ctx, path)
	if err != nil {
		logging.Error("tag lookup failed for %s: %v", path, err)
		done(err)
		return usermeta.UserMetadata{}
	}
	meta.Tags = tags

	done(nil)
	return meta
}

// photoTags returns the ordered tag list for a photo. Caller must hold
// at least a read lock.
func (d *Database) photoTags(ctx context.Context, path string) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT t.name
		FROM tags t
		INNER JOIN photo_tags pt ON t.id = pt.tag_id
		WHERE pt.photo_path = ?
		ORDER BY pt.position
	`, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logging.Error("error closing rows: %v", err)
		}
	}()

	var tags []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

// Set replaces the stored metadata for path. Setting the zero value
// removes the row entirely; an all-default record and "never edited"
// are deliberately indistinguishable.
func (d *Database) Set(ctx context.Context, path string, meta usermeta.UserMetadata) error {
	done := observeQuery("set")

	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, 10*defaultTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		done(err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error("rollback failed: %v", rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM photo_tags WHERE photo_path = ?", path); err != nil {
		done(err)
		return err
	}

	if meta.IsZero() {
		if _, err = tx.ExecContext(ctx, "DELETE FROM photos WHERE path = ?", path); err != nil {
			done(err)
			return err
		}
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO photos (path, title, comment, updated_at)
			VALUES (?, ?, ?, strftime('%s', 'now'))
			ON CONFLICT(path) DO UPDATE SET
				title = excluded.title,
				comment = excluded.comment,
				updated_at = excluded.updated_at
		`, path, meta.Title, meta.Comment)
		if err != nil {
			done(err)
			return err
		}

		for position, tagName := range meta.Tags {
			tagName = strings.TrimSpace(tagName)
			if tagName == "" {
				continue
			}

			var tagID int64
			err = tx.QueryRowContext(ctx,
				"SELECT id FROM tags WHERE name = ? COLLATE NOCASE", tagName,
			).Scan(&tagID)
			switch {
			case errors.Is(err, sql.ErrNoRows):
				result, createErr := tx.ExecContext(ctx, "INSERT INTO tags (name) VALUES (?)", tagName)
				if createErr != nil {
					done(createErr)
					return fmt.Errorf("failed to create tag: %w", createErr)
				}
				tagID, _ = result.LastInsertId()
			case err != nil:
				// A failed lookup is not "tag absent"; inserting here would
				// trip the UNIQUE constraint on an existing tag.
				done(err)
				return fmt.Errorf("tag lookup failed: %w", err)
			}

			_, err = tx.ExecContext(ctx,
				"INSERT INTO photo_tags (photo_path, tag_id, position) VALUES (?, ?, ?)",
				path, tagID, position,
			)
			if err != nil {
				done(err)
				return err
			}
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		done(commitErr)
		return commitErr
	}
	committed = true
	done(nil)
	return nil
}

// AllTags returns every known tag name, for filter option listings.
func (d *Database) AllTags(ctx context.Context) ([]string, error) {
	done := observeQuery("all_tags")

	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(ctx,
		"SELECT name FROM tags ORDER BY name COLLATE NOCASE")
	if err != nil {
		done(err)
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logging.Error("error closing rows: %v", err)
		}
	}()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		names = append(names, name)
	}

	done(rows.Err())
	return names, rows.Err()
}
