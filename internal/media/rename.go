package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Rename gives the photo a new base name in its current directory and
// returns the updated item. The original extension is appended when the
// new name has none. On any failure the file and the returned item are
// untouched; there is no partial state.
//
// Only the file itself moves here. User metadata is keyed by path and
// re-keyed by the caller through the metadata store, so the association
// survives regardless of the backend.
func (s *Scanner) Rename(ctx context.Context, photo PhotoItem, newBaseName string) (PhotoItem, error) {
	if newBaseName == "" || newBaseName != filepath.Base(newBaseName) {
		return photo, fmt.Errorf("invalid file name %q", newBaseName)
	}

	if filepath.Ext(newBaseName) == "" && photo.Extension != "" {
		newBaseName += "." + photo.Extension
	}

	oldPath := photo.AbsolutePath
	newPath := filepath.Join(filepath.Dir(oldPath), newBaseName)
	if newPath == oldPath {
		return photo, nil
	}

	if _, err := os.Stat(newPath); err == nil {
		return photo, fmt.Errorf("target %s already exists", newBaseName)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return photo, fmt.Errorf("rename failed: %w", err)
	}

	updated := photo
	updated.ID = newPath
	updated.AbsolutePath = newPath
	updated.DisplayName = newBaseName
	updated.Extension = extensionOf(newPath)
	return updated, nil
}
