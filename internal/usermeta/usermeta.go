package usermeta

import "context"

// UserMetadata holds the user-editable fields attached to a photo. The
// zero value (empty title, no tags, empty comment) is a valid state and
// is what Get returns for a photo that was never edited.
type UserMetadata struct {
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Comment string   `json:"comment"`
}

// IsZero reports whether every field holds its default value.
func (m UserMetadata) IsZero() bool {
	return m.Title == "" && m.Comment == "" && len(m.Tags) == 0
}

// Store persists user metadata keyed by a photo's absolute path.
//
// Get never fails: a missing or unreadable record yields the zero value.
// Set persists synchronously before returning and overwrites the whole
// record; last write wins on concurrent writes to the same path.
type Store interface {
	Get(ctx context.Context, path string) UserMetadata
	Set(ctx context.Context, path string, meta UserMetadata) error
	Close() error
}
