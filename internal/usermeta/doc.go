// Package usermeta persists the user-editable fields of a photo
// (title, tags, comment) keyed by absolute path.
//
// Two backends implement the Store contract: XMP sidecar files next to
// each photo, and a per-catalog SQLite index (internal/database). The
// backend is selected once at startup; CachedStore adds the in-memory
// read-through cache either way.
package usermeta
