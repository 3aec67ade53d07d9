// Package sorting orders photo catalogs by a fixed set of criteria,
// from display name to numeric values re-derived from textual EXIF
// strings. Sorts are stable and total: malformed metadata degrades to a
// sentinel default instead of failing.
package sorting
