// Package search filters the in-memory photo catalog: free-text
// keyword search with AND/OR semantics, and structured per-field
// filtering driven by the static field registry.
//
// All functions are pure and stable: they never reorder their input and
// are safe to call on every UI state change. The catalog is bounded by
// a folder tree, so matching is a linear substring scan with no index.
package search
