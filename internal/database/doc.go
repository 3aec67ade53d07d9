// Package database implements the SQLite backend of the user metadata
// store: a single per-catalog index file mapping photo path to title,
// ordered tag list and comment.
package database
