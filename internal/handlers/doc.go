// Package handlers implements the JSON HTTP API: catalog listing with
// keyword search and sorting, structured field filtering, user metadata
// editing, rename, thumbnails and scan control.
package handlers
