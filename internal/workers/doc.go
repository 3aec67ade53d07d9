// Package workers sizes the scan worker pool.
//
// Counts are derived from GOMAXPROCS rather than runtime.NumCPU so that
// container CPU limits are respected. Metadata extraction interleaves
// file reads with EXIF parsing, so the scanner uses ForMixed.
package workers
