// Package library holds the in-memory photo catalog and coordinates
// scans against it. Scan requests are ordered by a monotonic token so
// that when requests overlap, only the newest request's result is
// installed.
package library
