// Package metrics defines Prometheus collectors for the photo catalog.
//
// All collectors are registered via promauto at package init and exposed
// through the /metrics endpoint. Metric names are prefixed with
// photo_catalog_.
package metrics
