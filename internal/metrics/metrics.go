package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_catalog_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photo_catalog_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_catalog_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Scanner metrics
var (
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_catalog_scans_total",
			Help: "Total number of catalog scans",
		},
		[]string{"status"}, // "success", "error", "superseded"
	)

	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "photo_catalog_scan_duration_seconds",
			Help:    "Catalog scan duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	ScanFilesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_catalog_scan_files_total",
			Help: "Total number of files accepted into the catalog by scans",
		},
	)

	ScanFilesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_catalog_scan_files_skipped_total",
			Help: "Total number of files skipped during scans",
		},
		[]string{"reason"}, // "extension", "date_range", "unreadable"
	)

	ScanIsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_catalog_scan_running",
			Help: "Whether a scan is currently running (1 = running, 0 = idle)",
		},
	)
)

// Search and sort metrics
var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_catalog_searches_total",
			Help: "Total number of catalog searches",
		},
		[]string{"kind"}, // "keyword", "advanced"
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photo_catalog_search_duration_seconds",
			Help:    "In-memory search duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"kind"},
	)

	SortsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_catalog_sorts_total",
			Help: "Total number of catalog sort operations",
		},
		[]string{"order"},
	)
)

// Thumbnail metrics
var (
	ThumbnailCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_catalog_thumbnail_cache_hits_total",
			Help: "Total number of thumbnail cache hits",
		},
	)

	ThumbnailCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_catalog_thumbnail_cache_misses_total",
			Help: "Total number of thumbnail cache misses",
		},
	)

	ThumbnailCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_catalog_thumbnail_cache_evictions_total",
			Help: "Total number of thumbnail cache evictions",
		},
	)

	ThumbnailGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "photo_catalog_thumbnail_generation_duration_seconds",
			Help:    "Thumbnail generation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	ThumbnailGenerationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_catalog_thumbnail_generation_failures_total",
			Help: "Total number of failed thumbnail generations",
		},
	)
)

// Metadata store metrics
var (
	MetadataQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_catalog_metadata_queries_total",
			Help: "Total number of user metadata store operations",
		},
		[]string{"operation", "status"},
	)

	MetadataQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photo_catalog_metadata_query_duration_seconds",
			Help:    "User metadata store operation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	MetadataCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_catalog_metadata_cache_hits_total",
			Help: "Total number of user metadata cache hits",
		},
	)
)
