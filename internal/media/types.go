package media

import "time"

// Metadata map keys produced by the scanner, in the
// "<DirectoryName>:<TagName>" form the sort and field-filter layers
// look up.
const (
	KeyMake             = "Exif IFD0:Make"
	KeyModel            = "Exif IFD0:Model"
	KeySoftware         = "Exif IFD0:Software"
	KeyOrientation      = "Exif IFD0:Orientation"
	KeyLensModel        = "Exif SubIFD:Lens Model"
	KeyISO              = "Exif SubIFD:ISO Speed Ratings"
	KeyFNumber          = "Exif SubIFD:F-Number"
	KeyExposureTime     = "Exif SubIFD:Exposure Time"
	KeyFocalLength      = "Exif SubIFD:Focal Length"
	KeyDateTimeOriginal = "Exif SubIFD:Date/Time Original"
	KeyGPSLatitude      = "GPS:GPS Latitude"
	KeyGPSLongitude     = "GPS:GPS Longitude"
)

// PhotoItem is one discovered image file. Items are immutable values: a
// scan rebuilds them from scratch, and edits (rename, metadata update)
// produce a new value rather than mutating in place.
//
// AbsolutePath is the stable identity for user metadata and thumbnail
// association; ID may differ by platform.
type PhotoItem struct {
	ID           string            `json:"id"`
	DisplayName  string            `json:"displayName"`
	AbsolutePath string            `json:"absolutePath"`
	CapturedAt   *time.Time        `json:"capturedAt,omitempty"`
	ModifiedAt   *time.Time        `json:"modifiedAt,omitempty"`
	Width        int               `json:"width,omitempty"`  // 0 = unknown
	Height       int               `json:"height,omitempty"` // 0 = unknown
	SizeBytes    int64             `json:"sizeBytes"`
	Extension    string            `json:"extension"` // lower-case, no leading dot
	Metadata     map[string]string `json:"metadata,omitempty"`

	// User-editable fields, merged from the metadata store at scan time.
	Title   string   `json:"title"`
	Tags    []string `json:"tags,omitempty"`
	Comment string   `json:"comment"`

	// Transient cache hint only; the ThumbnailCache is authoritative.
	Thumbnail []byte `json:"-"`
}

// HasDimensions reports whether both pixel dimensions are known.
func (p PhotoItem) HasDimensions() bool {
	return p.Width > 0 && p.Height > 0
}

// DateRange is an inclusive range on a photo's capture time.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the range, inclusive at both
// ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// ScanFilters restricts what a scan accepts.
type ScanFilters struct {
	// Extensions is the allowed set, lower-case without the leading dot.
	// An empty set means no restriction.
	Extensions map[string]bool

	// DateRange, when non-nil, requires capturedAt inside the range.
	// Photos without a capture date always pass; an unknown date cannot
	// exclude a photo.
	DateRange *DateRange
}

// DefaultScanFilters returns the stock extension filter for a photo
// catalog.
func DefaultScanFilters() ScanFilters {
	return ScanFilters{
		Extensions: map[string]bool{
			"jpg": true, "jpeg": true, "png": true,
			"heic": true, "tif": true, "tiff": true,
		},
	}
}
