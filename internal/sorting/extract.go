package sorting

import (
	"math"
	"strconv"
	"strings"

	"photo-catalog/internal/media"
)

// apertureUnknown is the sentinel for missing or unparsable F-numbers.
// Unknown apertures sort to the end in both aperture orders.
const apertureUnknown = math.MaxFloat64

// extractFloat strips every character other than digits and dots from a
// textual EXIF value ("50.0 mm", "f/2.8") and parses the remainder as a
// float. The upstream EXIF layer produces human-readable strings, so
// numeric semantics are re-derived here, degrading to the given
// sentinel rather than failing.
func extractFloat(value string, sentinel float64) float64 {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return sentinel
	}
	return f
}

// extractInt keeps digits only and parses the remainder, degrading to
// the sentinel.
func extractInt(value string, sentinel int) int {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return sentinel
	}
	return n
}

func focalLength(p media.PhotoItem) float64 {
	return extractFloat(p.Metadata[media.KeyFocalLength], 0)
}

func aperture(p media.PhotoItem) float64 {
	return extractFloat(p.Metadata[media.KeyFNumber], apertureUnknown)
}

func isoSpeed(p media.PhotoItem) int {
	return extractInt(p.Metadata[media.KeyISO], 0)
}
