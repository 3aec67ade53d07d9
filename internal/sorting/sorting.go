package sorting

import (
	"sort"
	"strings"
	"time"

	"photo-catalog/internal/media"
	"photo-catalog/internal/metrics"
)

// Order names one supported sort order. The values double as the wire
// form accepted by the HTTP layer.
type Order string

const (
	OrderNameAsc  Order = "name_asc"
	OrderNameDesc Order = "name_desc"

	OrderTakenNewest    Order = "taken_newest"
	OrderTakenOldest    Order = "taken_oldest"
	OrderModifiedNewest Order = "modified_newest"
	OrderModifiedOldest Order = "modified_oldest"

	OrderCameraModel Order = "camera_model"

	OrderFocalLongest  Order = "focal_longest"
	OrderFocalShortest Order = "focal_shortest"

	OrderApertureLargest  Order = "aperture_largest"
	OrderApertureSmallest Order = "aperture_smallest"

	OrderISOHigh Order = "iso_high"
	OrderISOLow  Order = "iso_low"

	OrderFileType Order = "file_type"

	OrderPortraitFirst  Order = "portrait_first"
	OrderLandscapeFirst Order = "landscape_first"
)

// Orders lists every supported order, in UI display order.
var Orders = []Order{
	OrderNameAsc, OrderNameDesc,
	OrderTakenNewest, OrderTakenOldest,
	OrderModifiedNewest, OrderModifiedOldest,
	OrderCameraModel,
	OrderFocalLongest, OrderFocalShortest,
	OrderApertureLargest, OrderApertureSmallest,
	OrderISOHigh, OrderISOLow,
	OrderFileType,
	OrderPortraitFirst, OrderLandscapeFirst,
}

var validOrders = func() map[Order]bool {
	m := make(map[Order]bool, len(Orders))
	for _, o := range Orders {
		m[o] = true
	}
	return m
}()

// Valid reports whether o names a supported order.
func Valid(o Order) bool { return validOrders[o] }

// cameraSentinel sorts items without camera metadata after everything
// else under OrderCameraModel.
const cameraSentinel = "￿"

// Sort returns a new slice ordered by the given order. The input is
// never modified; ties keep their original relative order, so sorting
// an already-sorted list returns an identical sequence. An unknown
// order falls back to name ascending.
func Sort(items []media.PhotoItem, order Order) []media.PhotoItem {
	metrics.SortsTotal.WithLabelValues(string(order)).Inc()

	out := make([]media.PhotoItem, len(items))
	copy(out, items)

	less := lessFunc(order)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(order Order) func(a, b media.PhotoItem) bool {
	switch order {
	case OrderNameDesc:
		return func(a, b media.PhotoItem) bool {
			return a.DisplayName > b.DisplayName
		}
	case OrderTakenNewest:
		return func(a, b media.PhotoItem) bool {
			return timeOrZero(a.CapturedAt).After(timeOrZero(b.CapturedAt))
		}
	case OrderTakenOldest:
		return func(a, b media.PhotoItem) bool {
			return timeOrZero(a.CapturedAt).Before(timeOrZero(b.CapturedAt))
		}
	case OrderModifiedNewest:
		return func(a, b media.PhotoItem) bool {
			return timeOrZero(a.ModifiedAt).After(timeOrZero(b.ModifiedAt))
		}
	case OrderModifiedOldest:
		return func(a, b media.PhotoItem) bool {
			return timeOrZero(a.ModifiedAt).Before(timeOrZero(b.ModifiedAt))
		}
	case OrderCameraModel:
		return func(a, b media.PhotoItem) bool {
			ca, cb := cameraModel(a), cameraModel(b)
			if ca != cb {
				return ca < cb
			}
			return a.DisplayName < b.DisplayName
		}
	case OrderFocalLongest:
		return func(a, b media.PhotoItem) bool {
			return focalLength(a) > focalLength(b)
		}
	case OrderFocalShortest:
		return func(a, b media.PhotoItem) bool {
			return focalLength(a) < focalLength(b)
		}
	case OrderApertureLargest:
		return func(a, b media.PhotoItem) bool {
			// Unknown apertures carry the max sentinel yet still belong at
			// the end of the descending order, so they need an explicit
			// demotion here. Inconsistent with focal length's zero default
			// but kept for compatibility.
			fa, fb := aperture(a), aperture(b)
			if fa == apertureUnknown || fb == apertureUnknown {
				return fb == apertureUnknown && fa != apertureUnknown
			}
			return fa > fb
		}
	case OrderApertureSmallest:
		return func(a, b media.PhotoItem) bool {
			return aperture(a) < aperture(b)
		}
	case OrderISOHigh:
		return func(a, b media.PhotoItem) bool {
			return isoSpeed(a) > isoSpeed(b)
		}
	case OrderISOLow:
		return func(a, b media.PhotoItem) bool {
			return isoSpeed(a) < isoSpeed(b)
		}
	case OrderFileType:
		return func(a, b media.PhotoItem) bool {
			ea, eb := strings.ToLower(a.Extension), strings.ToLower(b.Extension)
			if ea != eb {
				return ea < eb
			}
			return a.DisplayName < b.DisplayName
		}
	case OrderPortraitFirst:
		return orientationLess(true)
	case OrderLandscapeFirst:
		return orientationLess(false)
	default: // OrderNameAsc
		return func(a, b media.PhotoItem) bool {
			return a.DisplayName < b.DisplayName
		}
	}
}

func orientationLess(portraitFirst bool) func(a, b media.PhotoItem) bool {
	return func(a, b media.PhotoItem) bool {
		pa, pb := isPortrait(a), isPortrait(b)
		if pa != pb {
			if portraitFirst {
				return pa
			}
			return pb
		}
		return a.DisplayName < b.DisplayName
	}
}

// isPortrait requires both dimensions; unknown dimensions never count
// as portrait.
func isPortrait(p media.PhotoItem) bool {
	return p.HasDimensions() && p.Height >= p.Width
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// cameraModel derives the camera sort key from the make and model
// metadata, falling back to whichever is present. No camera metadata at
// all yields a sentinel that sorts after every real camera string.
func cameraModel(p media.PhotoItem) string {
	mk := strings.TrimSpace(p.Metadata[media.KeyMake])
	md := strings.TrimSpace(p.Metadata[media.KeyModel])
	combined := strings.TrimSpace(mk + " " + md)
	if combined == "" {
		return cameraSentinel
	}
	return combined
}
