package media

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"photo-catalog/internal/logging"
)

// exifInfo is what the scanner derives from a photo's embedded metadata.
type exifInfo struct {
	meta       map[string]string
	capturedAt *time.Time
	width      int
	height     int
}

// readEXIF extracts the catalog's metadata map from a file. Extraction
// is best-effort: files without EXIF (or with corrupt EXIF) yield an
// empty map, never an error. The upstream library hands back
// human-readable description strings, which is why the sort layer
// re-parses numbers defensively.
func readEXIF(path string) exifInfo {
	info := exifInfo{meta: make(map[string]string)}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		logging.Debug("no EXIF in %s: %v", path, err)
		return info
	}

	putString := func(key string, field exif.FieldName) {
		if tag, err := x.Get(field); err == nil {
			if v, err := tag.StringVal(); err == nil && v != "" {
				info.meta[key] = v
			}
		}
	}

	putString(KeyMake, exif.Make)
	putString(KeyModel, exif.Model)
	putString(KeySoftware, exif.Software)
	putString(KeyLensModel, exif.LensModel)
	putString(KeyDateTimeOriginal, exif.DateTimeOriginal)

	if tag, err := x.Get(exif.ISOSpeedRatings); err == nil {
		if iso, err := tag.Int(0); err == nil {
			info.meta[KeyISO] = fmt.Sprintf("%d", iso)
		}
	}

	if tag, err := x.Get(exif.FNumber); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			info.meta[KeyFNumber] = fmt.Sprintf("f/%.1f", float64(num)/float64(den))
		}
	}

	if tag, err := x.Get(exif.ExposureTime); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && num != 0 && den != 0 {
			if num == 1 {
				info.meta[KeyExposureTime] = fmt.Sprintf("1/%d sec", den)
			} else {
				info.meta[KeyExposureTime] = fmt.Sprintf("%.3f sec", float64(num)/float64(den))
			}
		}
	}

	if tag, err := x.Get(exif.FocalLength); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			info.meta[KeyFocalLength] = fmt.Sprintf("%.1f mm", float64(num)/float64(den))
		}
	}

	if tag, err := x.Get(exif.Orientation); err == nil {
		if o, err := tag.Int(0); err == nil {
			info.meta[KeyOrientation] = fmt.Sprintf("%d", o)
		}
	}

	if lat, long, err := x.LatLong(); err == nil {
		info.meta[KeyGPSLatitude] = fmt.Sprintf("%.6f", lat)
		info.meta[KeyGPSLongitude] = fmt.Sprintf("%.6f", long)
	}

	if dt, err := x.DateTime(); err == nil {
		info.capturedAt = &dt
	}

	if tag, err := x.Get(exif.PixelXDimension); err == nil {
		if w, err := tag.Int(0); err == nil {
			info.width = w
		}
	}
	if tag, err := x.Get(exif.PixelYDimension); err == nil {
		if h, err := tag.Int(0); err == nil {
			info.height = h
		}
	}

	return info
}

// readDimensions decodes just the image header to recover pixel
// dimensions when EXIF did not carry them (TIFF and PNG commonly).
func readDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
