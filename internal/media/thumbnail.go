package media

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"photo-catalog/internal/logging"
	"photo-catalog/internal/metrics"
)

const thumbnailJPEGQuality = 80

// ThumbnailGenerator renders bounded JPEG previews of catalog photos.
type ThumbnailGenerator struct {
	maxDim int
}

// NewThumbnailGenerator creates a generator producing thumbnails that
// fit within maxDim on the longer side.
func NewThumbnailGenerator(maxDim int) *ThumbnailGenerator {
	if maxDim <= 0 {
		maxDim = 200
	}
	return &ThumbnailGenerator{maxDim: maxDim}
}

// Generate renders a thumbnail for the photo. A nil return means "could
// not produce a thumbnail" and callers should show a placeholder; it is
// not an error condition.
func (t *ThumbnailGenerator) Generate(photo PhotoItem) []byte {
	start := time.Now()

	img, err := t.decode(photo.AbsolutePath)
	if err != nil {
		logging.Debug("thumbnail decode failed for %s: %v", photo.AbsolutePath, err)
		metrics.ThumbnailGenerationFailures.Inc()
		return nil
	}

	thumb := imaging.Fit(img, t.maxDim, t.maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: thumbnailJPEGQuality}); err != nil {
		logging.Debug("thumbnail encode failed for %s: %v", photo.AbsolutePath, err)
		metrics.ThumbnailGenerationFailures.Inc()
		return nil
	}

	metrics.ThumbnailGenerationDuration.Observe(time.Since(start).Seconds())
	return buf.Bytes()
}

// decode opens the image, trying imaging first (which applies EXIF
// auto-orientation) and falling back to the registered stdlib/x-image
// decoders.
func (t *ThumbnailGenerator) decode(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}

	f, openErr := os.Open(path)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	img, _, decodeErr := image.Decode(f)
	if decodeErr != nil {
		return nil, err
	}
	return img, nil
}
