// Package imaging re-encodes item and location photos so they fit the
// storage size ceiling.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"golang.org/x/image/draw"

	"findmystuff/internal/model"
	"findmystuff/internal/validate"
)

// MaxBytes is the size ceiling for a stored photo.
const MaxBytes = 2 * 1024 * 1024

// MaxDimension is the maximum width or height for stored photos.
const MaxDimension = 1200

// Quality stepping: start at 80, drop by 10 until the output fits under
// MaxBytes, give up below 50.
const (
	startQuality = 80
	minQuality   = 50
	qualityStep  = 10
)

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Compress validates the payload, downscales it if larger than MaxDimension,
// and re-encodes as JPEG under MaxBytes, lowering quality step by step until
// it fits. Always outputs JPEG for consistency and smaller file sizes.
func Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, &model.ValidationError{Message: "Image data is required"}
	}
	if err := validate.ImageSize(int64(len(data))); err != nil {
		return nil, err
	}

	// Sniff actual MIME type from bytes (not trusting caller metadata).
	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, &model.ValidationError{
			Message: fmt.Sprintf("unsupported image format: %s (only JPEG and PNG accepted)", detected),
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, MaxDimension)

	for quality := startQuality; quality >= minQuality; quality -= qualityStep {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encoding JPEG: %w", err)
		}
		if buf.Len() <= MaxBytes {
			return buf.Bytes(), nil
		}
	}

	return nil, &model.ValidationError{Message: "Unable to compress image below 2MB"}
}

// downscale resizes the image so neither dimension exceeds maxDim.
// Uses high-quality Catmull-Rom interpolation.
// Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	// Calculate new dimensions preserving aspect ratio.
	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	// Register decoders (jpeg is registered by default, but be explicit).
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
