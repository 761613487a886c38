package pipeline

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/anomiadeck/pkg/errors"
)

// Thumbnail returns a copy of img scaled down to fit within maxW x maxH,
// preserving aspect ratio. Images that already fit are copied unscaled.
// The source image is never modified.
func Thumbnail(img image.Image, maxW, maxH int) *image.NRGBA {
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// Thumbnails resizes every symbol with [Thumbnail].
func Thumbnails(symbols []image.Image, maxW, maxH int) ([]*image.NRGBA, error) {
	if maxW <= 0 || maxH <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "symbol bounds must be positive, got %dx%d", maxW, maxH)
	}
	out := make([]*image.NRGBA, len(symbols))
	for i, s := range symbols {
		if s == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "symbol %d is nil", i)
		}
		if s.Bounds().Empty() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "symbol %d is empty", i)
		}
		out[i] = Thumbnail(s, maxW, maxH)
	}
	return out, nil
}
