package text

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/anomiadeck/pkg/errors"
)

// dpi makes one point equal one pixel.
const dpi = 72

// Typeface is an immutable scalable font at a fixed point size.
type Typeface interface {
	// Size returns the point size.
	Size() float64

	// Derive returns a new typeface at size. The receiver is unchanged.
	Derive(size float64) Typeface

	// NewFace opens a face for measuring and drawing. Callers must Close it.
	NewFace() font.Face
}

// Font is a TrueType [Typeface]. A parsed font is read-only, so a Font and
// all fonts derived from it may be shared between goroutines.
type Font struct {
	ttf  *truetype.Font
	size float64
}

// ParseFont parses TrueType data and returns a Font at the given point size.
func ParseFont(data []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %v", size)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceLoad, err, "parse font")
	}
	return &Font{ttf: ttf, size: size}, nil
}

// LoadFont reads and parses the TrueType file at path.
func LoadFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceLoad, err, "read font %s", path)
	}
	f, err := ParseFont(data, size)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	return f, nil
}

// Size returns the point size.
func (f *Font) Size() float64 { return f.size }

// Derive returns a variant of f at size, sharing the parsed font data.
func (f *Font) Derive(size float64) Typeface {
	return &Font{ttf: f.ttf, size: size}
}

// NewFace opens an unhinted face so advances scale linearly with size.
func (f *Font) NewFace() font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{
		Size:    f.size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
}

var _ Typeface = (*Font)(nil)
