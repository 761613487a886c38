package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// monoTypeface is a Typeface whose every rune advances size*num/den pixels
// (truncated to 1/64 px), so layout arithmetic is exact in tests.
type monoTypeface struct {
	size     float64
	num, den int
}

func newMono(size float64) monoTypeface { return monoTypeface{size: size, num: 1, den: 1} }

func (m monoTypeface) Size() float64 { return m.size }

func (m monoTypeface) Derive(size float64) Typeface {
	return monoTypeface{size: size, num: m.num, den: m.den}
}

func (m monoTypeface) NewFace() font.Face {
	s := int(m.size)
	return &monoFace{
		advance: fixed.Int26_6(s * 64 * m.num / m.den),
		ascent:  fixed.I(s),
		descent: fixed.I(s / 4),
	}
}

// monoFace measures but never draws.
type monoFace struct {
	advance, ascent, descent fixed.Int26_6
}

func (f *monoFace) Close() error { return nil }

func (f *monoFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return image.Rectangle{}, nil, image.Point{}, f.advance, false
}

func (f *monoFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return fixed.Rectangle26_6{}, f.advance, true
}

func (f *monoFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) { return f.advance, true }

func (f *monoFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *monoFace) Metrics() font.Metrics {
	return font.Metrics{
		Height:  f.ascent + f.descent,
		Ascent:  f.ascent,
		Descent: f.descent,
	}
}
