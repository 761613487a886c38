// Package card composes individual Anomia card faces.
//
// A card is an opaque white canvas with the symbol centered and the category
// phrase printed twice: once along the bottom edge, and once along the top
// edge rotated 180 degrees, so it reads right-side-up from either side of
// the table.
package card

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/anomiadeck/pkg/text"
)

// Background is the card background color.
var Background color.Color = color.White

// Compose renders one card for category with symbol at its center.
//
// The symbol is drawn at its own size (callers shrink it beforehand) and
// alpha-composited, so transparent regions show the background. The text is
// wrapped to the layout's text width using tf; the top copy is a point
// reflection of the bottom copy, not a second render.
//
// The layout is validated before anything is drawn. A nil symbol produces a
// card without a symbol.
func Compose(category string, symbol image.Image, tf text.Typeface, l Layout) (*image.NRGBA, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	block, err := text.Render(category, tf, l.TextWidth(), l.LineSpacing)
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", category, err)
	}

	img := imaging.New(l.Width, l.Height, Background)

	if symbol != nil {
		s := symbol.Bounds().Size()
		img = imaging.Overlay(img, symbol, image.Pt(l.Width/2-s.X/2, l.Height/2-s.Y/2), 1.0)
	}

	b := block.Bounds().Size()
	img = imaging.Overlay(img, block, image.Pt(l.Width/2-b.X/2, l.Height-l.Margin-b.Y), 1.0)

	flipped := imaging.Rotate180(block)
	f := flipped.Bounds().Size()
	img = imaging.Overlay(img, flipped, image.Pt(l.Width/2-f.X/2, l.Margin), 1.0)

	return img, nil
}

// TextRegions returns the rectangles occupied by the bottom and top text
// blocks of a card composed with the given block size.
func TextRegions(l Layout, block image.Point) (bottom, top image.Rectangle) {
	x := l.Width/2 - block.X/2
	bottom = image.Rect(x, l.Height-l.Margin-block.Y, x+block.X, l.Height-l.Margin)
	top = image.Rect(x, l.Margin, x+block.X, l.Margin+block.Y)
	return bottom, top
}
