package card

import (
	"github.com/matzehuels/anomiadeck/pkg/errors"
)

// Default layout values, matching a standard poker-ratio card at 500x800px.
const (
	DefaultWidth        = 500
	DefaultHeight       = 800
	DefaultFontSize     = 55
	DefaultSymbolWidth  = 300
	DefaultSymbolHeight = 300
	DefaultMargin       = 30
	DefaultLineSpacing  = 0
)

// Layout holds the pixel geometry of a card.
type Layout struct {
	Width        int `json:"width" toml:"width"`
	Height       int `json:"height" toml:"height"`
	FontSize     int `json:"font_size" toml:"font_size"`
	SymbolWidth  int `json:"symbol_width" toml:"symbol_width"`
	SymbolHeight int `json:"symbol_height" toml:"symbol_height"`
	Margin       int `json:"margin" toml:"margin"`
	LineSpacing  int `json:"line_spacing" toml:"line_spacing"`
}

// DefaultLayout returns the built-in card layout.
func DefaultLayout() Layout {
	return Layout{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		FontSize:     DefaultFontSize,
		SymbolWidth:  DefaultSymbolWidth,
		SymbolHeight: DefaultSymbolHeight,
		Margin:       DefaultMargin,
		LineSpacing:  DefaultLineSpacing,
	}
}

// TextWidth returns the horizontal budget for the category text.
func (l Layout) TextWidth() int {
	return l.Width - 2*l.Margin
}

// Validate checks that every dimension is usable. Width, height, font size
// and symbol bounds must be positive; margin and line spacing must not be
// negative; the card must be wider and taller than twice the margin.
func (l Layout) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"width", l.Width},
		{"height", l.Height},
		{"font size", l.FontSize},
		{"symbol width", l.SymbolWidth},
		{"symbol height", l.SymbolHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.New(errors.ErrCodeInvalidLayout, "%s must be positive, got %d", p.name, p.value)
		}
	}

	if l.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "margin cannot be negative, got %d", l.Margin)
	}
	if l.LineSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "line spacing cannot be negative, got %d", l.LineSpacing)
	}
	if l.Width <= 2*l.Margin {
		return errors.New(errors.ErrCodeInvalidLayout, "margin %d leaves no room on a card %dpx wide", l.Margin, l.Width)
	}
	if l.Height <= 2*l.Margin {
		return errors.New(errors.ErrCodeInvalidLayout, "margin %d leaves no room on a card %dpx tall", l.Margin, l.Height)
	}
	return nil
}
