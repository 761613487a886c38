// Package fonts provides the bundled card typeface.
//
// The Go Regular font ships inside golang.org/x/image, so the binary can
// render cards without a font file on disk. Users may still supply their
// own TrueType file on the command line.
package fonts

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/anomiadeck/pkg/text"
)

// DefaultName is the display name of the bundled font.
const DefaultName = "Go Regular"

var (
	defaultFont    *text.Font
	defaultFontErr error
	defaultOnce    sync.Once
)

// DefaultTTF returns the bundled TrueType data.
func DefaultTTF() []byte {
	return goregular.TTF
}

// Default returns the bundled font at the given point size.
// The font data is parsed once; each call derives a font at size.
func Default(size float64) (text.Typeface, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultFontErr = text.ParseFont(goregular.TTF, 1)
	})
	if defaultFontErr != nil {
		return nil, defaultFontErr
	}
	return defaultFont.Derive(size), nil
}
