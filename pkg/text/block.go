package text

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/anomiadeck/pkg/errors"
)

// minSize is the smallest point size a shrink may produce.
const minSize = 1.0

// ErrEmptyText is returned when asked to lay out an empty phrase.
var ErrEmptyText = errors.New(errors.ErrCodeInvalidInput, "text is empty")

// Block is a laid-out phrase: wrapped lines plus the metrics needed to
// rasterize them. It is produced by [Layout] and rendered with [Block.Draw].
type Block struct {
	// Lines holds the wrapped lines, top to bottom.
	Lines []string

	// LineWidths holds the measured pixel width of each line.
	LineWidths []int

	// LineHeight is the ascent plus descent of the typeface, shared by every line.
	LineHeight int

	// Spacing is the vertical gap between consecutive lines.
	Spacing int

	// Width and Height are the tight pixel bounds of the block.
	Width, Height int

	// Typeface is the typeface the lines were measured with. It differs from
	// the input typeface when the widest word forced a shrink.
	Typeface Typeface
}

// Shrunk reports whether the block uses a smaller typeface than base.
func (b *Block) Shrunk(base Typeface) bool {
	return b.Typeface.Size() < base.Size()
}

// Layout wraps text into lines no wider than maxWidth.
//
// Words are separated by single spaces. When the widest word is wider than
// maxWidth, a variant of tf is derived at floor(maxWidth/widest * size)
// points and used for all further measurement. Only single words are
// guaranteed to fit: a word still too wide after the shrink overflows its
// line and no further shrinking is attempted.
//
// Wrapping is greedy: each word is appended to the current line unless the
// result would be wider than maxWidth, in which case it starts a new line.
func Layout(text string, tf Typeface, maxWidth, lineSpacing int) (*Block, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if maxWidth <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "text width must be positive, got %d", maxWidth)
	}
	if lineSpacing < 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "line spacing cannot be negative, got %d", lineSpacing)
	}

	words := strings.Split(text, " ")

	face := tf.NewFace()
	widest := 0
	for _, w := range words {
		widest = max(widest, measure(face, w))
	}
	if widest > maxWidth {
		size := math.Floor(float64(maxWidth) / float64(widest) * tf.Size())
		tf = tf.Derive(max(size, minSize))
		face.Close()
		face = tf.NewFace()
	}
	defer face.Close()

	lines := []string{words[0]}
	for _, w := range words[1:] {
		cur := &lines[len(lines)-1]
		candidate := *cur + " " + w
		if measure(face, candidate) > maxWidth {
			lines = append(lines, w)
		} else {
			*cur = candidate
		}
	}

	m := face.Metrics()
	b := &Block{
		Lines:      lines,
		LineWidths: make([]int, len(lines)),
		LineHeight: (m.Ascent + m.Descent).Ceil(),
		Spacing:    lineSpacing,
		Typeface:   tf,
	}
	for i, line := range lines {
		b.LineWidths[i] = measure(face, line)
		b.Width = max(b.Width, b.LineWidths[i])
	}
	b.Height = len(lines)*b.LineHeight + lineSpacing*(len(lines)-1)
	return b, nil
}

// Draw rasterizes the block in the given color onto a transparent image of
// exactly Width x Height pixels. Each line is horizontally centered, its top
// edge at the line's vertical offset.
func (b *Block) Draw(c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))

	face := b.Typeface.NewFace()
	defer face.Close()

	ascent := face.Metrics().Ascent
	center := fixed.I(b.Width) / 2
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}

	y := 0
	for _, line := range b.Lines {
		d.Dot = fixed.Point26_6{
			X: center - d.MeasureString(line)/2,
			Y: fixed.I(y) + ascent,
		}
		d.DrawString(line)
		y += b.LineHeight + b.Spacing
	}
	return img
}

// Render lays out text and draws it in black. See [Layout] for the wrapping
// and shrinking rules.
func Render(text string, tf Typeface, maxWidth, lineSpacing int) (*image.NRGBA, error) {
	b, err := Layout(text, tf, maxWidth, lineSpacing)
	if err != nil {
		return nil, err
	}
	return b.Draw(color.Black), nil
}

// measure returns the advance width of s in whole pixels, rounded up.
func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
