// Package text lays out and rasterizes category phrases for card faces.
//
// A phrase is split on single spaces and wrapped greedily into lines no wider
// than a width budget. If the widest single word does not fit at the
// typeface's size, a smaller variant of the typeface is derived first so that
// every word fits on its own; the caller's typeface is never modified.
//
// # Typefaces
//
// [Typeface] is the handle the layout works against. [Font] is the TrueType
// implementation backed by golang/freetype. Faces obtained with
// [Typeface.NewFace] carry glyph caches and are not safe for concurrent use,
// so every layout or draw call opens its own face and closes it when done.
//
// # Usage
//
//	f, err := text.ParseFont(ttf, 55)
//	if err != nil {
//	    return err
//	}
//	img, err := text.Render("Things Found In A Kitchen", f, 440, 0)
//
// The returned image is sized exactly to the rendered lines and is
// transparent everywhere except the glyphs.
package text
