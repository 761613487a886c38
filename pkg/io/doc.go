// Package io reads deck inputs from disk and writes finished decks back.
//
// # Categories
//
// [LoadCategories] picks a reader by the file's extension (case-insensitive):
//
//   - txt: one category per line
//   - csv: the first column of each row; rows may have any width
//
// Surrounding whitespace is trimmed and blank entries are skipped. Any other
// extension is an INVALID_FORMAT error. [ReadCategories] does the same for an
// io.Reader when the format is known.
//
// # Symbols
//
// [LoadSymbols] decodes every regular file of a directory as an image, in
// name order, so symbol indices are stable across runs. Hidden files and
// subdirectories are ignored. A file that fails to decode aborts the scan
// with RESOURCE_LOAD naming the file.
//
// # Output
//
// [WriteCards] writes each card as front_NNN.png (zero-padded to three
// digits) into the output directory, creating it if needed. [ExportManifest]
// records the deck next to the images:
//
//	{
//	  "id": "7c7e4c0e-...",
//	  "generator": "anomiadeck dev",
//	  "created_at": "2025-01-01T12:00:00Z",
//	  "layout": {"width": 500, "height": 800, ...},
//	  "cards": [
//	    {"file": "front_000.png", "category": "Fruit", "symbol": "apple.png"}
//	  ]
//	}
package io
