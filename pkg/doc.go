// Package pkg provides the core libraries for Anomiadeck card deck generation.
//
// # Overview
//
// Anomiadeck turns a list of category phrases and a folder of symbol images
// into a printable deck of Anomia cards. Every card shows one symbol in the
// centre and its category twice: once along the bottom edge and once,
// rotated 180 degrees, along the top edge, so it reads upright from either
// side of the table.
//
// # Architecture
//
// The typical data flow through Anomiadeck:
//
//	category file + symbol folder + font
//	         ↓
//	    [io] package (load categories, decode symbols)
//	         ↓
//	    [deck] package (shuffle, spread symbols evenly)
//	         ↓
//	    [card] package (compose each card, using [text] for the phrase)
//	         ↓
//	    [io] package (front_NNN.png files + deck.json)
//
// [pipeline] drives the middle steps and runs card composition on a bounded
// worker pool.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/anomiadeck/pkg/card"
//	    "github.com/matzehuels/anomiadeck/pkg/fonts"
//	    "github.com/matzehuels/anomiadeck/pkg/io"
//	    "github.com/matzehuels/anomiadeck/pkg/pipeline"
//	)
//
//	categories, _ := io.LoadCategories("categories.txt")
//	symbols, _ := io.LoadSymbols("symbols/")
//	font, _ := fonts.Default(card.DefaultFontSize)
//
//	result, _ := pipeline.NewRunner(nil).Generate(context.Background(),
//	    categories, io.Images(symbols), font, pipeline.Options{Seed: 42})
//
//	io.WriteCards("output", result.Cards)
//
// # Main Packages
//
// [text] - Measures, wraps and draws a phrase within a width budget,
// shrinking the font when a single word would not fit.
//
// [card] - Card geometry ([card.Layout]) and composition of background,
// symbol and the two text copies.
//
// [deck] - Shuffles categories and assigns symbol indices so that symbol
// usage differs by at most one card.
//
// [pipeline] - Resizes symbols, assigns them and composes every card. Either
// the whole deck is produced, in assignment order, or an error is returned.
//
// [io] - Category loaders (txt, csv), symbol folder scan, PNG output and
// the deck manifest.
//
// [fonts] - The bundled default typeface.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Optional hooks for progress reporting.
//
// [buildinfo] - Version metadata injected at build time.
//
// [text]: github.com/matzehuels/anomiadeck/pkg/text
// [card]: github.com/matzehuels/anomiadeck/pkg/card
// [card.Layout]: github.com/matzehuels/anomiadeck/pkg/card.Layout
// [deck]: github.com/matzehuels/anomiadeck/pkg/deck
// [pipeline]: github.com/matzehuels/anomiadeck/pkg/pipeline
// [io]: github.com/matzehuels/anomiadeck/pkg/io
// [fonts]: github.com/matzehuels/anomiadeck/pkg/fonts
// [errors]: github.com/matzehuels/anomiadeck/pkg/errors
// [observability]: github.com/matzehuels/anomiadeck/pkg/observability
// [buildinfo]: github.com/matzehuels/anomiadeck/pkg/buildinfo
package pkg
