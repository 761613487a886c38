// Package pipeline turns categories and symbols into a deck of card images.
//
// Generation runs in three steps:
//
//  1. Resize: every symbol is copied and shrunk to fit the layout's symbol
//     box, preserving aspect ratio and never enlarging
//  2. Assign: categories are shuffled and tagged with symbol indices
//  3. Compose: each pairing is rendered into a card by a bounded worker pool
//
// The Runner either returns the complete deck, in assignment order, or an
// error; a failure on any single card aborts the whole deck.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Layout:  card.DefaultLayout(),
//	    Workers: 4,
//	    Seed:    42,
//	}
//	result, err := runner.Generate(ctx, categories, symbols, font, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range result.Cards {
//	    // persist c.Image
//	}
package pipeline

import (
	"image"
	"runtime"
	"time"

	"github.com/matzehuels/anomiadeck/pkg/card"
	"github.com/matzehuels/anomiadeck/pkg/deck"
	"github.com/matzehuels/anomiadeck/pkg/errors"
)

// DefaultWorkers returns the default size of the composition worker pool.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Options contains all configuration for generating a deck.
type Options struct {
	// Layout is the card geometry. A zero Layout is replaced by card.DefaultLayout.
	Layout card.Layout `json:"layout"`

	// Workers bounds the number of cards composed concurrently.
	// Zero means DefaultWorkers.
	Workers int `json:"workers,omitempty"`

	// Seed makes the shuffle reproducible. Zero picks a random seed.
	Seed uint64 `json:"seed,omitempty"`

	// RNG overrides the shuffle source; Seed is ignored when set.
	RNG deck.RNG `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Layout == (card.Layout{}) {
		o.Layout = card.DefaultLayout()
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers cannot be negative, got %d", o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers()
	}
	if o.RNG == nil {
		o.RNG = deck.NewRNG(o.Seed)
	}
	o.validated = true
	return nil
}

// Card is one generated card.
type Card struct {
	// Index is the card's position in the deck.
	Index int

	// Category is the phrase printed on the card.
	Category string

	// Symbol is the index of the symbol in the caller's symbol list.
	Symbol int

	// Image is the rendered card, exactly Layout.Width x Layout.Height.
	Image *image.NRGBA
}

// Result contains the outputs of a generation run.
type Result struct {
	// Cards holds the deck in assignment order.
	Cards []Card

	// Stats contains timing and distribution information.
	Stats Stats
}

// Stats contains generation statistics.
type Stats struct {
	CardCount   int
	SymbolCount int
	Workers     int
	SymbolUsage []int
	ResizeTime  time.Duration
	ComposeTime time.Duration
	TotalTime   time.Duration
}
