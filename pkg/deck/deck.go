// Package deck assigns symbols to shuffled categories.
//
// The categories are shuffled uniformly, then the shuffled sequence is cut
// into M contiguous runs of near-equal length, run k receiving symbol k.
// Because the order is random, the category-to-symbol mapping is random,
// while every symbol is used either floor(N/M) or ceil(N/M) times.
package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/anomiadeck/pkg/errors"
)

// ErrNoSymbols is returned when categories would have to be tagged from an
// empty symbol set.
var ErrNoSymbols = errors.New(errors.ErrCodeEmptySymbolSet, "no symbols to assign")

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// NewRNG returns a PCG-backed RNG. A zero seed draws a random seed.
func NewRNG(seed uint64) RNG {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pairing is one card of the deck: a category and the index of its symbol.
type Pairing struct {
	Category string `json:"category"`
	Symbol   int    `json:"symbol"`
}

// Shuffle returns a uniformly random permutation of categories using
// Fisher-Yates. The input slice is not modified.
func Shuffle(categories []string, rng RNG) []string {
	out := make([]string, len(categories))
	copy(out, categories)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SymbolIndex returns the symbol for shuffled position i of n cards tagged
// from m symbols: floor(i/n * m), computed in integers.
func SymbolIndex(i, n, m int) int {
	return i * m / n
}

// Assign shuffles categories and tags each with a symbol index in
// [0, symbolCount). The result has one Pairing per category, in shuffled
// order.
//
// An empty category list yields an empty deck. Non-empty categories with a
// symbolCount below one fail with [ErrNoSymbols].
func Assign(categories []string, symbolCount int, rng RNG) ([]Pairing, error) {
	n := len(categories)
	if n == 0 {
		return []Pairing{}, nil
	}
	if symbolCount <= 0 {
		return nil, fmt.Errorf("tag %d categories with %d symbols: %w", n, symbolCount, ErrNoSymbols)
	}

	shuffled := Shuffle(categories, rng)
	pairs := make([]Pairing, n)
	for i, c := range shuffled {
		pairs[i] = Pairing{Category: c, Symbol: SymbolIndex(i, n, symbolCount)}
	}
	return pairs, nil
}

// Usage counts how many pairings use each of the symbolCount symbols.
func Usage(pairs []Pairing, symbolCount int) []int {
	counts := make([]int, max(symbolCount, 0))
	for _, p := range pairs {
		if p.Symbol >= 0 && p.Symbol < len(counts) {
			counts[p.Symbol]++
		}
	}
	return counts
}
