package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/anomiadeck/pkg/card"
	"github.com/matzehuels/anomiadeck/pkg/deck"
	"github.com/matzehuels/anomiadeck/pkg/observability"
	"github.com/matzehuels/anomiadeck/pkg/text"
)

// Runner generates decks.
//
// The Runner is stateless except for its logger and hooks - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
	Hooks  observability.GeneratorHooks
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Generate produces one card per category.
//
// symbols are resized into private copies; the caller's images and tf are
// only read. tf is derived to the layout's font size when it differs. The
// returned cards follow the shuffled assignment order regardless of which
// worker finished first.
//
// An empty category list yields an empty deck. Otherwise generation fails if
// there are no symbols, if the layout is invalid, or if any card fails to
// compose; no partial deck is returned.
func (r *Runner) Generate(ctx context.Context, categories []string, symbols []image.Image, tf text.Typeface, opts Options) (*Result, error) {
	start := time.Now()
	hooks := observability.OrNoop(r.Hooks)

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks.OnGenerateStart(ctx, len(categories), len(symbols))
	result, err := r.generate(ctx, categories, symbols, tf, opts)
	total := time.Since(start)
	hooks.OnGenerateComplete(ctx, len(categories), total, err)
	if err != nil {
		return nil, err
	}
	result.Stats.TotalTime = total
	return result, nil
}

func (r *Runner) generate(ctx context.Context, categories []string, symbols []image.Image, tf text.Typeface, opts Options) (*Result, error) {
	result := &Result{
		Cards: []Card{},
		Stats: Stats{
			SymbolCount: len(symbols),
			Workers:     opts.Workers,
		},
	}
	if len(categories) == 0 {
		r.Logger.Warn("no categories, nothing to generate")
		return result, nil
	}

	// Stage 1: Resize
	resizeStart := time.Now()
	thumbs, err := Thumbnails(symbols, opts.Layout.SymbolWidth, opts.Layout.SymbolHeight)
	if err != nil {
		return nil, fmt.Errorf("resize symbols: %w", err)
	}
	result.Stats.ResizeTime = time.Since(resizeStart)
	r.Logger.Debug("resized symbols",
		"symbols", len(thumbs),
		"bounds", fmt.Sprintf("%dx%d", opts.Layout.SymbolWidth, opts.Layout.SymbolHeight),
		"duration", result.Stats.ResizeTime)

	// Stage 2: Assign
	pairs, err := deck.Assign(categories, len(thumbs), opts.RNG)
	if err != nil {
		return nil, fmt.Errorf("assign symbols: %w", err)
	}
	result.Stats.SymbolUsage = deck.Usage(pairs, len(thumbs))
	r.Logger.Debug("assigned symbols", "cards", len(pairs), "usage", result.Stats.SymbolUsage)

	// Stage 3: Compose
	base := tf
	if size := float64(opts.Layout.FontSize); tf.Size() != size {
		base = tf.Derive(size)
	}

	composeStart := time.Now()
	cards, err := r.compose(ctx, pairs, thumbs, base, opts)
	if err != nil {
		return nil, fmt.Errorf("compose cards: %w", err)
	}
	result.Cards = cards
	result.Stats.CardCount = len(cards)
	result.Stats.ComposeTime = time.Since(composeStart)

	r.Logger.Info("composed cards",
		"cards", len(cards),
		"workers", opts.Workers,
		"duration", result.Stats.ComposeTime)

	return result, nil
}

// compose renders every pairing on a pool of opts.Workers goroutines. The
// first failure cancels the cards not yet started.
func (r *Runner) compose(ctx context.Context, pairs []deck.Pairing, thumbs []*image.NRGBA, tf text.Typeface, opts Options) ([]Card, error) {
	hooks := observability.OrNoop(r.Hooks)
	cards := make([]Card, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			img, err := card.Compose(p.Category, thumbs[p.Symbol], tf, opts.Layout)
			hooks.OnCardComposed(gctx, i, p.Category, time.Since(start), err)
			if err != nil {
				return fmt.Errorf("card %d (%q): %w", i, p.Category, err)
			}
			cards[i] = Card{
				Index:    i,
				Category: p.Category,
				Symbol:   p.Symbol,
				Image:    img,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}
