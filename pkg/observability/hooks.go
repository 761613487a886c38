// Package observability provides hooks for metrics, tracing, and logging.
//
// Deck generation reports its progress through [GeneratorHooks] without
// depending on any metrics backend. A pipeline Runner holds its hooks as a
// field; the zero value is a no-op, so instrumentation is opt-in:
//
//	runner := pipeline.NewRunner(logger)
//	runner.Hooks = &myHooks{}
//
// Hooks may be called from several worker goroutines at once and must be
// safe for concurrent use.
package observability

import (
	"context"
	"time"
)

// GeneratorHooks receives events from deck generation.
type GeneratorHooks interface {
	// OnGenerateStart is called once, before any card is composed.
	OnGenerateStart(ctx context.Context, categories, symbols int)

	// OnCardComposed is called after each composition attempt. Cards skipped
	// after an earlier failure are not reported.
	OnCardComposed(ctx context.Context, index int, category string, duration time.Duration, err error)

	// OnGenerateComplete is called once with the outcome of the whole deck.
	OnGenerateComplete(ctx context.Context, cards int, duration time.Duration, err error)
}

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerateStart(context.Context, int, int) {}
func (NoopGeneratorHooks) OnCardComposed(context.Context, int, string, time.Duration, error) {}
func (NoopGeneratorHooks) OnGenerateComplete(context.Context, int, time.Duration, error) {}

// OrNoop returns h, or a no-op implementation when h is nil.
func OrNoop(h GeneratorHooks) GeneratorHooks {
	if h == nil {
		return NoopGeneratorHooks{}
	}
	return h
}
