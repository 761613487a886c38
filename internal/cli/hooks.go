package cli

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/matzehuels/anomiadeck/pkg/observability"
)

// spinnerHooks reports composition progress on a spinner.
type spinnerHooks struct {
	observability.NoopGeneratorHooks
	spinner  *Spinner
	total    atomic.Int64
	composed atomic.Int64
}

var _ observability.GeneratorHooks = (*spinnerHooks)(nil)

func newSpinnerHooks(s *Spinner) *spinnerHooks {
	return &spinnerHooks{spinner: s}
}

func (h *spinnerHooks) OnGenerateStart(_ context.Context, categories, _ int) {
	h.total.Store(int64(categories))
	h.composed.Store(0)
}

func (h *spinnerHooks) OnCardComposed(_ context.Context, _ int, _ string, _ time.Duration, err error) {
	if err != nil {
		return
	}
	n := h.composed.Add(1)
	h.spinner.SetMessage(fmt.Sprintf("Composing cards %d/%d...", n, h.total.Load()))
}
