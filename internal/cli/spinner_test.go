package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/anomiadeck/pkg/observability"
)

func TestSpinnerBasic(t *testing.T) {
	s := newSpinner("Testing...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	// Spinner should be stopped, not cancelled
	// (Cancelled returns true only if Stop was called due to context cancellation)
	_ = s.Cancelled() // Verify method is callable; value not asserted as Stop() doesn't set cancelled
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Testing with context...")
	s.Start()

	// Cancel the context
	cancel()

	// Give goroutine time to notice cancellation
	time.Sleep(100 * time.Millisecond)

	// Spinner should be cancelled
	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Testing with timeout...")
	s.Start()

	// Wait for timeout
	time.Sleep(100 * time.Millisecond)

	// Spinner should be cancelled due to timeout
	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Testing idempotent stop...")
	s.Start()

	// Stop multiple times should not panic
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	s := newSpinner("Testing success...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Done!")
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner("Testing error...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Failed!")
}

func TestSpinnerSetMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("short")
	s.w = &buf

	s.SetMessage("a much longer message")
	if got := s.Message(); got != "a much longer message" {
		t.Errorf("Message() = %q", got)
	}

	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "a much longer message") {
		t.Error("spinner should draw the updated message")
	}
	// The final clear must cover the longest message shown.
	if !strings.Contains(buf.String(), strings.Repeat(" ", len("a much longer message")+4)) {
		t.Error("clearLine should blank the widest message")
	}
}

func TestSpinnerHooksReportProgress(t *testing.T) {
	s := newSpinner("Composing cards...")
	h := newSpinnerHooks(s)
	ctx := context.Background()

	var hooks observability.GeneratorHooks = h
	hooks.OnGenerateStart(ctx, 3, 2)
	hooks.OnCardComposed(ctx, 0, "Fruit", time.Millisecond, nil)
	hooks.OnCardComposed(ctx, 1, "River", time.Millisecond, nil)

	if got := s.Message(); got != "Composing cards 2/3..." {
		t.Errorf("Message() = %q, want %q", got, "Composing cards 2/3...")
	}

	hooks.OnCardComposed(ctx, 2, "", time.Millisecond, context.Canceled)
	if got := s.Message(); got != "Composing cards 2/3..." {
		t.Errorf("failed card should not advance progress, got %q", got)
	}
	hooks.OnGenerateComplete(ctx, 3, time.Millisecond, context.Canceled)
}
