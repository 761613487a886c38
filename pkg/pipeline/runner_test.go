package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"image"
	"image/color"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"go.uber.org/goleak"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/anomiadeck/pkg/card"
	"github.com/matzehuels/anomiadeck/pkg/errors"
	"github.com/matzehuels/anomiadeck/pkg/text"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func testRunner(hooks *countingHooks) *Runner {
	r := NewRunner(log.New(io.Discard))
	if hooks != nil {
		r.Hooks = hooks
	}
	return r
}

func testFont(t *testing.T) *text.Font {
	t.Helper()
	f, err := text.ParseFont(goregular.TTF, 12)
	if err != nil {
		t.Fatalf("ParseFont() error: %v", err)
	}
	return f
}

func smallLayout() card.Layout {
	return card.Layout{
		Width:        200,
		Height:       300,
		FontSize:     20,
		SymbolWidth:  40,
		SymbolHeight: 40,
		Margin:       10,
		LineSpacing:  2,
	}
}

func testSymbols() []image.Image {
	return []image.Image{
		imaging.New(500, 500, red),
		imaging.New(500, 500, blue),
	}
}

type countingHooks struct {
	mu       sync.Mutex
	started  int
	composed atomic.Int32
	failed   atomic.Int32
	done     int
	lastErr  error
}

func (h *countingHooks) OnGenerateStart(context.Context, int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started++
}

func (h *countingHooks) OnCardComposed(_ context.Context, _ int, _ string, _ time.Duration, err error) {
	h.composed.Add(1)
	if err != nil {
		h.failed.Add(1)
	}
}

func (h *countingHooks) OnGenerateComplete(_ context.Context, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.done++
	h.lastErr = err
}

func TestGenerate(t *testing.T) {
	categories := []string{"Fruit", "Vegetable", "Car Brand", "Things Found In A Garage"}
	hooks := &countingHooks{}

	result, err := testRunner(hooks).Generate(context.Background(), categories, testSymbols(), testFont(t),
		Options{Layout: smallLayout(), Workers: 2, Seed: 1})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(result.Cards) != 4 {
		t.Fatalf("got %d cards, want 4", len(result.Cards))
	}

	var got []string
	for i, c := range result.Cards {
		if c.Index != i {
			t.Errorf("card %d has Index %d", i, c.Index)
		}
		if size := c.Image.Bounds().Size(); size != image.Pt(200, 300) {
			t.Errorf("card %d size = %v, want 200x300", i, size)
		}
		got = append(got, c.Category)
	}
	sort.Strings(got)
	want := append([]string(nil), categories...)
	sort.Strings(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want a permutation of %v", got, want)
		}
	}

	// 4 cards over 2 symbols: first half symbol 0, second half symbol 1.
	wantSymbols := []int{0, 0, 1, 1}
	for i, c := range result.Cards {
		if c.Symbol != wantSymbols[i] {
			t.Errorf("card %d symbol = %d, want %d", i, c.Symbol, wantSymbols[i])
		}
	}
	if u := result.Stats.SymbolUsage; len(u) != 2 || u[0] != 2 || u[1] != 2 {
		t.Errorf("SymbolUsage = %v, want [2 2]", u)
	}
	if result.Stats.CardCount != 4 || result.Stats.SymbolCount != 2 || result.Stats.Workers != 2 {
		t.Errorf("Stats = %+v", result.Stats)
	}

	if hooks.started != 1 || hooks.done != 1 || hooks.composed.Load() != 4 {
		t.Errorf("hooks: started=%d composed=%d done=%d", hooks.started, hooks.composed.Load(), hooks.done)
	}
}

func TestGenerateDrawsAssignedSymbol(t *testing.T) {
	result, err := testRunner(nil).Generate(context.Background(), []string{"A", "B"}, testSymbols(), testFont(t),
		Options{Layout: smallLayout(), Workers: 1, Seed: 3})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, c := range result.Cards {
		centre := c.Image.NRGBAAt(100, 150)
		switch c.Symbol {
		case 0:
			if centre.R < 200 || centre.B > 50 {
				t.Errorf("card %d centre = %v, want red", c.Index, centre)
			}
		case 1:
			if centre.B < 200 || centre.R > 50 {
				t.Errorf("card %d centre = %v, want blue", c.Index, centre)
			}
		}
	}
}

func TestGenerateOrderIndependentOfWorkers(t *testing.T) {
	categories := []string{"Fruit", "Vegetable", "Car Brand", "Famous Painter", "Board Game", "River", "Cheese"}
	f := testFont(t)

	serial, err := testRunner(nil).Generate(context.Background(), categories, testSymbols(), f,
		Options{Layout: smallLayout(), Workers: 1, Seed: 99})
	if err != nil {
		t.Fatalf("serial Generate() error: %v", err)
	}
	parallel, err := testRunner(nil).Generate(context.Background(), categories, testSymbols(), f,
		Options{Layout: smallLayout(), Workers: 8, Seed: 99})
	if err != nil {
		t.Fatalf("parallel Generate() error: %v", err)
	}

	for i := range serial.Cards {
		a, b := serial.Cards[i], parallel.Cards[i]
		if a.Category != b.Category || a.Symbol != b.Symbol {
			t.Errorf("card %d: serial (%q, %d) != parallel (%q, %d)", i, a.Category, a.Symbol, b.Category, b.Symbol)
		}
		if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
			t.Errorf("card %d pixels differ between worker counts", i)
		}
	}
}

func TestGenerateEmptyCategories(t *testing.T) {
	for _, symbols := range [][]image.Image{testSymbols(), nil} {
		result, err := testRunner(nil).Generate(context.Background(), nil, symbols, testFont(t),
			Options{Layout: smallLayout()})
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if len(result.Cards) != 0 {
			t.Errorf("got %d cards, want 0", len(result.Cards))
		}
	}
}

func TestGenerateNoSymbols(t *testing.T) {
	hooks := &countingHooks{}
	_, err := testRunner(hooks).Generate(context.Background(), []string{"Fruit"}, nil, testFont(t),
		Options{Layout: smallLayout()})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeEmptySymbolSet {
		t.Errorf("code = %q, want %q", got, errors.ErrCodeEmptySymbolSet)
	}
	if hooks.composed.Load() != 0 {
		t.Errorf("composed %d cards, want 0", hooks.composed.Load())
	}
	if hooks.lastErr == nil {
		t.Error("OnGenerateComplete should receive the error")
	}
}

func TestGenerateInvalidLayout(t *testing.T) {
	l := smallLayout()
	l.Margin = 150
	hooks := &countingHooks{}

	_, err := testRunner(hooks).Generate(context.Background(), []string{"Fruit"}, testSymbols(), testFont(t),
		Options{Layout: l})
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidLayout {
		t.Errorf("code = %q, want %q", got, errors.ErrCodeInvalidLayout)
	}
	if hooks.started != 0 || hooks.composed.Load() != 0 {
		t.Error("no work should start for an invalid layout")
	}
}

func TestGenerateFailsWholeDeck(t *testing.T) {
	categories := []string{"Fruit", "", "Vegetable", "Car Brand"}
	hooks := &countingHooks{}

	result, err := testRunner(hooks).Generate(context.Background(), categories, testSymbols(), testFont(t),
		Options{Layout: smallLayout(), Workers: 1, Seed: 5})
	if err == nil {
		t.Fatal("expected error for blank category")
	}
	if result != nil {
		t.Error("no partial deck should be returned")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidInput {
		t.Errorf("code = %q, want %q", got, errors.ErrCodeInvalidInput)
	}
	if hooks.failed.Load() != 1 {
		t.Errorf("failed cards = %d, want 1", hooks.failed.Load())
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testRunner(nil).Generate(ctx, []string{"Fruit", "Vegetable"}, testSymbols(), testFont(t),
		Options{Layout: smallLayout(), Workers: 1})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGenerateDoesNotMutateInputs(t *testing.T) {
	categories := []string{"C", "B", "A"}
	symbols := testSymbols()
	before := append([]uint8(nil), symbols[0].(*image.NRGBA).Pix...)
	f := testFont(t)

	_, err := testRunner(nil).Generate(context.Background(), categories, symbols, f,
		Options{Layout: smallLayout(), Seed: 11})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if categories[0] != "C" || categories[1] != "B" || categories[2] != "A" {
		t.Errorf("categories mutated: %v", categories)
	}
	if !bytes.Equal(before, symbols[0].(*image.NRGBA).Pix) {
		t.Error("symbol pixels mutated")
	}
	if symbols[0].Bounds().Size() != image.Pt(500, 500) {
		t.Error("symbol resized in place")
	}
	if f.Size() != 12 {
		t.Errorf("font size = %v, want 12", f.Size())
	}
}
