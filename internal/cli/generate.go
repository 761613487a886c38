package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anomiadeck/pkg/card"
	"github.com/matzehuels/anomiadeck/pkg/errors"
	"github.com/matzehuels/anomiadeck/pkg/fonts"
	pkgio "github.com/matzehuels/anomiadeck/pkg/io"
	"github.com/matzehuels/anomiadeck/pkg/pipeline"
	"github.com/matzehuels/anomiadeck/pkg/text"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	layout   card.Layout // card geometry
	workers  int         // concurrent card compositions (0 = one per CPU)
	seed     uint64      // shuffle seed (0 = random)
	config   string      // optional TOML config file
	manifest bool        // write deck.json next to the cards
}

// generateArgs holds the positional arguments of the generate command.
type generateArgs struct {
	categories string // category file (.txt or .csv)
	symbols    string // folder of symbol images
	font       string // TrueType font file, or "-" for the bundled font
	output     string // output folder
}

// parseGenerateArgs fills in defaults for the optional positional arguments.
func parseGenerateArgs(args []string) generateArgs {
	in := generateArgs{
		categories: args[0],
		symbols:    args[1],
		font:       bundledFontArg,
		output:     defaultOutputDir,
	}
	if len(args) > 2 && args[2] != "" {
		in.font = args[2]
	}
	if len(args) > 3 && args[3] != "" {
		in.output = args[3]
	}
	return in
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		layout:   card.DefaultLayout(),
		manifest: true,
	}

	cmd := &cobra.Command{
		Use:   "generate CATEGORY_FILE SYMBOL_FOLDER [FONT_FILE] [OUTPUT_FOLDER]",
		Short: "Generate a deck of Anomia cards",
		Long: `Generate a deck of Anomia cards.

One card is produced per category in CATEGORY_FILE (.txt: one per line,
.csv: first column). Categories are shuffled and the images in SYMBOL_FOLDER
are spread evenly over the deck. Cards are written as front_000.png,
front_001.png, ... into OUTPUT_FOLDER (default "output").

FONT_FILE is a TrueType font; omit it or pass "-" to use the bundled font.

Settings are resolved from built-in defaults, then --config, then flags.

Examples:
  anomiadeck generate categories.txt symbols/
  anomiadeck generate categories.csv symbols/ Roboto-Bold.ttf deck/
  anomiadeck generate categories.txt symbols/ - deck/ --seed 42 --line-spacing 4`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				fc, err := loadConfig(opts.config)
				if err != nil {
					return err
				}
				fc.apply(cmd, &opts)
			}
			return c.runGenerate(cmd.Context(), parseGenerateArgs(args), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.layout.Width, "width", "W", opts.layout.Width, "card width in pixels")
	cmd.Flags().IntVarP(&opts.layout.Height, "height", "H", opts.layout.Height, "card height in pixels")
	cmd.Flags().IntVar(&opts.layout.FontSize, "font-size", opts.layout.FontSize, "base font size in points")
	cmd.Flags().IntVar(&opts.layout.SymbolWidth, "symbol-width", opts.layout.SymbolWidth, "maximum symbol width in pixels")
	cmd.Flags().IntVar(&opts.layout.SymbolHeight, "symbol-height", opts.layout.SymbolHeight, "maximum symbol height in pixels")
	cmd.Flags().IntVarP(&opts.layout.Margin, "margin", "m", opts.layout.Margin, "distance between text and card edge in pixels")
	cmd.Flags().IntVar(&opts.layout.LineSpacing, "line-spacing", opts.layout.LineSpacing, "extra pixels between wrapped lines")
	cmd.Flags().IntVarP(&opts.workers, "workers", "j", 0, "cards composed in parallel (0 = one per CPU)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "shuffle seed for a reproducible deck (0 = random)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML file with layout settings")
	cmd.Flags().BoolVar(&opts.manifest, "manifest", opts.manifest, "write "+pkgio.ManifestFile+" next to the cards")

	return cmd
}

// runGenerate loads the inputs, generates the deck and writes it to disk.
// Nothing is written unless every card was composed.
func (c *CLI) runGenerate(ctx context.Context, in generateArgs, opts generateOpts) error {
	popts := pipeline.Options{
		Layout:  opts.layout,
		Workers: opts.workers,
		Seed:    opts.seed,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)

	categories, err := pkgio.LoadCategories(in.categories)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if len(categories) == 0 {
		warn := errors.New(errors.ErrCodeEmptyCategories, "no categories in %s, nothing to generate", in.categories)
		printWarning("%s", errors.UserMessage(warn))
		return nil
	}
	prog.done(fmt.Sprintf("Loaded %d categories", len(categories)))

	symbols, err := pkgio.LoadSymbols(in.symbols)
	if err != nil {
		return fmt.Errorf("load symbols: %w", err)
	}
	prog.done(fmt.Sprintf("Loaded %d symbols", len(symbols)))

	tf, err := loadTypeface(in.font, float64(popts.Layout.FontSize))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	printInfo("Generating %s from %s", pluralize(len(categories), "card"), StyleHighlight.Render(in.categories))

	spinner := newSpinnerWithContext(ctx, "Composing cards...")
	runner := c.newRunner()
	runner.Hooks = newSpinnerHooks(spinner)
	spinner.Start()

	result, err := runner.Generate(ctx, categories, pkgio.Images(symbols), tf, popts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return fmt.Errorf("generate: %w", err)
	}
	spinner.Stop()

	if _, err := pkgio.WriteCards(in.output, result.Cards); err != nil {
		return fmt.Errorf("write cards: %w", err)
	}

	printSuccess("Generated %s in %s", pluralize(len(result.Cards), "card"), StyleHighlight.Render(in.output))
	printStats(result.Stats.CardCount, result.Stats.SymbolCount, result.Stats.Workers, result.Stats.TotalTime)
	printUsage(pkgio.Names(symbols), result.Stats.SymbolUsage)

	if opts.manifest {
		m := pkgio.NewManifest(result.Cards, pkgio.Names(symbols), popts.Layout, opts.seed)
		path, err := pkgio.ExportManifest(m, in.output)
		if err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		printFile(path)
	}

	return nil
}

// loadTypeface returns the font at path, or the bundled font for "-".
func loadTypeface(path string, size float64) (text.Typeface, error) {
	if path == bundledFontArg {
		return fonts.Default(size)
	}
	f, err := text.LoadFont(path, size)
	if err != nil {
		return nil, err
	}
	return f, nil
}
