package cli

import (
	stderrors "errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anomiadeck/pkg/errors"
)

// fileConfig is the TOML configuration accepted by --config. Unset keys
// leave the flag defaults in place.
//
//	width = 500
//	height = 800
//	font_size = 55
//	symbol_width = 300
//	symbol_height = 300
//	margin = 30
//	line_spacing = 4
//	workers = 8
//	seed = 42
type fileConfig struct {
	Width        *int    `toml:"width"`
	Height       *int    `toml:"height"`
	FontSize     *int    `toml:"font_size"`
	SymbolWidth  *int    `toml:"symbol_width"`
	SymbolHeight *int    `toml:"symbol_height"`
	Margin       *int    `toml:"margin"`
	LineSpacing  *int    `toml:"line_spacing"`
	Workers      *int    `toml:"workers"`
	Seed         *uint64 `toml:"seed"`
}

// loadConfig decodes the TOML file at path. Keys that do not map to a
// setting are rejected.
func loadConfig(path string) (*fileConfig, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeResourceLoad, err, "read config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &fc, nil
}

// apply copies configured values into opts, skipping any setting whose flag
// was given explicitly on the command line.
func (fc *fileConfig) apply(cmd *cobra.Command, opts *generateOpts) {
	flags := cmd.Flags()
	setInt := func(flag string, dst, v *int) {
		if v != nil && !flags.Changed(flag) {
			*dst = *v
		}
	}

	setInt("width", &opts.layout.Width, fc.Width)
	setInt("height", &opts.layout.Height, fc.Height)
	setInt("font-size", &opts.layout.FontSize, fc.FontSize)
	setInt("symbol-width", &opts.layout.SymbolWidth, fc.SymbolWidth)
	setInt("symbol-height", &opts.layout.SymbolHeight, fc.SymbolHeight)
	setInt("margin", &opts.layout.Margin, fc.Margin)
	setInt("line-spacing", &opts.layout.LineSpacing, fc.LineSpacing)
	setInt("workers", &opts.workers, fc.Workers)
	if fc.Seed != nil && !flags.Changed("seed") {
		opts.seed = *fc.Seed
	}
}
