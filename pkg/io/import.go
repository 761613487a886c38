package io

import (
	"bufio"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/anomiadeck/pkg/errors"
)

// Category file formats.
const (
	FormatTXT = "txt"
	FormatCSV = "csv"
)

var categoryReaders = map[string]func(io.Reader) ([]string, error){
	FormatTXT: readLines,
	FormatCSV: readFirstColumn,
}

// CategoryFormats returns the supported category file extensions.
func CategoryFormats() []string {
	return []string{FormatTXT, FormatCSV}
}

// ReadCategories decodes categories from r in the given format.
//
// Entries are trimmed and blank ones dropped. Every remaining entry must pass
// [errors.ValidateCategory]. The result is never nil. ReadCategories does not
// close r.
func ReadCategories(r io.Reader, format string) ([]string, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	read, ok := categoryReaders[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported category format %q (supported: %s)", format, strings.Join(CategoryFormats(), ", "))
	}

	raw, err := read(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read %s categories", format)
	}

	categories := make([]string, 0, len(raw))
	for i, c := range raw {
		c = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if c == "" {
			continue
		}
		if err := errors.ValidateCategory(c); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// LoadCategories reads the category file at path, choosing the format from
// its extension.
func LoadCategories(path string) ([]string, error) {
	ext := filepath.Ext(path)
	if err := errors.ValidateExtension(ext, CategoryFormats()...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceLoad, err, "open %s", path)
	}
	defer f.Close()

	categories, err := ReadCategories(f, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return categories, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func readFirstColumn(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var cells []string
	for {
		rec, err := cr.Read()
		if stderrors.Is(err, io.EOF) {
			return cells, nil
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > 0 {
			cells = append(cells, rec[0])
		}
	}
}

// Symbol is a decoded symbol image and the file it came from.
type Symbol struct {
	Name  string
	Image image.Image
}

// LoadSymbols decodes every regular, non-hidden file in dir, sorted by name.
// An empty directory yields an empty slice; the caller decides whether that
// is an error.
func LoadSymbols(dir string) ([]Symbol, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceLoad, err, "read symbol folder %s", dir)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	symbols := make([]Symbol, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeResourceLoad, err, "decode symbol %s", path)
		}
		symbols = append(symbols, Symbol{Name: name, Image: img})
	}
	return symbols, nil
}

// Images returns the images of symbols in order.
func Images(symbols []Symbol) []image.Image {
	out := make([]image.Image, len(symbols))
	for i, s := range symbols {
		out[i] = s.Image
	}
	return out
}

// Names returns the file names of symbols in order.
func Names(symbols []Symbol) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.Name
	}
	return out
}
