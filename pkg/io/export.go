package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/matzehuels/anomiadeck/pkg/buildinfo"
	"github.com/matzehuels/anomiadeck/pkg/card"
	"github.com/matzehuels/anomiadeck/pkg/errors"
	"github.com/matzehuels/anomiadeck/pkg/pipeline"
)

// ManifestFile is the manifest's file name inside the output directory.
const ManifestFile = "deck.json"

// CardFileName returns the image file name of the card at index.
func CardFileName(index int) string {
	return fmt.Sprintf("front_%03d.png", index)
}

// WriteCards writes every card as a PNG into dir, creating dir if absent, and
// returns the written paths in card order. The first failure stops the write.
func WriteCards(dir string, cards []pipeline.Card) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "create output folder %s", dir)
	}

	paths := make([]string, 0, len(cards))
	for _, c := range cards {
		path := filepath.Join(dir, CardFileName(c.Index))
		if err := imaging.Save(c.Image, path); err != nil {
			return paths, errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Manifest describes a generated deck.
type Manifest struct {
	ID        string         `json:"id"`
	Generator string         `json:"generator"`
	CreatedAt time.Time      `json:"created_at"`
	Seed      uint64         `json:"seed,omitempty"`
	Layout    card.Layout    `json:"layout"`
	Cards     []ManifestCard `json:"cards"`
}

// ManifestCard is one card entry of a [Manifest].
type ManifestCard struct {
	File     string `json:"file"`
	Category string `json:"category"`
	Symbol   string `json:"symbol"`
}

// NewManifest builds a manifest for cards. symbolNames maps each card's
// symbol index to the symbol's file name.
func NewManifest(cards []pipeline.Card, symbolNames []string, layout card.Layout, seed uint64) Manifest {
	m := Manifest{
		ID:        uuid.NewString(),
		Generator: buildinfo.Generator(),
		CreatedAt: time.Now().UTC(),
		Seed:      seed,
		Layout:    layout,
		Cards:     make([]ManifestCard, len(cards)),
	}
	for i, c := range cards {
		mc := ManifestCard{File: CardFileName(c.Index), Category: c.Category}
		if c.Symbol >= 0 && c.Symbol < len(symbolNames) {
			mc.Symbol = symbolNames[c.Symbol]
		}
		m.Cards[i] = mc
	}
	return m
}

// WriteManifest encodes m as indented JSON to w.
func WriteManifest(m Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportManifest writes m to dir/deck.json and returns the path.
func ExportManifest(m Manifest, dir string) (string, error) {
	path := filepath.Join(dir, ManifestFile)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	defer f.Close()

	if err := WriteManifest(m, f); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return path, nil
}

// ReadManifest decodes a manifest from r.
func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode manifest")
	}
	return m, nil
}
