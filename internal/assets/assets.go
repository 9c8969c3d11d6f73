// Package assets provides the sprite catalog used by the game engine.
// Sprites are glyph frames with a world-space footprint; the engine keeps
// only the footprint and an opaque id, hosts look the glyphs up to draw.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/midway/internal/core"
)

//go:embed data/sprites.yaml
var defaultSpritesYAML []byte

// ErrUnknownAsset is returned when an id is not present in the catalog.
var ErrUnknownAsset = errors.New("unknown asset")

// Asset is one drawable sprite.
type Asset struct {
	ID         string
	Width      float64    // World units
	Height     float64    // World units
	Frames     [][]string // Glyph rows per frame
	FrameCount int        // Logical animation length
	Color      core.Color
}

// Frame returns the glyph rows of logical frame i.
func (a Asset) Frame(i int) []string {
	if len(a.Frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	return a.Frames[i%len(a.Frames)]
}

// Provider resolves asset ids.
type Provider interface {
	Lookup(id string) (Asset, error)
}

// spriteFile is the YAML layout of a catalog document.
type spriteFile struct {
	Version string                `yaml:"version"`
	Sprites map[string]spriteSpec `yaml:"sprites"`
}

type spriteSpec struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Color      string     `yaml:"color"`
	FrameCount int        `yaml:"frame_count"`
	Frames     [][]string `yaml:"frames"`
}

// Catalog is an in-memory Provider.
type Catalog struct {
	assets map[string]Asset
}

// Default returns the embedded catalog.
// It panics if the embedded document is broken, which is a build defect.
func Default() *Catalog {
	c, err := Parse(defaultSpritesYAML)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sprite catalog: %w", err)
	}

	c := &Catalog{assets: make(map[string]Asset, len(f.Sprites))}
	for id, s := range f.Sprites {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("sprite %q: footprint must be positive, got %vx%v", id, s.Width, s.Height)
		}
		if len(s.Frames) == 0 {
			return nil, fmt.Errorf("sprite %q: no frames", id)
		}
		color, ok := core.ParseColor(s.Color)
		if !ok {
			return nil, fmt.Errorf("sprite %q: unknown color %q", id, s.Color)
		}
		count := s.FrameCount
		if count < len(s.Frames) {
			count = len(s.Frames)
		}
		c.assets[id] = Asset{
			ID:         id,
			Width:      s.Width,
			Height:     s.Height,
			Frames:     s.Frames,
			FrameCount: count,
			Color:      color,
		}
	}
	return c, nil
}

// Lookup returns the asset registered under id.
func (c *Catalog) Lookup(id string) (Asset, error) {
	a, ok := c.assets[id]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, id)
	}
	return a, nil
}

// IDs returns all asset ids, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.assets))
	for id := range c.assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve looks up every id and reports all missing ones at once.
func Resolve(p Provider, ids []string) (map[string]Asset, error) {
	out := make(map[string]Asset, len(ids))
	var errs []error
	for _, id := range ids {
		a, err := p.Lookup(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[id] = a
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
