// Package assets resolves models, animation clips, textures and audio tracks
// by name. The catalog is embedded in the binary and loaded once.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/borker-run/internal/anim"
	"github.com/vovakirdan/borker-run/internal/core"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ErrUnknownAsset is returned when a name is not present in the catalog.
var ErrUnknownAsset = errors.New("assets: unknown asset")

// Kind names a catalog section.
type Kind string

const (
	KindModel     Kind = "model"
	KindAnimation Kind = "animation"
	KindTexture   Kind = "texture"
	KindAudio     Kind = "audio"
)

// ModelSpec describes how a model looks.
type ModelSpec struct {
	Name   string
	Sprite []string
	Color  core.Color
	Width  float64 // world units, across the lanes
	Height float64 // world units, above the floor
}

// Texture is a flat image, drawn as a single glyph in the terminal.
type Texture struct {
	Name  string
	Glyph rune
	Color core.Color
}

type modelDoc struct {
	Color  string   `yaml:"color"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Sprite []string `yaml:"sprite"`
}

type animDoc struct {
	Duration time.Duration `yaml:"duration"`
	Frames   int           `yaml:"frames"`
}

type textureDoc struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

type catalogDoc struct {
	Models     map[string]modelDoc   `yaml:"models"`
	Animations map[string]animDoc    `yaml:"animations"`
	Textures   map[string]textureDoc `yaml:"textures"`
	Audio      []string              `yaml:"audio"`
}

// Catalog holds every asset the game can reference.
type Catalog struct {
	models     map[string]ModelSpec
	animations map[string]anim.Clip
	textures   map[string]Texture
	audio      map[string]bool
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedCatalog)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is like Default but panics on a malformed embedded catalog.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("assets: cannot parse catalog: %w", err)
	}

	c := &Catalog{
		models:     make(map[string]ModelSpec, len(doc.Models)),
		animations: make(map[string]anim.Clip, len(doc.Animations)),
		textures:   make(map[string]Texture, len(doc.Textures)),
		audio:      make(map[string]bool, len(doc.Audio)),
	}
	for name, m := range doc.Models {
		col, err := ParseColor(m.Color)
		if err != nil {
			return nil, fmt.Errorf("assets: model %q: %w", name, err)
		}
		c.models[name] = ModelSpec{
			Name:   name,
			Sprite: m.Sprite,
			Color:  col,
			Width:  m.Width,
			Height: m.Height,
		}
	}
	for name, a := range doc.Animations {
		if a.Duration <= 0 {
			return nil, fmt.Errorf("assets: animation %q has no duration", name)
		}
		c.animations[name] = anim.Clip{Name: name, Duration: a.Duration, Frames: a.Frames}
	}
	for name, tx := range doc.Textures {
		col, err := ParseColor(tx.Color)
		if err != nil {
			return nil, fmt.Errorf("assets: texture %q: %w", name, err)
		}
		glyph := '?'
		if r := []rune(tx.Glyph); len(r) > 0 {
			glyph = r[0]
		}
		c.textures[name] = Texture{Name: name, Glyph: glyph, Color: col}
	}
	for _, name := range doc.Audio {
		c.audio[name] = true
	}
	return c, nil
}

func unknown(kind Kind, name string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownAsset, kind, name)
}

// CloneModel returns a copy of the named model spec.
func (c *Catalog) CloneModel(name string) (ModelSpec, error) {
	m, ok := c.models[name]
	if !ok {
		return ModelSpec{}, unknown(KindModel, name)
	}
	m.Sprite = append([]string(nil), m.Sprite...)
	return m, nil
}

// CloneAnimation returns the named clip.
func (c *Catalog) CloneAnimation(name string) (anim.Clip, error) {
	a, ok := c.animations[name]
	if !ok {
		return anim.Clip{}, unknown(KindAnimation, name)
	}
	return a, nil
}

// CloneTexture returns the named texture.
func (c *Catalog) CloneTexture(name string) (Texture, error) {
	tx, ok := c.textures[name]
	if !ok {
		return Texture{}, unknown(KindTexture, name)
	}
	return tx, nil
}

// Audio reports whether an audio track with the given name exists.
func (c *Catalog) Audio(name string) (string, bool) {
	if !c.audio[name] {
		return "", false
	}
	return name, true
}

// Names lists the names of a catalog section in sorted order.
func (c *Catalog) Names(kind Kind) []string {
	var out []string
	switch kind {
	case KindModel:
		for n := range c.models {
			out = append(out, n)
		}
	case KindAnimation:
		for n := range c.animations {
			out = append(out, n)
		}
	case KindTexture:
		for n := range c.textures {
			out = append(out, n)
		}
	case KindAudio:
		for n := range c.audio {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

var colorNames = map[string]core.Color{
	"":             core.ColorDefault,
	"default":      core.ColorDefault,
	"red":          core.ColorRed,
	"green":        core.ColorGreen,
	"yellow":       core.ColorYellow,
	"blue":         core.ColorBlue,
	"magenta":      core.ColorMagenta,
	"cyan":         core.ColorCyan,
	"white":        core.ColorWhite,
	"brightred":    core.ColorBrightRed,
	"brightgreen":  core.ColorBrightGreen,
	"brightyellow": core.ColorBrightYellow,
	"brightwhite":  core.ColorBrightWhite,
	"orange":       core.ColorOrange,
	"gray":         core.ColorGray,
	"brown":        core.ColorBrown,
	"pink":         core.ColorPink,
	"sand":         core.ColorSand,
}

// ParseColor maps a palette name to a core.Color. Names are case-insensitive.
func ParseColor(name string) (core.Color, error) {
	c, ok := colorNames[strings.ToLower(name)]
	if !ok {
		return core.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
