package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// testManifest is the YAML shape TestResources loads. Every sprite is
// described as a solid-color placeholder rectangle rather than a
// decoded image file, since image decoding is external to this module
// (spec.md §6); the manifest exists so tests can
// build a Resources value declaratively instead of constructing every
// gui.Sprite by hand.
type testManifest struct {
	Sprites     map[string][]spriteSpec `yaml:"sprites"`
	Fonts       map[string]fontSpec     `yaml:"fonts"`
	Backgrounds map[string]bgSpec       `yaml:"backgrounds"`
}

type colorSpec struct {
	R, G, B uint8
}

type spriteSpec struct {
	Width, Height int
	Color         colorSpec
}

type glyphSpec struct {
	Width, Height         int
	LeftEdge, RightEdge   int
	Color                 colorSpec
}

type fontSpec struct {
	LineHeight int
	Baseline   int
	Glyphs     map[string]glyphSpec
}

type bgSpec struct {
	Width, Height int
	Color         colorSpec
}

// TestResources is a reference Resources implementation driven by a
// YAML manifest (see testManifest), used by this module's own tests
// instead of decoding real image assets.
type TestResources struct {
	sprites     map[string][]Sprite
	fonts       map[string]Font
	backgrounds map[string]Background
}

// ParseTestResources parses a YAML manifest into a TestResources.
func ParseTestResources(yamlData []byte) (*TestResources, error) {
	var manifest testManifest
	if err := yaml.Unmarshal(yamlData, &manifest); err != nil {
		return nil, fmt.Errorf("gui: failed to parse test resources manifest: %w", err)
	}
	return buildTestResources(manifest), nil
}

func buildTestResources(manifest testManifest) *TestResources {
	r := &TestResources{
		sprites:     make(map[string][]Sprite),
		fonts:       make(map[string]Font),
		backgrounds: make(map[string]Background),
	}
	for name, specs := range manifest.Sprites {
		for _, s := range specs {
			r.sprites[name] = append(r.sprites[name], solidSprite(s.Width, s.Height, s.Color))
		}
	}
	for name, f := range manifest.Fonts {
		glyphs := make(map[rune]glyphEntry, len(f.Glyphs))
		for key, g := range f.Glyphs {
			runes := []rune(key)
			if len(runes) != 1 {
				continue
			}
			glyphs[runes[0]] = glyphEntry{
				sprite:    solidSprite(g.Width, g.Height, g.Color),
				leftEdge:  g.LeftEdge,
				rightEdge: g.RightEdge,
			}
		}
		r.fonts[name] = &manifestFont{lineHeight: f.LineHeight, baseline: f.Baseline, glyphs: glyphs}
	}
	for name, b := range manifest.Backgrounds {
		r.backgrounds[name] = Background{
			Sprite: solidSprite(b.Width, b.Height, b.Color),
			Color:  Color{R: b.Color.R, G: b.Color.G, B: b.Color.B},
		}
	}
	return r
}

func solidSprite(w, h int, c colorSpec) Sprite {
	if w <= 0 || h <= 0 {
		return Sprite{}
	}
	img := ebiten.NewImage(w, h)
	img.Fill(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return NewSprite(img)
}

// GetSprites returns the named sprite sequence, or nil if unregistered.
func (r *TestResources) GetSprites(name string) []Sprite { return r.sprites[name] }

// GetFont returns the named font, or an empty font if unregistered.
func (r *TestResources) GetFont(name string) Font {
	if f, ok := r.fonts[name]; ok {
		return f
	}
	return emptyFont{}
}

// GetBackground returns the named background, or the zero Background
// if unregistered.
func (r *TestResources) GetBackground(name string) Background { return r.backgrounds[name] }

type glyphEntry struct {
	sprite               Sprite
	leftEdge, rightEdge int
}

type manifestFont struct {
	lineHeight int
	baseline   int
	glyphs     map[rune]glyphEntry
}

func (f *manifestFont) Glyph(r rune) (Sprite, int, int, bool) {
	g, ok := f.glyphs[r]
	if !ok {
		return Sprite{}, 0, 0, false
	}
	return g.sprite, g.leftEdge, g.rightEdge, true
}

func (f *manifestFont) LineHeight() int { return f.lineHeight }
func (f *manifestFont) Baseline() int   { return f.baseline }
