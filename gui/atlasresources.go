package gui

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// magentaColor marks an unresolved atlas lookup, matching willow's
// atlas.go debug placeholder.
var magentaColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// textureRegion describes a sub-rectangle within an atlas page, the
// same shape TexturePacker emits and willow's atlas.go parsed directly
// onto Node. Adapted here to back a concrete Resources implementation:
// region lookups resolve straight to a Sprite instead of a page index
// plus rect pair a renderer dereferences later.
type textureRegion struct {
	page             int
	x, y             int
	width, height    int
}

// Atlas holds one or more atlas page images and a map of named regions,
// parsed from TexturePacker JSON (hash or array format).
type Atlas struct {
	pages   []*ebiten.Image
	regions map[string]textureRegion
}

// LoadAtlas parses TexturePacker JSON data and associates the given
// page images, supporting both the hash format (single "frames"
// object) and the array format ("textures" array with per-page frame
// lists).
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("gui: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{pages: pages, regions: make(map[string]textureRegion)}
	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf(`gui: atlas JSON has neither "frames" nor "textures" key`)
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

type jsonTexturePage struct {
	Frames map[string]jsonFrame `json:"frames"`
}

func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("gui: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, page)
	}
	return nil
}

func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("gui: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRegion(f, i)
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page int) textureRegion {
	return textureRegion{page: page, x: f.Frame.X, y: f.Frame.Y, width: f.Frame.W, height: f.Frame.H}
}

// sprite resolves name to a Sprite backed by a sub-image of its atlas
// page, or a 1x1 magenta placeholder (logged) on a miss, matching
// willow's atlas.go debug-build fallback behavior.
func (a *Atlas) sprite(name string) Sprite {
	r, ok := a.regions[name]
	if !ok || r.page >= len(a.pages) {
		log.Printf("gui: atlas region %q not found, using magenta placeholder", name)
		return NewSprite(magentaPixel())
	}
	page := a.pages[r.page]
	sub := page.SubImage(image.Rect(r.x, r.y, r.x+r.width, r.y+r.height)).(*ebiten.Image)
	return NewSprite(sub)
}

var magentaCache *ebiten.Image

func magentaPixel() *ebiten.Image {
	if magentaCache == nil {
		magentaCache = ebiten.NewImage(1, 1)
		magentaCache.Fill(magentaColor)
	}
	return magentaCache
}

// AtlasResources implements Resources over a single Atlas: GetSprites
// walks a name_0, name_1, ... suffix sequence until the first miss
// (TexturePacker's usual animation-frame naming convention), GetFont
// looks up a pre-registered AtlasFont, and GetBackground pairs a named
// region with a fill color.
type AtlasResources struct {
	Atlas       *Atlas
	Fonts       map[string]Font
	Backgrounds map[string]Background
}

// NewAtlasResources builds an AtlasResources backed by atlas, with no
// fonts or backgrounds registered yet.
func NewAtlasResources(atlas *Atlas) *AtlasResources {
	return &AtlasResources{Atlas: atlas, Fonts: make(map[string]Font), Backgrounds: make(map[string]Background)}
}

// RegisterFont associates name with font for later GetFont lookups.
func (r *AtlasResources) RegisterFont(name string, font Font) { r.Fonts[name] = font }

// RegisterBackground associates name with bg for later GetBackground
// lookups.
func (r *AtlasResources) RegisterBackground(name string, bg Background) { r.Backgrounds[name] = bg }

// GetSprites returns the ordered sprite sequence for name, resolving
// name, name_0, name_1, ... against the atlas until the first region
// miss. A bare name with no numbered siblings yields a single-sprite
// sequence.
func (r *AtlasResources) GetSprites(name string) []Sprite {
	if _, ok := r.Atlas.regions[name]; ok {
		if _, hasZero := r.Atlas.regions[fmt.Sprintf("%s_0", name)]; !hasZero {
			return []Sprite{r.Atlas.sprite(name)}
		}
	}
	var sprites []Sprite
	for i := 0; ; i++ {
		frameName := fmt.Sprintf("%s_%d", name, i)
		if _, ok := r.Atlas.regions[frameName]; !ok {
			break
		}
		sprites = append(sprites, r.Atlas.sprite(frameName))
	}
	if len(sprites) == 0 {
		return []Sprite{r.Atlas.sprite(name)}
	}
	return sprites
}

// GetFont returns the font registered under name, or a Font reporting
// no glyphs on every lookup if name was never registered.
func (r *AtlasResources) GetFont(name string) Font {
	if f, ok := r.Fonts[name]; ok {
		return f
	}
	return emptyFont{}
}

// GetBackground returns the background registered under name.
func (r *AtlasResources) GetBackground(name string) Background {
	return r.Backgrounds[name]
}

type emptyFont struct{}

func (emptyFont) Glyph(rune) (Sprite, int, int, bool) { return Sprite{}, 0, 0, false }
func (emptyFont) LineHeight() int                     { return 0 }
func (emptyFont) Baseline() int                       { return 0 }

// AtlasFont is a Font backed by atlas regions named charset[i] for each
// rune in charset, with fixed leftEdge/rightEdge kerning (TexturePacker
// atlases don't carry the original's per-glyph kerning metadata, so a
// single configured pair substitutes for every glyph).
type AtlasFont struct {
	atlas      *Atlas
	glyphName  map[rune]string
	lineHeight int
	baseline   int
	leftEdge   int
	rightEdge  int
}

// NewAtlasFont builds an AtlasFont resolving each rune in charset to
// the atlas region named by regionName(r), with the given line metrics
// and uniform per-glyph kerning.
func NewAtlasFont(atlas *Atlas, charset string, regionName func(rune) string, lineHeight, baseline, leftEdge, rightEdge int) *AtlasFont {
	names := make(map[rune]string, len(charset))
	for _, r := range charset {
		names[r] = regionName(r)
	}
	return &AtlasFont{atlas: atlas, glyphName: names, lineHeight: lineHeight, baseline: baseline, leftEdge: leftEdge, rightEdge: rightEdge}
}

func (f *AtlasFont) Glyph(r rune) (Sprite, int, int, bool) {
	name, ok := f.glyphName[r]
	if !ok {
		return Sprite{}, 0, 0, false
	}
	return f.atlas.sprite(name), f.leftEdge, f.rightEdge, true
}

func (f *AtlasFont) LineHeight() int { return f.lineHeight }
func (f *AtlasFont) Baseline() int   { return f.baseline }
