package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const hashAtlasJSON = `{
  "frames": {
    "hero_0": {"frame": {"x": 0, "y": 0, "w": 10, "h": 10}},
    "hero_1": {"frame": {"x": 10, "y": 0, "w": 10, "h": 10}},
    "icon":   {"frame": {"x": 0, "y": 10, "w": 8, "h": 8}}
  }
}`

func TestLoadAtlasHashFormatAndGetSprites(t *testing.T) {
	page := ebiten.NewImage(32, 32)
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), []*ebiten.Image{page})
	if err != nil {
		t.Fatalf("LoadAtlas error: %v", err)
	}
	res := NewAtlasResources(atlas)

	frames := res.GetSprites("hero")
	if len(frames) != 2 {
		t.Fatalf("GetSprites(hero) len = %d, want 2", len(frames))
	}
	for i, s := range frames {
		if s.Width() != 10 || s.Height() != 10 {
			t.Errorf("frame %d size = (%d,%d), want (10,10)", i, s.Width(), s.Height())
		}
	}

	single := res.GetSprites("icon")
	if len(single) != 1 || single[0].Width() != 8 {
		t.Fatalf("GetSprites(icon) = %v, want one 8-wide sprite", single)
	}
}

func TestAtlasResourcesMissingRegionIsPlaceholder(t *testing.T) {
	page := ebiten.NewImage(32, 32)
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), []*ebiten.Image{page})
	if err != nil {
		t.Fatalf("LoadAtlas error: %v", err)
	}
	res := NewAtlasResources(atlas)

	sprites := res.GetSprites("nonexistent")
	if len(sprites) != 1 || sprites[0].Width() != 1 || sprites[0].Height() != 1 {
		t.Fatalf("missing region should fall back to a 1x1 placeholder, got %v", sprites)
	}
}

func TestAtlasFontGlyphLookup(t *testing.T) {
	page := ebiten.NewImage(32, 32)
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), []*ebiten.Image{page})
	if err != nil {
		t.Fatalf("LoadAtlas error: %v", err)
	}
	font := NewAtlasFont(atlas, "i", func(r rune) string { return "icon" }, 12, 10, 0, 1)

	sprite, left, right, ok := font.Glyph('i')
	if !ok || sprite.Width() != 8 || left != 0 || right != 1 {
		t.Errorf("Glyph('i') = (%v,%d,%d,%v), want (8-wide,0,1,true)", sprite, left, right, ok)
	}
	if _, _, _, ok := font.Glyph('z'); ok {
		t.Error("Glyph('z') should report ok=false for an unregistered rune")
	}
	if font.LineHeight() != 12 || font.Baseline() != 10 {
		t.Errorf("LineHeight/Baseline = %d/%d, want 12/10", font.LineHeight(), font.Baseline())
	}
}

const arrayAtlasJSON = `{
  "textures": [
    {"frames": {"a": {"frame": {"x": 0, "y": 0, "w": 4, "h": 4}}}},
    {"frames": {"b": {"frame": {"x": 0, "y": 0, "w": 6, "h": 6}}}}
  ]
}`

func TestLoadAtlasArrayFormat(t *testing.T) {
	pages := []*ebiten.Image{ebiten.NewImage(16, 16), ebiten.NewImage(16, 16)}
	atlas, err := LoadAtlas([]byte(arrayAtlasJSON), pages)
	if err != nil {
		t.Fatalf("LoadAtlas error: %v", err)
	}
	res := NewAtlasResources(atlas)
	if s := res.GetSprites("b")[0]; s.Width() != 6 {
		t.Errorf("region b width = %d, want 6 (from second page)", s.Width())
	}
}
