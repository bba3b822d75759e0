package gui

// Font is a bitmap font with per-glyph kerning and baseline metrics, used
// by Paragraph layout. Decoding the backing image is an external concern;
// Font only exposes what layout needs.
type Font interface {
	// Glyph returns the sprite and per-glyph left/right kerning edges for
	// a rune. ok is false when the font has no glyph for r.
	Glyph(r rune) (sprite Sprite, leftEdge, rightEdge int, ok bool)
	// LineHeight is the vertical distance between baselines.
	LineHeight() int
	// Baseline is the distance from a glyph's top to its baseline.
	Baseline() int
}

// Background is a full-frame sprite plus the color to fill around it
// (for frames narrower than the canvas).
type Background struct {
	Sprite Sprite
	Color  Color
}

// Color is an RGB color in [0,255] components, used for background fill
// and dark-overlay carving.
type Color struct {
	R, G, B uint8
}

// Resources is the resource interface consumed by scene compilation:
// an indexed sprite atlas, bitmap fonts, and
// full-frame backgrounds, all addressed by name. What a lookup miss
// returns is up to the implementation: AtlasResources and TestResources
// return a placeholder sprite or no sprites, an empty font, or the zero
// Background. Package cutscene's compile.go panics when a sprite index
// is out of range for the returned sequence; it does not detect a font
// or background miss.
type Resources interface {
	// GetSprites returns the ordered sprite sequence for an atlas entry.
	GetSprites(name string) []Sprite
	// GetFont returns a named bitmap font.
	GetFont(name string) Font
	// GetBackground returns a named full-frame background.
	GetBackground(name string) Background
}
