package widgets

import (
	"math/rand"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// star is one point in a parallax layer, in layer-local pixel space
// before the scroll offset is applied.
type star struct {
	pos    geom.Point
	sprite gui.Sprite
}

type starLayer struct {
	stars        []star
	scrollPerTick int
	offset       int
}

// MovingStars is a deterministic pseudo-random two-layer parallax
// starfield: star positions are generated once from a fixed seed so the
// same construction always produces the same field, and each layer
// scrolls horizontally by its own fixed per-tick amount driven by a
// single incrementing counter.
type MovingStars struct {
	bounds geom.Rect
	far    starLayer
	near   starLayer
	ticks  int
}

// NewMovingStars builds a starfield filling bounds, with farCount stars
// in the slow background layer and nearCount in the faster foreground
// layer, all drawn with sprite. seed makes star placement reproducible.
func NewMovingStars(bounds geom.Rect, sprite gui.Sprite, farCount, nearCount int, seed int64) *MovingStars {
	rng := rand.New(rand.NewSource(seed))
	return &MovingStars{
		bounds: bounds,
		far:    newStarLayer(rng, bounds, sprite, farCount, 1),
		near:   newStarLayer(rng, bounds, sprite, nearCount, 3),
	}
}

func newStarLayer(rng *rand.Rand, bounds geom.Rect, sprite gui.Sprite, count, scrollPerTick int) starLayer {
	layer := starLayer{scrollPerTick: scrollPerTick}
	for i := 0; i < count; i++ {
		layer.stars = append(layer.stars, star{
			pos:    geom.Pt(rng.Intn(bounds.Width), rng.Intn(bounds.Height)),
			sprite: sprite,
		})
	}
	return layer
}

// Tick advances the scroll counter by one frame. MovingStars always
// visibly changes while any layer has a nonzero scroll speed.
func (m *MovingStars) Tick() bool {
	m.ticks++
	m.far.offset = (m.far.offset + m.far.scrollPerTick) % m.bounds.Width
	m.near.offset = (m.near.offset + m.near.scrollPerTick) % m.bounds.Width
	return true
}

// Draw renders the far layer then the near layer on top, each star
// wrapped horizontally within bounds.
func (m *MovingStars) Draw(canvas gui.Canvas) {
	drawLayer(canvas, m.bounds, m.far)
	drawLayer(canvas, m.bounds, m.near)
}

func drawLayer(canvas gui.Canvas, bounds geom.Rect, layer starLayer) {
	for _, s := range layer.stars {
		x := (s.pos.X + layer.offset) % bounds.Width
		if x < 0 {
			x += bounds.Width
		}
		canvas.DrawSprite(s.sprite, geom.Pt(bounds.X+x, bounds.Y+s.pos.Y))
	}
}
