// Package widgets holds the shared interactive views puzzles are built
// from: animated platforms, rotating columns, ice-sliding grids, laser
// fields, crosswords, a parallax starfield, and a progress bar. Each
// follows puzzlecore.Hud's concrete shape (Draw, plus HandleEvent for
// the interactive ones) rather than
// literally implementing the generic gui.Element[S, A] interface, since
// none of them need externally threaded state beyond their own fields.
package widgets

import (
	"math"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// Platform is an animated horizontal platform occupying one of a fixed
// set of logical integer positions, sliding between them at a constant
// pixels-per-frame rate the way SlideNode moves actors.
type Platform struct {
	sprite  gui.Sprite
	anchors []geom.Point // top anchor point per logical position
	speed   float64      // pixels per frame

	pos     int // current logical position once motion settles
	current geom.Point
	target  geom.Point
	moving  bool
}

// NewPlatform builds a Platform starting at logical position start,
// with anchors[i] giving the top-of-platform point an actor should
// stand on at logical position i, and pixelsPerFrame the constant
// slide speed between positions.
func NewPlatform(sprite gui.Sprite, anchors []geom.Point, start int, pixelsPerFrame float64) *Platform {
	p := &Platform{sprite: sprite, anchors: anchors, speed: pixelsPerFrame, pos: start}
	p.current = anchors[start]
	p.target = anchors[start]
	return p
}

// Pos returns the platform's logical position: the goal of the latest
// SetGoal, which it may still be sliding toward (see IsMoving);
// TopPointForPos is the stable per-position reference, not Pos.
func (p *Platform) Pos() int { return p.pos }

// TopPointForPos maps a logical position to the anchor Point an actor
// should stand on there.
func (p *Platform) TopPointForPos(pos int) geom.Point {
	return p.anchors[pos]
}

// TravelTime returns the exact duration, in seconds, a slide from
// logical position from to to takes at this platform's fixed speed, so
// cutscene nodes can be synchronized to platform motion.
func (p *Platform) TravelTime(from, to int) float64 {
	delta := p.anchors[to].Sub(p.anchors[from])
	dist := distance(delta)
	if p.speed <= 0 {
		return 0
	}
	return math.Ceil(dist/p.speed) / framesPerSecond
}

const framesPerSecond = 30

func distance(p geom.Point) float64 {
	dx, dy := float64(p.X), float64(p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// SetGoal begins smooth motion toward pos at the platform's fixed
// speed. Calling it again mid-slide retargets from the current
// (possibly in-between) point.
func (p *Platform) SetGoal(pos int) {
	p.target = p.anchors[pos]
	p.pos = pos
	p.moving = p.current != p.target
}

// Tick advances the slide by one frame and reports whether the
// platform moved.
func (p *Platform) Tick() bool {
	if !p.moving {
		return false
	}
	delta := p.target.Sub(p.current)
	dist := distance(delta)
	if dist <= p.speed {
		p.current = p.target
		p.moving = false
		return true
	}
	frac := p.speed / dist
	p.current = p.current.Add(geom.Point{
		X: roundHalf(float64(delta.X) * frac),
		Y: roundHalf(float64(delta.Y) * frac),
	})
	return true
}

func roundHalf(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}

// IsMoving reports whether the platform is mid-slide.
func (p *Platform) IsMoving() bool { return p.moving }

// Draw blits the platform sprite at its current (possibly in-between)
// position.
func (p *Platform) Draw(canvas gui.Canvas) {
	canvas.DrawSprite(p.sprite, p.current)
}
