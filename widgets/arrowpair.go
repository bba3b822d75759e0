package widgets

import (
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// ArrowShift is the result of a press on either half of an ArrowPair:
// Row identifies which row/track the pair controls, and Delta is the
// signed shift to apply (the pair's configured delta, negated for the
// left button).
type ArrowShift struct {
	Row   int
	Delta int
}

// ArrowPair is a pair of left/right buttons carrying a row id and a
// shift delta, the way puzzlecore.Hud carries a button list, but fixed
// at exactly two regions and returning (row, ±delta) instead of a Cmd.
type ArrowPair struct {
	row       int
	delta     int
	override  int
	leftRect  geom.Rect
	rightRect geom.Rect
	leftSpr   gui.Sprite
	rightSpr  gui.Sprite
	enabled   bool
}

// NewArrowPair builds an ArrowPair for row, shifting by delta on the
// right button and -delta on the left, with left and right occupying
// leftRect and rightRect respectively.
func NewArrowPair(row, delta int, leftRect, rightRect geom.Rect, leftSpr, rightSpr gui.Sprite) *ArrowPair {
	return &ArrowPair{row: row, delta: delta, leftRect: leftRect, rightRect: rightRect, leftSpr: leftSpr, rightSpr: rightSpr, enabled: true}
}

// SetEnabled toggles whether the pair responds to clicks.
func (a *ArrowPair) SetEnabled(enabled bool) { a.enabled = enabled }

// SetDeltaOverride replaces the pair's configured shift delta for
// subsequent presses; zero restores the configured delta. Puzzles use
// this when a mode temporarily changes how far a press shifts its row.
func (a *ArrowPair) SetDeltaOverride(delta int) { a.override = delta }

// Draw renders both buttons, dimmed when disabled.
func (a *ArrowPair) Draw(canvas gui.Canvas) {
	if a.enabled {
		canvas.DrawSprite(a.leftSpr, a.leftRect.TopLeft())
		canvas.DrawSprite(a.rightSpr, a.rightRect.TopLeft())
		return
	}
	white := gui.Color{R: 255, G: 255, B: 255}
	canvas.DrawSpriteTinted(a.leftSpr, a.leftRect.TopLeft(), white, 0.4)
	canvas.DrawSpriteTinted(a.rightSpr, a.rightRect.TopLeft(), white, 0.4)
}

// HandleEvent reports an ArrowShift on a MouseDown landing in either
// button, negating the delta for the left half. An active override
// (SetDeltaOverride) takes the configured delta's place.
func (a *ArrowPair) HandleEvent(event gui.Event) gui.Action[ArrowShift] {
	if !a.enabled || event.Kind != gui.MouseDown {
		return gui.Ignore[ArrowShift]()
	}
	delta := a.delta
	if a.override != 0 {
		delta = a.override
	}
	switch {
	case a.leftRect.Contains(event.Point):
		return gui.Redraw[ArrowShift]().WithValue(ArrowShift{Row: a.row, Delta: -delta}).AndStop()
	case a.rightRect.Contains(event.Point):
		return gui.Redraw[ArrowShift]().WithValue(ArrowShift{Row: a.row, Delta: delta}).AndStop()
	default:
		return gui.Ignore[ArrowShift]()
	}
}
