package puzzlecore

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/duskglass/puzzlecore/cutscene"
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// FadeStyle selects how ScreenFade's opaque region sweeps across the
// frame as it transitions.
type FadeStyle int

const (
	FadeLeftToRight FadeStyle = iota
	FadeTopToBottom
	FadeBottomToTop
	FadeRadial
)

// fadeDuration is how long a full sweep takes.
const fadeDuration = 0.5

// ScreenFade is a full-screen cover that sweeps open or closed over
// fadeDuration seconds, driven by a tween the same way every other
// continuous motion in this package is (§4.4's "screen_fade").
// Transparent means fully revealed; Opaque means fully covering the
// frame; Transitioning is anything in between. While opaque, input is
// swallowed and no puzzle state may be mutated (§7).
type ScreenFade struct {
	style    FadeStyle
	tween    *gween.Tween
	progress float32 // 0 = transparent, 1 = opaque
	opaque   bool
}

// NewScreenFade builds a ScreenFade in the transparent state.
func NewScreenFade(style FadeStyle) *ScreenFade {
	return &ScreenFade{style: style}
}

// FadeOut starts a transition from transparent to opaque.
func (f *ScreenFade) FadeOut() {
	f.tween = gween.New(f.progress, 1, fadeDuration, ease.Linear)
}

// FadeIn starts a transition from opaque to transparent.
func (f *ScreenFade) FadeIn() {
	f.tween = gween.New(f.progress, 0, fadeDuration, ease.Linear)
}

// SetTransparent snaps directly to the transparent state, canceling
// any transition in progress.
func (f *ScreenFade) SetTransparent() {
	f.tween = nil
	f.progress = 0
	f.opaque = false
}

// SetOpaque snaps directly to the opaque state, canceling any
// transition in progress.
func (f *ScreenFade) SetOpaque() {
	f.tween = nil
	f.progress = 1
	f.opaque = true
}

// Tick advances any in-progress transition by one frame and reports
// whether the fade visibly changed.
func (f *ScreenFade) Tick() bool {
	if f.tween == nil {
		return false
	}
	value, finished := f.tween.Update(1.0 / cutscene.FramesPerSecond)
	f.progress = value
	if finished {
		f.tween = nil
	}
	f.opaque = f.progress >= 1
	return true
}

// IsOpaque reports whether the fade fully covers the frame.
func (f *ScreenFade) IsOpaque() bool { return f.opaque }

// IsTransparent reports whether the fade is fully revealed and idle.
func (f *ScreenFade) IsTransparent() bool { return f.tween == nil && f.progress == 0 }

// IsTransitioning reports whether a fade is actively sweeping.
func (f *ScreenFade) IsTransitioning() bool { return f.tween != nil }

// Draw paints the covered portion of canvas black, according to style
// and the current sweep progress.
func (f *ScreenFade) Draw(canvas gui.Canvas) {
	if f.progress <= 0 {
		return
	}
	bounds := canvas.Rect()
	black := gui.Color{}
	switch f.style {
	case FadeLeftToRight:
		w := roundFrac(bounds.Width, f.progress)
		canvas.FillRect(black, geom.NewRect(bounds.X, bounds.Y, w, bounds.Height))
	case FadeTopToBottom:
		h := roundFrac(bounds.Height, f.progress)
		canvas.FillRect(black, geom.NewRect(bounds.X, bounds.Y, bounds.Width, h))
	case FadeBottomToTop:
		h := roundFrac(bounds.Height, f.progress)
		canvas.FillRect(black, geom.NewRect(bounds.X, bounds.Bottom()-h, bounds.Width, h))
	case FadeRadial:
		f.drawRadial(canvas, bounds, black)
	}
}

// drawRadial approximates an iris wipe: a centered rectangular "hole"
// shrinks toward nothing as progress goes to 1, and the four bands
// surrounding it are filled black, since Canvas only exposes rectangle
// fills rather than circular clips.
func (f *ScreenFade) drawRadial(canvas gui.Canvas, bounds geom.Rect, black gui.Color) {
	remaining := 1 - f.progress
	holeW := roundFrac(bounds.Width, remaining)
	holeH := roundFrac(bounds.Height, remaining)
	center := bounds.Center()
	hole := geom.NewRect(0, 0, holeW, holeH).CenterOn(center)

	canvas.FillRect(black, geom.NewRect(bounds.X, bounds.Y, bounds.Width, hole.Top()-bounds.Y))
	canvas.FillRect(black, geom.NewRect(bounds.X, hole.Bottom(), bounds.Width, bounds.Bottom()-hole.Bottom()))
	canvas.FillRect(black, geom.NewRect(bounds.X, hole.Top(), hole.Left()-bounds.X, hole.Height))
	canvas.FillRect(black, geom.NewRect(hole.Right(), hole.Top(), bounds.Right()-hole.Right(), hole.Height))
}

func roundFrac(total int, frac float32) int {
	return int(float32(total)*frac + 0.5)
}

// HandleEvent swallows every event while opaque; otherwise it is a
// transparent pass-through (ScreenFade never itself stops an event
// that is allowed through).
func (f *ScreenFade) HandleEvent(event gui.Event) (swallowed bool) {
	return f.opaque
}
