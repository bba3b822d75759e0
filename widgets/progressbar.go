package widgets

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// ProgressBar is a filled-rectangle meter whose displayed fraction
// eases toward its target value over progressFillDuration seconds, the same
// tween-driven motion puzzlecore.ScreenFade uses for its sweep.
type ProgressBar struct {
	bounds   geom.Rect
	fill     gui.Color
	back     gui.Color
	target   float32
	current  float32
	tween    *gween.Tween
}

const progressFillDuration = 0.3

// NewProgressBar builds an empty ProgressBar occupying bounds.
func NewProgressBar(bounds geom.Rect, fill, back gui.Color) *ProgressBar {
	return &ProgressBar{bounds: bounds, fill: fill, back: back}
}

// SetFraction retargets the bar to frac (clamped to [0,1]), easing from
// its current displayed value.
func (b *ProgressBar) SetFraction(frac float32) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	b.target = frac
	b.tween = gween.New(b.current, b.target, progressFillDuration, ease.OutQuad)
}

// SnapFraction sets the bar's displayed value immediately, with no
// easing, canceling any in-progress fill.
func (b *ProgressBar) SnapFraction(frac float32) {
	b.tween = nil
	b.current, b.target = frac, frac
}

// Tick advances the fill tween by one frame and reports whether the
// displayed value changed.
func (b *ProgressBar) Tick() bool {
	if b.tween == nil {
		return false
	}
	value, finished := b.tween.Update(1.0 / framesPerSecond)
	b.current = value
	if finished {
		b.tween = nil
		b.current = b.target
	}
	return true
}

// Fraction returns the bar's currently displayed (possibly mid-ease)
// fraction.
func (b *ProgressBar) Fraction() float32 { return b.current }

// Draw fills the background rect, then the filled portion proportional
// to the current displayed fraction.
func (b *ProgressBar) Draw(canvas gui.Canvas) {
	canvas.FillRect(b.back, b.bounds)
	w := roundHalf(float64(b.bounds.Width) * float64(b.current))
	if w <= 0 {
		return
	}
	canvas.FillRect(b.fill, geom.NewRect(b.bounds.X, b.bounds.Y, w, b.bounds.Height))
}
