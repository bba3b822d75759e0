package cutscene

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/theater"
)

// gravity is the fixed fall acceleration used by JumpNode, in pixels per
// second squared.
const gravity = 480.0

// easeFor picks the Penner easing function matching the accel/decel
// combination in spec.md §4.2's continuous-motion table: both accel and
// decel is an in-out quad (smoothstep), accel-only is in-quad,
// decel-only is out-quad, and neither is linear.
func easeFor(accel, decel bool) ease.TweenFunc {
	switch {
	case accel && decel:
		return ease.InOutQuad
	case accel:
		return ease.InQuad
	case decel:
		return ease.OutQuad
	default:
		return ease.Linear
	}
}

// dt is the fixed per-tick time step every gween.Tween in this package
// is advanced by, matching FramesPerSecond.
const dt = float32(1.0 / FramesPerSecond)

// SlideNode moves an actor from its current position to end over a
// fixed duration, driving one gween.Tween per axis with the accel/decel
// easing picked by easeFor — the same tween-per-scalar pattern
// puzzlecore.ScreenFade and widgets.ProgressBar use.
type SlideNode struct {
	baseNode
	slot         int
	end          geom.Point
	accel, decel bool
	seconds      float64
	start        geom.Point
	tweenX       *gween.Tween
	tweenY       *gween.Tween
	finished     bool
}

// NewSlide builds a SlideNode sliding the actor at slot to end over
// seconds seconds.
func NewSlide(slot int, end geom.Point, accel, decel bool, seconds float64) *SlideNode {
	return &SlideNode{slot: slot, end: end, accel: accel, decel: decel, seconds: seconds, start: end}
}

func (s *SlideNode) Status() Status {
	if s.finished {
		return Done
	}
	return Active
}

func (s *SlideNode) Begin(t *theater.Theater, _ bool) {
	if pos, ok := t.GetActorPosition(s.slot); ok {
		s.start = pos
	} else {
		s.start = s.end
	}
	s.finished = s.seconds <= 0
	if s.finished {
		return
	}
	fn := easeFor(s.accel, s.decel)
	s.tweenX = gween.New(float32(s.start.X), float32(s.end.X), float32(s.seconds), fn)
	s.tweenY = gween.New(float32(s.start.Y), float32(s.end.Y), float32(s.seconds), fn)
}

func (s *SlideNode) Tick(t *theater.Theater, _ bool) bool {
	if s.finished {
		return false
	}
	x, doneX := s.tweenX.Update(dt)
	y, doneY := s.tweenY.Update(dt)
	t.SetActorPosition(s.slot, geom.Pt(roundHalfAwayFromZero(float64(x)), roundHalfAwayFromZero(float64(y))))
	if doneX && doneY {
		s.finished = true
	}
	return true
}

func (s *SlideNode) Skip(t *theater.Theater) {
	s.finished = true
	t.SetActorPosition(s.slot, s.end)
}

func (s *SlideNode) Reset() {
	s.finished = false
	s.tweenX = nil
	s.tweenY = nil
}

// JumpNode moves an actor along a parabolic trajectory from its current
// position to end: horizontal motion is linear, vertical motion adds a
// gravity arc on top of the linear interpolation. Both the horizontal
// position and the elapsed wall-clock time are driven by a
// gween.Tween (linear easing); the gravity arc itself is derived
// arithmetic from that elapsed time, the same way a physics term sits
// on top of — rather than inside — an easing curve.
type JumpNode struct {
	baseNode
	slot         int
	end          geom.Point
	seconds      float64
	start        geom.Point
	tweenX       *gween.Tween
	tweenElapsed *gween.Tween
	finished     bool
}

// NewJump builds a JumpNode arcing the actor at slot to end over
// seconds seconds.
func NewJump(slot int, end geom.Point, seconds float64) *JumpNode {
	return &JumpNode{slot: slot, end: end, seconds: seconds, start: end}
}

func (j *JumpNode) Status() Status {
	if j.finished {
		return Done
	}
	return Active
}

func (j *JumpNode) Begin(t *theater.Theater, _ bool) {
	if pos, ok := t.GetActorPosition(j.slot); ok {
		j.start = pos
	} else {
		j.start = j.end
	}
	j.finished = j.seconds <= 0
	if j.finished {
		return
	}
	j.tweenX = gween.New(float32(j.start.X), float32(j.end.X), float32(j.seconds), ease.Linear)
	j.tweenElapsed = gween.New(0, float32(j.seconds), float32(j.seconds), ease.Linear)
}

func (j *JumpNode) Tick(t *theater.Theater, _ bool) bool {
	if j.finished {
		return false
	}
	x, doneX := j.tweenX.Update(dt)
	elapsed, doneElapsed := j.tweenElapsed.Update(dt)

	remaining := j.seconds - float64(elapsed)
	linearY := float64(j.start.Y) + (float64(j.end.Y)-float64(j.start.Y))*(float64(elapsed)/j.seconds)
	arc := -0.5 * gravity * float64(elapsed) * remaining
	y := linearY + arc

	t.SetActorPosition(j.slot, geom.Pt(roundHalfAwayFromZero(float64(x)), roundHalfAwayFromZero(y)))
	if doneX && doneElapsed {
		j.finished = true
	}
	return true
}

func (j *JumpNode) Skip(t *theater.Theater) {
	j.finished = true
	t.SetActorPosition(j.slot, j.end)
}

func (j *JumpNode) Reset() {
	j.finished = false
	j.tweenX = nil
	j.tweenElapsed = nil
}

func roundHalfAwayFromZero(v float64) int {
	if v >= 0 {
		return int(math.Floor(v + 0.5))
	}
	return -int(math.Floor(-v + 0.5))
}
