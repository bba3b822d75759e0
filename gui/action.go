package gui

import "github.com/veandco/go-sdl2/mix"

// Sound is a fire-and-forget sound effect handle. Sound mixing itself is
// an external concern; Action only buffers which chunks to play so the
// host loop can flush them at each render boundary.
type Sound = *mix.Chunk

// Action is the result of Element.HandleEvent: whether a redraw is
// needed, whether the event should stop propagating to later siblings,
// any sounds to play, and at most one value of type A returned up to
// the caller (e.g. a HUD command, or a puzzle-specific move result).
type Action[A any] struct {
	redraw bool
	stop   bool
	sounds []Sound
	value  *A
}

// Ignore returns a no-op action: no redraw, no stop, no value.
func Ignore[A any]() Action[A] {
	return Action[A]{}
}

// Redraw returns an action that requests a redraw.
func Redraw[A any]() Action[A] {
	return Action[A]{redraw: true}
}

// RedrawIf returns Redraw[A]() when changed, else Ignore[A]().
func RedrawIf[A any](changed bool) Action[A] {
	return Action[A]{redraw: changed}
}

// AndStop returns a copy of a with stop set.
func (a Action[A]) AndStop() Action[A] {
	a.stop = true
	return a
}

// WithValue returns a copy of a carrying v as its return value.
func (a Action[A]) WithValue(v A) Action[A] {
	a.value = &v
	return a
}

// WithSound returns a copy of a with s appended to its sound buffer.
func (a Action[A]) WithSound(s Sound) Action[A] {
	if s != nil {
		a.sounds = append(a.sounds, s)
	}
	return a
}

// ShouldRedraw reports whether the action requests a redraw.
func (a Action[A]) ShouldRedraw() bool { return a.redraw }

// ShouldStop reports whether the action should stop further event
// propagation to siblings.
func (a Action[A]) ShouldStop() bool { return a.stop }

// Value returns the action's carried value, if any.
func (a Action[A]) Value() (A, bool) {
	if a.value == nil {
		var zero A
		return zero, false
	}
	return *a.value, true
}

// DrainSounds returns and clears the action's buffered sounds.
func (a *Action[A]) DrainSounds() []Sound {
	sounds := a.sounds
	a.sounds = nil
	return sounds
}

// Merge folds other into a: redraw and stop are OR'd, other's sounds
// are appended, and other's value (if any) replaces a's, so later
// elements in front-to-back order can override an earlier element's
// return value.
func (a *Action[A]) Merge(other Action[A]) {
	a.redraw = a.redraw || other.redraw
	a.stop = a.stop || other.stop
	a.sounds = append(a.sounds, other.sounds...)
	if other.value != nil {
		a.value = other.value
	}
}
