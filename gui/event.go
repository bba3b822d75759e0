package gui

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/duskglass/puzzlecore/geom"
)

// EventKind discriminates the Event sum type (§6: Event interface).
type EventKind int

const (
	Quit EventKind = iota
	ClockTick
	MouseDown
	MouseUp
	MouseDrag
	KeyDown
	TextInput
)

// Event is the sum type consumed by Element.HandleEvent. Exactly one
// field set is meaningful, selected by Kind. Decoding a platform event
// pump into Event values is an external concern (§1 non-goals); this
// type only carries the already-decoded result. KeyDown reuses
// sdl.Keycode and the KeyMod bitset below so the vocabulary matches the
// host platform's keyboard layer without this package owning the event
// pump itself.
type Event struct {
	Kind EventKind

	Point geom.Point // MouseDown, MouseDrag

	Key  sdl.Keycode // KeyDown
	Mods KeyMod      // KeyDown
	Text string      // TextInput
}

// NewMouseDown, NewMouseDrag construct the corresponding Event variants.
func NewMouseDown(p geom.Point) Event { return Event{Kind: MouseDown, Point: p} }
func NewMouseDrag(p geom.Point) Event { return Event{Kind: MouseDrag, Point: p} }

// NewKeyDown constructs a KeyDown event.
func NewKeyDown(key sdl.Keycode, mods KeyMod) Event {
	return Event{Kind: KeyDown, Key: key, Mods: mods}
}

// NewTextInput constructs a TextInput event.
func NewTextInput(text string) Event { return Event{Kind: TextInput, Text: text} }

// Translate returns a coordinate-shifted copy of e, used by widgets that
// own a subregion of the canvas and need to re-express events in their
// own local coordinates before handing them to children.
func (e Event) Translate(dx, dy int) Event {
	switch e.Kind {
	case MouseDown, MouseDrag:
		shifted := e
		shifted.Point = geom.Pt(e.Point.X+dx, e.Point.Y+dy)
		return shifted
	default:
		return e
	}
}

// KeyMod is a bitset of modifier keys, folding SDL's left/right
// modifier pairs into three logical modifiers.
type KeyMod uint8

const (
	ModNone    KeyMod = 0
	ModShift   KeyMod = 1 << 0
	ModAlt     KeyMod = 1 << 1
	ModCommand KeyMod = 1 << 2
)

// KeyModFromSDL folds an sdl.Keymod into the logical KeyMod bitset,
// treating left/right variants of shift and alt as equivalent and
// mapping Ctrl (or Cmd on Apple platforms) to ModCommand.
func KeyModFromSDL(mod sdl.Keymod, appleCommandKey bool) KeyMod {
	var result KeyMod
	if mod&(sdl.KMOD_LSHIFT|sdl.KMOD_RSHIFT) != 0 {
		result |= ModShift
	}
	if mod&(sdl.KMOD_LALT|sdl.KMOD_RALT) != 0 {
		result |= ModAlt
	}
	if appleCommandKey {
		if mod&(sdl.KMOD_LGUI|sdl.KMOD_RGUI) != 0 {
			result |= ModCommand
		}
	} else if mod&(sdl.KMOD_LCTRL|sdl.KMOD_RCTRL) != 0 {
		result |= ModCommand
	}
	return result
}
