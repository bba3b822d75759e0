package puzzlecore

import (
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// Cmd is the closed set of commands a Hud can hand back to the host
// loop. The host loop, not PuzzleCore, is responsible for acting on
// them (e.g. Back triggers a location transition).
type Cmd int

const (
	CmdBack Cmd = iota
	CmdInfo
	CmdUndo
	CmdRedo
	CmdReset
	CmdReplay
	CmdSolve
	CmdNext
)

// button is one clickable Hud region.
type button struct {
	cmd     Cmd
	bounds  geom.Rect
	sprite  gui.Sprite
	enabled bool
}

// Hud is a strip of puzzle-control buttons drawn over the front layer,
// one for each Cmd (back, info, undo, redo, reset, replay, solve, next)
// the caller registers with AddButton. It
// holds no puzzle state of its own; enabling/disabling individual
// buttons (e.g. graying out Undo on an empty stack) is driven by the
// caller through SetEnabled.
type Hud struct {
	buttons []*button
}

// NewHud builds an empty Hud; buttons are registered with AddButton.
func NewHud() *Hud {
	return &Hud{}
}

// AddButton registers a clickable region for cmd.
func (h *Hud) AddButton(cmd Cmd, bounds geom.Rect, sprite gui.Sprite) {
	h.buttons = append(h.buttons, &button{cmd: cmd, bounds: bounds, sprite: sprite, enabled: true})
}

// SetEnabled toggles whether cmd's button responds to clicks and is
// drawn at full opacity.
func (h *Hud) SetEnabled(cmd Cmd, enabled bool) {
	for _, b := range h.buttons {
		if b.cmd == cmd {
			b.enabled = enabled
		}
	}
}

// Draw renders every button, dimming disabled ones.
func (h *Hud) Draw(canvas gui.Canvas) {
	for _, b := range h.buttons {
		if b.enabled {
			canvas.DrawSprite(b.sprite, b.bounds.TopLeft())
		} else {
			canvas.DrawSpriteTinted(b.sprite, b.bounds.TopLeft(), gui.Color{R: 255, G: 255, B: 255}, 0.4)
		}
	}
}

// HandleEvent reports the Cmd of the enabled button under a MouseDown,
// stopping propagation on a hit.
func (h *Hud) HandleEvent(event gui.Event) gui.Action[Cmd] {
	if event.Kind != gui.MouseDown {
		return gui.Ignore[Cmd]()
	}
	for _, b := range h.buttons {
		if b.enabled && b.bounds.Contains(event.Point) {
			return gui.Redraw[Cmd]().WithValue(b.cmd).AndStop()
		}
	}
	return gui.Ignore[Cmd]()
}
