package cutscene

import (
	"github.com/duskglass/puzzlecore/gui"
	"github.com/duskglass/puzzlecore/theater"
)

var _ gui.Element[theater.Theater, struct{}] = (*Scene)(nil)

// Draw draws the theater's background then foreground layer, giving
// Scene the gui.Element capability so it composes with PuzzleCore's own
// layered draw (§4.4's "three-layer" draw) the same way any other
// element would.
func (s *Scene) Draw(t *theater.Theater, canvas gui.Canvas) {
	t.DrawBackground(canvas)
	t.DrawForeground(canvas)
}

// HandleEvent turns a gui.Event into the scene's response: ClockTick
// advances the scene, a MouseDown while paused unpauses it, and
// everything else is swallowed (stopped) unless the scene has already
// finished, so an active cutscene blocks input from reaching the
// puzzle body underneath it (§4.4).
func (s *Scene) HandleEvent(event gui.Event, t *theater.Theater) gui.Action[struct{}] {
	switch event.Kind {
	case gui.Quit:
		return gui.Ignore[struct{}]()
	case gui.ClockTick:
		return gui.RedrawIf[struct{}](s.Tick(t))
	case gui.MouseDown:
		if s.IsPaused() {
			s.Unpause()
			return gui.Redraw[struct{}]().AndStop()
		}
	}
	if s.IsFinished() {
		return gui.Ignore[struct{}]()
	}
	return gui.Ignore[struct{}]().AndStop()
}
