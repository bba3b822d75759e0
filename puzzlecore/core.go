// Package puzzlecore implements the generic per-puzzle harness: it owns
// a theater, the compiled intro/outro/extra-character scenes, the
// undo/redo stacks a puzzle pushes command values onto, the HUD, and
// the screen fade, and routes each frame's event either into whatever
// scene is currently playing or out to the gameplay layer.
package puzzlecore

import (
	"github.com/duskglass/puzzlecore/cutscene"
	"github.com/duskglass/puzzlecore/gui"
	"github.com/duskglass/puzzlecore/theater"
)

// activeKind distinguishes why a scene is currently playing, since
// completion behavior differs: finishing the intro triggers a fade in,
// finishing an extra scene clears back to gameplay, finishing the
// outro just clears the active scene.
type activeKind int

const (
	kindNone activeKind = iota
	kindIntro
	kindOutro
	kindExtra
)

// PuzzleCore is generic over U, the puzzle-specific undo/redo command
// payload type each puzzle defines for itself.
type PuzzleCore[U any] struct {
	Theater *theater.Theater

	intro *cutscene.Scene
	outro *cutscene.Scene

	extraScenes map[int]*cutscene.Scene
	activeScene *cutscene.Scene
	activeKind  activeKind
	activeTag   int

	undo []U
	redo []U

	Hud  *Hud
	Fade *ScreenFade

	// characters maps an actor slot to the extra-scene tag it triggers
	// when clicked during gameplay (§4.4, begin_character_scene_on_click).
	characters map[int]int
	ClickSound gui.Sound
}

// New builds a PuzzleCore. visited selects the first-visit vs. revisit
// branch of construction: on a first visit the intro plays immediately
// behind a transparent fade; on a revisit the core starts in gameplay
// and fades in from opaque. If solvedReplay is true (the player chose
// "replay" on an already-solved puzzle), the outro plays immediately
// instead.
func New[U any](t *theater.Theater, intro, outro *cutscene.Scene, visited, solvedReplay bool) *PuzzleCore[U] {
	p := &PuzzleCore[U]{
		Theater:     t,
		intro:       intro,
		outro:       outro,
		extraScenes: make(map[int]*cutscene.Scene),
		characters:  make(map[int]int),
		Hud:         NewHud(),
		Fade:        NewScreenFade(FadeLeftToRight),
	}
	switch {
	case solvedReplay && outro != nil:
		p.activeScene = outro
		p.activeKind = kindOutro
		p.activeScene.Begin(t)
	case !visited && intro != nil:
		p.activeScene = intro
		p.activeKind = kindIntro
		p.activeScene.Begin(t)
		p.Fade.SetTransparent()
	default:
		p.Fade.SetOpaque()
		p.Fade.FadeIn()
	}
	return p
}

// RegisterExtraScene associates tag with a compiled scene triggerable
// mid-gameplay by BeginExtraScene or a character click.
func (p *PuzzleCore[U]) RegisterExtraScene(tag int, scene *cutscene.Scene) {
	p.extraScenes[tag] = scene
}

// RegisterCharacter marks slot as a clickable character that starts
// the extra scene tag when clicked during gameplay.
func (p *PuzzleCore[U]) RegisterCharacter(slot, tag int) {
	p.characters[slot] = tag
}

// BeginOutroScene replaces the active scene with the outro, from its
// start.
func (p *PuzzleCore[U]) BeginOutroScene() {
	if p.outro == nil {
		return
	}
	p.activeScene = p.outro
	p.activeKind = kindOutro
	p.activeScene.Begin(p.Theater)
}

// BeginExtraScene replaces the active scene with the one registered
// under tag, from its start. No-op if tag is unregistered.
func (p *PuzzleCore[U]) BeginExtraScene(tag int) {
	scene, ok := p.extraScenes[tag]
	if !ok {
		return
	}
	p.activeScene = scene
	p.activeKind = kindExtra
	p.activeTag = tag
	p.activeScene.Begin(p.Theater)
}

// SkipExtraScene fast-forwards the scene registered under tag without
// ever making it the active scene, used when the player has already
// seen it on a prior visit.
func (p *PuzzleCore[U]) SkipExtraScene(tag int) {
	scene, ok := p.extraScenes[tag]
	if !ok {
		return
	}
	scene.Begin(p.Theater)
	scene.Skip(p.Theater)
}

// PushUndo appends u to the undo stack and clears the redo stack.
func (p *PuzzleCore[U]) PushUndo(u U) {
	p.undo = append(p.undo, u)
	p.redo = nil
}

// PopUndo moves the top undo entry to the redo stack and returns it.
// ok is false on an empty stack (no-op, per §7).
func (p *PuzzleCore[U]) PopUndo() (u U, ok bool) {
	if len(p.undo) == 0 {
		return u, false
	}
	last := len(p.undo) - 1
	u = p.undo[last]
	p.undo = p.undo[:last]
	p.redo = append(p.redo, u)
	return u, true
}

// PopRedo moves the top redo entry back to the undo stack and returns
// it. ok is false on an empty stack.
func (p *PuzzleCore[U]) PopRedo() (u U, ok bool) {
	if len(p.redo) == 0 {
		return u, false
	}
	last := len(p.redo) - 1
	u = p.redo[last]
	p.redo = p.redo[:last]
	p.undo = append(p.undo, u)
	return u, true
}

// ClearUndoRedo empties both stacks, used by reset/solve/replay.
func (p *PuzzleCore[U]) ClearUndoRedo() {
	p.undo = nil
	p.redo = nil
}

// UndoLen and RedoLen expose stack depth so a host can gray out HUD
// buttons.
func (p *PuzzleCore[U]) UndoLen() int { return len(p.undo) }
func (p *PuzzleCore[U]) RedoLen() int { return len(p.redo) }

// DrainQueue forwards the theater's command queue.
func (p *PuzzleCore[U]) DrainQueue() []theater.QueueEvent {
	return p.Theater.DrainQueue()
}

// IsSceneActive reports whether a cutscene is currently playing (and
// therefore owns input, per §4.4's routing rules).
func (p *PuzzleCore[U]) IsSceneActive() bool {
	return p.activeScene != nil && !p.activeScene.IsFinished()
}

// BeginCharacterSceneOnClick starts the extra scene registered for the
// clicked actor, if event is a MouseDown landing on a registered
// character slot during gameplay. Returns the action to emit (a
// redraw carrying the click sound) and whether a scene was started.
func (p *PuzzleCore[U]) BeginCharacterSceneOnClick(event gui.Event) (gui.Action[Cmd], bool) {
	if event.Kind != gui.MouseDown || p.IsSceneActive() {
		return gui.Action[Cmd]{}, false
	}
	slot, ok := p.Theater.ActorAtPoint(event.Point)
	if !ok {
		return gui.Action[Cmd]{}, false
	}
	tag, ok := p.characters[slot]
	if !ok {
		return gui.Action[Cmd]{}, false
	}
	p.BeginExtraScene(tag)
	return gui.Redraw[Cmd]().WithSound(p.ClickSound).AndStop(), true
}

// Tick advances the screen fade and, if a scene is playing, the scene
// itself; it reports whether anything visibly changed. Finishing the
// intro starts a fade-in; finishing an extra scene reverts to
// gameplay (active scene becomes none); the outro has no special
// completion behavior beyond simply finishing.
func (p *PuzzleCore[U]) Tick() bool {
	changed := p.Fade.Tick()
	if p.Theater.TickShake() {
		changed = true
	}
	if p.activeScene == nil {
		return changed
	}
	if p.activeScene.Tick(p.Theater) {
		changed = true
	}
	if p.activeScene.IsFinished() {
		finishedKind := p.activeKind
		p.activeScene = nil
		p.activeKind = kindNone
		p.activeTag = 0
		if finishedKind == kindIntro {
			p.Fade.FadeIn()
		}
	}
	return changed
}

// HandleEvent routes event per §4.4: the fade handles ClockTick and
// swallows input while opaque; while a scene is active it either
// unpauses on a click or swallows the event outright; otherwise the
// event falls through to the Hud and then to character-click
// dispatch, and if neither claims it, the caller should route it on
// to the puzzle view itself (Action.ShouldStop reports false in that
// case).
func (p *PuzzleCore[U]) HandleEvent(event gui.Event) gui.Action[Cmd] {
	if event.Kind == gui.ClockTick {
		return gui.RedrawIf[Cmd](p.Tick())
	}
	if p.Fade.HandleEvent(event) {
		return gui.Ignore[Cmd]().AndStop()
	}
	if p.IsSceneActive() {
		if event.Kind == gui.MouseDown && p.activeScene.IsPaused() {
			p.activeScene.Unpause()
			return gui.Redraw[Cmd]().AndStop()
		}
		return gui.Ignore[Cmd]().AndStop()
	}
	if action := p.Hud.HandleEvent(event); action.ShouldStop() {
		return action
	}
	if action, started := p.BeginCharacterSceneOnClick(event); started {
		return action
	}
	return gui.Ignore[Cmd]()
}

// DrawBack draws the background layer: background-plane actors and the
// background sprite.
func (p *PuzzleCore[U]) DrawBack(canvas gui.Canvas) {
	p.Theater.DrawBackground(canvas)
}

// DrawFront draws the foreground layer: foreground actors with shake,
// dark overlay, speech, then the Hud and screen fade on top. Callers
// draw their own puzzle-specific middle layer between DrawBack and
// DrawFront.
func (p *PuzzleCore[U]) DrawFront(canvas gui.Canvas) {
	p.Theater.DrawForeground(canvas)
	p.Hud.Draw(canvas)
	p.Fade.Draw(canvas)
}
