package puzzlecore

import (
	"testing"

	"github.com/duskglass/puzzlecore/cutscene"
	"github.com/duskglass/puzzlecore/gui"
	"github.com/duskglass/puzzlecore/theater"
)

func newCore() *PuzzleCore[string] {
	th := theater.New(gui.Background{})
	return New[string](th, cutscene.Empty(), cutscene.Empty(), true, false)
}

// S6: undo round-trip.
func TestS6UndoRedoRoundTrip(t *testing.T) {
	p := newCore()
	p.PushUndo("A")
	p.PushUndo("B")
	p.PushUndo("C")

	p.PopUndo()
	p.PopUndo()
	p.PopRedo()

	if p.UndoLen() != 2 {
		t.Fatalf("undo len = %d, want 2", p.UndoLen())
	}
	if p.RedoLen() != 1 {
		t.Fatalf("redo len = %d, want 1", p.RedoLen())
	}
}

func TestPushUndoClearsRedo(t *testing.T) {
	p := newCore()
	p.PushUndo("A")
	p.PopUndo()
	if p.RedoLen() != 1 {
		t.Fatalf("redo len = %d, want 1 after pop", p.RedoLen())
	}
	p.PushUndo("B")
	if p.RedoLen() != 0 {
		t.Fatalf("redo len = %d, want 0 after a fresh push", p.RedoLen())
	}
}

func TestPopUndoThenPopRedoLeavesSizesUnchanged(t *testing.T) {
	p := newCore()
	p.PushUndo("A")
	p.PushUndo("B")
	beforeUndo, beforeRedo := p.UndoLen(), p.RedoLen()

	u, ok := p.PopUndo()
	if !ok || u != "B" {
		t.Fatalf("PopUndo = %q, %v; want B, true", u, ok)
	}
	r, ok := p.PopRedo()
	if !ok || r != "B" {
		t.Fatalf("PopRedo = %q, %v; want B, true", r, ok)
	}

	if p.UndoLen() != beforeUndo || p.RedoLen() != beforeRedo {
		t.Errorf("stack sizes changed: undo %d->%d, redo %d->%d",
			beforeUndo, p.UndoLen(), beforeRedo, p.RedoLen())
	}
}

func TestPopUndoOnEmptyStackIsNoOp(t *testing.T) {
	p := newCore()
	_, ok := p.PopUndo()
	if ok {
		t.Error("PopUndo on empty stack should report ok=false")
	}
}

func TestBeginExtraSceneThenFinishRevertsToGameplay(t *testing.T) {
	p := newCore()
	scene := cutscene.NewScene([]cutscene.Node{cutscene.NewWait(0)})
	p.RegisterExtraScene(7, scene)

	p.BeginExtraScene(7)
	if !p.IsSceneActive() {
		t.Fatal("expected an active scene right after BeginExtraScene")
	}
	for p.IsSceneActive() {
		p.Tick()
	}
	if p.IsSceneActive() {
		t.Error("scene should have finished and reverted to gameplay")
	}
}

func TestIntroFinishingTriggersFadeIn(t *testing.T) {
	th := theater.New(gui.Background{})
	intro := cutscene.NewScene([]cutscene.Node{cutscene.NewWait(0)})
	p := New[string](th, intro, cutscene.Empty(), false, false)
	if !p.IsSceneActive() {
		t.Fatal("first visit should begin the intro")
	}
	for p.IsSceneActive() {
		p.Tick()
	}
	if !p.Fade.IsTransitioning() {
		t.Error("finishing the intro should start a fade-in")
	}
}
