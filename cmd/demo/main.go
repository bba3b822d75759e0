// demo wires a single puzzle's worth of PuzzleCore together with an
// Ebitengine window, the way willow's demos/ directory wires a
// willow.Scene together with one: a minimal, runnable example rather
// than a reusable framework piece.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/duskglass/puzzlecore/cutscene"
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
	"github.com/duskglass/puzzlecore/puzzlecore"
	"github.com/duskglass/puzzlecore/theater"
)

const (
	screenW = 960
	screenH = 540
)

// moveCmd is the undo/redo payload for this demo's one puzzle action:
// a single actor nudged by a fixed step.
type moveCmd struct {
	slot   int
	before geom.Point
	after  geom.Point
}

type game struct {
	core *puzzlecore.PuzzleCore[moveCmd]
}

func newGame() *game {
	th := theater.New(gui.Background{Color: gui.Color{R: 20, G: 20, B: 30}})

	hero := gui.NewSprite(ebiten.NewImage(24, 24))
	th.PlaceActor(1, hero, geom.Pt(100, 100))

	intro := cutscene.NewScene([]cutscene.Node{
		cutscene.NewSlide(1, geom.Pt(200, 100), true, true, 1.0),
	})

	core := puzzlecore.New[moveCmd](th, intro, cutscene.Empty(), false, false)
	core.Hud.AddButton(puzzlecore.CmdUndo, geom.NewRect(10, screenH-40, 32, 32), gui.Sprite{})
	core.Hud.AddButton(puzzlecore.CmdRedo, geom.NewRect(50, screenH-40, 32, 32), gui.Sprite{})

	return &game{core: core}
}

func (g *game) Update() error {
	g.core.HandleEvent(gui.Event{Kind: gui.ClockTick})

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.nudge(geom.Pt(4, 0))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.nudge(geom.Pt(-4, 0))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		action := g.core.HandleEvent(gui.NewMouseDown(geom.Pt(x, y)))
		if cmd, ok := action.Value(); ok {
			g.applyHudCmd(cmd)
		}
	}
	return nil
}

func (g *game) nudge(delta geom.Point) {
	if g.core.IsSceneActive() {
		return
	}
	pos, ok := g.core.Theater.GetActorPosition(1)
	if !ok {
		return
	}
	next := pos.Add(delta)
	g.core.Theater.SetActorPosition(1, next)
	g.core.PushUndo(moveCmd{slot: 1, before: pos, after: next})
}

func (g *game) applyHudCmd(cmd puzzlecore.Cmd) {
	switch cmd {
	case puzzlecore.CmdUndo:
		if u, ok := g.core.PopUndo(); ok {
			g.core.Theater.SetActorPosition(u.slot, u.before)
		}
	case puzzlecore.CmdRedo:
		if r, ok := g.core.PopRedo(); ok {
			g.core.Theater.SetActorPosition(r.slot, r.after)
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	canvas := gui.NewCanvas(screen, screenW, screenH)
	g.core.DrawBack(canvas)
	g.core.DrawFront(canvas)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("puzzlecore demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
