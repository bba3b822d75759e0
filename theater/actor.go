package theater

import (
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// Actor is a positioned sprite living at a theater slot, with an
// optional light (halo) sprite and an optional speech bubble. Actors
// are pure data: all mutation happens through Theater operations keyed
// by slot, never through a back-reference from the Actor itself.
type Actor struct {
	Sprite   gui.Sprite
	Position geom.Point // anchor is the bottom-center of Sprite
	Light    *gui.Sprite
	Speech   *gui.Speech
}

// Rect returns the actor's bounding box, anchored at Position's
// bottom-center.
func (a *Actor) Rect() geom.Rect {
	return geom.NewRect(
		a.Position.X-a.Sprite.Width()/2,
		a.Position.Y-a.Sprite.Height(),
		a.Sprite.Width(),
		a.Sprite.Height(),
	)
}

func (a *Actor) draw(canvas gui.Canvas, offset geom.Point) {
	canvas.DrawSprite(a.Sprite, a.Rect().TopLeft().Add(offset))
}

func (a *Actor) drawSpeech(canvas gui.Canvas, offset geom.Point) {
	if a.Speech == nil || a.Speech.Paragraph == nil {
		return
	}
	origin := speechOrigin(a.Rect(), a.Speech.Pos).Add(offset)
	a.Speech.Paragraph.Draw(canvas, origin, speechColor(a.Speech.Style))
}

// speechOrigin places a bubble's top-left corner relative to the
// actor's bounding box, per the bubble's anchor position.
func speechOrigin(actorRect geom.Rect, pos gui.TalkPos) geom.Point {
	switch pos {
	case gui.TalkN, gui.TalkNE, gui.TalkNW, gui.TalkAuto:
		return geom.Pt(actorRect.Left(), actorRect.Top()-40)
	case gui.TalkS, gui.TalkSE, gui.TalkSW:
		return geom.Pt(actorRect.Left(), actorRect.Bottom())
	case gui.TalkE:
		return geom.Pt(actorRect.Right(), actorRect.Top())
	case gui.TalkW:
		return geom.Pt(actorRect.Left()-80, actorRect.Top())
	default:
		return actorRect.TopLeft()
	}
}

func speechColor(style gui.TalkStyle) gui.Color {
	switch style {
	case gui.TalkGood:
		return gui.Color{G: 255}
	case gui.TalkEvil:
		return gui.Color{R: 255}
	case gui.TalkThought:
		return gui.Color{R: 200, G: 200, B: 255}
	case gui.TalkSystem:
		return gui.Color{R: 255, G: 255, B: 255}
	default:
		return gui.Color{R: 0, G: 0, B: 0}
	}
}
