package cutscene

import (
	"fmt"

	"github.com/duskglass/puzzlecore/gui"
)

// SoundSink receives dispatched Sound effects from Sound scene nodes.
// The host's mixer implementation is external (§1 non-goal); this is
// only the hook the compiled scene calls into.
type SoundSink func(gui.Sound)

// Compiler resolves Ast sprite/font/sound names against a Resources
// implementation and a sound lookup while turning the Ast into a
// stateful Node tree. A sprite index out of range for the sequence
// Resources returns panics: scenes are compiled once from in-process
// AST literals, so a missing sprite at that point is a programmer
// error, not a runtime condition (§7). Fonts and backgrounds are used
// as Resources returns them; a miss there is not detected.
type Compiler struct {
	Resources gui.Resources
	// GetSound resolves a named sound effect to a playable handle.
	GetSound func(name string) gui.Sound
	// PlaySound is the sink every compiled Sound node dispatches to.
	PlaySound SoundSink
}

// CompileScene compiles a top-level node list into a Scene (§4.2,
// "Compilation").
func (c *Compiler) CompileScene(asts []Ast) *Scene {
	nodes := make([]Node, len(asts))
	for i, a := range asts {
		nodes[i] = c.compileNode(a)
	}
	return NewScene(nodes)
}

// compileNode performs the recursive Ast -> Node walk: Seq and Par
// recurse into their children, Loop compiles its body once, and every
// leaf resolves its resources through c.Resources / c.GetSound.
func (c *Compiler) compileNode(a Ast) Node {
	switch a.Kind {
	case KindSeq:
		return NewSeq(c.compileChildren(a.Children)...)
	case KindPar:
		return NewPar(c.compileChildren(a.Children)...)
	case KindLoop:
		var max *int
		if a.LoopMax >= 0 {
			m := a.LoopMax
			max = &m
		}
		if a.LoopBody == nil {
			panic("cutscene: Loop with nil body")
		}
		return NewLoop(c.compileNode(*a.LoopBody), a.LoopMin, max)
	case KindWait:
		return NewWait(a.Seconds)
	case KindSlide:
		return NewSlide(a.Slot, a.Point, a.Accel, a.Decel, a.Seconds)
	case KindJump:
		return NewJump(a.Slot, a.Point, a.Seconds)
	case KindTalk:
		paragraph := gui.NewParagraph(c.fontFor(a.TalkStyle), talkMaxWidth, gui.AlignLeft, false, a.TalkText)
		speech := gui.Speech{Paragraph: paragraph, Style: a.TalkStyle, Pos: a.TalkPos}
		return NewTalk(a.Slot, speech)
	case KindPlace:
		return NewPlace(a.Slot, c.sprite(a.SpriteName, a.SpriteIndex), a.Point)
	case KindRemove:
		return NewRemove(a.Slot)
	case KindSetBg:
		return NewSetBg(c.background(a.BgName))
	case KindSound:
		return NewSound(c.sound(a.SoundName), c.PlaySound)
	case KindQueue:
		return NewQueue(a.QueueKind, a.QueueValue)
	case KindAnim:
		sprites := make([]gui.Sprite, len(a.AnimIndices))
		for i, idx := range a.AnimIndices {
			sprites[i] = c.sprite(a.SpriteName, idx)
		}
		return NewAnim(a.Slot, sprites, a.AnimSlowdown)
	case KindShake:
		return NewShake(a.Amount)
	case KindSwap:
		return NewSwap(a.Slot, a.SlotB)
	case KindSetSprite:
		return NewSetSprite(a.Slot, c.sprite(a.SpriteName, a.SpriteIndex))
	case KindSetPos:
		return NewSetPos(a.Slot, a.Point)
	case KindDark:
		return NewDark(a.On)
	case KindLight:
		if a.On {
			sprite := c.sprite("halo", 0)
			return NewLight(a.Slot, &sprite)
		}
		return NewLight(a.Slot, nil)
	default:
		panic(fmt.Sprintf("cutscene: unknown Ast kind %d", a.Kind))
	}
}

func (c *Compiler) compileChildren(children []Ast) []Node {
	nodes := make([]Node, len(children))
	for i, child := range children {
		nodes[i] = c.compileNode(child)
	}
	return nodes
}

// talkMaxWidth is the default speech-bubble wrap width in pixels.
const talkMaxWidth = 180

func (c *Compiler) sprite(name string, index int) gui.Sprite {
	sprites := c.Resources.GetSprites(name)
	if index < 0 || index >= len(sprites) {
		panic(fmt.Sprintf("cutscene: sprite %q has no index %d", name, index))
	}
	return sprites[index]
}

func (c *Compiler) background(name string) gui.Background {
	return c.Resources.GetBackground(name)
}

func (c *Compiler) fontFor(style gui.TalkStyle) gui.Font {
	switch style {
	case gui.TalkThought:
		return c.Resources.GetFont("thought")
	case gui.TalkSystem:
		return c.Resources.GetFont("system")
	default:
		return c.Resources.GetFont("talk")
	}
}

func (c *Compiler) sound(name string) gui.Sound {
	if c.GetSound == nil {
		return nil
	}
	return c.GetSound(name)
}
