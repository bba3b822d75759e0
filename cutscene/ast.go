package cutscene

import (
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// Ast is the declarative, value-typed cutscene tree (§3, "Scene AST").
// It is built once, at compile time, from in-process literals — never
// at runtime from external data — and is discarded after Compile turns
// it into a stateful Node tree. Exactly one field group per variant is
// meaningful, selected by Kind.
type Ast struct {
	Kind AstKind

	Children []Ast // Seq, Par

	LoopBody *Ast // Loop
	LoopMin  int  // Loop
	LoopMax  int  // Loop; -1 means unbounded

	Seconds float64 // Wait, Slide, Jump

	Slot  int        // Place, Remove, SetSprite, SetPos, Light, Talk, Anim, Jump, Slide
	SlotB int         // Swap
	Point geom.Point // Place, SetPos, Slide, Jump

	SpriteName  string // Place, SetSprite: atlas name
	SpriteIndex int    // Place, SetSprite: index into the atlas

	AnimIndices  []int // Anim
	AnimSlowdown int   // Anim

	BgName string // SetBg

	On bool // Dark, Light

	Accel, Decel bool // Slide

	Amount int // Shake

	TalkStyle gui.TalkStyle // Talk
	TalkPos   gui.TalkPos   // Talk
	TalkText  string        // Talk

	SoundName string // Sound

	QueueKind, QueueValue int32 // Queue
}

// AstKind discriminates the Ast sum type, matching the node catalog
// named in spec.md §2/§4.2.
type AstKind int

const (
	KindSeq AstKind = iota
	KindPar
	KindLoop
	KindWait
	KindSlide
	KindJump
	KindTalk
	KindPlace
	KindRemove
	KindSetBg
	KindSound
	KindQueue
	KindAnim
	KindShake
	KindSwap
	KindSetSprite
	KindSetPos
	KindDark
	KindLight
)

// --- constructors, one per node catalog entry -----------------------------

func Seq(children ...Ast) Ast { return Ast{Kind: KindSeq, Children: children} }
func Par(children ...Ast) Ast { return Ast{Kind: KindPar, Children: children} }

// Loop plays body repeatedly. max=-1 means unbounded (§4.2's sentinel).
func Loop(body Ast, min, max int) Ast {
	return Ast{Kind: KindLoop, LoopBody: &body, LoopMin: min, LoopMax: max}
}

func Wait(seconds float64) Ast { return Ast{Kind: KindWait, Seconds: seconds} }

func Slide(slot int, end geom.Point, accel, decel bool, seconds float64) Ast {
	return Ast{Kind: KindSlide, Slot: slot, Point: end, Accel: accel, Decel: decel, Seconds: seconds}
}

func Jump(slot int, end geom.Point, seconds float64) Ast {
	return Ast{Kind: KindJump, Slot: slot, Point: end, Seconds: seconds}
}

func Talk(slot int, style gui.TalkStyle, pos gui.TalkPos, text string) Ast {
	return Ast{Kind: KindTalk, Slot: slot, TalkStyle: style, TalkPos: pos, TalkText: text}
}

func Place(slot int, spriteName string, spriteIndex int, pos geom.Point) Ast {
	return Ast{Kind: KindPlace, Slot: slot, SpriteName: spriteName, SpriteIndex: spriteIndex, Point: pos}
}

func Remove(slot int) Ast { return Ast{Kind: KindRemove, Slot: slot} }

func SetBg(name string) Ast { return Ast{Kind: KindSetBg, BgName: name} }

func Sound(name string) Ast { return Ast{Kind: KindSound, SoundName: name} }

func Queue(kind, value int32) Ast { return Ast{Kind: KindQueue, QueueKind: kind, QueueValue: value} }

func Anim(slot int, name string, indices []int, slowdown int) Ast {
	return Ast{Kind: KindAnim, Slot: slot, SpriteName: name, AnimIndices: indices, AnimSlowdown: slowdown}
}

func Shake(amount int) Ast { return Ast{Kind: KindShake, Amount: amount} }

func Swap(a, b int) Ast { return Ast{Kind: KindSwap, Slot: a, SlotB: b} }

func SetSprite(slot int, name string, index int) Ast {
	return Ast{Kind: KindSetSprite, Slot: slot, SpriteName: name, SpriteIndex: index}
}

func SetPos(slot int, pos geom.Point) Ast {
	return Ast{Kind: KindSetPos, Slot: slot, Point: pos}
}

func Dark(on bool) Ast { return Ast{Kind: KindDark, On: on} }

func Light(slot int, on bool) Ast { return Ast{Kind: KindLight, Slot: slot, On: on} }
