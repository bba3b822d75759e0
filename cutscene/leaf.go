package cutscene

import (
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
	"github.com/duskglass/puzzlecore/theater"
)

// WaitNode is Active until an internal frame counter, derived from
// floor(seconds*FramesPerSecond), elapses.
type WaitNode struct {
	baseNode
	progress int
	duration int
}

// NewWait builds a WaitNode that stays Active for the given duration.
func NewWait(seconds float64) *WaitNode {
	return &WaitNode{duration: SecondsToFrames(seconds)}
}

func (w *WaitNode) Status() Status {
	if w.progress < w.duration {
		return Active
	}
	return Done
}

func (w *WaitNode) Tick(t *theater.Theater, _ bool) bool {
	if w.progress < w.duration {
		w.progress++
	}
	return false
}

func (w *WaitNode) Skip(t *theater.Theater) { w.progress = w.duration }
func (w *WaitNode) Reset()                  { w.progress = 0 }

// ShakeNode adds shake to the theater on begin/skip and is immediately
// Done.
type ShakeNode struct {
	baseNode
	amount int
}

// NewShake builds a ShakeNode that kicks the theater's shake by amount.
func NewShake(amount int) *ShakeNode { return &ShakeNode{amount: amount} }

func (s *ShakeNode) Begin(t *theater.Theater, _ bool) { s.Skip(t) }
func (s *ShakeNode) Skip(t *theater.Theater)          { t.AddShake(s.amount) }

// SetBgNode sets the theater's background.
type SetBgNode struct {
	baseNode
	background gui.Background
}

func NewSetBg(background gui.Background) *SetBgNode {
	return &SetBgNode{background: background}
}

func (n *SetBgNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *SetBgNode) Skip(t *theater.Theater)          { t.SetBackground(n.background) }

// PlaceNode inserts an actor into the theater.
type PlaceNode struct {
	baseNode
	slot     int
	sprite   gui.Sprite
	position geom.Point
}

func NewPlace(slot int, sprite gui.Sprite, position geom.Point) *PlaceNode {
	return &PlaceNode{slot: slot, sprite: sprite, position: position}
}

func (n *PlaceNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *PlaceNode) Skip(t *theater.Theater) {
	t.PlaceActor(n.slot, n.sprite, n.position)
}

// RemoveNode removes an actor from the theater. Out-of-order removal of
// an already-absent slot is tolerated (§7).
type RemoveNode struct {
	baseNode
	slot int
}

func NewRemove(slot int) *RemoveNode { return &RemoveNode{slot: slot} }

func (n *RemoveNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *RemoveNode) Skip(t *theater.Theater)          { t.RemoveActor(n.slot) }

// SetSpriteNode changes an actor's sprite.
type SetSpriteNode struct {
	baseNode
	slot   int
	sprite gui.Sprite
}

func NewSetSprite(slot int, sprite gui.Sprite) *SetSpriteNode {
	return &SetSpriteNode{slot: slot, sprite: sprite}
}

func (n *SetSpriteNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *SetSpriteNode) Skip(t *theater.Theater) {
	t.SetActorSprite(n.slot, n.sprite)
}

// SetPosNode moves an actor instantaneously (as opposed to SlideNode).
type SetPosNode struct {
	baseNode
	slot     int
	position geom.Point
}

func NewSetPos(slot int, position geom.Point) *SetPosNode {
	return &SetPosNode{slot: slot, position: position}
}

func (n *SetPosNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *SetPosNode) Skip(t *theater.Theater) {
	t.SetActorPosition(n.slot, n.position)
}

// SwapNode exchanges two actors' theater slots.
type SwapNode struct {
	baseNode
	a, b int
}

func NewSwap(a, b int) *SwapNode { return &SwapNode{a: a, b: b} }

func (n *SwapNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *SwapNode) Skip(t *theater.Theater)          { t.SwapActors(n.a, n.b) }

// DarkNode toggles the theater's dark overlay.
type DarkNode struct {
	baseNode
	dark bool
}

func NewDark(dark bool) *DarkNode { return &DarkNode{dark: dark} }

func (n *DarkNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *DarkNode) Skip(t *theater.Theater)          { t.SetDark(n.dark) }

// LightNode sets or clears an actor's halo sprite.
type LightNode struct {
	baseNode
	slot  int
	light *gui.Sprite
}

func NewLight(slot int, light *gui.Sprite) *LightNode {
	return &LightNode{slot: slot, light: light}
}

func (n *LightNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *LightNode) Skip(t *theater.Theater) {
	t.SetActorLight(n.slot, n.light)
}

// SoundNode dispatches a sound effect on begin and is immediately Done.
type SoundNode struct {
	baseNode
	effect   gui.Sound
	dispatch func(gui.Sound)
}

// NewSound builds a SoundNode that hands effect to dispatch when begun.
// dispatch is supplied by the compiler (compile.go), which wires it to
// Compiler.PlaySound.
func NewSound(effect gui.Sound, dispatch func(gui.Sound)) *SoundNode {
	return &SoundNode{effect: effect, dispatch: dispatch}
}

func (n *SoundNode) Begin(t *theater.Theater, _ bool) {
	if n.dispatch != nil {
		n.dispatch(n.effect)
	}
}

// QueueNode appends a (kind, value) pair to the theater's command queue
// and is immediately Done.
type QueueNode struct {
	baseNode
	kind, value int32
}

func NewQueue(kind, value int32) *QueueNode {
	return &QueueNode{kind: kind, value: value}
}

func (n *QueueNode) Begin(t *theater.Theater, _ bool) { n.Skip(t) }
func (n *QueueNode) Skip(t *theater.Theater) {
	t.QueueCommand(n.kind, n.value)
}

// AnimNode cycles an actor's sprite through an index list, advancing
// every slowdown frames. It is Active until one full cycle completes;
// Loop wraps it for idle animations that cycle forever.
type AnimNode struct {
	baseNode
	slot     int
	sprites  []gui.Sprite
	slowdown int
	progress int
	index    int
}

// NewAnim builds an AnimNode over sprites, advancing the displayed
// sprite every slowdown frames. slowdown < 1 is treated as 1.
func NewAnim(slot int, sprites []gui.Sprite, slowdown int) *AnimNode {
	if slowdown < 1 {
		slowdown = 1
	}
	return &AnimNode{slot: slot, sprites: sprites, slowdown: slowdown}
}

func (n *AnimNode) totalFrames() int { return len(n.sprites) * n.slowdown }

func (n *AnimNode) Status() Status {
	if len(n.sprites) == 0 || n.progress >= n.totalFrames() {
		return Done
	}
	return Active
}

func (n *AnimNode) Begin(t *theater.Theater, _ bool) {
	n.progress = 0
	n.index = 0
	if len(n.sprites) > 0 {
		t.SetActorSprite(n.slot, n.sprites[0])
	}
}

func (n *AnimNode) Tick(t *theater.Theater, _ bool) bool {
	if len(n.sprites) == 0 || n.progress >= n.totalFrames() {
		return false
	}
	n.progress++
	newIndex := n.progress / n.slowdown
	if newIndex >= len(n.sprites) {
		return false
	}
	if newIndex != n.index {
		n.index = newIndex
		t.SetActorSprite(n.slot, n.sprites[n.index])
		return true
	}
	return false
}

func (n *AnimNode) Skip(t *theater.Theater) {
	n.progress = n.totalFrames()
	if len(n.sprites) > 0 {
		t.SetActorSprite(n.slot, n.sprites[len(n.sprites)-1])
	}
}

func (n *AnimNode) Reset() {
	n.progress = 0
	n.index = 0
}
