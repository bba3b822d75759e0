// Package theater implements the mutable stage owned by a PuzzleCore:
// background, an ordered set of actors addressed by integer slot,
// global dark-mode, and shake offset. It is pure data plus a draw
// contract; all mutation happens through its operations, keyed by
// slot, never through back-references from actors.
package theater

import (
	"sort"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// maxShake bounds AddShake's saturation to a small fixed cap.
const maxShake = 8

// Theater is the per-puzzle stage. It is owned exclusively by a single
// PuzzleCore; no reference to it escapes elsewhere.
type Theater struct {
	background gui.Background
	actors     map[int]*Actor
	slots      []int // sorted actor keys, kept in sync with actors
	dark       bool
	queue      []QueueEvent

	shake       int
	shakeOffset geom.Point
	shakeStep   int
}

// QueueEvent is a (kind, value) pair appended by the Queue scene node
// and drained once per tick by the outer puzzle view (§3, "Command
// queue").
type QueueEvent struct {
	Kind  int32
	Value int32
}

// New creates an empty Theater with the given initial background.
func New(background gui.Background) *Theater {
	return &Theater{background: background, actors: make(map[int]*Actor)}
}

// PlaceActor inserts or replaces the actor at slot.
func (t *Theater) PlaceActor(slot int, sprite gui.Sprite, position geom.Point) {
	if _, exists := t.actors[slot]; !exists {
		t.insertSlot(slot)
	}
	t.actors[slot] = &Actor{Sprite: sprite, Position: position}
}

// RemoveActor removes the actor at slot, if any. Removing a slot that
// holds no actor is a silent no-op (§7).
func (t *Theater) RemoveActor(slot int) {
	if _, exists := t.actors[slot]; !exists {
		return
	}
	delete(t.actors, slot)
	t.removeSlot(slot)
}

// GetActorPosition returns the position of the actor at slot, and
// whether one exists.
func (t *Theater) GetActorPosition(slot int) (geom.Point, bool) {
	a, ok := t.actors[slot]
	if !ok {
		return geom.Point{}, false
	}
	return a.Position, true
}

// SetActorPosition moves the actor at slot. Silent no-op if absent.
func (t *Theater) SetActorPosition(slot int, p geom.Point) {
	if a, ok := t.actors[slot]; ok {
		a.Position = p
	}
}

// SetActorSprite replaces the actor at slot's sprite. Silent no-op if absent.
func (t *Theater) SetActorSprite(slot int, sprite gui.Sprite) {
	if a, ok := t.actors[slot]; ok {
		a.Sprite = sprite
	}
}

// SetActorLight sets or clears the actor at slot's halo sprite, shown
// carved out of the dark overlay when the theater is dark. Silent
// no-op if absent.
func (t *Theater) SetActorLight(slot int, light *gui.Sprite) {
	if a, ok := t.actors[slot]; ok {
		a.Light = light
	}
}

// SetActorSpeech sets or clears the actor at slot's speech bubble.
// Silent no-op if absent.
func (t *Theater) SetActorSpeech(slot int, speech *gui.Speech) {
	if a, ok := t.actors[slot]; ok {
		a.Speech = speech
	}
}

// ClearActorSpeech clears the actor at slot's speech bubble.
func (t *Theater) ClearActorSpeech(slot int) {
	t.SetActorSpeech(slot, nil)
}

// SwapActors exchanges the Actor values at slot_a and slot_b. Applying
// it twice is the identity (testable property 12).
func (t *Theater) SwapActors(a, b int) {
	if a == b {
		return
	}
	actorA, okA := t.actors[a]
	actorB, okB := t.actors[b]
	switch {
	case okA && okB:
		t.actors[a], t.actors[b] = actorB, actorA
	case okA && !okB:
		delete(t.actors, a)
		t.removeSlot(a)
		t.actors[b] = actorA
		t.insertSlot(b)
	case !okA && okB:
		delete(t.actors, b)
		t.removeSlot(b)
		t.actors[a] = actorB
		t.insertSlot(a)
	default:
		// neither slot occupied: nothing to swap
	}
}

// ActorExists reports whether slot currently holds an actor.
func (t *Theater) ActorExists(slot int) bool {
	_, ok := t.actors[slot]
	return ok
}

// SetBackground replaces the stage background.
func (t *Theater) SetBackground(bg gui.Background) { t.background = bg }

// SetDark toggles the dark-overlay flag.
func (t *Theater) SetDark(dark bool) { t.dark = dark }

// IsDark reports the current dark-overlay flag.
func (t *Theater) IsDark() bool { return t.dark }

// AddShake saturates the shake magnitude at maxShake and displaces the
// stage immediately: the new offset is visible on the very frame the
// shake lands.
func (t *Theater) AddShake(n int) {
	t.shake += n
	if t.shake > maxShake {
		t.shake = maxShake
	}
	if t.shake < 0 {
		t.shake = 0
	}
	t.shakeOffset = shakeDisplacement(t.shake, t.shakeStep)
}

// ShakeOffset returns the current foreground shake displacement.
func (t *Theater) ShakeOffset() geom.Point { return t.shakeOffset }

// TickShake moves the shake displacement one unit toward the origin
// along the deterministic zigzag: the magnitude drops by one and the
// direction advances to the next axis, so a magnitude-n shake returns
// to (0,0) in exactly n ticks. Called once per frame by PuzzleCore.
func (t *Theater) TickShake() bool {
	if t.shake <= 0 {
		if t.shakeOffset.IsZero() {
			return false
		}
		t.shakeOffset = geom.Point{}
		t.shakeStep = 0
		return true
	}
	t.shake--
	t.shakeStep = (t.shakeStep + 1) % 4
	t.shakeOffset = shakeDisplacement(t.shake, t.shakeStep)
	return true
}

// shakeDisplacement maps a shake magnitude and zigzag step to the
// displacement applied to all foreground draws: the magnitude along one
// of the four axis directions in clockwise rotation.
func shakeDisplacement(magnitude, step int) geom.Point {
	if magnitude <= 0 {
		return geom.Point{}
	}
	switch step % 4 {
	case 0:
		return geom.Pt(magnitude, 0)
	case 1:
		return geom.Pt(0, magnitude)
	case 2:
		return geom.Pt(-magnitude, 0)
	default:
		return geom.Pt(0, -magnitude)
	}
}

// QueueCommand appends a (kind, value) event, consumed by the outer
// puzzle once per tick. The core neither interprets nor validates it.
func (t *Theater) QueueCommand(kind, value int32) {
	t.queue = append(t.queue, QueueEvent{Kind: kind, Value: value})
}

// DrainQueue returns and clears all queued (kind, value) events, in the
// order they were appended.
func (t *Theater) DrainQueue() []QueueEvent {
	events := t.queue
	t.queue = nil
	return events
}

// ActorAtPoint hit-tests p in reverse draw order (frontmost first).
func (t *Theater) ActorAtPoint(p geom.Point) (slot int, ok bool) {
	for i := len(t.slots) - 1; i >= 0; i-- {
		s := t.slots[i]
		a := t.actors[s]
		if a.Rect().Contains(p) {
			return s, true
		}
	}
	return 0, false
}

// DrawBackground draws background-plane actors (negative slots, in
// slot order), then the background sprite.
func (t *Theater) DrawBackground(canvas gui.Canvas) {
	for _, slot := range t.slots {
		if slot >= 0 {
			break
		}
		t.actors[slot].draw(canvas, geom.Point{})
	}
	canvas.DrawBackground(t.background)
}

// DrawForeground draws foreground actors (non-negative slots), then the
// dark overlay with carved-out lights, then speech bubbles — all offset
// by the current shake. Speech bubbles are drawn above all actors
// (§4.1 invariant).
func (t *Theater) DrawForeground(canvas gui.Canvas) {
	offset := t.shakeOffset
	for _, slot := range t.slots {
		if slot < 0 {
			continue
		}
		t.actors[slot].draw(canvas, offset)
	}
	if t.dark {
		t.drawDarkOverlay(canvas, offset)
	}
	for _, slot := range t.slots {
		if slot < 0 {
			continue
		}
		a := t.actors[slot]
		if a.Speech != nil {
			a.drawSpeech(canvas, offset)
		}
	}
}

func (t *Theater) drawDarkOverlay(canvas gui.Canvas, offset geom.Point) {
	rects := []geom.Rect{canvas.Rect()}
	for _, slot := range t.slots {
		if slot < 0 {
			continue
		}
		a := t.actors[slot]
		if a.Light == nil {
			continue
		}
		lightRect := geom.NewRect(0, 0, a.Light.Width(), a.Light.Height()).CenterOn(a.Rect().Center())
		canvas.DrawSprite(*a.Light, lightRect.TopLeft().Add(offset))
		rects = subtractRect(rects, lightRect)
	}
	for _, r := range rects {
		canvas.FillRect(gui.Color{}, r.Translate(offset.X, offset.Y))
	}
}

// subtractRect removes `remove` from every rectangle in rects, possibly
// splitting a rectangle into up to four remaining pieces. Used to carve
// actor halos out of the dark overlay.
func subtractRect(rects []geom.Rect, remove geom.Rect) []geom.Rect {
	var out []geom.Rect
	for _, r := range rects {
		inter, ok := r.Intersection(remove)
		if !ok {
			out = append(out, r)
			continue
		}
		if inter.Top() > r.Top() {
			out = append(out, geom.NewRect(r.Left(), r.Top(), r.Width, inter.Top()-r.Top()))
		}
		if inter.Bottom() < r.Bottom() {
			out = append(out, geom.NewRect(r.Left(), inter.Bottom(), r.Width, r.Bottom()-inter.Bottom()))
		}
		if inter.Left() > r.Left() {
			out = append(out, geom.NewRect(r.Left(), inter.Top(), inter.Left()-r.Left(), inter.Height))
		}
		if inter.Right() < r.Right() {
			out = append(out, geom.NewRect(inter.Right(), inter.Top(), r.Right()-inter.Right(), inter.Height))
		}
	}
	return out
}

func (t *Theater) insertSlot(slot int) {
	i := sort.SearchInts(t.slots, slot)
	t.slots = append(t.slots, 0)
	copy(t.slots[i+1:], t.slots[i:])
	t.slots[i] = slot
}

func (t *Theater) removeSlot(slot int) {
	i := sort.SearchInts(t.slots, slot)
	if i < len(t.slots) && t.slots[i] == slot {
		t.slots = append(t.slots[:i], t.slots[i+1:]...)
	}
}
