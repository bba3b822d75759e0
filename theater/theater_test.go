package theater

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

func TestPlaceActorThenGetPosition(t *testing.T) {
	th := New(gui.Background{})
	th.PlaceActor(1, gui.Sprite{}, geom.Pt(10, 20))
	pos, ok := th.GetActorPosition(1)
	if !ok || pos != geom.Pt(10, 20) {
		t.Fatalf("GetActorPosition = %v, %v; want (10,20), true", pos, ok)
	}
}

func TestSwapActorsTwiceIsIdentity(t *testing.T) {
	th := New(gui.Background{})
	th.PlaceActor(1, gui.Sprite{}, geom.Pt(1, 1))
	th.PlaceActor(2, gui.Sprite{}, geom.Pt(2, 2))
	th.SwapActors(1, 2)
	th.SwapActors(1, 2)
	p1, _ := th.GetActorPosition(1)
	p2, _ := th.GetActorPosition(2)
	if p1 != geom.Pt(1, 1) || p2 != geom.Pt(2, 2) {
		t.Fatalf("double swap not identity: p1=%v p2=%v", p1, p2)
	}
}

func TestSwapActorsOneMissing(t *testing.T) {
	th := New(gui.Background{})
	th.PlaceActor(1, gui.Sprite{}, geom.Pt(5, 5))
	th.SwapActors(1, 2)
	if th.ActorExists(1) {
		t.Error("slot 1 should now be empty")
	}
	pos, ok := th.GetActorPosition(2)
	if !ok || pos != geom.Pt(5, 5) {
		t.Errorf("slot 2 should now hold the actor: pos=%v ok=%v", pos, ok)
	}
}

func TestAddShakeDecaysToZero(t *testing.T) {
	th := New(gui.Background{})
	th.AddShake(4)
	seen := map[geom.Point]bool{th.ShakeOffset(): true}
	if th.ShakeOffset().IsZero() {
		t.Fatal("AddShake(4) should displace the stage immediately")
	}
	for i := 0; i < 3; i++ {
		th.TickShake()
		off := th.ShakeOffset()
		if off.IsZero() {
			t.Fatalf("tick %d: shake offset settled to (0,0) early, want non-zero", i+1)
		}
		seen[off] = true
	}
	if len(seen) != 4 {
		t.Errorf("distinct non-zero shake offsets = %d, want 4 (%v)", len(seen), seen)
	}
	th.TickShake()
	if !th.ShakeOffset().IsZero() {
		t.Errorf("shake offset after the 4th tick = %v, want (0,0)", th.ShakeOffset())
	}
}

func TestRemoveActorSilentNoOp(t *testing.T) {
	th := New(gui.Background{})
	th.RemoveActor(99) // should not panic
	th.SetActorPosition(99, geom.Pt(1, 1))
	th.SetActorSprite(99, gui.Sprite{})
	if th.ActorExists(99) {
		t.Error("slot 99 should not exist")
	}
}

func TestDrainQueueOrder(t *testing.T) {
	th := New(gui.Background{})
	th.QueueCommand(1, 10)
	th.QueueCommand(1, 20)
	got := th.DrainQueue()
	want := []QueueEvent{{Kind: 1, Value: 10}, {Kind: 1, Value: 20}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("DrainQueue = %v, want %v", got, want)
	}
	if len(th.DrainQueue()) != 0 {
		t.Error("queue should be empty after drain")
	}
}

func TestActorAtPointReverseDrawOrder(t *testing.T) {
	th := New(gui.Background{})
	sp := gui.NewSprite(ebiten.NewImage(10, 10))
	th.PlaceActor(1, sp, geom.Pt(5, 10))
	th.PlaceActor(2, sp, geom.Pt(5, 10))
	slot, ok := th.ActorAtPoint(geom.Pt(5, 5))
	if !ok || slot != 2 {
		t.Fatalf("ActorAtPoint = (%d, %v), want (2, true)", slot, ok)
	}
}
