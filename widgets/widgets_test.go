package widgets

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

func testSprite() gui.Sprite {
	return gui.NewSprite(ebiten.NewImage(8, 8))
}

func TestPlatformSlidesAtFixedSpeedAndReportsTravelTime(t *testing.T) {
	anchors := []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0)}
	p := NewPlatform(testSprite(), anchors, 0, 10)

	if got := p.TravelTime(0, 1); got < 0.32 || got > 0.35 {
		t.Errorf("TravelTime(0,1) = %v, want ~0.333 (100px at 10px/frame takes 10 frames, 30fps)", got)
	}

	p.SetGoal(1)
	for p.IsMoving() {
		p.Tick()
	}
	if p.current != anchors[1] {
		t.Errorf("platform settled at %v, want %v", p.current, anchors[1])
	}
}

func TestArrowPairEmitsSignedDelta(t *testing.T) {
	left := geom.NewRect(0, 0, 20, 20)
	right := geom.NewRect(30, 0, 20, 20)
	pair := NewArrowPair(5, 2, left, right, testSprite(), testSprite())

	action := pair.HandleEvent(gui.NewMouseDown(geom.Pt(35, 10)))
	shift, ok := action.Value()
	if !ok || shift != (ArrowShift{Row: 5, Delta: 2}) {
		t.Fatalf("right click = %+v, %v; want {5 2}, true", shift, ok)
	}

	action = pair.HandleEvent(gui.NewMouseDown(geom.Pt(5, 10)))
	shift, ok = action.Value()
	if !ok || shift != (ArrowShift{Row: 5, Delta: -2}) {
		t.Fatalf("left click = %+v, %v; want {5 -2}, true", shift, ok)
	}
}

func TestArrowPairDeltaOverride(t *testing.T) {
	left := geom.NewRect(0, 0, 20, 20)
	right := geom.NewRect(30, 0, 20, 20)
	pair := NewArrowPair(5, 2, left, right, testSprite(), testSprite())
	pair.SetDeltaOverride(7)

	action := pair.HandleEvent(gui.NewMouseDown(geom.Pt(5, 10)))
	shift, ok := action.Value()
	if !ok || shift != (ArrowShift{Row: 5, Delta: -7}) {
		t.Fatalf("overridden left click = %+v, %v; want {5 -7}, true", shift, ok)
	}

	pair.SetDeltaOverride(0) // restore the configured delta
	action = pair.HandleEvent(gui.NewMouseDown(geom.Pt(35, 10)))
	shift, ok = action.Value()
	if !ok || shift != (ArrowShift{Row: 5, Delta: 2}) {
		t.Fatalf("restored right click = %+v, %v; want {5 2}, true", shift, ok)
	}
}

func TestArrowPairDisabledIgnoresClicks(t *testing.T) {
	right := geom.NewRect(0, 0, 20, 20)
	pair := NewArrowPair(0, 1, geom.Rect{}, right, testSprite(), testSprite())
	pair.SetEnabled(false)
	action := pair.HandleEvent(gui.NewMouseDown(geom.Pt(5, 5)))
	if _, ok := action.Value(); ok {
		t.Error("disabled ArrowPair should ignore clicks")
	}
}

func TestColumnsViewLinkagePropagatesRotation(t *testing.T) {
	bounds := []geom.Rect{geom.NewRect(0, 0, 30, 30), geom.NewRect(40, 0, 30, 30)}
	glyphs := [][]gui.Sprite{{testSprite(), testSprite(), testSprite()}, {testSprite(), testSprite()}}
	links := []ColumnsLink{{From: 0, To: 1, Ratio: 2}}
	v := NewColumnsView(bounds, glyphs, links, 10)

	v.HandleEvent(gui.Event{Kind: gui.MouseDown, Point: geom.Pt(10, 10)})
	v.HandleEvent(gui.Event{Kind: gui.MouseDrag, Point: geom.Pt(20, 10)}) // +1 step
	action := v.HandleEvent(gui.Event{Kind: gui.MouseUp})

	result, ok := action.Value()
	if !ok || result != (ColumnsResult{Column: 0, NetRotation: 1}) {
		t.Fatalf("result = %+v, %v; want {0 1}, true", result, ok)
	}
	if v.Rotation(0) != 1 {
		t.Errorf("column 0 rotation = %d, want 1", v.Rotation(0))
	}
	if v.Rotation(1) != 0 { // 2 steps forced on a 2-glyph column wraps to 0
		t.Errorf("linked column 1 rotation = %d, want 0 (2 steps mod 2 glyphs)", v.Rotation(1))
	}
}

func TestProgressBarEasesTowardTarget(t *testing.T) {
	bar := NewProgressBar(geom.NewRect(0, 0, 100, 10), gui.Color{}, gui.Color{})
	bar.SetFraction(1.0)
	ticked := false
	for i := 0; i < 60 && bar.Fraction() < 1.0; i++ {
		if bar.Tick() {
			ticked = true
		}
	}
	if !ticked {
		t.Fatal("expected at least one visible tick while easing")
	}
	if bar.Fraction() != 1.0 {
		t.Errorf("Fraction() = %v after settling, want 1.0", bar.Fraction())
	}
}

func TestProgressBarSnapIsImmediate(t *testing.T) {
	bar := NewProgressBar(geom.NewRect(0, 0, 100, 10), gui.Color{}, gui.Color{})
	bar.SnapFraction(0.5)
	if bar.Fraction() != 0.5 {
		t.Errorf("Fraction() = %v after SnapFraction, want 0.5", bar.Fraction())
	}
	if bar.Tick() {
		t.Error("Tick() should be a no-op right after a snap")
	}
}

func TestLaserFieldStraightShotSatisfiesDetector(t *testing.T) {
	f := NewLaserField(geom.Pt(0, 0), 10, 5, 1)
	f.AddObject(ObjEmitter, geom.Pt(0, 0), 1, testSprite()) // facing Right
	f.AddObject(ObjDetector, geom.Pt(4, 0), 0, testSprite())

	if !f.AllSatisfied() {
		t.Error("straight emitter->detector shot should satisfy the detector")
	}
}

func TestLaserFieldMirrorRedirectsBeam(t *testing.T) {
	f := NewLaserField(geom.Pt(0, 0), 10, 3, 3)
	f.AddObject(ObjEmitter, geom.Pt(0, 0), 1, testSprite())  // facing Right
	f.AddObject(ObjMirror, geom.Pt(2, 0), 1, testSprite())   // "\" turns Right into Down
	f.AddObject(ObjDetector, geom.Pt(2, 2), 0, testSprite())

	if !f.AllSatisfied() {
		t.Error("beam should turn down at the mirror and reach the detector two rows below it")
	}
}

func TestMovingStarsTickAlwaysReportsChange(t *testing.T) {
	stars := NewMovingStars(geom.NewRect(0, 0, 200, 100), testSprite(), 5, 5, 42)
	if !stars.Tick() {
		t.Error("Tick() should report a change while layers scroll")
	}
}

func TestIceGridPushSnapsToDominantAxis(t *testing.T) {
	v := NewIceGridView(geom.Pt(0, 0), 20, 3)
	v.PlaceBlock(1, testSprite(), geom.Pt(0, 0))

	v.HandleEvent(gui.Event{Kind: gui.MouseDown, Point: geom.Pt(5, 5)})
	v.HandleEvent(gui.Event{Kind: gui.MouseDrag, Point: geom.Pt(25, 8)})
	action := v.HandleEvent(gui.Event{Kind: gui.MouseUp})

	push, ok := action.Value()
	if !ok || push != (IceGridPush{Block: 1, DX: 1, DY: 0}) {
		t.Fatalf("push = %+v, %v; want {1 1 0}, true", push, ok)
	}
}

func TestIceGridViewAnimatesAlongPath(t *testing.T) {
	v := NewIceGridView(geom.Pt(0, 0), 20, 3)
	v.PlaceBlock(1, testSprite(), geom.Pt(0, 0))
	v.BeginSlide(1, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)}, 3)

	for i := 0; i < 6; i++ {
		v.Tick()
	}
	if v.blocks[1].pixel != geom.Pt(40, 0) {
		t.Errorf("final pixel = %v, want (40,0)", v.blocks[1].pixel)
	}
}

func TestCrosswordViewFillsFocusedCell(t *testing.T) {
	font := emptyFontForTest{}
	v := NewCrosswordView(geom.Pt(0, 0), 20, 3, 1, []int{0}, font)
	v.ActivateCell(1, 0)

	v.HandleEvent(gui.Event{Kind: gui.MouseDown, Point: geom.Pt(25, 5)})
	v.HandleEvent(gui.Event{Kind: gui.TextInput, Text: "A"})

	if v.Letter(1, 0) != 'A' {
		t.Errorf("Letter(1,0) = %q, want 'A'", v.Letter(1, 0))
	}
}

type emptyFontForTest struct{}

func (emptyFontForTest) Glyph(rune) (gui.Sprite, int, int, bool) { return gui.Sprite{}, 0, 0, false }
func (emptyFontForTest) LineHeight() int                         { return 0 }
func (emptyFontForTest) Baseline() int                           { return 0 }
