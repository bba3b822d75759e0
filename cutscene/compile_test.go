package cutscene

import (
	"testing"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
	"github.com/duskglass/puzzlecore/theater"
)

const compileManifest = `
sprites:
  hero:
    - width: 12
      height: 16
      color: {r: 200, g: 100, b: 50}
    - width: 12
      height: 16
      color: {r: 210, g: 110, b: 60}
  halo:
    - width: 20
      height: 20
      color: {r: 255, g: 255, b: 200}
fonts:
  talk:
    lineheight: 12
    baseline: 10
    glyphs:
      H: {width: 6, height: 10}
      i: {width: 3, height: 10}
backgrounds:
  cave:
    width: 320
    height: 240
    color: {r: 10, g: 10, b: 20}
`

func newTestCompiler(t *testing.T) *Compiler {
	t.Helper()
	res, err := gui.ParseTestResources([]byte(compileManifest))
	if err != nil {
		t.Fatalf("ParseTestResources error: %v", err)
	}
	return &Compiler{Resources: res}
}

func TestCompileSceneResolvesResourcesAndPlays(t *testing.T) {
	c := newTestCompiler(t)
	scene := c.CompileScene([]Ast{
		Seq(
			SetBg("cave"),
			Place(1, "hero", 0, geom.Pt(40, 60)),
			Queue(3, 7),
			Talk(1, gui.TalkNormal, gui.TalkNE, "Hi"),
		),
	})

	th := theater.New(gui.Background{})
	scene.Begin(th)
	scene.Tick(th)

	pos, ok := th.GetActorPosition(1)
	if !ok || pos != geom.Pt(40, 60) {
		t.Fatalf("compiled Place position = %v, %v; want (40,60), true", pos, ok)
	}
	if !scene.IsPaused() {
		t.Fatal("trailing Talk should pause the compiled scene")
	}
	events := th.DrainQueue()
	if len(events) != 1 || events[0] != (theater.QueueEvent{Kind: 3, Value: 7}) {
		t.Fatalf("drained queue = %v, want [(3,7)]", events)
	}
}

func TestCompileLoopWithUnboundedSentinel(t *testing.T) {
	c := newTestCompiler(t)
	scene := c.CompileScene([]Ast{
		Loop(Anim(1, "hero", []int{0, 1}, 2), 1, -1),
	})

	th := theater.New(gui.Background{})
	th.PlaceActor(1, gui.Sprite{}, geom.Pt(0, 0))
	scene.Begin(th)
	for i := 0; i < 4; i++ { // one full 2-frame-per-index cycle
		scene.Tick(th)
	}
	if !scene.IsFinished() {
		t.Error("loop with min=1 should be finished once its body has cycled and nothing keeps it twiddling")
	}
}

func TestCompileUnknownSpriteIndexPanics(t *testing.T) {
	c := newTestCompiler(t)
	defer func() {
		if recover() == nil {
			t.Error("compiling a Place with an out-of-range sprite index should panic")
		}
	}()
	c.CompileScene([]Ast{Place(1, "hero", 5, geom.Pt(0, 0))})
}
