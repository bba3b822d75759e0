package widgets

import (
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// IceGridPush is a committed single-axis push gesture on one block: DX
// and DY are each -1, 0, or 1, never both nonzero (the drag is snapped
// to whichever axis had more motion). The puzzle is responsible for
// computing the resulting slide (it owns the ice-sliding rules) and
// handing it back to the view via BeginSlide.
type IceGridPush struct {
	Block  int
	DX, DY int
}

type iceBlock struct {
	sprite    gui.Sprite
	cell      geom.Point // grid cell, once settled
	pixel     geom.Point // current draw position
	path      []geom.Point
	step      int
	perCell   int
	remaining int
}

// IceGridView draws a grid of sliding ice blocks and reports drag
// gestures as axis-snapped pushes; it holds no sliding rules of its
// own.
type IceGridView struct {
	origin   geom.Point
	cellSize int
	blocks   map[int]*iceBlock

	dragging  bool
	dragBlock int
	dragStart geom.Point
	dragLast  geom.Point
	deadZone  int
}

// NewIceGridView builds an empty grid view with the given cell size in
// pixels and pixel origin of cell (0,0).
func NewIceGridView(origin geom.Point, cellSize, deadZone int) *IceGridView {
	return &IceGridView{origin: origin, cellSize: cellSize, blocks: make(map[int]*iceBlock), deadZone: deadZone}
}

// PlaceBlock registers block id at grid cell, drawn with sprite.
func (v *IceGridView) PlaceBlock(id int, sprite gui.Sprite, cell geom.Point) {
	v.blocks[id] = &iceBlock{sprite: sprite, cell: cell, pixel: v.cellToPixel(cell)}
}

func (v *IceGridView) cellToPixel(cell geom.Point) geom.Point {
	return geom.Pt(v.origin.X+cell.X*v.cellSize, v.origin.Y+cell.Y*v.cellSize)
}

// BeginSlide starts animating block along path (a sequence of grid
// cells including the starting cell), spending framesPerCell frames on
// each segment. Called by the puzzle once it has computed the slide.
func (v *IceGridView) BeginSlide(block int, path []geom.Point, framesPerCell int) {
	b, ok := v.blocks[block]
	if !ok || len(path) < 2 {
		return
	}
	b.path = path
	b.step = 0
	b.perCell = framesPerCell
	b.remaining = framesPerCell
}

// Tick advances every in-flight slide by one frame and reports whether
// anything moved.
func (v *IceGridView) Tick() bool {
	changed := false
	for _, b := range v.blocks {
		if len(b.path) == 0 {
			continue
		}
		changed = true
		b.remaining--
		from := b.path[b.step]
		to := b.path[b.step+1]
		frac := 1 - float64(b.remaining)/float64(b.perCell)
		fromPx, toPx := v.cellToPixel(from), v.cellToPixel(to)
		b.pixel = fromPx.Add(geom.Point{
			X: roundHalf(float64(toPx.X-fromPx.X) * frac),
			Y: roundHalf(float64(toPx.Y-fromPx.Y) * frac),
		})
		if b.remaining <= 0 {
			b.step++
			b.remaining = b.perCell
			if b.step >= len(b.path)-1 {
				b.cell = b.path[len(b.path)-1]
				b.pixel = v.cellToPixel(b.cell)
				b.path = nil
			}
		}
	}
	return changed
}

// Draw renders every block at its current animated (or settled) pixel
// position.
func (v *IceGridView) Draw(canvas gui.Canvas) {
	for _, b := range v.blocks {
		canvas.DrawSprite(b.sprite, b.pixel)
	}
}

func (v *IceGridView) blockAt(p geom.Point) (int, bool) {
	for id, b := range v.blocks {
		r := geom.NewRect(b.pixel.X, b.pixel.Y, v.cellSize, v.cellSize)
		if r.Contains(p) {
			return id, true
		}
	}
	return 0, false
}

// HandleEvent tracks a drag on a block and, on release, reports the
// axis-snapped push if the drag cleared the dead zone.
func (v *IceGridView) HandleEvent(event gui.Event) gui.Action[IceGridPush] {
	switch event.Kind {
	case gui.MouseDown:
		id, ok := v.blockAt(event.Point)
		if !ok {
			return gui.Ignore[IceGridPush]()
		}
		v.dragging = true
		v.dragBlock = id
		v.dragStart = event.Point
		v.dragLast = event.Point
		return gui.Ignore[IceGridPush]().AndStop()

	case gui.MouseDrag:
		if !v.dragging {
			return gui.Ignore[IceGridPush]()
		}
		v.dragLast = event.Point
		return gui.Ignore[IceGridPush]().AndStop()

	case gui.MouseUp:
		if !v.dragging {
			return gui.Ignore[IceGridPush]()
		}
		v.dragging = false
		delta := v.dragLast.Sub(v.dragStart)
		if abs(delta.X) < v.deadZone && abs(delta.Y) < v.deadZone {
			return gui.Ignore[IceGridPush]()
		}
		push := IceGridPush{Block: v.dragBlock}
		if abs(delta.X) >= abs(delta.Y) {
			push.DX = sign(delta.X)
		} else {
			push.DY = sign(delta.Y)
		}
		return gui.Redraw[IceGridPush]().WithValue(push).AndStop()

	default:
		return gui.Ignore[IceGridPush]()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
