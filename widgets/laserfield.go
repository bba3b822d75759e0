package widgets

import (
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// ObjectKind discriminates the three kinds of object a LaserField
// holds.
type ObjectKind int

const (
	ObjEmitter ObjectKind = iota
	ObjMirror
	ObjDetector
)

// direction vectors indexed by orientation, facing Up, Right, Down,
// Left in clockwise order.
var dirVectors = [4]geom.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// mirrorReflect maps an incoming travel direction to its outgoing
// direction for each of the two mirror orientations: even orientations
// are a "/" diagonal, odd orientations a "\" diagonal.
var mirrorReflect = [2][4]int{
	{1, 0, 3, 2}, // "/": Up->Right, Right->Up, Down->Left, Left->Down
	{3, 2, 1, 0}, // "\": Up->Left, Left->Up, Down->Right, Right->Down
}

type fieldObject struct {
	kind        ObjectKind
	cell        geom.Point
	orientation int
	sprite      gui.Sprite
	satisfied   bool // ObjDetector only
}

// LaserField is a grid of mirrors, detectors, and emitters: dragging
// repositions an object, Rotate turns it, and every mutation
// recomputes beam paths and each detector's satisfied state.
type LaserField struct {
	origin   geom.Point
	cellSize int
	cols     int
	rows     int
	objects  []*fieldObject
	beams    [][2]geom.Point // traced beam segments, in pixel space, for Draw

	dragging  bool
	dragIndex int
}

// NewLaserField builds an empty cols x rows grid at origin with the
// given cell size in pixels.
func NewLaserField(origin geom.Point, cellSize, cols, rows int) *LaserField {
	return &LaserField{origin: origin, cellSize: cellSize, cols: cols, rows: rows}
}

// AddObject places a new object of kind at cell with the given initial
// orientation, and retraces beams.
func (f *LaserField) AddObject(kind ObjectKind, cell geom.Point, orientation int, sprite gui.Sprite) {
	f.objects = append(f.objects, &fieldObject{kind: kind, cell: cell, orientation: orientation, sprite: sprite})
	f.retrace()
}

// AllSatisfied reports whether every detector is currently lit.
func (f *LaserField) AllSatisfied() bool {
	for _, o := range f.objects {
		if o.kind == ObjDetector && !o.satisfied {
			return false
		}
	}
	return true
}

func (f *LaserField) cellToPixel(cell geom.Point) geom.Point {
	return geom.Pt(f.origin.X+cell.X*f.cellSize, f.origin.Y+cell.Y*f.cellSize)
}

func (f *LaserField) objectAt(cell geom.Point) (*fieldObject, bool) {
	for _, o := range f.objects {
		if o.cell == cell {
			return o, true
		}
	}
	return nil, false
}

// retrace walks a beam out from every emitter until it leaves the
// grid, hits a dead end, or a per-emitter step budget is exhausted
// (guards against a mirror cycle), marking any detector it reaches.
func (f *LaserField) retrace() {
	for _, o := range f.objects {
		if o.kind == ObjDetector {
			o.satisfied = false
		}
	}
	f.beams = f.beams[:0]
	maxSteps := f.cols*f.rows*4 + 4

	for _, emitter := range f.objects {
		if emitter.kind != ObjEmitter {
			continue
		}
		cell := emitter.cell
		dir := emitter.orientation % 4
		for step := 0; step < maxSteps; step++ {
			next := cell.Add(dirVectors[dir])
			if next.X < 0 || next.Y < 0 || next.X >= f.cols || next.Y >= f.rows {
				f.beams = append(f.beams, [2]geom.Point{f.cellToPixel(cell), f.cellToPixel(next)})
				break
			}
			f.beams = append(f.beams, [2]geom.Point{f.cellToPixel(cell), f.cellToPixel(next)})
			cell = next
			obj, ok := f.objectAt(cell)
			if !ok {
				continue
			}
			switch obj.kind {
			case ObjDetector:
				obj.satisfied = true
			case ObjMirror:
				dir = mirrorReflect[obj.orientation%2][dir]
				continue
			}
			if obj.kind == ObjDetector {
				break
			}
		}
	}
}

// Draw renders every object sprite and the traced beam segments.
func (f *LaserField) Draw(canvas gui.Canvas) {
	black := gui.Color{}
	for _, seg := range f.beams {
		drawLine(canvas, black, seg[0], seg[1])
	}
	for _, o := range f.objects {
		canvas.DrawSprite(o.sprite, f.cellToPixel(o.cell))
	}
}

// drawLine approximates a thin line with a sequence of 1-pixel-tall (or
// wide) rect fills, since Canvas exposes only rectangle fills.
func drawLine(canvas gui.Canvas, col gui.Color, a, b geom.Point) {
	if a.X == b.X {
		y0, y1 := a.Y, b.Y
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		canvas.FillRect(col, geom.NewRect(a.X, y0, 1, y1-y0+1))
		return
	}
	x0, x1 := a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	canvas.FillRect(col, geom.NewRect(x0, a.Y, x1-x0+1, 1))
}

func (f *LaserField) objectIndexAt(p geom.Point) (int, bool) {
	for i, o := range f.objects {
		r := geom.NewRect(f.cellToPixel(o.cell).X, f.cellToPixel(o.cell).Y, f.cellSize, f.cellSize)
		if r.Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// HandleEvent repositions an object on a drag and retraces beams,
// reporting whether all detectors are satisfied as its value so the
// puzzle can react without polling. MouseUp only ends the gesture: a
// click without a drag does not rotate anything here (see Rotate).
func (f *LaserField) HandleEvent(event gui.Event) gui.Action[bool] {
	switch event.Kind {
	case gui.MouseDown:
		i, ok := f.objectIndexAt(event.Point)
		if !ok {
			return gui.Ignore[bool]()
		}
		f.dragging = true
		f.dragIndex = i
		return gui.Ignore[bool]().AndStop()

	case gui.MouseDrag:
		if !f.dragging {
			return gui.Ignore[bool]()
		}
		cell := geom.Pt((event.Point.X-f.origin.X)/f.cellSize, (event.Point.Y-f.origin.Y)/f.cellSize)
		if cell.X < 0 || cell.Y < 0 || cell.X >= f.cols || cell.Y >= f.rows {
			return gui.Ignore[bool]().AndStop()
		}
		if _, occupied := f.objectAt(cell); occupied {
			return gui.Ignore[bool]().AndStop()
		}
		f.objects[f.dragIndex].cell = cell
		f.retrace()
		return gui.Redraw[bool]().WithValue(f.AllSatisfied()).AndStop()

	case gui.MouseUp:
		if !f.dragging {
			return gui.Ignore[bool]()
		}
		f.dragging = false
		return gui.Ignore[bool]().AndStop()

	default:
		return gui.Ignore[bool]()
	}
}

// Rotate advances obj's orientation by one quarter turn and retraces.
// Exposed separately from HandleEvent since "click rotates" in this
// widget is expected to fire on a MouseUp that never dragged, which the
// puzzle (owning the full click/drag disambiguation) is better placed
// to decide than the view itself.
func (f *LaserField) Rotate(index int) {
	if index < 0 || index >= len(f.objects) {
		return
	}
	f.objects[index].orientation = (f.objects[index].orientation + 1) % 4
	f.retrace()
}
