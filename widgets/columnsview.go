package widgets

import (
	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// ColumnsResult is the result of a completed drag gesture on a
// ColumnsView: Column is the column dragged, and NetRotation is the
// total integer rotation steps accumulated over the gesture (signed and
// never zero: a gesture that ends with no net step reports no result).
type ColumnsResult struct {
	Column      int
	NetRotation int
}

// ColumnsLink makes rotating From by one step also rotate To by Ratio
// steps (puzzle-defined; may be negative to rotate the opposite way).
type ColumnsLink struct {
	From, To int
	Ratio    int
}

type column struct {
	bounds   geom.Rect
	glyphs   []gui.Sprite // glyph sprites in rotation order
	rotation int
}

// ColumnsView is N independently rotatable columns of glyphs, linked by
// a puzzle-supplied set of forced-rotation rules.
type ColumnsView struct {
	columns       []*column
	links         map[int][]ColumnsLink
	pixelsPerStep int

	dragging   bool
	dragCol    int
	dragStartX int
	lastStep   int
}

// NewColumnsView builds a ColumnsView with one column per bounds entry,
// each showing glyphs[i] in rotation order, rotating one step per
// pixelsPerStep pixels of horizontal drag.
func NewColumnsView(bounds []geom.Rect, glyphs [][]gui.Sprite, links []ColumnsLink, pixelsPerStep int) *ColumnsView {
	v := &ColumnsView{links: make(map[int][]ColumnsLink), pixelsPerStep: pixelsPerStep}
	for i, b := range bounds {
		v.columns = append(v.columns, &column{bounds: b, glyphs: glyphs[i]})
	}
	for _, l := range links {
		v.links[l.From] = append(v.links[l.From], l)
	}
	return v
}

// Rotation returns column i's current rotation index, wrapped to its
// glyph count.
func (v *ColumnsView) Rotation(i int) int {
	c := v.columns[i]
	return wrapRotation(c.rotation, len(c.glyphs))
}

func wrapRotation(r, n int) int {
	if n == 0 {
		return 0
	}
	r %= n
	if r < 0 {
		r += n
	}
	return r
}

// rotate applies delta steps to column i and cascades any linkage
// rules registered for it.
func (v *ColumnsView) rotate(i, delta int) {
	if delta == 0 {
		return
	}
	v.columns[i].rotation += delta
	for _, link := range v.links[i] {
		v.rotate(link.To, delta*link.Ratio)
	}
}

// Draw renders each column's glyph at its current rotation.
func (v *ColumnsView) Draw(canvas gui.Canvas) {
	for _, c := range v.columns {
		if len(c.glyphs) == 0 {
			continue
		}
		canvas.DrawSprite(c.glyphs[wrapRotation(c.rotation, len(c.glyphs))], c.bounds.TopLeft())
	}
}

func (v *ColumnsView) columnAt(p geom.Point) (int, bool) {
	for i, c := range v.columns {
		if c.bounds.Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// HandleEvent tracks a horizontal drag within one column, rotating it
// (and any linked columns) by whole steps as the drag crosses step
// boundaries, and reports the gesture's net rotation on release.
func (v *ColumnsView) HandleEvent(event gui.Event) gui.Action[ColumnsResult] {
	switch event.Kind {
	case gui.MouseDown:
		i, ok := v.columnAt(event.Point)
		if !ok {
			return gui.Ignore[ColumnsResult]()
		}
		v.dragging = true
		v.dragCol = i
		v.dragStartX = event.Point.X
		v.lastStep = 0
		return gui.Ignore[ColumnsResult]().AndStop()

	case gui.MouseDrag:
		if !v.dragging || v.pixelsPerStep == 0 {
			return gui.Ignore[ColumnsResult]()
		}
		step := (event.Point.X - v.dragStartX) / v.pixelsPerStep
		delta := step - v.lastStep
		if delta == 0 {
			return gui.Ignore[ColumnsResult]()
		}
		v.rotate(v.dragCol, delta)
		v.lastStep = step
		return gui.Redraw[ColumnsResult]().AndStop()

	case gui.MouseUp:
		if !v.dragging {
			return gui.Ignore[ColumnsResult]()
		}
		v.dragging = false
		if v.lastStep == 0 {
			return gui.Ignore[ColumnsResult]()
		}
		return gui.Redraw[ColumnsResult]().
			WithValue(ColumnsResult{Column: v.dragCol, NetRotation: v.lastStep}).
			AndStop()

	default:
		return gui.Ignore[ColumnsResult]()
	}
}
