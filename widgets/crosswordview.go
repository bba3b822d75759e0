package widgets

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/duskglass/puzzlecore/geom"
	"github.com/duskglass/puzzlecore/gui"
)

// crosswordCell is one letter slot; Active is false for a blacked-out
// (unusable) grid position.
type crosswordCell struct {
	bounds geom.Rect
	letter rune
	active bool
}

// CrosswordView is a grid of letter cells, each row independently
// offset horizontally (for staggered/non-rectangular crossword
// layouts), with a single focused cell receiving TextInput and
// keyboard navigation.
type CrosswordView struct {
	cellSize    int
	rowOffsets  []int
	rows        int
	cols        int
	cells       map[geom.Point]*crosswordCell // keyed by (col,row)
	font        gui.Font
	origin      geom.Point
	focusCol    int
	focusRow    int
	hasFocus    bool
}

// NewCrosswordView builds a cols x rows grid at origin using cellSize
// pixel cells, with rowOffsets[r] shifting row r's cells horizontally
// by that many pixels.
func NewCrosswordView(origin geom.Point, cellSize int, cols, rows int, rowOffsets []int, font gui.Font) *CrosswordView {
	return &CrosswordView{
		cellSize:   cellSize,
		rowOffsets: rowOffsets,
		rows:       rows,
		cols:       cols,
		cells:      make(map[geom.Point]*crosswordCell),
		font:       font,
		origin:     origin,
	}
}

// ActivateCell marks (col,row) as a usable letter slot.
func (v *CrosswordView) ActivateCell(col, row int) {
	v.cells[geom.Pt(col, row)] = &crosswordCell{bounds: v.cellBounds(col, row), active: true}
}

func (v *CrosswordView) cellBounds(col, row int) geom.Rect {
	x := v.origin.X + v.rowOffsets[row] + col*v.cellSize
	y := v.origin.Y + row*v.cellSize
	return geom.NewRect(x, y, v.cellSize, v.cellSize)
}

// Letter returns the letter currently filled into (col,row), or 0 if
// empty or the cell isn't active.
func (v *CrosswordView) Letter(col, row int) rune {
	c, ok := v.cells[geom.Pt(col, row)]
	if !ok {
		return 0
	}
	return c.letter
}

// Focus moves input focus to (col,row) if it's an active cell.
func (v *CrosswordView) Focus(col, row int) {
	if _, ok := v.cells[geom.Pt(col, row)]; ok {
		v.focusCol, v.focusRow, v.hasFocus = col, row, true
	}
}

// ClearFocus removes keyboard focus entirely.
func (v *CrosswordView) ClearFocus() { v.hasFocus = false }

func (v *CrosswordView) moveFocus(dc, dr int) {
	if !v.hasFocus {
		return
	}
	next := geom.Pt(v.focusCol+dc, v.focusRow+dr)
	for next.X >= 0 && next.Y >= 0 && next.X < v.cols && next.Y < v.rows {
		if _, ok := v.cells[next]; ok {
			v.focusCol, v.focusRow = next.X, next.Y
			return
		}
		next = next.Add(geom.Pt(dc, dr))
	}
}

// Draw renders every active cell's border-less box and glyph, with the
// focused cell's box filled in a highlight color.
func (v *CrosswordView) Draw(canvas gui.Canvas) {
	boxColor := gui.Color{R: 200, G: 200, B: 200}
	focusColor := gui.Color{R: 255, G: 220, B: 100}
	for pt, c := range v.cells {
		col := boxColor
		if v.hasFocus && pt.X == v.focusCol && pt.Y == v.focusRow {
			col = focusColor
		}
		canvas.FillRect(col, c.bounds)
		if c.letter != 0 && v.font != nil {
			if sprite, _, _, ok := v.font.Glyph(c.letter); ok {
				canvas.DrawSprite(sprite, c.bounds.TopLeft())
			}
		}
	}
}

func (v *CrosswordView) cellAt(p geom.Point) (geom.Point, bool) {
	for pt, c := range v.cells {
		if c.bounds.Contains(p) {
			return pt, true
		}
	}
	return geom.Point{}, false
}

// HandleEvent moves focus on a click into an active cell, fills the
// focused cell's letter on TextInput, and clears it or moves focus on
// KeyDown (Backspace clears, arrow keys navigate). Reports Redraw
// whenever the grid's displayed contents change.
func (v *CrosswordView) HandleEvent(event gui.Event) gui.Action[geom.Point] {
	switch event.Kind {
	case gui.MouseDown:
		pt, ok := v.cellAt(event.Point)
		if !ok {
			return gui.Ignore[geom.Point]()
		}
		v.focusCol, v.focusRow, v.hasFocus = pt.X, pt.Y, true
		return gui.Redraw[geom.Point]().WithValue(pt).AndStop()

	case gui.TextInput:
		if !v.hasFocus || len(event.Text) == 0 {
			return gui.Ignore[geom.Point]()
		}
		pt := geom.Pt(v.focusCol, v.focusRow)
		v.cells[pt].letter = []rune(event.Text)[0]
		return gui.Redraw[geom.Point]().WithValue(pt).AndStop()

	case gui.KeyDown:
		return v.handleKey(event)

	default:
		return gui.Ignore[geom.Point]()
	}
}

func (v *CrosswordView) handleKey(event gui.Event) gui.Action[geom.Point] {
	if !v.hasFocus {
		return gui.Ignore[geom.Point]()
	}
	switch event.Key {
	case sdl.K_BACKSPACE:
		pt := geom.Pt(v.focusCol, v.focusRow)
		v.cells[pt].letter = 0
		return gui.Redraw[geom.Point]().WithValue(pt).AndStop()
	case sdl.K_LEFT:
		v.moveFocus(-1, 0)
	case sdl.K_RIGHT:
		v.moveFocus(1, 0)
	case sdl.K_UP:
		v.moveFocus(0, -1)
	case sdl.K_DOWN:
		v.moveFocus(0, 1)
	default:
		return gui.Ignore[geom.Point]()
	}
	return gui.Redraw[geom.Point]().AndStop()
}

// MoveFocus navigates the focused cell by (dc, dr) to the next active
// cell in that direction, if one exists. Exposed for callers that
// decode arrow keys themselves rather than through HandleEvent.
func (v *CrosswordView) MoveFocus(dc, dr int) { v.moveFocus(dc, dr) }
