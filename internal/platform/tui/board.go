package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/numtap/internal/core"
	"github.com/vovakirdan/numtap/internal/puzzle"
)

// Board cell sizing in terminal characters.
const (
	maxCellW    = 7
	minCellW    = 4
	boxedCellH  = 3
	compactRows = 1
)

type boardCell struct {
	value int
	pos   core.Vec
	state puzzle.VisualState
}

// Board is the terminal implementation of puzzle.View. Cells live on grid
// slot coordinates; the board scales them to characters when drawing, so a
// resize never invalidates the layout.
type Board struct {
	cells   map[puzzle.Handle]*boardCell
	order   []puzzle.Handle
	next    puzzle.Handle
	columns int

	pressed puzzle.Handle // -1 when the pointer is up
	cursorX int
	cursorY int

	// Geometry of the last draw, used for hit testing.
	originX, originY int
	cellW, cellH     int
}

// NewBoard creates an empty board laid out for n cells.
func NewBoard(n int) *Board {
	b := &Board{
		cells:   make(map[puzzle.Handle]*boardCell),
		pressed: -1,
		cellW:   maxCellW,
		cellH:   boxedCellH,
	}
	b.SetCellCount(n)
	return b
}

// SetCellCount sets how many slots per row the next build uses.
func (b *Board) SetCellCount(n int) {
	b.columns = max(1, int(math.Ceil(math.Sqrt(float64(max(1, n))))))
}

// Columns returns the number of slots per row.
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the number of rows needed for the current cells.
func (b *Board) Rows() int {
	return max(1, (len(b.order)+b.columns-1)/b.columns)
}

// CreateCellView places a new cell in the next free slot.
func (b *Board) CreateCellView(value int) puzzle.Handle {
	slot := len(b.order)
	h := b.next
	b.next++

	b.cells[h] = &boardCell{
		value: value,
		pos:   core.V(float64(slot%b.columns), float64(slot/b.columns)),
	}
	b.order = append(b.order, h)
	return h
}

// DestroyAllCellViews removes every cell and releases the pointer.
func (b *Board) DestroyAllCellViews() {
	b.cells = make(map[puzzle.Handle]*boardCell)
	b.order = nil
	b.pressed = -1
	b.cursorX, b.cursorY = 0, 0
}

// SetCellVisual updates a cell's state.
func (b *Board) SetCellVisual(h puzzle.Handle, state puzzle.VisualState) {
	if c, ok := b.cells[h]; ok {
		c.state = state
	}
}

// CellPosition returns a cell's slot position.
func (b *Board) CellPosition(h puzzle.Handle) core.Vec {
	if c, ok := b.cells[h]; ok {
		return c.pos
	}
	return core.Vec{}
}

// SetCellPosition moves a cell.
func (b *Board) SetCellPosition(h puzzle.Handle, pos core.Vec) {
	if c, ok := b.cells[h]; ok {
		c.pos = pos
	}
}

// CellPositions returns positions in creation order.
func (b *Board) CellPositions() []core.Vec {
	out := make([]core.Vec, 0, len(b.order))
	for _, h := range b.order {
		out = append(out, b.cells[h].pos)
	}
	return out
}

// Len returns the number of cells on the board.
func (b *Board) Len() int {
	return len(b.order)
}

// layout picks cell dimensions that fit the board into a w x h area and
// centers it.
func (b *Board) layout(w, h int) {
	rows := b.Rows()

	b.cellW = core.Clamp(w/b.columns, minCellW, maxCellW)
	b.cellH = boxedCellH
	if h < rows*boxedCellH {
		b.cellH = compactRows
	}

	b.originX = max(0, (w-b.columns*b.cellW)/2)
	b.originY = max(0, (h-rows*b.cellH)/2)
}

// cellRect returns the character rectangle a cell currently covers.
func (b *Board) cellRect(c *boardCell) core.Rect {
	x := b.originX + int(math.Round(c.pos.X*float64(b.cellW)))
	y := b.originY + int(math.Round(c.pos.Y*float64(b.cellH)))
	return core.NewRect(x, y, b.cellW-1, b.cellH)
}

// Draw renders every cell into s. Later cells are drawn on top.
func (b *Board) Draw(s *core.Screen, showCursor bool) {
	s.Clear()
	b.layout(s.Width(), s.Height())

	for _, h := range b.order {
		c := b.cells[h]
		r := b.cellRect(c)
		color := tintColor(puzzle.Appearance(c.state, h == b.pressed))

		label := fmt.Sprintf("%d", c.value)
		if b.cellH >= boxedCellH {
			border := color
			if showCursor && b.atCursor(c) {
				border = core.ColorYellow
			}
			s.DrawBox(r, border)
			s.DrawTextColored(r.X+(r.W-len(label))/2, r.Y+1, label, color)
			continue
		}

		if showCursor && b.atCursor(c) {
			label = "[" + label + "]"
		}
		s.DrawTextColored(r.X+(r.W-len(label))/2, r.Y, label, color)
	}
}

// CellAt returns the value of the topmost cell covering the character at
// (x, y), relative to the board's top-left corner.
func (b *Board) CellAt(x, y int) (puzzle.Handle, int, bool) {
	for i := len(b.order) - 1; i >= 0; i-- {
		h := b.order[i]
		c := b.cells[h]
		if b.cellRect(c).Contains(x, y) {
			return h, c.value, true
		}
	}
	return -1, 0, false
}

// Press records the pointer going down on a cell.
func (b *Board) Press(x, y int) bool {
	h, _, ok := b.CellAt(x, y)
	if !ok {
		b.pressed = -1
		return false
	}
	b.pressed = h
	return true
}

// Release lifts the pointer. It returns the value to tap when the pointer
// comes up over the same cell it went down on.
func (b *Board) Release(x, y int) (int, bool) {
	pressed := b.pressed
	b.pressed = -1
	if pressed < 0 {
		return 0, false
	}

	h, value, ok := b.CellAt(x, y)
	if !ok || h != pressed {
		return 0, false
	}
	return value, true
}

// Pressed returns the handle under a held pointer.
func (b *Board) Pressed() (puzzle.Handle, bool) {
	return b.pressed, b.pressed >= 0
}

// MoveCursor moves the keyboard cursor by one slot, wrapping at the edges.
func (b *Board) MoveCursor(dx, dy int) {
	rows := b.Rows()
	b.cursorX = (b.cursorX + dx + b.columns) % b.columns
	b.cursorY = (b.cursorY + dy + rows) % rows
}

// Cursor returns the slot under the keyboard cursor.
func (b *Board) Cursor() (int, int) {
	return b.cursorX, b.cursorY
}

func (b *Board) atCursor(c *boardCell) bool {
	x, y := c.pos.Round()
	return x == b.cursorX && y == b.cursorY
}

// CellAtCursor returns the value of the cell nearest the cursor slot.
func (b *Board) CellAtCursor() (int, bool) {
	for i := len(b.order) - 1; i >= 0; i-- {
		c := b.cells[b.order[i]]
		if b.atCursor(c) {
			return c.value, true
		}
	}
	return 0, false
}
