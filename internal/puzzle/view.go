package puzzle

import "github.com/vovakirdan/numtap/internal/core"

// Handle identifies a cell view created by a View.
type Handle int

// View is the contract the controller needs from the presentation layer.
// Positions are opaque to the controller; it only moves cells between the
// positions the view hands out.
type View interface {
	// CreateCellView creates a cell showing value and assigns it a position.
	CreateCellView(value int) Handle

	// DestroyAllCellViews removes every cell created so far.
	DestroyAllCellViews()

	// SetCellVisual updates the visual state of a cell.
	SetCellVisual(h Handle, state VisualState)

	// CellPosition returns where a cell currently is.
	CellPosition(h Handle) core.Vec

	// SetCellPosition moves a cell.
	SetCellPosition(h Handle, pos core.Vec)

	// CellPositions returns the positions of all cells in creation order.
	CellPositions() []core.Vec
}
