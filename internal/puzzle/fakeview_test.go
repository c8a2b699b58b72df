package puzzle

import "github.com/vovakirdan/numtap/internal/core"

// fakeView records every call and lays cells out five per row.
type fakeView struct {
	values    map[Handle]int
	visuals   map[Handle]VisualState
	positions map[Handle]core.Vec
	order     []Handle
	next      Handle
	destroys  int
	moves     int
}

func newFakeView() *fakeView {
	v := &fakeView{}
	v.reset()
	return v
}

func (v *fakeView) reset() {
	v.values = make(map[Handle]int)
	v.visuals = make(map[Handle]VisualState)
	v.positions = make(map[Handle]core.Vec)
	v.order = nil
}

func (v *fakeView) CreateCellView(value int) Handle {
	h := v.next
	v.next++
	slot := len(v.order)
	v.values[h] = value
	v.positions[h] = core.V(float64(slot%5), float64(slot/5))
	v.order = append(v.order, h)
	return h
}

func (v *fakeView) DestroyAllCellViews() {
	v.destroys++
	v.reset()
}

func (v *fakeView) SetCellVisual(h Handle, state VisualState) {
	v.visuals[h] = state
}

func (v *fakeView) CellPosition(h Handle) core.Vec {
	return v.positions[h]
}

func (v *fakeView) SetCellPosition(h Handle, pos core.Vec) {
	v.moves++
	v.positions[h] = pos
}

func (v *fakeView) CellPositions() []core.Vec {
	out := make([]core.Vec, 0, len(v.order))
	for _, h := range v.order {
		out = append(out, v.positions[h])
	}
	return out
}

// visualOf returns the state last pushed for the cell showing value.
func (v *fakeView) visualOf(value int) VisualState {
	for h, val := range v.values {
		if val == value {
			return v.visuals[h]
		}
	}
	return -1
}

// handleOf returns the handle of the cell showing value.
func (v *fakeView) handleOf(value int) Handle {
	for h, val := range v.values {
		if val == value {
			return h
		}
	}
	return -1
}
