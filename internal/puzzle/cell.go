package puzzle

// VisualState is the controller-driven state of a cell.
type VisualState int

const (
	StateNormal VisualState = iota
	StateWrong
	StateCorrect
)

// String returns a human-readable name for the state.
func (s VisualState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateWrong:
		return "wrong"
	case StateCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Tint is what the renderer should paint for a cell.
type Tint int

const (
	TintNormal Tint = iota
	TintNormalPressed
	TintWrong
	TintWrongPressed
	TintCorrect
)

// Appearance maps a cell's state and whether the pointer is held down on it
// to a tint. Correct cells ignore the pointer.
func Appearance(state VisualState, pressed bool) Tint {
	switch state {
	case StateCorrect:
		return TintCorrect
	case StateWrong:
		if pressed {
			return TintWrongPressed
		}
		return TintWrong
	default:
		if pressed {
			return TintNormalPressed
		}
		return TintNormal
	}
}

// cellBinding ties a value to the view handle that displays it.
type cellBinding struct {
	value  int
	handle Handle
	state  VisualState
}
