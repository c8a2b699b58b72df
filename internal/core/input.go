package core

// Action represents a semantic board action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move cursor up
	ActionDown            // S, Down arrow - move cursor down
	ActionLeft            // A, Left arrow - move cursor left
	ActionRight           // D, Right arrow - move cursor right
	ActionTap             // Space - tap the cell under the cursor
	ActionStart           // N, Enter on game over - start a new game
	ActionPause           // P - pause/unpause the countdown
	ActionSettings        // S - toggle the settings panel
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionTap:
		return "Tap"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionSettings:
		return "Settings"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input for a single frame. Actions are flags, taps
// keep their arrival order since the puzzle is order sensitive.
type InputFrame struct {
	Actions map[Action]bool
	Taps    []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Tap queues a tap on the cell holding value.
func (f *InputFrame) Tap(value int) {
	f.Taps = append(f.Taps, value)
}

// Clear resets all actions and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
}
