package puzzle

import "errors"

var (
	// ErrMissingBinding is returned when a required view binding is absent.
	// The game refuses to start without it.
	ErrMissingBinding = errors.New("puzzle: missing view binding")

	// ErrInvalidConfig is returned when the settings cannot produce a board.
	ErrInvalidConfig = errors.New("puzzle: invalid config")
)
