// Package puzzle implements the number-ordering game loop: sequence
// generation, tap validation, countdown and penalty arithmetic, and the
// periodic reshuffle of cell positions with a smoothstep tween.
//
// The package owns the authoritative game state and talks to the screen only
// through the View interface, so the whole loop can be driven headless from
// tests with a fake view and explicit frame deltas.
package puzzle
