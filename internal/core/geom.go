// Package core provides fundamental types and utilities shared by the puzzle
// loop and the terminal view. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box, used for hit-testing taps on cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a continuous 2D position. Cell positions are expressed in grid slot
// units so they survive terminal resizes; the renderer scales them to cells.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b Vec, t float64) Vec {
	return Vec{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Round returns the nearest integer coordinates.
func (v Vec) Round() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

// Smoothstep eases t in [0, 1] with t²(3−2t). Values outside are clamped.
func Smoothstep(t float64) float64 {
	t = ClampF(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
