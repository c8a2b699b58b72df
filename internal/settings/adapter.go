// Package settings drives the controller's runtime tunables from a panel of
// slider controls.
package settings

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownField is returned for a field the panel has no slider for.
var ErrUnknownField = errors.New("settings: unknown field")

// Tunables is the part of the controller the panel reads and writes.
type Tunables interface {
	ShuffleInterval() float64
	SetShuffleInterval(float64)
	PenaltyPercent() float64
	SetPenaltyPercent(float64)
	GameTime() float64
	SetGameTime(float64)
}

// Field identifies one slider.
type Field int

const (
	FieldShuffleInterval Field = iota
	FieldPenalty
	FieldGameTime
	fieldCount
)

// Fields lists the sliders in display order.
func Fields() []Field {
	return []Field{FieldShuffleInterval, FieldPenalty, FieldGameTime}
}

func (f Field) String() string {
	switch f {
	case FieldShuffleInterval:
		return "shuffle_interval"
	case FieldPenalty:
		return "penalty"
	case FieldGameTime:
		return "game_time"
	default:
		return "unknown"
	}
}

// Slider is a bounded numeric control with a formatted label.
type Slider struct {
	Field  Field
	Min    float64
	Max    float64
	Step   float64
	Value  float64
	Label  string
	format string

	// default range, before widening to fit a loaded value
	lo, hi float64
}

// Fraction returns the value's position between Min and Max.
func (s Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

func (s *Slider) set(v float64) {
	if s.Step > 0 {
		v = math.Round(v/s.Step) * s.Step
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
	s.Label = fmt.Sprintf(s.format, s.Value)
}

// Adapter is a thin pass-through between the sliders and the controller.
// It owns no game state of its own.
type Adapter struct {
	ctrl    Tunables
	sliders [fieldCount]Slider
	visible bool
}

// New builds the three sliders from the controller's current values.
func New(ctrl Tunables) (*Adapter, error) {
	if ctrl == nil {
		return nil, errors.New("settings: nil controller")
	}

	a := &Adapter{ctrl: ctrl}
	a.sliders[FieldShuffleInterval] = Slider{
		Field: FieldShuffleInterval, Step: 0.5, lo: 0.5, hi: 10,
		format: "Shuffle Interval: %.1fs",
	}
	a.sliders[FieldPenalty] = Slider{
		Field: FieldPenalty, Step: 1, lo: 0, hi: 100,
		format: "Penalty: %g%%",
	}
	a.sliders[FieldGameTime] = Slider{
		Field: FieldGameTime, Step: 5, lo: 10, hi: 300,
		format: "Game Time: %gs",
	}
	a.Refresh()
	return a, nil
}

// Refresh re-reads every value from the controller. A value outside a
// slider's default range widens the range instead of being clamped.
func (a *Adapter) Refresh() {
	a.sliders[FieldShuffleInterval].show(a.ctrl.ShuffleInterval())
	a.sliders[FieldPenalty].show(a.ctrl.PenaltyPercent())
	a.sliders[FieldGameTime].show(a.ctrl.GameTime())
}

func (s *Slider) show(v float64) {
	s.Min = math.Min(s.lo, v)
	s.Max = math.Max(s.hi, v)
	s.Value = v
	s.Label = fmt.Sprintf(s.format, s.Value)
}

// Set moves a slider to value, clamped to its range, and writes the result
// through to the controller.
func (a *Adapter) Set(f Field, value float64) (float64, error) {
	if f < 0 || f >= fieldCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownField, f)
	}

	s := &a.sliders[f]
	s.set(value)

	switch f {
	case FieldShuffleInterval:
		a.ctrl.SetShuffleInterval(s.Value)
	case FieldPenalty:
		a.ctrl.SetPenaltyPercent(s.Value)
	case FieldGameTime:
		a.ctrl.SetGameTime(s.Value)
	}
	return s.Value, nil
}

// Nudge moves a slider by steps increments.
func (a *Adapter) Nudge(f Field, steps int) (float64, error) {
	if f < 0 || f >= fieldCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownField, f)
	}
	s := a.sliders[f]
	return a.Set(f, s.Value+float64(steps)*s.Step)
}

// Slider returns a copy of one slider.
func (a *Adapter) Slider(f Field) (Slider, bool) {
	if f < 0 || f >= fieldCount {
		return Slider{}, false
	}
	return a.sliders[f], true
}

// Sliders returns copies of all sliders in display order.
func (a *Adapter) Sliders() []Slider {
	out := make([]Slider, 0, fieldCount)
	for _, f := range Fields() {
		out = append(out, a.sliders[f])
	}
	return out
}

// Toggle shows or hides the panel and returns the new visibility.
func (a *Adapter) Toggle() bool {
	a.visible = !a.visible
	if a.visible {
		a.Refresh()
	}
	return a.visible
}

// Visible reports whether the panel is shown.
func (a *Adapter) Visible() bool {
	return a.visible
}
