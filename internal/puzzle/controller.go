package puzzle

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numtap/internal/config"
	"github.com/vovakirdan/numtap/internal/core"
)

// Settings are the tunables the controller reads on every start and tick.
type Settings struct {
	GridSize          int
	GameTime          float64 // Seconds
	PenaltyPercent    float64 // Share of the remaining time lost per wrong tap
	ShuffleInterval   float64 // Seconds between reshuffles
	AnimationDuration float64 // Seconds a reshuffle move takes
}

// SettingsFrom converts a loaded configuration.
func SettingsFrom(cfg config.Config) Settings {
	return Settings{
		GridSize:          cfg.Board.GridSize,
		GameTime:          cfg.Timing.GameTime,
		PenaltyPercent:    cfg.Penalty.Percent,
		ShuffleInterval:   cfg.Timing.ShuffleInterval,
		AnimationDuration: cfg.Timing.AnimationDuration,
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed seeds the RNG used for sequences and reshuffles.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGameEndedHandler registers a callback fired once when a game is won
// or lost.
func WithGameEndedHandler(fn func(won bool)) Option {
	return func(c *Controller) {
		c.onEnded = fn
	}
}

// Controller owns the game state and the per-frame update loop.
// It is not safe for concurrent use; the view layer calls it from a single
// update loop.
type Controller struct {
	view     View
	settings Settings
	rng      *rand.Rand
	logger   *log.Logger
	onEnded  func(won bool)

	session   Session
	sequence  []int
	cells     []cellBinding
	lastWrong int // Index into cells, -1 when no cell is marked wrong

	layout        []core.Vec
	tweens        []tween
	clock         float64 // Seconds of active play since StartGame
	nextShuffleAt float64
	shuffles      int
}

// New creates a controller bound to view.
// It fails with ErrMissingBinding if view is nil.
func New(view View, settings Settings, opts ...Option) (*Controller, error) {
	if view == nil {
		return nil, fmt.Errorf("%w: cell view", ErrMissingBinding)
	}

	c := &Controller{
		view:      view,
		settings:  settings,
		logger:    log.New(io.Discard),
		lastWrong: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.settings.AnimationDuration < 0 {
		c.settings.AnimationDuration = DefaultAnimationDuration
	}

	return c, nil
}

// StartGame resets the session, deals a fresh sequence and rebuilds the cells.
// Positions are snapshotted right after the build and become the pool the
// reshuffle draws from.
func (c *Controller) StartGame() error {
	if c.settings.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d", ErrInvalidConfig, c.settings.GridSize)
	}

	c.session = newSession(c.settings.GameTime)
	c.lastWrong = -1
	c.tweens = nil
	c.clock = 0
	c.nextShuffleAt = 0
	c.shuffles = 0

	c.sequence = NewSequence(c.settings.GridSize, c.rng)
	c.buildCells()
	c.layout = append([]core.Vec(nil), c.view.CellPositions()...)

	c.logger.Info("game started",
		"cells", c.settings.GridSize,
		"time", c.settings.GameTime,
		"penalty", c.settings.PenaltyPercent,
		"shuffle", c.settings.ShuffleInterval,
	)
	return nil
}

// buildCells replaces every cell view with one per value of the sequence.
func (c *Controller) buildCells() {
	c.view.DestroyAllCellViews()
	c.cells = make([]cellBinding, 0, len(c.sequence))

	for _, v := range c.sequence {
		h := c.view.CreateCellView(v)
		state := StateNormal
		if c.session.IsSolved(v) {
			state = StateCorrect
		}
		c.cells = append(c.cells, cellBinding{value: v, handle: h, state: state})
		c.view.SetCellVisual(h, state)
	}
}

// OnCellTapped handles a tap on the cell showing value.
func (c *Controller) OnCellTapped(value int) {
	if !c.session.Active {
		return
	}

	c.logger.Debug("tap", "value", value, "target", c.session.Target)

	// Only one wrong cell is highlighted at a time
	if c.lastWrong >= 0 {
		c.resetVisual(c.lastWrong)
		c.lastWrong = -1
	}

	idx := c.findCell(value)

	if value == c.session.Target {
		c.session.Solved[value] = struct{}{}
		if idx >= 0 {
			c.setVisual(idx, StateCorrect)
		}
		c.session.Target++
		c.checkWin()
		return
	}

	if idx >= 0 && !c.session.IsSolved(value) {
		c.setVisual(idx, StateWrong)
		c.lastWrong = idx
	}

	before := c.session.TimeRemaining
	c.session.applyPenalty(c.settings.PenaltyPercent)
	c.logger.Debug("penalty", "value", value, "before", before, "after", c.session.TimeRemaining)
}

// findCell returns the index of the cell showing value, or -1.
func (c *Controller) findCell(value int) int {
	for i, cell := range c.cells {
		if cell.value == value {
			return i
		}
	}
	return -1
}

func (c *Controller) setVisual(idx int, state VisualState) {
	c.cells[idx].state = state
	c.view.SetCellVisual(c.cells[idx].handle, state)
}

// resetVisual returns a cell to normal unless it has been solved.
func (c *Controller) resetVisual(idx int) {
	if c.cells[idx].state == StateCorrect {
		return
	}
	c.setVisual(idx, StateNormal)
}

func (c *Controller) checkWin() {
	if c.session.Target > len(c.sequence) {
		c.end(OutcomeWon)
	}
}

func (c *Controller) end(outcome Outcome) {
	c.session.Active = false
	c.session.Outcome = outcome

	switch outcome {
	case OutcomeWon:
		c.logger.Info("you win", "remaining", c.session.TimeRemaining)
	case OutcomeLost:
		c.logger.Info("time's up", "solved", len(c.session.Solved), "cells", len(c.sequence))
	}

	if c.onEnded != nil {
		c.onEnded(outcome == OutcomeWon)
	}
}

// Tick advances the loop by dt seconds: in-flight moves, the countdown and
// the reshuffle clock.
func (c *Controller) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}

	// Moves keep running after the game ends
	c.advanceTweens(dt)

	if !c.session.Active {
		return
	}

	c.session.TimeRemaining = max(0, c.session.TimeRemaining-dt)

	c.clock += dt
	if c.clock >= c.nextShuffleAt {
		c.shufflePositions()
		c.nextShuffleAt = c.clock + c.settings.ShuffleInterval
	}

	if c.session.TimeRemaining <= 0 {
		c.end(OutcomeLost)
	}
}

// shuffleAllowed gates a reshuffle. Nothing moves during the first interval
// after start or during the last interval before the countdown expires.
func (c *Controller) shuffleAllowed() bool {
	t := c.session.TimeRemaining
	return t < c.settings.GameTime-c.settings.ShuffleInterval && t >= c.settings.ShuffleInterval
}

// shufflePositions deals the layout snapshot to the cells in a new order and
// starts a move for each of them.
func (c *Controller) shufflePositions() {
	if !c.session.Active || len(c.layout) == 0 || !c.shuffleAllowed() {
		return
	}

	positions := append([]core.Vec(nil), c.layout...)
	shuffle(positions, c.rng)

	for i, cell := range c.cells {
		if i >= len(positions) {
			break
		}
		c.moveCell(cell.handle, positions[i])
	}
	c.shuffles++
	c.logger.Debug("reshuffle", "count", c.shuffles, "remaining", c.session.TimeRemaining)
}

// moveCell starts a move from the cell's current position, replacing any
// move already in flight for it.
func (c *Controller) moveCell(h Handle, to core.Vec) {
	if c.settings.AnimationDuration <= 0 {
		c.view.SetCellPosition(h, to)
		return
	}

	tw := tween{
		handle:   h,
		from:     c.view.CellPosition(h),
		to:       to,
		duration: c.settings.AnimationDuration,
	}
	for i := range c.tweens {
		if c.tweens[i].handle == h {
			c.tweens[i] = tw
			return
		}
	}
	c.tweens = append(c.tweens, tw)
}

func (c *Controller) advanceTweens(dt float64) {
	if len(c.tweens) == 0 {
		return
	}

	live := c.tweens[:0]
	for _, tw := range c.tweens {
		pos, done := tw.advance(dt)
		c.view.SetCellPosition(tw.handle, pos)
		if !done {
			live = append(live, tw)
		}
	}
	c.tweens = live
}

// OnGameEnded replaces the callback fired when a game is won or lost.
func (c *Controller) OnGameEnded(fn func(won bool)) {
	c.onEnded = fn
}

// Snapshot is a read-only summary of the running game for the HUD.
type Snapshot struct {
	Target    int
	Cells     int
	Solved    int
	Remaining float64
	Fraction  float64
	Active    bool
	Outcome   Outcome
	Shuffles  int
}

// Snapshot summarises the current game.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Target:    c.session.Target,
		Cells:     len(c.sequence),
		Solved:    len(c.session.Solved),
		Remaining: c.session.TimeRemaining,
		Fraction:  c.TimeRemainingFraction(),
		Active:    c.session.Active,
		Outcome:   c.session.Outcome,
		Shuffles:  c.shuffles,
	}
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	s := c.session
	s.Solved = make(map[int]struct{}, len(c.session.Solved))
	for v := range c.session.Solved {
		s.Solved[v] = struct{}{}
	}
	return s
}

// Sequence returns the values in the order their cells were built.
func (c *Controller) Sequence() []int {
	return append([]int(nil), c.sequence...)
}

// Active reports whether a game is in progress.
func (c *Controller) Active() bool {
	return c.session.Active
}

// Outcome returns how the last game ended.
func (c *Controller) Outcome() Outcome {
	return c.session.Outcome
}

// TimeRemaining returns the seconds left on the countdown.
func (c *Controller) TimeRemaining() float64 {
	return c.session.TimeRemaining
}

// TimeRemainingFraction returns the countdown as a 0..1 fraction of the
// configured game time, for a progress indicator.
func (c *Controller) TimeRemainingFraction() float64 {
	if c.settings.GameTime <= 0 {
		return 0
	}
	return core.ClampF(c.session.TimeRemaining/c.settings.GameTime, 0, 1)
}

// Animating reports whether any cell is mid-move.
func (c *Controller) Animating() bool {
	return len(c.tweens) > 0
}

// Shuffles returns how many reshuffles were applied this game.
func (c *Controller) Shuffles() int {
	return c.shuffles
}

// CellState returns the visual state of the cell showing value.
func (c *Controller) CellState(value int) (VisualState, bool) {
	idx := c.findCell(value)
	if idx < 0 {
		return StateNormal, false
	}
	return c.cells[idx].state, true
}

// Settings returns the current tunables.
func (c *Controller) Settings() Settings {
	return c.settings
}

// GridSize returns the cell count used by the next StartGame.
func (c *Controller) GridSize() int { return c.settings.GridSize }

// SetGridSize changes the cell count. It takes effect on the next StartGame.
func (c *Controller) SetGridSize(n int) { c.settings.GridSize = n }

// GameTime returns the countdown length in seconds.
func (c *Controller) GameTime() float64 { return c.settings.GameTime }

// SetGameTime changes the countdown length used by the next StartGame.
func (c *Controller) SetGameTime(v float64) { c.settings.GameTime = v }

// PenaltyPercent returns the wrong-tap penalty.
func (c *Controller) PenaltyPercent() float64 { return c.settings.PenaltyPercent }

// SetPenaltyPercent changes the wrong-tap penalty.
func (c *Controller) SetPenaltyPercent(v float64) { c.settings.PenaltyPercent = v }

// ShuffleInterval returns the seconds between reshuffles.
func (c *Controller) ShuffleInterval() float64 { return c.settings.ShuffleInterval }

// SetShuffleInterval changes the seconds between reshuffles.
func (c *Controller) SetShuffleInterval(v float64) { c.settings.ShuffleInterval = v }
