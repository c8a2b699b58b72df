package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numtap/internal/core"
	"github.com/vovakirdan/numtap/internal/puzzle"
	"github.com/vovakirdan/numtap/internal/settings"
)

// maxEntryDigits bounds typed numbers to the largest grid.
const maxEntryDigits = 2

// Options configure a Model.
type Options struct {
	Runtime  core.RuntimeConfig
	Settings puzzle.Settings
	Logger   *log.Logger

	// ScreenshotDir overrides ~/.numtap/screenshots.
	ScreenshotDir string
}

// tally counts games finished in this run.
type tally struct {
	played int
	won    int
}

// Model is the Bubble Tea model for the puzzle.
type Model struct {
	ctrl   *puzzle.Controller
	board  *Board
	panel  *settings.Adapter
	screen *core.Screen
	tally  *tally
	logger *log.Logger

	config        core.RuntimeConfig
	screenshotDir string
	inputFrame    core.InputFrame
	keys          KeyMap
	help          help.Model
	progress      progress.Model

	paused   bool
	entry    string
	status   string
	selected settings.Field
	quitting bool
}

// NewModel wires a board, controller and settings panel together and starts
// the first game.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := &tally{}
	board := NewBoard(opts.Settings.GridSize)
	ctrl, err := puzzle.New(board, opts.Settings,
		puzzle.WithSeed(cfg.Seed),
		puzzle.WithLogger(logger),
		puzzle.WithGameEndedHandler(func(won bool) {
			t.played++
			if won {
				t.won++
			}
		}),
	)
	if err != nil {
		logger.Error("cannot create controller", "error", err)
		return Model{}, err
	}

	panel, err := settings.New(ctrl)
	if err != nil {
		logger.Error("cannot create settings panel", "error", err)
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		ctrl:          ctrl,
		board:         board,
		panel:         panel,
		screen:        core.NewScreen(1, 1),
		tally:         t,
		logger:        logger,
		config:        cfg,
		screenshotDir: opts.ScreenshotDir,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          h,
		progress:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)

	if err := m.startGame(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyBoard()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Erase):
		if m.entry != "" {
			m.entry = m.entry[:len(m.entry)-1]
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.submitEntry()
		return m, nil
	}

	if d, ok := digitKey(msg); ok {
		if len(m.entry) < maxEntryDigits {
			m.entry += strconv.Itoa(d)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// submitEntry taps the typed number, or starts a new game once the last one
// has ended.
func (m *Model) submitEntry() {
	if m.entry == "" {
		if !m.ctrl.Active() {
			m.inputFrame.Set(core.ActionStart)
		}
		return
	}

	v, err := strconv.Atoi(m.entry)
	m.entry = ""
	if err != nil {
		return
	}
	m.inputFrame.Tap(v)
}

// handleMouse turns a press and release over the same cell into a tap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	x, y := msg.X, msg.Y-headerLines
	switch msg.Action {
	case tea.MouseActionPress:
		if m.paused || !m.ctrl.Active() {
			return m, nil
		}
		m.board.Press(x, y)
	case tea.MouseActionRelease:
		if v, ok := m.board.Release(x, y); ok {
			m.inputFrame.Tap(v)
		}
	}
	return m, nil
}

// handleTick applies the input gathered since the last frame and advances
// the controller.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()

	if !m.paused {
		m.ctrl.Tick(m.config.FrameDelta())
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) applyInput() {
	f := m.inputFrame

	restarted := false
	if f.Has(core.ActionStart) {
		if err := m.startGame(); err != nil {
			return
		}
		restarted = true
	}

	if f.Has(core.ActionSettings) {
		m.panel.Toggle()
	}

	if f.Has(core.ActionPause) && m.ctrl.Active() {
		m.paused = !m.paused
	}

	if m.panel.Visible() {
		m.applyPanelInput(f)
	} else {
		m.applyCursorInput(f)
	}

	// Taps queued in the same frame as a restart were aimed at the old deal.
	if m.paused || restarted {
		return
	}
	if f.Has(core.ActionTap) && !m.panel.Visible() {
		if v, ok := m.board.CellAtCursor(); ok {
			m.ctrl.OnCellTapped(v)
		}
	}
	for _, v := range f.Taps {
		m.ctrl.OnCellTapped(v)
	}
}

func (m *Model) applyCursorInput(f core.InputFrame) {
	switch {
	case f.Has(core.ActionUp):
		m.board.MoveCursor(0, -1)
	case f.Has(core.ActionDown):
		m.board.MoveCursor(0, 1)
	case f.Has(core.ActionLeft):
		m.board.MoveCursor(-1, 0)
	case f.Has(core.ActionRight):
		m.board.MoveCursor(1, 0)
	}
}

func (m *Model) applyPanelInput(f core.InputFrame) {
	fields := settings.Fields()
	switch {
	case f.Has(core.ActionUp):
		m.selected = fields[(int(m.selected)+len(fields)-1)%len(fields)]
	case f.Has(core.ActionDown):
		m.selected = fields[(int(m.selected)+1)%len(fields)]
	case f.Has(core.ActionLeft):
		m.nudge(-1)
	case f.Has(core.ActionRight):
		m.nudge(1)
	}
}

func (m *Model) nudge(steps int) {
	v, err := m.panel.Nudge(m.selected, steps)
	if err != nil {
		m.logger.Error("settings change failed", "field", m.selected, "error", err)
		return
	}
	m.logger.Debug("settings changed", "field", m.selected, "value", v)
}

// startGame sizes the board for the configured grid and deals a new game.
func (m *Model) startGame() error {
	m.board.SetCellCount(m.ctrl.GridSize())
	if err := m.ctrl.StartGame(); err != nil {
		m.logger.Error("cannot start game", "error", err)
		m.status = fmt.Sprintf("Error: %v", err)
		return err
	}
	m.paused = false
	m.entry = ""
	m.status = ""
	return nil
}

// resize fits the board buffer, progress bar and help line to the terminal.
func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height

	boardW, boardH := m.boardSize()
	m.screen.Resize(boardW, boardH)
	m.progress.Width = max(10, width-4)
	m.help.Width = width
}

// boardSize returns the character area left for the board.
func (m Model) boardSize() (int, int) {
	w := m.config.ScreenW
	if m.panel != nil && m.panel.Visible() {
		w -= panelWidth
	}
	return max(1, w), max(1, m.config.ScreenH-headerLines-m.footerHeight())
}

// footerHeight is the number of lines below the board. The full help spans
// several lines, so it changes when the help is expanded.
func (m Model) footerHeight() int {
	return meterLines + lipgloss.Height(m.help.View(m.keys))
}

// Snapshot returns the plain-text board with its header, as saved by
// screenshots and copied to the clipboard.
func (m Model) Snapshot() string {
	m.board.Draw(m.screen, false)
	var b strings.Builder
	b.WriteString(m.headerText())
	b.WriteString("\n\n")
	b.WriteString(m.screen.String())
	return b.String()
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Error("cannot find home directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".numtap", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("numtap_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.Snapshot()), 0o600); err != nil {
		m.logger.Error("cannot save screenshot", "error", err)
		return
	}
	m.status = "Saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// copyBoard puts the current board on the system clipboard.
func (m *Model) copyBoard() {
	if err := clipboard.WriteAll(m.Snapshot()); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.status = "Clipboard unavailable"
		return
	}
	m.status = "Board copied"
}

// headerText is the unstyled status line.
func (m Model) headerText() string {
	s := m.ctrl.Snapshot()
	return fmt.Sprintf("NUMTAP  next %d  solved %d/%d  %.1fs",
		min(s.Target, s.Cells), s.Solved, s.Cells, s.Remaining)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader(s))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(s))
	b.WriteString("\n")

	boardW, boardH := m.boardSize()
	m.screen.Resize(boardW, boardH)
	m.board.Draw(m.screen, !m.panel.Visible())
	board := RenderScreen(m.screen)
	if m.panel.Visible() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, m.renderPanel())
		board = clipLines(board, boardH)
	}
	b.WriteString(board)
	b.WriteString("\n")

	b.WriteString(" ")
	b.WriteString(m.progress.ViewAs(s.Fraction))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(" shuffles %d  games %d  wins %d", s.Shuffles, m.tally.played, m.tally.won)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// clipLines keeps at most n lines of s.
func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

func (m Model) renderHeader(s puzzle.Snapshot) string {
	parts := []string{
		titleStyle.Render("NUMTAP"),
		"next " + targetStyle.Render(strconv.Itoa(min(s.Target, s.Cells))),
		fmt.Sprintf("solved %d/%d", s.Solved, s.Cells),
		fmt.Sprintf("%.1fs", s.Remaining),
	}
	if m.entry != "" {
		parts = append(parts, entryStyle.Render(m.entry))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderStatus(s puzzle.Snapshot) string {
	switch {
	case m.status != "":
		return dimStyle.Render(m.status)
	case s.Outcome == puzzle.OutcomeWon:
		return winStyle.Render("You win! Press n or enter to play again.")
	case s.Outcome == puzzle.OutcomeLost:
		return loseStyle.Render("Time's up! Press n or enter to try again.")
	case m.paused:
		return dimStyle.Render("Paused. Press p to resume.")
	default:
		return dimStyle.Render("Tap the numbers in order.")
	}
}

func (m Model) renderPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n")

	barWidth := panelWidth - 8
	for _, sl := range m.panel.Sliders() {
		label := sl.Label
		cursor := "  "
		if sl.Field == m.selected {
			cursor = "> "
			label = selectedStyle.Render(label)
		}
		filled := int(sl.Fraction() * float64(barWidth))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		b.WriteString("\n")
		b.WriteString(cursor + label)
		b.WriteString("\n  ")
		b.WriteString(dimStyle.Render(bar))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("←/→ adjust  s close"))
	return panelStyle.Render(b.String())
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
