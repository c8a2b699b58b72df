package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numtap/internal/core"
	"github.com/vovakirdan/numtap/internal/puzzle"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Settings: puzzle.Settings{
			GridSize:          9,
			GameTime:          60,
			PenaltyPercent:    10,
			ShuffleInterval:   2,
			AnimationDuration: 0.2,
		},
		ScreenshotDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var tick = TickMsg{}

func TestNewModelStartsGame(t *testing.T) {
	m := newTestModel(t)

	if !m.ctrl.Active() {
		t.Fatal("model should start a game")
	}
	if m.board.Len() != 9 {
		t.Errorf("board holds %d cells, expected 9", m.board.Len())
	}
}

func TestNewModelRejectsEmptyGrid(t *testing.T) {
	_, err := NewModel(Options{Settings: puzzle.Settings{GridSize: 0, GameTime: 60}})
	if err == nil {
		t.Error("NewModel() with no cells should fail")
	}
}

func TestTypedNumberTaps(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, runes("1"), tea.KeyMsg{Type: tea.KeyEnter}, tick)
	if m.ctrl.Session().Target != 2 {
		t.Errorf("target = %d after typing 1, expected 2", m.ctrl.Session().Target)
	}

	before := m.ctrl.TimeRemaining()
	m = send(t, m, runes("7"), tea.KeyMsg{Type: tea.KeyEnter}, tick)
	if m.ctrl.TimeRemaining() >= before*0.95 {
		t.Errorf("wrong typed tap should cost 10%%, remaining %f from %f", m.ctrl.TimeRemaining(), before)
	}
}

func TestTypedNumberEditing(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, runes("1"), runes("2"), runes("3"))
	if m.entry != "12" {
		t.Errorf("entry = %q, expected two digits", m.entry)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.entry != "1" {
		t.Errorf("entry = %q after backspace, expected 1", m.entry)
	}
}

func TestMouseTap(t *testing.T) {
	m := newTestModel(t)
	_ = m.View()

	var r core.Rect
	for _, c := range m.board.cells {
		if c.value == 1 {
			r = m.board.cellRect(c)
		}
	}

	x, y := r.X+1, r.Y+1+headerLines
	m = send(t, m,
		tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
		tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
		tick,
	)

	if m.ctrl.Session().Target != 2 {
		t.Errorf("target = %d after clicking 1, expected 2", m.ctrl.Session().Target)
	}
}

func TestViewFitsScreenHeight(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{"short help", nil},
		{"full help", []tea.Msg{runes("?")}},
		{"full help with settings", []tea.Msg{runes("?"), runes("s"), tick}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(t, newTestModel(t), tt.keys...)
			if got := strings.Count(m.View(), "\n") + 1; got > m.config.ScreenH {
				t.Errorf("View() spans %d lines, expected at most %d", got, m.config.ScreenH)
			}
		})
	}
}

func TestMouseTapWithFullHelp(t *testing.T) {
	m := send(t, newTestModel(t), runes("?"))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	_ = m.View()

	var r core.Rect
	for _, c := range m.board.cells {
		if c.value == 1 {
			r = m.board.cellRect(c)
		}
	}

	x, y := r.X+1, r.Y+1+headerLines
	m = send(t, m,
		tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
		tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
		tick,
	)

	if m.ctrl.Session().Target != 2 {
		t.Errorf("target = %d after clicking 1, expected 2", m.ctrl.Session().Target)
	}
}

func TestRestartDropsQueuedTaps(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
	}{
		{"typed number", []tea.Msg{runes("n"), runes("1"), tea.KeyMsg{Type: tea.KeyEnter}, tick}},
		{"cursor tap", []tea.Msg{runes("n"), tea.KeyMsg{Type: tea.KeySpace}, tick}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(t, newTestModel(t), runes("1"), tea.KeyMsg{Type: tea.KeyEnter}, tick)
			if m.ctrl.Session().Target != 2 {
				t.Fatalf("target = %d before restart, expected 2", m.ctrl.Session().Target)
			}

			m = send(t, m, tt.msgs...)
			if got := m.ctrl.Session().Target; got != 1 {
				t.Errorf("target = %d after restart, expected 1", got)
			}
			if m.ctrl.Session().IsSolved(1) {
				t.Error("IsSolved(1) = true, expected a fresh deal")
			}
			if got := m.ctrl.TimeRemaining(); got <= 59 {
				t.Errorf("TimeRemaining() = %v, expected no penalty on the new game", got)
			}
		})
	}
}

func TestCursorTap(t *testing.T) {
	m := newTestModel(t)

	v, ok := m.board.CellAtCursor()
	if !ok {
		t.Fatal("cursor should start on a cell")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, tick)
	if v == 1 {
		if m.ctrl.Session().Target != 2 {
			t.Error("space should tap the cell under the cursor")
		}
	} else if m.ctrl.TimeRemaining() >= 60 {
		t.Error("space on a wrong cell should cost time")
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, runes("p"), tick)
	if !m.paused {
		t.Fatal("p should pause")
	}
	remaining := m.ctrl.TimeRemaining()

	m = send(t, m, tick, tick, runes("1"), tea.KeyMsg{Type: tea.KeyEnter}, tick)
	if m.ctrl.TimeRemaining() != remaining {
		t.Error("countdown moved while paused")
	}
	if m.ctrl.Session().Target != 1 {
		t.Error("taps must be ignored while paused")
	}

	m = send(t, m, runes("p"), tick)
	if m.paused || m.ctrl.TimeRemaining() >= remaining {
		t.Error("second p should resume the countdown")
	}
}

func TestSettingsPanel(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, runes("s"), tick)
	if !m.panel.Visible() {
		t.Fatal("s should open the settings panel")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tick)
	if m.ctrl.ShuffleInterval() != 2.5 {
		t.Errorf("shuffle interval = %v, expected 2.5", m.ctrl.ShuffleInterval())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tick, tea.KeyMsg{Type: tea.KeyLeft}, tick)
	if m.ctrl.PenaltyPercent() != 9 {
		t.Errorf("penalty = %v, expected 9", m.ctrl.PenaltyPercent())
	}

	if !strings.Contains(m.View(), "Penalty: 9%") {
		t.Error("panel should show the updated label")
	}

	m = send(t, m, runes("s"), tick)
	if m.panel.Visible() {
		t.Error("s should close the panel")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t)

	m.ctrl.Tick(1000)
	if m.ctrl.Active() {
		t.Fatal("game should be over")
	}
	if !strings.Contains(m.View(), "Time's up") {
		t.Error("view should announce the loss")
	}
	if m.tally.played != 1 || m.tally.won != 0 {
		t.Errorf("tally = %+v, expected one loss", *m.tally)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tick)
	if !m.ctrl.Active() {
		t.Error("enter after game over should start a new game")
	}
}

func TestNewGameKey(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("1"), tea.KeyMsg{Type: tea.KeyEnter}, tick)

	m = send(t, m, runes("n"), tick)
	if m.ctrl.Session().Target != 1 {
		t.Error("n should deal a new game")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("1"), tea.KeyMsg{Type: tea.KeyEnter}, tick)
	seq := m.ctrl.Sequence()

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.ctrl.Session().Target != 2 {
		t.Error("resize should not reset the game")
	}
	got := m.ctrl.Sequence()
	for i := range seq {
		if got[i] != seq[i] {
			t.Fatal("resize should not redeal")
		}
	}
	if w, h := m.boardSize(); w != 120 || h != 40-headerLines-m.footerHeight() {
		t.Errorf("boardSize() = %dx%d", w, h)
	}
}

func TestScreenshot(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(m.screenshotDir, "numtap_*.txt"))
	if err != nil {
		t.Fatalf("Glob() failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(files))
	}
	if !strings.HasPrefix(m.status, "Saved ") {
		t.Errorf("status = %q", m.status)
	}
}

func TestSnapshotText(t *testing.T) {
	m := newTestModel(t)

	snap := m.Snapshot()
	if !strings.HasPrefix(snap, "NUMTAP  next 1  solved 0/9  60.0s") {
		t.Errorf("snapshot header = %q", strings.SplitN(snap, "\n", 2)[0])
	}
	for v := 1; v <= 9; v++ {
		if !strings.Contains(snap, string(rune('0'+v))) {
			t.Errorf("snapshot is missing %d", v)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
