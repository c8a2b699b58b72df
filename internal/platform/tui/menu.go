package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numtap/internal/config"
)

// GridSizes are the board sizes offered by the menu.
var GridSizes = []int{9, 16, 25, 36, 49, 64, 81, 99}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// MenuSelection holds the user's choice from the start menu.
type MenuSelection struct {
	Preset   config.DifficultyPreset
	GridSize int // 0 keeps the configured size
}

var menuPresets = config.Presets()

// MenuModel lets users pick a difficulty and board size before playing.
type MenuModel struct {
	cursor       int
	gridCursor   int
	inGridSelect bool
	gridSize     int
	width        int
	height       int
	selection    MenuSelection
	choosing     bool
	quitting     bool
}

// NewMenuModel creates a start menu. gridSize is shown as the current size.
func NewMenuModel(width, height, gridSize int) MenuModel {
	return MenuModel{
		width:    width,
		height:   height,
		gridSize: gridSize,
		choosing: true,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := MapKeyToMenuAction(msg)
		if m.inGridSelect {
			return m.handleGridSelect(action)
		}
		return m.handlePresetSelect(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handlePresetSelect(action MenuAction) (tea.Model, tea.Cmd) {
	// Presets plus the grid size entry
	last := len(menuPresets)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < last {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == last {
			m.inGridSelect = true
			m.gridCursor = nearestGridSize(m.gridSize)
			return m, nil
		}
		m.choosing = false
		m.selection = MenuSelection{Preset: menuPresets[m.cursor], GridSize: m.gridSize}
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) handleGridSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.gridCursor > 0 {
			m.gridCursor--
		}
	case MenuActionDown:
		if m.gridCursor < len(GridSizes)-1 {
			m.gridCursor++
		}
	case MenuActionSelect:
		m.gridSize = GridSizes[m.gridCursor]
		m.inGridSelect = false
	case MenuActionBack:
		m.inGridSelect = false
	}
	return m, nil
}

// nearestGridSize returns the index of the offered size closest to n.
func nearestGridSize(n int) int {
	best := 0
	for i, s := range GridSizes {
		if abs(s-n) < abs(GridSizes[best]-n) {
			best = i
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("N U M T A P", m.width)))
	b.WriteString("\n\n")

	if m.inGridSelect {
		b.WriteString(centerText("Select grid size:", m.width))
		b.WriteString("\n\n")
		for i, size := range GridSizes {
			cursor := "  "
			if i == m.gridCursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%2d cells", cursor, size), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select difficulty:", m.width))
		b.WriteString("\n\n")
		items := make([]string, 0, len(menuPresets)+1)
		for _, p := range menuPresets {
			items = append(items, strings.ToUpper(string(p[:1]))+string(p[1:]))
		}
		items = append(items, fmt.Sprintf("Grid size: %d...", m.gridSize))

		for i, item := range items {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+item, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width)))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MenuModel) Selected() *MenuSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu shows the start menu. It returns nil when the user quits.
func RunMenu(width, height, gridSize int) (*MenuSelection, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height, gridSize),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.quitting {
		return nil, nil
	}
	return m.Selected(), nil
}
