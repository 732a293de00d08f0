package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// levelEntry is one row of the level picker.
type levelEntry struct {
	title  string
	best   int // Fewest steps on record, 0 if unsolved
	solved bool
}

// LevelMenuModel lets users pick the starting level of a collection.
type LevelMenuModel struct {
	title     string
	entries   []levelEntry
	cursor    int
	offset    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // 1-indexed, 0 while choosing
	quitting  bool
	back      bool
}

// NewLevelMenuModel creates a level picker for a game.
// Best step counts come from store when it is non-nil.
func NewLevelMenuModel(game registry.Game, store *storage.Store, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		title:     game.Title(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}

	sel, ok := game.(registry.LevelSelector)
	if !ok {
		return m
	}

	var best map[int]int
	if store != nil {
		// A missing records table only hides the best column
		best, _ = store.BestStepsByLevel(sokoban.CollectionID(game))
	}

	m.entries = make([]levelEntry, sel.LevelCount())
	for i := range m.entries {
		steps, solved := best[i]
		m.entries[i] = levelEntry{
			title:  sel.LevelTitle(i),
			best:   steps,
			solved: solved,
		}
	}
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollToCursor()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.entries) > 0 {
			m.selected = m.cursor + 1
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	m.scrollToCursor()
	return m, nil
}

// visibleRows is how many level rows fit between the header and footer.
func (m LevelMenuModel) visibleRows() int {
	return max(m.height-7, 1)
}

// scrollToCursor keeps the cursor inside the visible window.
func (m *LevelMenuModel) scrollToCursor() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select level:", m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText("No levels in this collection", m.width))
		b.WriteString("\n")
	}

	end := min(m.offset+m.visibleRows(), len(m.entries))
	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := "  -"
		if e.solved {
			best = fmt.Sprintf("%3d", e.best)
		}
		line := fmt.Sprintf("%s%3d. %-24s best %s", cursor, i+1, truncate(e.title, 24), best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen level (1-indexed), or 0 if none was chosen.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// RunLevelMenu runs the level picker and returns the chosen level
// (1-indexed). A zero level means the user backed out or quit.
func RunLevelMenu(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (level int, quit bool, err error) {
	model := NewLevelMenuModel(game, store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return 0, true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
