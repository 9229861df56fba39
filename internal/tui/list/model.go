package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item; selected marks the cursor row.
type RenderFunc[T any] func(item T, selected bool) string

// KeyMap holds the navigation bindings of a Model.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap binds the arrow keys, vim keys and paging keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	}
}

// Model is a cursor over items with a window of height rows. The window
// scrolls only when the cursor would leave it.
type Model[T any] struct {
	Keys KeyMap

	items  []T
	render RenderFunc[T]
	cursor int
	offset int
	height int
}

// New returns a list over items showing height rows.
func New[T any](items []T, height int, render RenderFunc[T]) *Model[T] {
	return &Model[T]{
		Keys:   DefaultKeyMap(),
		items:  items,
		render: render,
		height: max(height, 1),
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd { return nil }

// Update moves the cursor on navigation keys and resizes on window changes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Up):
			m.Select(m.cursor - 1)
		case key.Matches(msg, m.Keys.Down):
			m.Select(m.cursor + 1)
		case key.Matches(msg, m.Keys.PageUp):
			m.Select(m.cursor - m.height)
		case key.Matches(msg, m.Keys.PageDown):
			m.Select(m.cursor + m.height)
		case key.Matches(msg, m.Keys.Top):
			m.Select(0)
		case key.Matches(msg, m.Keys.Bottom):
			m.Select(len(m.items) - 1)
		}
	case tea.WindowSizeMsg:
		m.SetHeight(msg.Height)
	}
	return m, nil
}

// View renders the rows inside the window.
func (m *Model[T]) View() string {
	from, to := m.Window()
	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		lines = append(lines, m.render(m.items[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// SetItems replaces the items and moves the cursor to the top.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor, m.offset = 0, 0
}

// SetHeight changes the window height.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 1)
	m.Select(m.cursor)
}

// Select moves the cursor to index, clamped to the items, and scrolls the
// window to keep it visible.
func (m *Model[T]) Select(index int) {
	if len(m.items) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(index, 0), len(m.items)-1)
	switch {
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+m.height:
		m.offset = m.cursor - m.height + 1
	}
	m.offset = max(min(m.offset, len(m.items)-m.height), 0)
}

// Window returns the visible index range [from, to).
func (m *Model[T]) Window() (int, int) {
	return m.offset, min(m.offset+m.height, len(m.items))
}

// Cursor returns the selected index.
func (m *Model[T]) Cursor() int { return m.cursor }

// Len returns the number of items.
func (m *Model[T]) Len() int { return len(m.items) }

// SelectedItem returns the item under the cursor, or nil for an empty list.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.cursor]
}
