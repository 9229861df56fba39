package tui

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ileap/internal/greenops"
	listview "github.com/rshade/ileap/internal/tui/list"
)

// ViewState is the screen the browser shows.
type ViewState int

const (
	// ViewStateList shows the footprint list.
	ViewStateList ViewState = iota
	// ViewStateDetail shows one footprint.
	ViewStateDetail
	// ViewStateQuitting is the final state.
	ViewStateQuitting
)

// SortField is a browser ordering.
type SortField int

const (
	// SortByEmissions puts the largest emitters first.
	SortByEmissions SortField = iota
	// SortByKind groups shipments, TOCs and HOCs.
	SortByKind
	// SortByPayload orders by payload id.
	SortByPayload

	numSortFields = 3
)

func (s SortField) String() string {
	switch s {
	case SortByEmissions:
		return "emissions"
	case SortByKind:
		return "kind"
	case SortByPayload:
		return "payload"
	default:
		return fmt.Sprintf("SortField(%d)", int(s))
	}
}

type keyMap struct {
	Quit    key.Binding
	Details key.Binding
	Back    key.Binding
	Filter  key.Binding
	Sort    key.Binding
	nav     listview.KeyMap
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nav.Up, k.nav.Down, k.Details, k.Filter, k.Sort, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nav.Up, k.nav.Down, k.nav.PageUp, k.nav.PageDown, k.nav.Top, k.nav.Bottom},
		{k.Details, k.Back, k.Filter, k.Sort, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		nav:     listview.DefaultKeyMap(),
	}
}

// Browser is the Bubble Tea model of the interactive footprint browser.
type Browser struct {
	state   ViewState
	allRows []Row // source of truth
	rows    []Row // filtered and sorted

	list   *listview.Model[Row]
	filter textinput.Model
	detail viewport.Model
	help   help.Model
	keys   keyMap

	width      int
	height     int
	sortBy     SortField
	showFilter bool
	places     int32
}

// NewBrowser returns a browser over footprints showing amounts with
// precision decimal places.
func NewBrowser(footprints []*Footprint, precision int) *Browser {
	ti := textinput.New()
	ti.Placeholder = "Filter by id, kind or payload..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth

	keys := newKeyMap()
	b := &Browser{
		state:   ViewStateList,
		allRows: NewRows(footprints),
		filter:  ti,
		detail:  viewport.New(defaultWidth, defaultHeight-2),
		help:    help.New(),
		keys:    keys,
		width:   defaultWidth,
		height:  defaultHeight,
		places:  int32(min(max(precision, 0), 10)), //nolint:gosec // clamped
	}
	b.list = listview.New[Row](nil, b.listHeight(), b.renderRow)
	b.list.Keys = keys.nav
	b.refresh()
	return b
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd { return nil }

// State returns the current screen.
func (b *Browser) State() ViewState { return b.state }

// Rows returns the rows in display order.
func (b *Browser) Rows() []Row { return b.rows }

// SortBy returns the current ordering.
func (b *Browser) SortBy() SortField { return b.sortBy }

// Selected returns the row under the cursor, or nil.
func (b *Browser) Selected() *Row { return b.list.SelectedItem() }

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		b.width, b.height = size.Width, size.Height
		b.list.SetHeight(b.listHeight())
		b.detail.Width, b.detail.Height = size.Width, max(size.Height-2, minHeight)
		return b, nil
	}
	if b.showFilter {
		return b.updateFilter(msg)
	}
	switch b.state {
	case ViewStateList:
		return b.updateList(msg)
	case ViewStateDetail:
		return b.updateDetail(msg)
	default:
		return b, nil
	}
}

func (b *Browser) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && (key.Matches(k, b.keys.Details) || key.Matches(k, b.keys.Back)) {
		b.showFilter = false
		b.filter.Blur()
		b.refresh()
		return b, nil
	}
	var cmd tea.Cmd
	b.filter, cmd = b.filter.Update(msg)
	return b, cmd
}

func (b *Browser) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch {
	case key.Matches(k, b.keys.Quit):
		b.state = ViewStateQuitting
		return b, tea.Quit
	case key.Matches(k, b.keys.Details):
		if row := b.list.SelectedItem(); row != nil {
			b.detail.SetContent(b.renderDetail(*row))
			b.detail.GotoTop()
			b.state = ViewStateDetail
		}
		return b, nil
	case key.Matches(k, b.keys.Filter):
		b.showFilter = true
		return b, b.filter.Focus()
	case key.Matches(k, b.keys.Sort):
		b.sortBy = (b.sortBy + 1) % numSortFields
		b.refresh()
		return b, nil
	case key.Matches(k, b.keys.Back):
		if b.filter.Value() != "" {
			b.filter.SetValue("")
			b.refresh()
		}
		return b, nil
	}
	_, cmd := b.list.Update(msg)
	return b, cmd
}

func (b *Browser) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, b.keys.Quit):
			b.state = ViewStateQuitting
			return b, tea.Quit
		case key.Matches(k, b.keys.Back):
			b.state = ViewStateList
			return b, nil
		}
	}
	var cmd tea.Cmd
	b.detail, cmd = b.detail.Update(msg)
	return b, cmd
}

// refresh reapplies the filter and the sort and resets the cursor.
func (b *Browser) refresh() {
	query := strings.TrimSpace(b.filter.Value())
	rows := make([]Row, 0, len(b.allRows))
	for _, r := range b.allRows {
		if query == "" || r.matches(query) {
			rows = append(rows, r)
		}
	}

	cmp := Comparators()
	slices.SortStableFunc(rows, func(x, y Row) int {
		switch b.sortBy {
		case SortByKind:
			return cmp["kind"](x, y)
		case SortByPayload:
			return cmp["payload"](x, y)
		default:
			return cmp["emissions"](y, x)
		}
	})
	b.rows = rows
	b.list.SetItems(rows)
}

func (b *Browser) listHeight() int {
	return max(b.height-chromeHeight, minHeight)
}

func (b *Browser) renderRow(r Row, selected bool) string {
	line := fmt.Sprintf("%-*s  %-*s  %-*s  %*s  %s",
		colWidthID, r.ID,
		colWidthKind, r.Kind,
		colWidthPayload, truncate(r.PayloadID, colWidthPayload),
		colWidthEmissions, greenops.FormatDecimal(r.Emissions, b.places),
		r.Equivalency)
	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func (b *Browser) renderDetail(r Row) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("PRODUCT FOOTPRINT"))
	sb.WriteString("\n\n")
	field := func(label, value string) {
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-12s", label)))
		sb.WriteString(ValueStyle.Render(value))
		sb.WriteString("\n")
	}
	field("Id:", r.ID)
	field("Payload:", r.Kind+" "+r.PayloadID)
	field("Declared:", greenops.FormatDecimal(r.Amount, b.places)+" "+r.Unit)
	field("Emissions:", greenops.FormatDecimal(r.Emissions, b.places)+" kg CO2e")
	if r.Footprint != nil {
		if eq := greenops.ForFootprint(r.Footprint.PCF); !eq.IsEmpty {
			sb.WriteString(InfoStyle.Render(eq.DisplayText))
			sb.WriteString("\n")
		}
		if data, err := json.MarshalIndent(r.Footprint, "", "  "); err == nil {
			sb.WriteString("\n")
			sb.Write(data)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// View implements tea.Model.
func (b *Browser) View() string {
	switch b.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return lipgloss.JoinVertical(lipgloss.Left,
			b.detail.View(),
			helpStyle.Render("[↑↓] Scroll  [Esc] Back to list  [q] Quit"))
	default:
		return b.renderList()
	}
}

func (b *Browser) renderList() string {
	summary := LabelStyle.Render("Footprints: ") + ValueStyle.Render(fmt.Sprint(len(b.rows))) +
		LabelStyle.Render("    Total: ") +
		ValueStyle.Render(greenops.FormatDecimal(TotalEmissions(b.rows), b.places)+" kg CO2e") +
		LabelStyle.Render("    Sort: ") + ValueStyle.Render(b.sortBy.String())

	header := fmt.Sprintf("%-*s  %-*s  %-*s  %*s  %s",
		colWidthID, "ID",
		colWidthKind, "KIND",
		colWidthPayload, "PAYLOAD",
		colWidthEmissions, "KG CO2E",
		"EQUIVALENT")

	body := b.list.View()
	if len(b.rows) == 0 {
		body = InfoStyle.Render("No footprints match.")
	}

	parts := []string{summary, tableHeaderStyle.Render(header), body}
	if b.showFilter || b.filter.Value() != "" {
		parts = append(parts, "Filter: "+b.filter.View())
	}
	parts = append(parts, helpStyle.Render(b.help.View(b.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	const suffix = "..."
	return s[:n-len(suffix)] + suffix
}
