package ui

import (
	"fmt"
	"strings"

	"utilboard/internal/dataset"
	"utilboard/internal/logging"
	"utilboard/internal/workforce"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// KindFilterMode selects which person kinds are visible. It narrows the
// already-projected rows; the projection predicates themselves never change.
type KindFilterMode int

const (
	FilterAll KindFilterMode = iota
	FilterEmployees
	FilterExternals
)

func (m KindFilterMode) String() string {
	switch m {
	case FilterEmployees:
		return "Employees"
	case FilterExternals:
		return "Externals"
	default:
		return "All"
	}
}

// SnapshotMsg delivers a load result to the dashboard. The host sends one
// after the initial load and again for every watcher or manual reload. On
// error the dashboard keeps showing the previous snapshot.
type SnapshotMsg struct {
	Snapshot *dataset.Snapshot
	Err      error
}

// DashboardModel is the interactive utilisation table: a bubbles table with
// the fixed seven-column schema, a person text filter, and a kind filter.
type DashboardModel struct {
	width  int
	height int
	table  table.Model

	// Data
	snapshot *dataset.Snapshot
	total    int // row count of the unfiltered projection
	visible  []workforce.Row
	loadErr  string

	// Filter state
	filterInput   textinput.Model
	filterMode    KindFilterMode
	filterFocused bool

	// Help overlay
	showHelp     bool
	help         viewport.Model
	helpRendered bool

	watching bool
	reload   func() tea.Msg // nil disables the manual refresh key

	styles Styles
}

// NewDashboardModel creates the dashboard. reload is invoked on the refresh
// key and must return a SnapshotMsg; pass nil when the host cannot reload.
func NewDashboardModel(styles Styles, watching bool, reload func() tea.Msg) DashboardModel {
	t := table.New(
		table.WithColumns(dashboardColumns(MinimumTerminalWidth)),
		table.WithFocused(true),
		table.WithHeight(DefaultTableHeight),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		Bold(true).
		Foreground(styles.Theme.Primary).
		BorderForeground(styles.Theme.Border)
	ts.Selected = ts.Selected.
		Foreground(styles.Theme.Background).
		Background(styles.Theme.Accent).
		Bold(false)
	t.SetStyles(ts)

	fi := textinput.New()
	fi.Placeholder = "Filter by person..."
	fi.CharLimit = 50
	fi.Width = 30

	return DashboardModel{
		table:       t,
		filterInput: fi,
		filterMode:  FilterAll,
		watching:    watching,
		reload:      reload,
		styles:      styles,
	}
}

// dashboardColumns maps the fixed column schema onto bubbles table columns,
// flexing the Person column with the terminal width.
func dashboardColumns(terminalWidth int) []table.Column {
	widths := map[string]int{
		"person":               PersonColumnWidth(terminalWidth),
		"past12Months":         RateColumnWidth,
		"y2d":                  RateColumnWidth,
		"may":                  MonthColumnWidth,
		"june":                 MonthColumnWidth,
		"july":                 MonthColumnWidth,
		"netEarningsPrevMonth": EarningsColumnWidth,
	}

	cols := make([]table.Column, 0, len(widths))
	for _, c := range workforce.Columns() {
		cols = append(cols, table.Column{Title: c.Header, Width: widths[c.Key]})
	}
	return cols
}

// Init initializes the model.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(dashboardColumns(m.width))
		m.table.SetHeight(TableHeight(m.height))
		m.help.Width = m.width - 4
		m.help.Height = m.height - HeaderHeight - StatusBarHeight
		m.helpRendered = false
		return m, nil

	case SnapshotMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
			logging.Get(logging.CategoryUI).Error("snapshot rejected: %v", msg.Err)
			return m, nil
		}
		m.snapshot = msg.Snapshot
		m.total = len(workforce.Project(m.snapshot.Records))
		m.loadErr = ""
		m.applyFilter()
		logging.UI("snapshot applied: %d records, %d rows (load %s)",
			len(m.snapshot.Records), m.total, m.snapshot.LoadID)
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
				return m, nil
			}
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.filterFocused {
				return m, tea.Quit
			}
		case "/":
			m.filterFocused = !m.filterFocused
			if m.filterFocused {
				m.filterInput.Focus()
			} else {
				m.filterInput.Blur()
			}
			return m, nil
		case "tab":
			if !m.filterFocused {
				m.filterMode = (m.filterMode + 1) % 3
				m.applyFilter()
			}
		case "esc":
			if m.filterFocused {
				m.filterFocused = false
				m.filterInput.Blur()
				return m, nil
			}
		case "enter":
			if m.filterFocused {
				m.filterFocused = false
				m.filterInput.Blur()
				m.applyFilter()
				return m, nil
			}
		case "r":
			if !m.filterFocused && m.reload != nil {
				logging.UIDebug("manual reload requested")
				return m, m.reload
			}
		case "?":
			if !m.filterFocused {
				m.showHelp = true
				m.ensureHelp()
				return m, nil
			}
		}
	}

	// Update filter input if focused
	if m.filterFocused {
		m.filterInput, cmd = m.filterInput.Update(msg)
		cmds = append(cmds, cmd)
		// Apply filter on each keystroke for live filtering
		m.applyFilter()
	} else {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// applyFilter recomputes the visible rows: kind filter on the source records,
// then the projection, then the person text filter on the projected rows.
func (m *DashboardModel) applyFilter() {
	if m.snapshot == nil {
		m.visible = nil
		m.table.SetRows(nil)
		return
	}

	records := m.snapshot.Records
	if m.filterMode != FilterAll {
		want := workforce.KindEmployee
		if m.filterMode == FilterExternals {
			want = workforce.KindExternal
		}
		kept := make([]workforce.Record, 0, len(records))
		for _, r := range records {
			if r.Kind() == want {
				kept = append(kept, r)
			}
		}
		records = kept
	}

	rows := workforce.Project(records)

	filterText := strings.ToLower(m.filterInput.Value())
	if filterText != "" {
		kept := rows[:0]
		for _, r := range rows {
			if strings.Contains(strings.ToLower(r.Person), filterText) {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	m.visible = rows
	m.updateTableRows()
}

// updateTableRows hands the visible rows to the table widget.
func (m *DashboardModel) updateTableRows() {
	rows := make([]table.Row, 0, len(m.visible))
	for _, r := range m.visible {
		rows = append(rows, table.Row(r.Cells()))
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// VisibleRows returns the rows currently shown, after all filters.
func (m DashboardModel) VisibleRows() []workforce.Row {
	return m.visible
}

// View renders the page.
func (m DashboardModel) View() string {
	var sb strings.Builder

	title := m.styles.Header.Render(" Workforce Utilisation ")
	sb.WriteString(title + "\n\n")

	if m.showHelp {
		sb.WriteString(m.styles.Content.Render(m.help.View()))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Footer.Render("? or esc to close"))
		return sb.String()
	}

	sb.WriteString(m.renderFilterBar())
	sb.WriteString("\n\n")

	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	sb.WriteString(m.renderStatusBar())
	return sb.String()
}

// renderFilterBar renders the filter input and kind selector
func (m DashboardModel) renderFilterBar() string {
	var sb strings.Builder

	filterStyle := m.styles.FilterBox
	if m.filterFocused {
		filterStyle = filterStyle.BorderForeground(m.styles.Theme.Primary)
	}
	sb.WriteString(filterStyle.Render(m.filterInput.View()))
	sb.WriteString("  ")

	for _, mode := range []KindFilterMode{FilterAll, FilterEmployees, FilterExternals} {
		label := mode.String()
		if mode == m.filterMode {
			sb.WriteString(m.styles.Badge.Render(label))
		} else {
			sb.WriteString(m.styles.Muted.Render(" " + label + " "))
		}
		sb.WriteString(" ")
	}

	return sb.String()
}

// renderStatusBar renders dataset provenance and the current row counts.
func (m DashboardModel) renderStatusBar() string {
	if m.snapshot == nil {
		if m.loadErr != "" {
			return m.styles.Error.Render("load failed: " + m.loadErr)
		}
		return m.styles.Muted.Render("no dataset loaded")
	}

	parts := []string{
		m.snapshot.Path,
		fmt.Sprintf("%d of %d persons", len(m.visible), m.total),
		"load " + shortID(m.snapshot.LoadID),
		m.snapshot.LoadedAt.Format("15:04:05"),
	}
	if m.watching {
		parts = append(parts, "watching")
	}

	line := m.styles.Footer.Render(strings.Join(parts, "  |  "))
	if m.loadErr != "" {
		line += "\n" + m.styles.Error.Render("reload failed: "+m.loadErr)
	}
	return line
}

// shortID trims a load uuid down to the status bar form.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

const helpMarkdown = `# utilboard

Utilisation and earnings per person, read straight from the workforce export.

## Keys

| Key | Action |
|-----|--------|
| up/down | move selection |
| / | focus the person filter |
| tab | cycle kind filter (All, Employees, Externals) |
| enter | apply filter and leave the input |
| esc | leave the filter input |
| r | reload the export file |
| ? | toggle this help |
| q | quit |

## Columns

Rates are the export's utilisation fractions shown as percentages with one
decimal. Earnings show the previous calendar month's potential earnings;
externals have none and always show 0 €. Missing or malformed values render
their defaults rather than hiding the person.
`

// ensureHelp renders the help markdown into the viewport once per resize.
func (m *DashboardModel) ensureHelp() {
	if m.helpRendered {
		return
	}

	width := m.width - 4
	if width < 20 {
		width = MinimumTerminalWidth - 4
	}

	out := helpMarkdown
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, rerr := renderer.Render(helpMarkdown); rerr == nil {
			out = rendered
		}
	}

	if m.help.Width == 0 {
		m.help = viewport.New(width, DefaultTableHeight)
	}
	m.help.SetContent(out)
	m.help.GotoTop()
	m.helpRendered = true
}
