package ui

import (
	"utilboard/internal/dataset"

	tea "github.com/charmbracelet/bubbletea"
)

// App is the top-level bubbletea model: it owns the dashboard page and feeds
// it the initial snapshot. The host keeps sending SnapshotMsg for reloads.
type App struct {
	page    DashboardModel
	initial *dataset.Snapshot
}

// NewApp wraps the dashboard page with the snapshot loaded at startup.
func NewApp(page DashboardModel, initial *dataset.Snapshot) App {
	return App{page: page, initial: initial}
}

// Init delivers the startup snapshot as the first message.
func (a App) Init() tea.Cmd {
	initial := a.initial
	return func() tea.Msg {
		return SnapshotMsg{Snapshot: initial}
	}
}

// Update forwards everything to the dashboard page.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, cmd := a.page.Update(msg)
	a.page = page
	return a, cmd
}

// View renders the dashboard page.
func (a App) View() string {
	return a.page.View()
}
