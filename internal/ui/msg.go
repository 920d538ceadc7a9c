package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovshanmuradov/tokenforge/internal/wizard"
)

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// NotificationMsg carries a wizard notification to the toast area.
type NotificationMsg struct {
	Notification wizard.Notification
}

// Navigate returns a command that requests navigation to route.
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return RouterMsg{To: route}
	}
}

// Notify wraps notifications into a batch of tea commands.
func Notify(notes ...wizard.Notification) tea.Cmd {
	if len(notes) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(notes))
	for _, n := range notes {
		n := n
		cmds = append(cmds, func() tea.Msg {
			return NotificationMsg{Notification: n}
		})
	}
	return tea.Sequence(cmds...)
}

// Route represents different screens in the application
type Route int

const (
	RouteMainMenu Route = iota
	RouteWizard
	RouteExplorer
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteMainMenu:
		return "main_menu"
	case RouteWizard:
		return "wizard"
	case RouteExplorer:
		return "explorer"
	default:
		return "unknown"
	}
}
