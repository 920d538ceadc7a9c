package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/tokenforge/internal/ui"
	"github.com/rovshanmuradov/tokenforge/internal/ui/component"
	"github.com/rovshanmuradov/tokenforge/internal/ui/router"
	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
)

// MenuItem represents a menu item
type MenuItem struct {
	Label       string
	Description string
	Route       ui.Route
	Quit        bool
}

// MainMenuScreen represents the main menu screen
type MainMenuScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	helpBar *component.HelpBar

	selectedIndex int
	menuItems     []MenuItem

	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
}

// NewMainMenuScreen creates a new main menu screen
func NewMainMenuScreen() *MainMenuScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	menuItems := []MenuItem{
		{
			Label:       "🚀 New Token Launch",
			Description: "Configure token, bonding curve, allocation, vesting and listing",
			Route:       ui.RouteWizard,
		},
		{
			Label:       "📈 Curve Explorer",
			Description: "Compare bonding curve shapes side by side",
			Route:       ui.RouteExplorer,
		},
		{
			Label:       "✕ Quit",
			Description: "Leave tokenforge",
			Quit:        true,
		},
	}

	return &MainMenuScreen{
		keyMap:    keyMap,
		menuItems: menuItems,
		helpBar: component.NewHelpBar().
			SetKeyBindings(keyMap.ContextualHelp(ui.RouteMainMenu)),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0, 0, 0),

		subtitleStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true),
	}
}

// Init initializes the main menu screen
func (m *MainMenuScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (m *MainMenuScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keyMap.Up):
		m.selectedIndex = (m.selectedIndex - 1 + len(m.menuItems)) % len(m.menuItems)

	case key.Matches(keyMsg, m.keyMap.Down):
		m.selectedIndex = (m.selectedIndex + 1) % len(m.menuItems)

	case key.Matches(keyMsg, m.keyMap.Enter):
		item := m.menuItems[m.selectedIndex]
		if item.Quit {
			return m, tea.Quit
		}
		return m, ui.Navigate(item.Route)
	}

	return m, nil
}

// View renders the main menu screen
func (m *MainMenuScreen) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(m.titleStyle.Render("⚒ tokenforge"))
	content.WriteString("\n")
	content.WriteString(m.subtitleStyle.Render("Design a token launch on a bonding curve"))
	content.WriteString("\n")
	content.WriteString(m.renderMenu())
	content.WriteString("\n")
	content.WriteString(m.helpBar.View())

	result := content.String()
	if m.width > 80 {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, result)
	}
	return result
}

// SetSize sets the screen dimensions
func (m *MainMenuScreen) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.helpBar.SetWidth(min(width, 80))
}

func (m *MainMenuScreen) renderMenu() string {
	var items []string
	for i, item := range m.menuItems {
		if i == m.selectedIndex {
			items = append(items, style.MenuSelectedStyle.Render(item.Label))
			items = append(items, style.MenuDescriptionStyle.Render(item.Description))
			continue
		}
		items = append(items, style.MenuItemStyle.Render(item.Label))
	}

	menuStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.DefaultPalette().Primary).
		Padding(1, 4).
		Margin(1, 0)

	return menuStyle.Render(strings.Join(items, "\n"))
}

// SelectedRoute returns the route of the highlighted item
func (m *MainMenuScreen) SelectedRoute() ui.Route {
	return m.menuItems[m.selectedIndex].Route
}
