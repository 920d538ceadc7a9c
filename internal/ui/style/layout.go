package style

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

// Heading styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(0, 0, 1, 0)

	SectionStyle = lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(palette.TextSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted)
)

// Layout styles
var (
	// ContainerStyle frames the focused form.
	ContainerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 1)
)

// Menu styles
var (
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 2)

	MenuSelectedStyle = lipgloss.NewStyle().
				Foreground(palette.Background).
				Background(palette.Primary).
				Padding(0, 2).
				Bold(true)

	MenuDescriptionStyle = lipgloss.NewStyle().
				Foreground(palette.TextMuted).
				Padding(0, 4).
				Italic(true)

	// MarkerStyle renders the cursor in front of a selected row.
	MarkerStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true)
)

// Status styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(palette.Warning).
			Bold(true)
)

// Notification styles
var (
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	ToastTitleStyle = lipgloss.NewStyle().
			Bold(true)

	ToastBodyStyle = lipgloss.NewStyle().
			Foreground(palette.TextSecondary)
)

// Wizard step styles
var (
	StepDoneStyle = lipgloss.NewStyle().
			Foreground(palette.Success)

	StepActiveStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Underline(true)

	StepPendingStyle = lipgloss.NewStyle().
				Foreground(palette.TextMuted)
)

// NarrowWidth is the terminal width below which panels stack vertically.
const NarrowWidth = 80

// AdaptiveJoinHorizontal places blocks side by side, or stacks them on
// narrow terminals.
func AdaptiveJoinHorizontal(width int, blocks ...string) string {
	if width < NarrowWidth {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
