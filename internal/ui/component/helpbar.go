package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
)

// HelpBar shows the keyboard shortcuts available on the current screen.
type HelpBar struct {
	keyBindings []key.Binding
	width       int

	keyStyle       lipgloss.Style
	descStyle      lipgloss.Style
	sepStyle       lipgloss.Style
	containerStyle lipgloss.Style

	compact bool
}

// NewHelpBar creates a new help bar component
func NewHelpBar() *HelpBar {
	palette := style.DefaultPalette()

	return &HelpBar{
		width: 80,

		keyStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		descStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		sepStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		containerStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Margin(1, 0, 0, 0),
	}
}

// SetKeyBindings sets the key bindings to display
func (h *HelpBar) SetKeyBindings(bindings []key.Binding) *HelpBar {
	h.keyBindings = bindings
	return h
}

// SetWidth sets the help bar width
func (h *HelpBar) SetWidth(width int) *HelpBar {
	h.width = width
	return h
}

// SetCompact switches to keys-only rendering.
func (h *HelpBar) SetCompact(compact bool) *HelpBar {
	h.compact = compact
	return h
}

// View renders the help bar
func (h *HelpBar) View() string {
	items := h.items()
	if len(items) == 0 {
		return ""
	}

	availableWidth := h.width - 4
	separator := h.sepStyle.Render(" • ")

	return h.containerStyle.Render(wrapItems(items, availableWidth, separator))
}

// ViewContextual renders help for the given bindings without replacing the stored ones.
func (h *HelpBar) ViewContextual(bindings []key.Binding) string {
	original := h.keyBindings
	h.keyBindings = bindings
	result := h.View()
	h.keyBindings = original
	return result
}

func (h *HelpBar) items() []string {
	items := make([]string, 0, len(h.keyBindings))
	for _, binding := range h.keyBindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" {
			continue
		}

		item := h.keyStyle.Render(help.Key)
		if !h.compact && help.Desc != "" {
			item += " " + h.descStyle.Render(help.Desc)
		}
		items = append(items, item)
	}
	return items
}

// wrapItems joins items with separator, breaking lines at maxWidth.
func wrapItems(items []string, maxWidth int, separator string) string {
	var lines []string
	var currentLine []string
	currentWidth := 0
	sepWidth := lipgloss.Width(separator)

	for _, item := range items {
		itemWidth := lipgloss.Width(item) + sepWidth

		if maxWidth > 0 && currentWidth+itemWidth > maxWidth && len(currentLine) > 0 {
			lines = append(lines, strings.Join(currentLine, separator))
			currentLine = []string{item}
			currentWidth = itemWidth
		} else {
			currentLine = append(currentLine, item)
			currentWidth += itemWidth
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, separator))
	}

	return strings.Join(lines, "\n")
}
