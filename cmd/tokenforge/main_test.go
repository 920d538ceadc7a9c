package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/ui"
	"github.com/rovshanmuradov/tokenforge/internal/ui/screen"
)

func newTestApp(t *testing.T) *AppModel {
	m := NewAppModel(screen.Options{
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) },
		ExportDir: t.TempDir(),
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestAppNavigation(t *testing.T) {
	m := newTestApp(t)
	assert.Contains(t, m.View(), "tokenforge")

	m.Update(ui.RouterMsg{To: ui.RouteWizard})
	require.Equal(t, 2, m.router.Depth())
	assert.IsType(t, &screen.WizardScreen{}, m.router.Current())
	assert.Contains(t, m.View(), "Token Launch Wizard")

	m.Update(ui.RouterMsg{To: ui.RouteMainMenu})
	assert.Equal(t, 1, m.router.Depth())

	_, cmd := m.Update(ui.RouterMsg{To: ui.RouteExplorer})
	assert.NotNil(t, cmd, "explorer starts sampling on open")
	assert.IsType(t, &screen.ExplorerScreen{}, m.router.Current())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppEscAsksBeforeDiscardingWizard(t *testing.T) {
	m := newTestApp(t)
	m.Update(ui.RouterMsg{To: ui.RouteWizard})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("M")})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.router.Depth(), "edited wizard survives the first esc")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppQuit(t *testing.T) {
	m := newTestApp(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppViewBeforeSize(t *testing.T) {
	m := NewAppModel(screen.Options{})
	assert.Equal(t, "Initializing...", m.View())
}
