package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockModel is a test UI model
type mockModel struct {
	panicOnInit   bool
	panicOnUpdate bool
	panicOnView   bool
	updates       int
}

func (m *mockModel) Init() tea.Cmd {
	if m.panicOnInit {
		panic("init panic test")
	}
	return nil
}

func (m *mockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.updates++
	if m.panicOnUpdate {
		panic("update panic test")
	}
	return m, nil
}

func (m *mockModel) View() string {
	if m.panicOnView {
		panic("view panic test")
	}
	return "Test UI"
}

func TestSafeModel_PassesThrough(t *testing.T) {
	inner := &mockModel{}
	sm := NewSafeModel(inner, zap.NewNop())

	assert.Nil(t, sm.Init())

	model, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Same(t, sm, model)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, inner.updates)

	assert.Equal(t, "Test UI", sm.View())
	assert.False(t, sm.Failed())
}

func TestSafeModel_RecoversInit(t *testing.T) {
	sm := NewSafeModel(&mockModel{panicOnInit: true}, zap.NewNop())

	require.NotPanics(t, func() { sm.Init() })
	assert.True(t, sm.Failed())
}

func TestSafeModel_RecoversUpdate(t *testing.T) {
	sm := NewSafeModel(&mockModel{panicOnUpdate: true}, nil)

	var model tea.Model
	var cmd tea.Cmd
	require.NotPanics(t, func() {
		model, cmd = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	})
	assert.Same(t, sm, model)
	assert.Nil(t, cmd)
	assert.True(t, sm.Failed())

	_, cmd = sm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSafeModel_RecoversView(t *testing.T) {
	sm := NewSafeModel(&mockModel{panicOnView: true}, zap.NewNop())

	view := sm.View()
	assert.Contains(t, view, "View crashed")
	assert.True(t, sm.Failed())
}
