package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/ui"
)

type fakeScreen struct {
	name          string
	inits         int
	dirty         bool
	width, height int
	msgs          []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	f.msgs = append(f.msgs, msg)
	return f, nil
}

func (f *fakeScreen) View() string { return f.name }

func (f *fakeScreen) SetSize(width, height int) {
	f.width, f.height = width, height
}

func (f *fakeScreen) Dirty() bool { return f.dirty }

var esc = tea.KeyMsg{Type: tea.KeyEsc}

func newTestRouter() (*Router, *fakeScreen) {
	root := &fakeScreen{name: "menu"}
	r := New(root, zap.NewNop())
	r.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return r, root
}

func TestRouterNavigate(t *testing.T) {
	r, root := newTestRouter()
	assert.Equal(t, 100, root.width)

	var built *fakeScreen
	r.Register(ui.RouteWizard, func() Screen {
		built = &fakeScreen{name: "wizard"}
		return built
	})

	r.Update(ui.RouterMsg{To: ui.RouteWizard})
	require.NotNil(t, built)
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "wizard", r.View())
	assert.Equal(t, 1, built.inits)
	assert.Equal(t, 40, built.height, "pushed screens inherit the size")

	assert.Nil(t, r.Navigate(ui.RouteExplorer), "unregistered route is ignored")
	assert.Equal(t, 2, r.Depth())

	r.Update(ui.RouterMsg{To: ui.RouteMainMenu})
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, root, r.Current())
}

func TestRouterEscGoesBack(t *testing.T) {
	r, root := newTestRouter()
	child := &fakeScreen{name: "child"}
	r.Push(child)

	r.Update(esc)
	assert.Equal(t, 1, r.Depth())
	assert.Empty(t, child.msgs, "esc is consumed by the router")

	r.Update(esc)
	assert.Equal(t, 1, r.Depth())
	require.Len(t, root.msgs, 1, "esc on the root screen is forwarded")
	assert.Nil(t, r.Pop(), "root screen is never popped")
}

func TestRouterEscGuardsDirtyScreen(t *testing.T) {
	r, _ := newTestRouter()
	wizard := &fakeScreen{name: "wizard", dirty: true}
	r.Push(wizard)

	_, cmd := r.Update(esc)
	assert.Equal(t, 2, r.Depth(), "first esc only warns")
	require.NotNil(t, cmd)

	r.Update(tea.KeyMsg{Type: tea.KeyTab})
	r.Update(esc)
	assert.Equal(t, 2, r.Depth(), "any other key disarms the guard")

	r.Update(esc)
	assert.Equal(t, 1, r.Depth())
}

func TestRouterClear(t *testing.T) {
	r, root := newTestRouter()
	r.Push(&fakeScreen{name: "a"})
	r.Push(&fakeScreen{name: "b"})

	r.Clear()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "menu", r.View())
	assert.Equal(t, 100, root.width)
}
