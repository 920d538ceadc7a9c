package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/ui"
	"github.com/rovshanmuradov/tokenforge/internal/wizard"
)

// Screen represents a screen that can be navigated to
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Guard is implemented by screens that hold work which is lost when they
// are popped. While Dirty reports true, esc has to be pressed twice.
type Guard interface {
	Dirty() bool
}

// Factory builds a fresh screen for a route.
type Factory func() Screen

// Router owns the screen stack and turns ui.RouterMsg into pushes.
// The root screen is the main menu and is never popped.
type Router struct {
	stack     []Screen
	factories map[ui.Route]Factory
	logger    *zap.Logger

	width  int
	height int

	// armed is set by the first esc on a dirty screen.
	armed bool
}

// New creates a router with the main menu as its root screen.
func New(root Screen, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		stack:     []Screen{root},
		factories: make(map[ui.Route]Factory),
		logger:    logger.Named("router"),
	}
}

// Register sets the screen factory used when navigating to route.
func (r *Router) Register(route ui.Route, f Factory) *Router {
	r.factories[route] = f
	return r
}

// Init initializes the root screen
func (r *Router) Init() tea.Cmd {
	return r.Current().Init()
}

// Update processes messages and updates the current screen
func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
		r.Current().SetSize(msg.Width, msg.Height)
		return r, nil

	case ui.RouterMsg:
		return r, r.Navigate(msg.To)

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && r.Depth() > 1 {
			return r, r.back()
		}
		r.armed = false
	}

	updated, cmd := r.Current().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return r, cmd
}

// back pops the current screen, asking once when it has unsaved work.
func (r *Router) back() tea.Cmd {
	if g, ok := r.Current().(Guard); ok && g.Dirty() && !r.armed {
		r.armed = true
		return ui.Notify(wizard.Notification{
			Kind:        wizard.NotifyWarning,
			Title:       "Leave without launching?",
			Description: "Press esc again to discard this configuration.",
		})
	}
	return r.Pop()
}

// Navigate opens route. The main menu route unwinds to the root.
func (r *Router) Navigate(route ui.Route) tea.Cmd {
	if route == ui.RouteMainMenu {
		return r.Clear()
	}
	f, ok := r.factories[route]
	if !ok {
		r.logger.Warn("No screen registered for route", zap.Stringer("route", route))
		return nil
	}
	r.logger.Debug("Navigate", zap.Stringer("route", route))
	return r.Push(f())
}

// View renders the current screen
func (r *Router) View() string {
	return r.Current().View()
}

// Push adds a new screen to the navigation stack
func (r *Router) Push(screen Screen) tea.Cmd {
	r.armed = false
	screen.SetSize(r.width, r.height)
	r.stack = append(r.stack, screen)
	return screen.Init()
}

// Pop removes the current screen. The root is kept.
func (r *Router) Pop() tea.Cmd {
	if r.Depth() <= 1 {
		return nil
	}
	r.armed = false
	r.stack = r.stack[:len(r.stack)-1]
	r.Current().SetSize(r.width, r.height)
	return nil
}

// Clear drops everything above the root screen.
func (r *Router) Clear() tea.Cmd {
	r.armed = false
	r.stack = r.stack[:1]
	r.Current().SetSize(r.width, r.height)
	return nil
}

// Current returns the screen on top of the stack
func (r *Router) Current() Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the current navigation depth
func (r *Router) Depth() int {
	return len(r.stack)
}
