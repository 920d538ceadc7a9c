package ui

import (
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// SafeModel wraps a tea.Model and turns panics in Init, Update and View
// into logged errors so a rendering bug does not take the terminal down
// with it.
type SafeModel struct {
	model  tea.Model
	logger *zap.Logger
	failed bool
}

// NewSafeModel wraps model.
func NewSafeModel(model tea.Model, logger *zap.Logger) *SafeModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SafeModel{
		model:  model,
		logger: logger,
	}
}

// Failed reports whether a panic was recovered.
func (sm *SafeModel) Failed() bool {
	return sm.failed
}

// Init wraps the Init method with panic recovery
func (sm *SafeModel) Init() (cmd tea.Cmd) {
	defer sm.recoverFromPanic("Init", &cmd)
	return sm.model.Init()
}

// Update wraps the Update method with panic recovery
func (sm *SafeModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	model = sm
	defer sm.recoverFromPanic("Update", &cmd)

	// ctrl+c must keep working after a failure
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" && sm.failed {
		return sm, tea.Quit
	}

	inner, cmd := sm.model.Update(msg)
	sm.model = inner
	return sm, cmd
}

// View wraps the View method with panic recovery
func (sm *SafeModel) View() (view string) {
	defer func() {
		if r := recover(); r != nil {
			sm.failed = true
			sm.logger.Error("View panic recovered",
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())))
			view = "UI Error: View crashed. Press Ctrl+C to exit."
		}
	}()
	return sm.model.View()
}

// recoverFromPanic recovers from panics in UI methods
func (sm *SafeModel) recoverFromPanic(method string, cmd *tea.Cmd) {
	if r := recover(); r != nil {
		sm.failed = true
		sm.logger.Error("UI method panic recovered",
			zap.String("method", method),
			zap.Any("panic", r),
			zap.String("stack", string(debug.Stack())))
		*cmd = nil
	}
}
