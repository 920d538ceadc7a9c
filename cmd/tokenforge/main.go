package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/config"
	"github.com/rovshanmuradov/tokenforge/internal/logger"
	"github.com/rovshanmuradov/tokenforge/internal/ui"
	"github.com/rovshanmuradov/tokenforge/internal/ui/router"
	"github.com/rovshanmuradov/tokenforge/internal/ui/screen"
)

// AppModel represents the main TUI application model
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// NewAppModel creates a new application model
func NewAppModel(opts screen.Options) *AppModel {
	r := router.New(screen.NewMainMenuScreen(), opts.Logger).
		Register(ui.RouteWizard, func() router.Screen { return screen.NewWizardScreen(opts) }).
		Register(ui.RouteExplorer, func() router.Screen { return screen.NewExplorerScreen(opts) })
	return &AppModel{router: r}
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return m.router.Init()
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	_, cmd := m.router.Update(msg)
	return m, cmd
}

// View renders the application
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return m.router.View()
}

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.CreatePrettyLogger(cfg.DebugLogging)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	tuiLogger, closeLog, err := logger.CreateTUILogger(logger.FileConfig{
		Path:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Debug:      cfg.DebugLogging,
	})
	if err != nil {
		appLogger.Fatal("Failed to init TUI log file", zap.Error(err))
	}
	defer func() {
		_ = tuiLogger.Sync()
		_ = closeLog()
	}()

	appLogger.Info("Starting tokenforge",
		zap.String("config", *configPath),
		zap.String("log_file", cfg.LogFile))
	tuiLogger.Info("Session started",
		zap.Int("curve_resolution", cfg.CurveResolution),
		zap.String("default_shape", cfg.Shape().String()))

	opts := screen.OptionsFromConfig(rootCtx, cfg, tuiLogger)
	program := tea.NewProgram(
		ui.NewSafeModel(NewAppModel(opts), tuiLogger),
		tea.WithAltScreen(),
		tea.WithContext(rootCtx),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		appLogger.Error("TUI application failed", zap.Error(err))
		return
	}

	appLogger.Info("tokenforge stopped")
}
