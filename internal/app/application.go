package app

import (
	"dictview/internal/config"
	"dictview/internal/controllers"
	"dictview/internal/logger"
	"dictview/internal/models"
	"dictview/internal/shutdown"
	"dictview/internal/store"
	"dictview/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/afero"
)

const (
	AppName    = "Dictionary"
	AppID      = "io.dictview.viewer"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView

	lifecycle *Lifecycle
	shutdown  *shutdown.Manager
}

// NewApplication creates the fyne application and wires the viewer.
func NewApplication(cfg config.Config, fs afero.Fs, log logger.Logger) *Application {
	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return NewApplicationWithApp(fyneApp, cfg, fs, log)
}

// NewApplicationWithApp wires the viewer into an existing fyne app.
func NewApplicationWithApp(fyneApp fyne.App, cfg config.Config, fs afero.Fs, log logger.Logger) *Application {
	window := newBorderlessWindow(fyneApp)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	locator := store.NewLocator(fs, cfg.Store, log)
	windowState := models.NewWindowState(cfg.Font, models.Size{Width: cfg.Window.Width, Height: cfg.Window.Height})
	fallbackScreen := models.Size{Width: cfg.Window.ScreenWidth, Height: cfg.Window.ScreenHeight}

	controller := controllers.NewMainController(fs, locator, windowState, fallbackScreen, log)
	view := views.NewMainView(fyneApp, window, views.NewPalette(cfg.Colors), controller)
	controller.SetView(view)
	controller.SetNativeWindow(views.NewNativeWindow(window))

	lifecycle := NewLifecycle(fyneApp, log)
	controller.SetQuitHandler(lifecycle.Shutdown)

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(lifecycle)

	log.Info("Application", "application initialized", map[string]interface{}{
		"version":      AppVersion,
		"app_data_dir": locator.AppDataDir,
		"bundled_dir":  locator.BundledDir,
		"window_width": cfg.Window.Width,
		"font_size":    cfg.Font.DefaultSize,
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		view:       view,
		lifecycle:  lifecycle,
		shutdown:   shutdownManager,
	}
}

// newBorderlessWindow uses an undecorated splash window where the driver
// supports one.
func newBorderlessWindow(a fyne.App) fyne.Window {
	if drv, ok := a.(desktop.App); ok {
		w := drv.NewSplashWindow()
		w.SetTitle(AppName)
		return w
	}
	return a.NewWindow(AppName)
}

// Start fills the window with the first dictionary. A store that cannot be
// opened leaves the empty state on screen.
func (a *Application) Start() {
	if err := a.controller.Start(); err != nil {
		a.logger.Warning("Application", "starting with an empty dictionary list", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Run shows the window and blocks in the UI event loop until the viewer
// quits.
func (a *Application) Run() error {
	a.shutdown.Listen()
	defer a.shutdown.Stop()

	a.Start()

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.lifecycle.Shutdown()
	})
	a.view.Show()

	a.logger.Info("Application", "UI displayed", nil)
	a.fyneApp.Run()

	a.logger.Info("Application", "event loop finished", nil)
	return nil
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}
