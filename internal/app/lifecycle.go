package app

import (
	"sync"
	"sync/atomic"

	"dictview/internal/logger"

	"fyne.io/fyne/v2"
)

// Lifecycle ends the UI event loop exactly once, whether the request comes
// from the close button, the window manager or an OS signal.
type Lifecycle struct {
	fyneApp fyne.App
	logger  logger.Logger
	once    sync.Once
	done    atomic.Bool
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp: fyneApp,
		logger:  log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.done.Store(true)
		l.logger.Info("Lifecycle", "quitting", nil)
		fyne.Do(l.fyneApp.Quit)
	})
}

// IsShutdown reports whether Shutdown has run.
func (l *Lifecycle) IsShutdown() bool {
	return l.done.Load()
}
