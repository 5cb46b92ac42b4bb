package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"dictview/internal/logger"
)

const DefaultTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Manager runs registered components' Shutdown in reverse order when an OS
// interrupt arrives or Shutdown is called directly.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	sigChan    chan os.Signal
	stop       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		timeout:    DefaultTimeout,
		done:       make(chan struct{}),
	}
}

// SetTimeout bounds how long a single component may take to shut down.
func (m *Manager) SetTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen starts watching for SIGINT and SIGTERM until Stop is called.
func (m *Manager) Listen() {
	m.mu.Lock()
	if m.sigChan != nil {
		m.mu.Unlock()
		return
	}
	m.sigChan = make(chan os.Signal, 1)
	m.stop = make(chan struct{})
	sigChan, stop := m.sigChan, m.stop
	m.mu.Unlock()

	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-stop:
		}
	}()
}

// Stop releases the signal handler installed by Listen.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sigChan == nil {
		return
	}
	signal.Stop(m.sigChan)
	close(m.stop)
	m.sigChan = nil
	m.stop = nil
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
		close(m.done)
	}
	components := make([]Shutdownable, len(m.components))
	copy(components, m.components)
	timeout := m.timeout
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	for i := len(components) - 1; i >= 0; i-- {
		component := components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			component.Shutdown()
		}()

		select {
		case <-finished:
		case <-time.After(timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
