package lgr

import "sync"

// Manager owns the single process-wide Logger. Production code reaches it only
// through CreateManager/GetManager (or the create-or-fetch helpers in
// global.go); tests may drop it with ResetForTesting.
type Manager struct {
	mu     sync.Mutex
	logger *Logger
}

// registry holds the process-wide manager. States: no manager (uninitialized)
// and manager present (created).
var registry struct {
	mu  sync.Mutex
	mgr *Manager
}

// CreateManager moves the registry from uninitialized to created. A second call
// fails with ErrAlreadyCreated.
func CreateManager() (*Manager, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.mgr != nil {
		return nil, &StateError{Op: "CreateManager", Err: ErrAlreadyCreated}
	}
	registry.mgr = &Manager{}
	return registry.mgr, nil
}

// GetManager returns the created manager or fails with ErrNotCreated.
func GetManager() (*Manager, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.mgr == nil {
		return nil, &StateError{Op: "GetManager", Err: ErrNotCreated}
	}
	return registry.mgr, nil
}

// ResetForTesting discards the manager together with its logger so that the
// next access starts from scratch. For tests only.
func ResetForTesting() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.mgr != nil {
		registry.mgr.mu.Lock()
		registry.mgr.logger = nil
		registry.mgr.mu.Unlock()
	}
	registry.mgr = nil
}

// fetchManager is the create-or-fetch access used by the package-level API.
func fetchManager() *Manager {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.mgr == nil {
		registry.mgr = &Manager{}
	}
	return registry.mgr
}

// SetLogger injects the logger once. A nil logger is a *ConfigError, a second
// injection fails with ErrAlreadyInitialized.
func (m *Manager) SetLogger(l *Logger) error {
	if l == nil {
		return &ConfigError{Field: "logger", Reason: _ERROR_MESSAGE_NIL_LOGGER}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logger != nil {
		return &StateError{Op: "SetLogger", Err: ErrAlreadyInitialized}
	}
	m.logger = l
	return nil
}

// HasLogger reports whether a logger is bound.
func (m *Manager) HasLogger() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logger != nil
}

// Logger returns the bound logger, creating one with default parameters
// (every sink discarding) on first access.
func (m *Manager) Logger() *Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logger == nil {
		m.logger = newLogger()
	}
	return m.logger
}

// The next set of functions forward to the held logger's configuration API.

// BindLoggerFunction sets the explicit sink of one level (nil unbinds it).
func (m *Manager) BindLoggerFunction(level LogLevel, sink Sink) error {
	return m.Logger().BindLevelSink(level, sink)
}

// UpdateLoggerMap overrides the named levels only.
func (m *Manager) UpdateLoggerMap(sinks map[LogLevel]Sink) error {
	return m.Logger().UpdateSinkMap(sinks)
}

// SetLoggerConfig applies options to the held logger (see Logger.ApplyConfig).
func (m *Manager) SetLoggerConfig(opts ...Option) error {
	return m.Logger().ApplyConfig(opts...)
}

// RemoveLoggerFunction resets a level to the default sink.
func (m *Manager) RemoveLoggerFunction(level LogLevel) error {
	return m.Logger().RemoveLevelSink(level)
}
