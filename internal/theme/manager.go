package theme

import (
	"fmt"
	"time"

	"golang.org/x/exp/maps"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/log"
)

const DefaultDebounce = 150 * time.Millisecond

func NewManager(sink Sink, debounce time.Duration) *Manager {
	if debounce < 0 {
		debounce = 0
	}
	return &Manager{
		sink:     sink,
		debounce: debounce,
		state: State{
			Persisted: accent.ThemeMap{},
			Applied:   accent.ThemeMap{},
		},
		cfg:         accent.NewConfig(),
		subscribers: make(map[string]chan State),
	}
}

// Load resolves cfg as the new persisted state and drops any preview. It is
// safe to call repeatedly with the same config.
func (m *Manager) Load(cfg accent.Config) {
	persisted := accent.BuildThemeMap(cfg)

	m.stateMutex.Lock()
	m.cfg = cfg.Clone()
	m.state = State{Persisted: persisted, Applied: persisted.Clone()}
	m.stateMutex.Unlock()

	log.Debugf("Loaded accent theme with %d keys", len(persisted))
	m.changed()
}

// Preview shows color at scope on top of the persisted map. The latest call
// wins. An empty or invalid color cancels the preview.
func (m *Manager) Preview(scope accent.Scope, color string) {
	m.stateMutex.Lock()
	applied := accent.Preview(m.state.Persisted, scope, color)
	previewing := !maps.Equal(applied, m.state.Persisted)
	m.state.Applied = applied
	m.state.Previewing = previewing
	m.state.Scope = ""
	if previewing {
		m.state.Scope = scope.String()
	}
	m.stateMutex.Unlock()

	log.Debugf("Preview %s %q", scope, color)
	m.changed()
}

// PreviewBoost shows the persisted config with a transient highlight boost.
func (m *Manager) PreviewBoost(boost float64) {
	m.stateMutex.Lock()
	m.state.Applied = accent.PreviewBoost(m.cfg, boost)
	m.state.Previewing = true
	m.state.Scope = string(accent.SectionHighlights)
	m.stateMutex.Unlock()

	log.Debugf("Preview highlight boost %.2f", boost)
	m.changed()
}

// CancelPreview restores the persisted map exactly.
func (m *Manager) CancelPreview() {
	m.stateMutex.Lock()
	m.state.Applied = m.state.Persisted.Clone()
	m.state.Previewing = false
	m.state.Scope = ""
	m.stateMutex.Unlock()

	m.changed()
}

func (m *Manager) State() State {
	m.stateMutex.RLock()
	defer m.stateMutex.RUnlock()
	return m.state.clone()
}

// Config returns the last loaded config.
func (m *Manager) Config() accent.Config {
	m.stateMutex.RLock()
	defer m.stateMutex.RUnlock()
	return m.cfg.Clone()
}

func (m *Manager) Subscribe(id string) chan State {
	ch := make(chan State, 16)
	m.subMutex.Lock()
	m.subscribers[id] = ch
	m.subMutex.Unlock()
	return ch
}

func (m *Manager) Unsubscribe(id string) {
	m.subMutex.Lock()
	if ch, ok := m.subscribers[id]; ok {
		close(ch)
		delete(m.subscribers, id)
	}
	m.subMutex.Unlock()
}

func (m *Manager) NotifySubscribers() {
	state := m.State()

	m.subMutex.RLock()
	defer m.subMutex.RUnlock()

	for _, ch := range m.subscribers {
		select {
		case ch <- state:
		default:
		}
	}
}

func (m *Manager) changed() {
	m.NotifySubscribers()
	m.scheduleWrite()
}

func (m *Manager) scheduleWrite() {
	m.writeMutex.Lock()
	defer m.writeMutex.Unlock()

	if m.closed {
		return
	}
	m.writePending = true
	if m.writeTimer != nil {
		m.writeTimer.Stop()
	}
	m.writeTimer = time.AfterFunc(m.debounce, func() {
		if err := m.Flush(); err != nil {
			log.Warnf("Failed to apply theme: %v", err)
		}
	})
}

// Flush writes a pending change to the sink now.
func (m *Manager) Flush() error {
	m.writeMutex.Lock()
	defer m.writeMutex.Unlock()

	if m.writeTimer != nil {
		m.writeTimer.Stop()
		m.writeTimer = nil
	}
	if !m.writePending {
		return nil
	}
	m.writePending = false

	applied := m.State().Applied
	if m.lastWritten != nil && maps.Equal(applied, m.lastWritten) {
		log.Debug("Theme unchanged, skipping write")
		return nil
	}
	if err := m.sink.Apply(applied); err != nil {
		m.writePending = true
		return fmt.Errorf("apply theme: %w", err)
	}
	m.lastWritten = applied
	log.Debugf("Applied %d theme keys", len(applied))
	return nil
}

// Close flushes pending writes and closes every subscriber channel.
func (m *Manager) Close() error {
	err := m.Flush()

	m.writeMutex.Lock()
	m.closed = true
	m.writeMutex.Unlock()

	m.subMutex.Lock()
	for _, ch := range m.subscribers {
		close(ch)
	}
	m.subscribers = make(map[string]chan State)
	m.subMutex.Unlock()

	return err
}
