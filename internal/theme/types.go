package theme

import (
	"sync"
	"time"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
)

// Sink applies a complete theme map to the editor. Keys missing from colors
// must be removed from whatever the sink applied before.
type Sink interface {
	Apply(colors accent.ThemeMap) error
}

type State struct {
	Persisted  accent.ThemeMap `json:"persisted"`
	Applied    accent.ThemeMap `json:"applied"`
	Previewing bool            `json:"previewing"`
	Scope      string          `json:"scope,omitempty"`
}

func (s State) clone() State {
	s.Persisted = s.Persisted.Clone()
	s.Applied = s.Applied.Clone()
	return s
}

// Manager owns the persisted and applied theme maps. Previews compose on the
// persisted map; every change is written to the sink after a debounce.
type Manager struct {
	sink     Sink
	debounce time.Duration

	stateMutex sync.RWMutex
	state      State
	cfg        accent.Config

	subscribers map[string]chan State
	subMutex    sync.RWMutex

	writeMutex   sync.Mutex
	writeTimer   *time.Timer
	writePending bool
	lastWritten  accent.ThemeMap
	closed       bool
}
