package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/log"
	"github.com/harbormaster-dev/harbormaster/internal/theme"
)

const invalidHexMessage = "Invalid hex color. Use #RRGGBB or #RGB."

// Persister reads and rewrites the raw project object.
type Persister interface {
	Read() (map[string]any, error)
	Update(fn func(map[string]any) map[string]any) (map[string]any, error)
}

type savedMsg struct {
	raw    map[string]any
	status string
	err    error
}

type Model struct {
	state  ApplicationState
	styles Styles

	store   Persister
	manager *theme.Manager

	cfg    accent.Config
	scopes []accent.Scope
	cursor int

	hexInput textinput.Model
	status   string
	err      error

	width  int
	height int
}

func NewModel(store Persister, manager *theme.Manager) (Model, error) {
	raw, err := store.Read()
	if err != nil {
		return Model{}, fmt.Errorf("read project: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "#RRGGBB"
	input.CharLimit = 7
	input.Width = 10

	m := Model{
		state:    StateBrowse,
		styles:   NewStyles(),
		store:    store,
		manager:  manager,
		cfg:      accent.Normalize(raw),
		scopes:   accent.Scopes(),
		hexInput: input,
	}
	manager.Load(m.cfg)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.manager.CancelPreview()
			return m, tea.Quit
		}
	case savedMsg:
		return m.handleSaved(msg)
	}

	switch m.state {
	case StateBrowse:
		return m.updateBrowseState(msg)
	case StateEditHex:
		return m.updateEditHexState(msg)
	case StatePeek:
		return m.updatePeekState(msg)
	case StateConfirmClearAll:
		return m.updateConfirmClearAllState(msg)
	case StateError:
		return m.updateErrorState(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case StateEditHex:
		return m.viewEditHex()
	case StatePeek:
		return m.viewPeek()
	case StateConfirmClearAll:
		return m.viewConfirmClearAll()
	case StateError:
		return m.viewError()
	default:
		return m.viewBrowse()
	}
}

func (m Model) selected() accent.Scope {
	return m.scopes[m.cursor]
}

// edit persists op and reloads the theme from the result.
func (m Model) edit(status string, op func(accent.Config) accent.Config) tea.Cmd {
	return func() tea.Msg {
		raw, err := m.store.Update(func(raw map[string]any) map[string]any {
			return accent.Edit(raw, op)
		})
		return savedMsg{raw: raw, status: status, err: err}
	}
}

func (m Model) swap() tea.Cmd {
	return func() tea.Msg {
		swapped := true
		raw, err := m.store.Update(func(raw map[string]any) map[string]any {
			next, ok := accent.SwapBackupRaw(raw)
			swapped = ok
			return next
		})
		if err == nil && !swapped {
			return savedMsg{raw: raw, status: "No color backup available yet."}
		}
		return savedMsg{raw: raw, status: "Swapped with backup.", err: err}
	}
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Errorf("Failed to save accent: %v", msg.err)
		m.err = msg.err
		m.state = StateError
		return m, nil
	}
	m.cfg = accent.Normalize(msg.raw)
	m.manager.Load(m.cfg)
	m.status = msg.status
	return m, nil
}
