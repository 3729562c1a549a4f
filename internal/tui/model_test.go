package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	mocks_theme "github.com/harbormaster-dev/harbormaster/internal/mocks/theme"
	"github.com/harbormaster-dev/harbormaster/internal/project"
	"github.com/harbormaster-dev/harbormaster/internal/theme"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, raw map[string]any) (Model, *project.Store, *theme.Manager) {
	t.Helper()

	fs := afero.NewMemMapFs()
	store := project.NewStore(fs, "/work", ".harbormaster.json", ".vscode/harbormaster.json")
	if raw != nil {
		require.NoError(t, store.Write(raw))
	}

	sink := mocks_theme.NewMockSink(t)
	sink.EXPECT().Apply(mock.Anything).Return(nil).Maybe()
	manager := theme.NewManager(sink, time.Hour)

	m, err := NewModel(store, manager)
	require.NoError(t, err)
	m.hexInput.Cursor.SetMode(cursor.CursorStatic)
	return m, store, manager
}

// send feeds msg through Update and resolves any save command it returns.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if saved, ok := cmd().(savedMsg); ok {
			next, _ = m.Update(saved)
			m = next.(Model)
		}
	}
	return m
}

func TestNewModelLoadsProject(t *testing.T) {
	m, _, manager := newTestModel(t, map[string]any{accent.FieldBase: "#336699"})

	assert.Equal(t, StateBrowse, m.state)
	assert.Equal(t, "#336699", m.cfg.Base)
	assert.Equal(t, "#336699", manager.State().Applied["titleBar.activeBackground"])
	assert.Contains(t, m.View(), "Base accent")
}

func TestBrowseNavigation(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m = send(t, m, keys("k"))
	assert.Equal(t, 0, m.cursor)

	m = send(t, m, keys("j"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor)

	for i := 0; i < len(m.scopes)+5; i++ {
		m = send(t, m, keys("j"))
	}
	assert.Equal(t, len(m.scopes)-1, m.cursor)
}

func TestEditHexPreviewsAndSaves(t *testing.T) {
	m, store, manager := newTestModel(t, nil)

	m = send(t, m, keys("e"))
	require.Equal(t, StateEditHex, m.state)

	m = send(t, m, keys("#abc"))
	assert.Equal(t, "#abc", m.hexInput.Value())
	state := manager.State()
	assert.True(t, state.Previewing)
	assert.Equal(t, "#AABBCC", state.Applied["titleBar.activeBackground"])

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateBrowse, m.state)
	assert.Equal(t, "#AABBCC", m.cfg.Base)
	assert.False(t, manager.State().Previewing)

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "#AABBCC", raw[accent.FieldBase])
	assert.Equal(t, []string{"#AABBCC"}, accent.Normalize(raw).History[accent.HistoryBase])
}

func TestEditHexRejectsInvalid(t *testing.T) {
	m, store, manager := newTestModel(t, nil)

	m = send(t, m, keys("e"))
	m = send(t, m, keys("#12"))
	assert.False(t, manager.State().Previewing)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateEditHex, m.state)
	assert.Equal(t, invalidHexMessage, m.status)

	exists, err := store.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEditHexEscCancelsPreview(t *testing.T) {
	m, _, manager := newTestModel(t, map[string]any{accent.FieldBase: "#336699"})

	m = send(t, m, keys("e"))
	assert.Equal(t, "#336699", m.hexInput.Value())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = send(t, m, keys("00"))
	assert.True(t, manager.State().Previewing)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateBrowse, m.state)
	assert.False(t, manager.State().Previewing)
	assert.Equal(t, "#336699", m.cfg.Base)
}

func TestToggleInheritOnGroup(t *testing.T) {
	m, store, _ := newTestModel(t, map[string]any{accent.FieldBase: "#336699"})

	for i, s := range m.scopes {
		if s == accent.GroupScope(accent.GroupTitleBar) {
			m.cursor = i
		}
	}

	m = send(t, m, keys("i"))
	assert.True(t, m.cfg.GroupInherit[accent.GroupTitleBar])

	m = send(t, m, keys("i"))
	assert.False(t, m.cfg.GroupInherit[accent.GroupTitleBar])

	raw, err := store.Read()
	require.NoError(t, err)
	assert.NotContains(t, raw, accent.FieldGroupInherit)
}

func TestInheritIgnoredOnBase(t *testing.T) {
	m, store, _ := newTestModel(t, nil)

	m = send(t, m, keys("i"))
	exists, err := store.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPeekRestoresOnAnyKey(t *testing.T) {
	m, _, manager := newTestModel(t, map[string]any{accent.FieldBase: "#336699"})

	m = send(t, m, keys("p"))
	assert.Equal(t, StatePeek, m.state)
	state := manager.State()
	assert.True(t, state.Previewing)
	assert.Equal(t, "#CC9966", state.Applied["titleBar.activeBackground"])

	m = send(t, m, keys("x"))
	assert.Equal(t, StateBrowse, m.state)
	assert.False(t, manager.State().Previewing)
}

func TestClearAllAndSwap(t *testing.T) {
	m, _, _ := newTestModel(t, map[string]any{accent.FieldBase: "#336699"})

	m = send(t, m, keys("X"))
	require.Equal(t, StateConfirmClearAll, m.state)
	m = send(t, m, keys("y"))
	assert.Equal(t, StateBrowse, m.state)
	assert.Empty(t, m.cfg.Base)
	require.NotNil(t, m.cfg.Backup)

	m = send(t, m, keys("s"))
	assert.Equal(t, "#336699", m.cfg.Base)
	assert.Equal(t, "Swapped with backup.", m.status)
}

func TestConfirmClearAllCancels(t *testing.T) {
	m, _, _ := newTestModel(t, map[string]any{accent.FieldBase: "#336699"})

	m = send(t, m, keys("X"))
	m = send(t, m, keys("n"))
	assert.Equal(t, StateBrowse, m.state)
	assert.Equal(t, "#336699", m.cfg.Base)
}

func TestSwapWithoutBackup(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m = send(t, m, keys("s"))
	assert.Equal(t, "No color backup available yet.", m.status)
}

func TestBoostKeys(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m = send(t, m, keys("+"))
	require.NotNil(t, m.cfg.HighlightBoost)
	assert.InDelta(t, 0.20, *m.cfg.HighlightBoost, 1e-9)

	for i := 0; i < 10; i++ {
		m = send(t, m, keys("+"))
	}
	assert.InDelta(t, accent.MaxHighlightBoost, *m.cfg.HighlightBoost, 1e-9)
}

func TestSaveErrorShowsErrorState(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	next, _ := m.Update(savedMsg{err: errors.New("disk full")})
	m = next.(Model)
	assert.Equal(t, StateError, m.state)
	assert.Contains(t, m.View(), "disk full")

	m = send(t, m, keys("x"))
	assert.Equal(t, StateBrowse, m.state)
}
