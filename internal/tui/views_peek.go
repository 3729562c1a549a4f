package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
)

func (m Model) viewPeek() string {
	var b strings.Builder
	scope := m.selected()

	b.WriteString(m.styles.Title.Render("Peeking " + scope.Label()))
	b.WriteString("\n")
	b.WriteString(m.styles.Normal.Render("Regions driven by this scope are flashing "))
	b.WriteString(Swatch(accent.PeekColor(m.cfg, scope)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtle.Render("Press any key to restore"))
	return b.String()
}

func (m Model) updatePeekState(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.manager.CancelPreview()
		m.state = StateBrowse
	}
	return m, nil
}

func (m Model) viewConfirmClearAll() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Clear all accent colors?"))
	b.WriteString("\n")
	b.WriteString(m.styles.Normal.Render("The current colors move to the backup slot; press s later to swap them back."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtle.Render("y clear everything • b keep base • any other key cancels"))
	return b.String()
}

func (m Model) updateConfirmClearAllState(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.state = StateBrowse
	switch keyMsg.String() {
	case "y":
		return m, m.edit("Cleared all accent colors.", accent.ClearAll)
	case "b":
		return m, m.edit("Cleared all accent colors except base.", accent.ClearAllButBase)
	}
	return m, nil
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(m.styles.Error.Render("Error"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(m.styles.Normal.Render(m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Subtle.Render("Press any key to go back, q to quit"))
	return b.String()
}

func (m Model) updateErrorState(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "q" {
		return m, tea.Quit
	}
	m.err = nil
	m.state = StateBrowse
	return m, nil
}
