package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

func (m Model) viewEditHex() string {
	var b strings.Builder
	scope := m.selected()

	b.WriteString(m.styles.Title.Render("Edit " + scope.Label()))
	b.WriteString("\n")
	b.WriteString(m.hexInput.View())
	b.WriteString("  ")
	if hex, ok := colormath.Normalize(m.hexInput.Value()); ok {
		b.WriteString(Swatch(hex))
	}
	b.WriteString("\n\n")

	if history := m.cfg.History[scope.HistoryKey()]; len(history) > 0 {
		b.WriteString(m.styles.Subtle.Render("Recent: "))
		for _, c := range history {
			b.WriteString(Swatch(c))
			b.WriteString(" ")
		}
		b.WriteString("\n\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Subtle.Render("Enter to apply, empty to clear, Esc to cancel"))
	return b.String()
}

func (m Model) updateEditHexState(msg tea.Msg) (tea.Model, tea.Cmd) {
	scope := m.selected()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.hexInput.Blur()
			m.manager.CancelPreview()
			m.status = ""
			m.state = StateBrowse
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.hexInput.Value())
			hex, valid := colormath.Normalize(value)
			if value != "" && !valid {
				m.status = invalidHexMessage
				return m, nil
			}
			m.hexInput.Blur()
			m.state = StateBrowse
			status := "Applied " + hex + " to " + scope.Label() + "."
			if hex == "" {
				status = "Cleared " + scope.Label() + "."
			}
			return m, m.edit(status, func(c accent.Config) accent.Config {
				return accent.Apply(c, scope, hex)
			})
		}
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	m.status = ""
	if hex, ok := colormath.Normalize(m.hexInput.Value()); ok {
		m.manager.Preview(scope, hex)
	} else {
		m.manager.CancelPreview()
	}
	return m, cmd
}
