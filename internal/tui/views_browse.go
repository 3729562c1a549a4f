package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
)

const boostStep = 0.05

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Harbormaster Accent"))
	b.WriteString("\n")

	for i, s := range m.scopes {
		b.WriteString(m.renderScopeLine(i, s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Normal.Render(fmt.Sprintf("Highlight boost: %.2f", m.cfg.Boost())))
	if m.cfg.HighlightBoost == nil {
		b.WriteString(m.styles.Subtle.Render(" (default)"))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "↑/↓ move • e edit • c clear • i inherit • p peek • +/- boost • s swap • X clear all • q quit"
	b.WriteString(m.styles.Subtle.Render(help))
	return b.String()
}

func (m Model) renderScopeLine(i int, s accent.Scope) string {
	indent := ""
	labelStyle := m.styles.Normal
	switch s.Kind {
	case accent.ScopeSection:
		indent = "  "
		labelStyle = m.styles.Section
	case accent.ScopeGroup:
		indent = "    "
	}

	cursor := "  "
	if i == m.cursor {
		cursor = "> "
		labelStyle = m.styles.Selected
	}

	var color, note string
	switch s.Kind {
	case accent.ScopeBase:
		color = m.cfg.Base
	case accent.ScopeSection:
		color = m.cfg.SectionColor(accent.SectionID(s.ID))
	case accent.ScopeGroup:
		color = m.cfg.Effective(accent.GroupID(s.ID))
	}
	if s.Kind != accent.ScopeBase && m.cfg.Inherits(s) {
		note = "inherit"
		if m.cfg.InheritFlag(s) && m.cfg.Explicit(s) != "" {
			note = "inherit, own " + m.cfg.Explicit(s) + " kept"
		}
	}

	line := fmt.Sprintf("%s%s%-18s %s", cursor, indent, labelStyle.Render(s.Label()), Swatch(color))
	if note != "" {
		line += " " + m.styles.Subtle.Render(note)
	}
	return line
}

func (m Model) updateBrowseState(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	scope := m.selected()
	switch keyMsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scopes)-1 {
			m.cursor++
		}
	case "e", "enter":
		m.status = ""
		m.hexInput.SetValue(m.cfg.Explicit(scope))
		m.hexInput.CursorEnd()
		m.hexInput.Focus()
		m.state = StateEditHex
		return m, nil
	case "c":
		return m, m.edit("Cleared "+scope.Label()+".", func(c accent.Config) accent.Config {
			return accent.Clear(c, scope)
		})
	case "i":
		if scope.Kind == accent.ScopeBase {
			return m, nil
		}
		inherit := !m.cfg.InheritFlag(scope)
		return m, m.edit(fmt.Sprintf("%s inherit: %v.", scope.Label(), inherit), func(c accent.Config) accent.Config {
			return accent.SetInherit(c, scope, inherit)
		})
	case "p":
		m.manager.Preview(scope, accent.PeekColor(m.cfg, scope))
		m.state = StatePeek
	case "+", "=":
		boost := m.cfg.Boost() + boostStep
		return m, m.edit(fmt.Sprintf("Highlight boost %.2f.", boost), func(c accent.Config) accent.Config {
			return accent.SetHighlightBoost(c, boost)
		})
	case "-":
		boost := m.cfg.Boost() - boostStep
		return m, m.edit(fmt.Sprintf("Highlight boost %.2f.", boost), func(c accent.Config) accent.Config {
			return accent.SetHighlightBoost(c, boost)
		})
	case "s":
		return m, m.swap()
	case "X":
		m.state = StateConfirmClearAll
	}
	return m, nil
}
