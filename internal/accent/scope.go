package accent

import (
	"strings"
)

type ScopeKind int

const (
	ScopeBase ScopeKind = iota
	ScopeSection
	ScopeGroup
)

// Scope addresses one level of the cascade: the base accent, a section or a
// group. Its string form is "base", "section:<id>" or "group:<id>".
type Scope struct {
	Kind ScopeKind
	ID   string
}

var BaseScope = Scope{Kind: ScopeBase}

func SectionScope(id SectionID) Scope { return Scope{Kind: ScopeSection, ID: string(id)} }

func GroupScope(id GroupID) Scope { return Scope{Kind: ScopeGroup, ID: string(id)} }

// ParseScope accepts "base", "section:<id>" and "group:<id>" with a known id.
func ParseScope(s string) (Scope, bool) {
	s = strings.TrimSpace(s)
	if s == "base" {
		return BaseScope, true
	}
	kind, id, found := strings.Cut(s, ":")
	if !found {
		return Scope{}, false
	}
	switch kind {
	case "section":
		if _, ok := LookupSection(id); ok {
			return SectionScope(SectionID(id)), true
		}
	case "group":
		if _, ok := LookupGroup(id); ok {
			return GroupScope(GroupID(id)), true
		}
	}
	return Scope{}, false
}

func (s Scope) String() string {
	switch s.Kind {
	case ScopeSection:
		return "section:" + s.ID
	case ScopeGroup:
		return "group:" + s.ID
	default:
		return "base"
	}
}

// Label is the display name of the scope.
func (s Scope) Label() string {
	switch s.Kind {
	case ScopeSection:
		if sec, ok := LookupSection(s.ID); ok {
			return sec.Label
		}
	case ScopeGroup:
		if g, ok := LookupGroup(s.ID); ok {
			return g.Label
		}
	}
	return "Base accent"
}

// HistoryKey is the history list the scope records into. The harbormaster
// section and group share one list.
func (s Scope) HistoryKey() string {
	if s.Kind == ScopeBase {
		return HistoryBase
	}
	return s.ID
}

// Groups lists every group whose color is affected by the scope.
func (s Scope) Groups() []Group {
	switch s.Kind {
	case ScopeSection:
		return GroupsIn(SectionID(s.ID))
	case ScopeGroup:
		if g, ok := LookupGroup(s.ID); ok {
			return []Group{g}
		}
		return nil
	default:
		return Groups()
	}
}

// Scopes lists base, then every section followed by its groups, in display
// order.
func Scopes() []Scope {
	out := []Scope{BaseScope}
	for _, sec := range sections {
		out = append(out, SectionScope(sec.ID))
		for _, g := range GroupsIn(sec.ID) {
			out = append(out, GroupScope(g.ID))
		}
	}
	return out
}

// Explicit returns the color stored directly at the scope, if any.
func (c Config) Explicit(s Scope) string {
	switch s.Kind {
	case ScopeSection:
		return c.Sections[SectionID(s.ID)]
	case ScopeGroup:
		return c.Groups[GroupID(s.ID)]
	default:
		return c.Base
	}
}

// Inherits reports whether the scope takes its color from its parent: the
// inherit flag is set or no explicit color exists. Base never inherits.
func (c Config) Inherits(s Scope) bool {
	switch s.Kind {
	case ScopeSection:
		id := SectionID(s.ID)
		return c.SectionInherit[id] || c.Sections[id] == ""
	case ScopeGroup:
		id := GroupID(s.ID)
		return c.GroupInherit[id] || c.Groups[id] == ""
	default:
		return false
	}
}

// InheritFlag reports the stored inherit flag of a section or group scope.
func (c Config) InheritFlag(s Scope) bool {
	switch s.Kind {
	case ScopeSection:
		return c.SectionInherit[SectionID(s.ID)]
	case ScopeGroup:
		return c.GroupInherit[GroupID(s.ID)]
	default:
		return false
	}
}
