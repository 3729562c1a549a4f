package accent

import (
	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

// Preview composes a transient color for one scope onto the last persisted
// map. Every editor group under the scope is rebuilt from color with
// overrides ignored, so the peeked region stands out. An absent or invalid
// color returns a copy of persisted.
func Preview(persisted ThemeMap, s Scope, color string) ThemeMap {
	out := persisted.Clone()
	hex, ok := colormath.Normalize(color)
	if !ok {
		return out
	}
	for _, g := range s.Groups() {
		if g.ID == GroupHarbormaster {
			continue
		}
		for _, key := range g.Keys() {
			delete(out, key)
		}
		for k, v := range Build(g, hex, nil) {
			out[k] = v
		}
	}
	return out
}

// PreviewBoost resolves the config with a transient highlight boost.
func PreviewBoost(c Config, boost float64) ThemeMap {
	return BuildThemeMap(SetHighlightBoost(c, boost))
}

// PeekColor is the flash color shown while a scope is peeked.
func PeekColor(c Config, s Scope) string {
	var color string
	switch s.Kind {
	case ScopeSection:
		color = c.SectionColor(SectionID(s.ID))
	case ScopeGroup:
		color = c.Effective(GroupID(s.ID))
	}
	if color == "" {
		color = c.Base
	}
	if color == "" {
		return colormath.White
	}
	return colormath.Invert(color)
}
