package accent

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ThemeMap maps theme keys to #RRGGBB or #RRGGBBAA values.
type ThemeMap map[string]string

func (m ThemeMap) Clone() ThemeMap {
	out := make(ThemeMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SortedKeys returns the keys in lexical order.
func (m ThemeMap) SortedKeys() []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Build expands a group color into the group's theme keys. With no color only
// keys carrying an override are returned. Overrides always win.
func Build(g Group, color string, overrides map[string]string) ThemeMap {
	out := ThemeMap{}
	for _, r := range g.Recipes {
		if v, ok := overrides[r.Key]; ok && v != "" {
			out[r.Key] = v
			continue
		}
		if color != "" {
			out[r.Key] = r.Derive(color)
		}
	}
	return out
}

// BuildThemeMap resolves the config into the flat map applied to the editor.
// The harbormaster group is left out; see BuildChrome.
func BuildThemeMap(c Config) ThemeMap {
	out := ThemeMap{}
	for _, g := range groups {
		if g.ID == GroupHarbormaster {
			continue
		}
		maps.Copy(out, Build(g, c.Effective(g.ID), c.Overrides))
	}
	return out
}

// BuildChrome resolves the harbormaster UI group on its own.
func BuildChrome(c Config) ThemeMap {
	g := groupIndex[GroupHarbormaster]
	return Build(g, c.Effective(g.ID), c.Overrides)
}

// Compute is the forward pipeline from a raw project object to the editor map.
func Compute(raw map[string]any) ThemeMap {
	return BuildThemeMap(Normalize(raw))
}

// Diff reports what changes between two applied maps: keys to set and keys
// that must be removed because next no longer carries them.
func Diff(prev, next ThemeMap) (set ThemeMap, removed []string) {
	set = ThemeMap{}
	for k, v := range next {
		if prev[k] != v {
			set[k] = v
		}
	}
	for k := range prev {
		if _, ok := next[k]; !ok {
			removed = append(removed, k)
		}
	}
	slices.Sort(removed)
	return set, removed
}
