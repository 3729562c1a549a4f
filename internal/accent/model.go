package accent

import (
	"encoding/json"
	"math"

	"github.com/harbormaster-dev/harbormaster/internal/colormath"
	"golang.org/x/exp/slices"
)

// Raw field names of the persisted project object.
const (
	FieldBase           = "window_accent"
	FieldSections       = "window_accent_sections"
	FieldGroups         = "window_accent_groups"
	FieldSectionInherit = "window_accent_sections_inherit"
	FieldGroupInherit   = "window_accent_groups_inherit"
	FieldOverrides      = "window_accent_overrides"
	FieldHistory        = "window_accent_history"
	FieldHighlightBoost = "window_accent_highlight_boost"
	FieldBackup         = "window_accent_backup"
)

// Fields lists every raw field owned by the cascade.
var Fields = []string{
	FieldBase,
	FieldSections,
	FieldGroups,
	FieldSectionInherit,
	FieldGroupInherit,
	FieldOverrides,
	FieldHistory,
	FieldHighlightBoost,
	FieldBackup,
}

const (
	DefaultHighlightBoost = 0.15
	MaxHighlightBoost     = 0.4
)

// Config is the typed cascade state. Colors are canonical #RRGGBB strings and
// "" means absent. Maps are never nil after Normalize or any mutation, and
// never hold empty values.
type Config struct {
	Base           string
	Sections       map[SectionID]string
	Groups         map[GroupID]string
	SectionInherit map[SectionID]bool
	GroupInherit   map[GroupID]bool
	Overrides      map[string]string
	History        map[string][]string
	HighlightBoost *float64
	Backup         *Config
}

// NewConfig returns an empty config with allocated maps.
func NewConfig() Config {
	return Config{
		Sections:       map[SectionID]string{},
		Groups:         map[GroupID]string{},
		SectionInherit: map[SectionID]bool{},
		GroupInherit:   map[GroupID]bool{},
		Overrides:      map[string]string{},
		History:        map[string][]string{},
	}
}

// Normalize builds a Config from an untyped project object. Anything that
// does not validate is dropped.
func Normalize(raw map[string]any) Config {
	cfg := normalizeForeground(raw)
	if b, ok := raw[FieldBackup].(map[string]any); ok {
		snap := normalizeForeground(b)
		if !snap.IsEmpty() {
			cfg.Backup = &snap
		}
	}
	return cfg
}

func normalizeForeground(raw map[string]any) Config {
	cfg := NewConfig()
	if raw == nil {
		return cfg
	}
	cfg.Base = normalizeColorValue(raw[FieldBase])

	if m, ok := raw[FieldSections].(map[string]any); ok {
		for _, s := range sections {
			if c := normalizeColorValue(m[string(s.ID)]); c != "" {
				cfg.Sections[s.ID] = c
			}
		}
	}
	if m, ok := raw[FieldGroups].(map[string]any); ok {
		for _, g := range groups {
			if c := normalizeColorValue(m[string(g.ID)]); c != "" {
				cfg.Groups[g.ID] = c
			}
		}
	}
	if m, ok := raw[FieldSectionInherit].(map[string]any); ok {
		for _, s := range sections {
			if v, ok := m[string(s.ID)].(bool); ok && v {
				cfg.SectionInherit[s.ID] = true
			}
		}
	}
	if m, ok := raw[FieldGroupInherit].(map[string]any); ok {
		for _, g := range groups {
			if v, ok := m[string(g.ID)].(bool); ok && v {
				cfg.GroupInherit[g.ID] = true
			}
		}
	}
	if m, ok := raw[FieldOverrides].(map[string]any); ok {
		for key, v := range m {
			if !IsThemeKey(key) {
				continue
			}
			if c := normalizeColorValue(v); c != "" {
				cfg.Overrides[key] = c
			}
		}
	}
	if m, ok := raw[FieldHistory].(map[string]any); ok {
		for _, key := range HistoryKeys() {
			if list := normalizeHistoryList(m[key]); len(list) > 0 {
				cfg.History[key] = list
			}
		}
	}
	if boost, ok := normalizeBoost(raw[FieldHighlightBoost]); ok {
		cfg.HighlightBoost = &boost
	}
	return cfg
}

func normalizeColorValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	c, _ := colormath.Normalize(s)
	return c
}

func normalizeHistoryList(v any) []string {
	var items []any
	switch list := v.(type) {
	case []any:
		items = list
	case []string:
		items = make([]any, len(list))
		for i, s := range list {
			items[i] = s
		}
	default:
		return nil
	}

	var out []string
	for _, item := range items {
		if len(out) == MaxHistory {
			break
		}
		c := normalizeColorValue(item)
		if c == "" || slices.Contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func normalizeBoost(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return clampBoost(f), true
}

func clampBoost(f float64) float64 {
	return math.Max(0, math.Min(MaxHighlightBoost, f))
}

// Boost returns the effective highlight boost.
func (c Config) Boost() float64 {
	if c.HighlightBoost == nil {
		return DefaultHighlightBoost
	}
	return *c.HighlightBoost
}

// IsEmpty reports whether the foreground state carries nothing. Backup is
// not considered.
func (c Config) IsEmpty() bool {
	return c.Base == "" &&
		len(c.Sections) == 0 &&
		len(c.Groups) == 0 &&
		len(c.SectionInherit) == 0 &&
		len(c.GroupInherit) == 0 &&
		len(c.Overrides) == 0 &&
		len(c.History) == 0 &&
		c.HighlightBoost == nil
}

// Snapshot returns a deep copy of the foreground state without its backup.
func (c Config) Snapshot() Config {
	out := c.Clone()
	out.Backup = nil
	return out
}

// Clone returns a deep copy. Nil maps come back allocated.
func (c Config) Clone() Config {
	out := NewConfig()
	out.Base = c.Base
	for k, v := range c.Sections {
		out.Sections[k] = v
	}
	for k, v := range c.Groups {
		out.Groups[k] = v
	}
	for k, v := range c.SectionInherit {
		if v {
			out.SectionInherit[k] = true
		}
	}
	for k, v := range c.GroupInherit {
		if v {
			out.GroupInherit[k] = true
		}
	}
	for k, v := range c.Overrides {
		out.Overrides[k] = v
	}
	for k, v := range c.History {
		out.History[k] = append([]string(nil), v...)
	}
	if c.HighlightBoost != nil {
		b := *c.HighlightBoost
		out.HighlightBoost = &b
	}
	if c.Backup != nil {
		b := c.Backup.Clone()
		b.Backup = nil
		out.Backup = &b
	}
	return out
}

// Flatten writes the config back into plain JSON-compatible fields. Empty
// collections and absent scalars are omitted.
func Flatten(c Config) map[string]any {
	out := flattenForeground(c)
	if c.Backup != nil && !c.Backup.IsEmpty() {
		out[FieldBackup] = flattenForeground(*c.Backup)
	}
	return out
}

func flattenForeground(c Config) map[string]any {
	out := map[string]any{}
	if c.Base != "" {
		out[FieldBase] = c.Base
	}
	if len(c.Sections) > 0 {
		m := make(map[string]any, len(c.Sections))
		for k, v := range c.Sections {
			m[string(k)] = v
		}
		out[FieldSections] = m
	}
	if len(c.Groups) > 0 {
		m := make(map[string]any, len(c.Groups))
		for k, v := range c.Groups {
			m[string(k)] = v
		}
		out[FieldGroups] = m
	}
	if m := flattenFlags(c.SectionInherit); len(m) > 0 {
		out[FieldSectionInherit] = m
	}
	if m := flattenFlags(c.GroupInherit); len(m) > 0 {
		out[FieldGroupInherit] = m
	}
	if len(c.Overrides) > 0 {
		m := make(map[string]any, len(c.Overrides))
		for k, v := range c.Overrides {
			m[k] = v
		}
		out[FieldOverrides] = m
	}
	if len(c.History) > 0 {
		m := make(map[string]any, len(c.History))
		for k, list := range c.History {
			if len(list) == 0 {
				continue
			}
			items := make([]any, len(list))
			for i, v := range list {
				items[i] = v
			}
			m[k] = items
		}
		if len(m) > 0 {
			out[FieldHistory] = m
		}
	}
	if c.HighlightBoost != nil {
		out[FieldHighlightBoost] = *c.HighlightBoost
	}
	return out
}

func flattenFlags[K ~string](flags map[K]bool) map[string]any {
	m := map[string]any{}
	for k, v := range flags {
		if v {
			m[string(k)] = true
		}
	}
	return m
}
