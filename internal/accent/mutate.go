package accent

import (
	"math"

	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

// Every mutation takes a config by value and returns a new one; the input is
// never modified. A color that does not normalize clears the target.

func SetBase(c Config, color string) Config {
	out := c.Clone()
	hex, ok := colormath.Normalize(color)
	if !ok {
		out.Base = ""
		return out
	}
	out.Base = hex
	out.History = Record(out.History, HistoryBase, hex)
	return out
}

// SetSection stores an explicit section color and drops the section's inherit
// flag so the new color takes effect. Clearing drops both.
func SetSection(c Config, id SectionID, color string) Config {
	out := c.Clone()
	if _, known := sectionIndex[id]; !known {
		return out
	}
	delete(out.SectionInherit, id)
	hex, ok := colormath.Normalize(color)
	if !ok {
		delete(out.Sections, id)
		return out
	}
	out.Sections[id] = hex
	out.History = Record(out.History, string(id), hex)
	return out
}

// SetGroup mirrors SetSection for a group.
func SetGroup(c Config, id GroupID, color string) Config {
	out := c.Clone()
	if _, known := groupIndex[id]; !known {
		return out
	}
	delete(out.GroupInherit, id)
	hex, ok := colormath.Normalize(color)
	if !ok {
		delete(out.Groups, id)
		return out
	}
	out.Groups[id] = hex
	out.History = Record(out.History, string(id), hex)
	return out
}

// SetOverride pins a single theme key. Unknown keys are ignored.
func SetOverride(c Config, key, color string) Config {
	out := c.Clone()
	if !IsThemeKey(key) {
		return out
	}
	hex, ok := colormath.Normalize(color)
	if !ok {
		delete(out.Overrides, key)
		return out
	}
	out.Overrides[key] = hex
	return out
}

func SetSectionInherit(c Config, id SectionID, inherit bool) Config {
	out := c.Clone()
	if _, known := sectionIndex[id]; !known {
		return out
	}
	if inherit {
		out.SectionInherit[id] = true
	} else {
		delete(out.SectionInherit, id)
	}
	return out
}

func SetGroupInherit(c Config, id GroupID, inherit bool) Config {
	out := c.Clone()
	if _, known := groupIndex[id]; !known {
		return out
	}
	if inherit {
		out.GroupInherit[id] = true
	} else {
		delete(out.GroupInherit, id)
	}
	return out
}

// SetHighlightBoost stores the boost clamped to [0, MaxHighlightBoost]. NaN
// and infinities clear it.
func SetHighlightBoost(c Config, boost float64) Config {
	out := c.Clone()
	if math.IsNaN(boost) || math.IsInf(boost, 0) {
		out.HighlightBoost = nil
		return out
	}
	v := clampBoost(boost)
	out.HighlightBoost = &v
	return out
}

func ClearHighlightBoost(c Config) Config {
	out := c.Clone()
	out.HighlightBoost = nil
	return out
}

// ClearAll snapshots the foreground into the backup slot, then drops every
// color, flag, override and history entry. The highlight boost is kept.
func ClearAll(c Config) Config {
	return clearForeground(c, "")
}

// ClearAllButBase is ClearAll that keeps the base accent.
func ClearAllButBase(c Config) Config {
	return clearForeground(c, c.Base)
}

func clearForeground(c Config, keepBase string) Config {
	out := NewConfig()
	out.Base = keepBase
	if c.HighlightBoost != nil {
		b := *c.HighlightBoost
		out.HighlightBoost = &b
	}
	out.Backup = backupFor(c)
	return out
}

// SwapBackup exchanges the foreground with the backup snapshot. It reports
// false and returns an unchanged copy when no backup exists.
func SwapBackup(c Config) (Config, bool) {
	if c.Backup == nil || c.Backup.IsEmpty() {
		return c.Clone(), false
	}
	out := c.Backup.Clone()
	out.Backup = snapshotOrNil(c)
	return out, true
}

func snapshotOrNil(c Config) *Config {
	snap := c.Snapshot()
	if snap.IsEmpty() {
		return nil
	}
	return &snap
}

// backupFor is the backup slot after replacing the foreground of c. A
// foreground holding nothing but the highlight boost leaves the existing
// backup in place, so clearing twice keeps the first backup.
func backupFor(c Config) *Config {
	colors := c.Snapshot()
	colors.HighlightBoost = nil
	if !colors.IsEmpty() {
		snap := c.Snapshot()
		return &snap
	}
	if c.Backup == nil || c.Backup.IsEmpty() {
		return nil
	}
	kept := c.Backup.Snapshot()
	return &kept
}

// Apply stores color at the scope, recording it in history.
func Apply(c Config, s Scope, color string) Config {
	switch s.Kind {
	case ScopeSection:
		return SetSection(c, SectionID(s.ID), color)
	case ScopeGroup:
		return SetGroup(c, GroupID(s.ID), color)
	default:
		return SetBase(c, color)
	}
}

// Clear removes the explicit color at the scope.
func Clear(c Config, s Scope) Config {
	return Apply(c, s, "")
}

// SetInherit sets the inherit flag of a section or group scope. Base has no
// flag and is returned unchanged.
func SetInherit(c Config, s Scope, inherit bool) Config {
	switch s.Kind {
	case ScopeSection:
		return SetSectionInherit(c, SectionID(s.ID), inherit)
	case ScopeGroup:
		return SetGroupInherit(c, GroupID(s.ID), inherit)
	default:
		return c.Clone()
	}
}

// Edit applies a typed mutation to a raw project object. Fields outside the
// cascade are carried over untouched; cascade fields are rewritten from the
// result, so stale ones disappear.
func Edit(raw map[string]any, op func(Config) Config) map[string]any {
	return merge(raw, op(Normalize(raw)))
}

// SwapBackupRaw is SwapBackup on a raw project object.
func SwapBackupRaw(raw map[string]any) (map[string]any, bool) {
	next, ok := SwapBackup(Normalize(raw))
	if !ok {
		return cloneRaw(raw), false
	}
	return merge(raw, next), true
}

func merge(raw map[string]any, c Config) map[string]any {
	out := cloneRaw(raw)
	for _, f := range Fields {
		delete(out, f)
	}
	for k, v := range Flatten(c) {
		out[k] = v
	}
	return out
}

func cloneRaw(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	return out
}
