package accent

import (
	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

// SectionColor returns the color a section hands down to its groups. An
// inheriting section passes the base accent along, vivid-boosted for
// highlights.
func (c Config) SectionColor(id SectionID) string {
	if c.Inherits(SectionScope(id)) {
		return c.boosted(id, c.Base)
	}
	return c.Sections[id]
}

func (c Config) boosted(id SectionID, color string) string {
	if color == "" || id != SectionHighlights {
		return color
	}
	return colormath.VividBoost(color, c.Boost())
}

// Effective returns the resolved color of a group, or "" when nothing in the
// chain from base to group carries one.
func (c Config) Effective(id GroupID) string {
	g, ok := groupIndex[id]
	if !ok {
		return ""
	}
	sectionColor := c.SectionColor(g.Section)

	groupColor := c.Groups[id]
	if c.Inherits(GroupScope(id)) {
		groupColor = sectionColor
	}

	switch {
	case groupColor != "":
		return groupColor
	case sectionColor != "":
		return sectionColor
	default:
		return c.Base
	}
}

// Resolve returns the effective color of every group that has one,
// harbormaster chrome included.
func Resolve(c Config) map[GroupID]string {
	out := make(map[GroupID]string, len(groups))
	for _, g := range groups {
		if color := c.Effective(g.ID); color != "" {
			out[g.ID] = color
		}
	}
	return out
}
