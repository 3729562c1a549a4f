package theme

import (
	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

// DefaultEditorBackground is what translucent colors are composited over
// when the caller has nothing better.
const DefaultEditorBackground = "#1E1E1E"

type ContrastPair struct {
	Group      accent.GroupID
	Foreground string
	Background string
	FgColor    string
	BgColor    string
	Ratio      float64
	Pass       bool
}

var contrastPairs = []struct {
	group  accent.GroupID
	fg, bg string
}{
	{accent.GroupTitleBar, "titleBar.activeForeground", "titleBar.activeBackground"},
	{accent.GroupTitleBar, "titleBar.inactiveForeground", "titleBar.inactiveBackground"},
	{accent.GroupActivityBar, "activityBar.foreground", "activityBar.background"},
	{accent.GroupTabs, "tab.activeForeground", "tab.activeBackground"},
	{accent.GroupStatusBar, "statusBar.foreground", "statusBar.background"},
	{accent.GroupStatusBar, "statusBar.debuggingForeground", "statusBar.debuggingBackground"},
	{accent.GroupButtons, "button.foreground", "button.background"},
	{accent.GroupBadges, "badge.foreground", "badge.background"},
	{accent.GroupBadges, "activityBarBadge.foreground", "activityBarBadge.background"},
	{accent.GroupNotifications, "notifications.foreground", "notifications.background"},
	{accent.GroupNotifications, "notificationCenterHeader.foreground", "notificationCenterHeader.background"},
	{accent.GroupHarbormaster, "harbormaster.text", "harbormaster.accent"},
}

// ContrastReport computes the WCAG contrast ratio of every foreground and
// background pair present in colors. Translucent backgrounds are composited
// over editorBg first, translucent foregrounds over the result. A pair passes
// when its ratio reaches threshold.
func ContrastReport(colors accent.ThemeMap, editorBg string, threshold float64) []ContrastPair {
	under, ok := colormath.Normalize(editorBg)
	if !ok {
		under = DefaultEditorBackground
	}

	var out []ContrastPair
	for _, p := range contrastPairs {
		fg, okFg := colors[p.fg]
		bg, okBg := colors[p.bg]
		if !okFg || !okBg {
			continue
		}
		solidBg := colormath.Blend(bg, under)
		solidFg := colormath.Blend(fg, solidBg)
		ratio := colormath.ContrastRatio(solidFg, solidBg)
		out = append(out, ContrastPair{
			Group:      p.group,
			Foreground: p.fg,
			Background: p.bg,
			FgColor:    solidFg,
			BgColor:    solidBg,
			Ratio:      ratio,
			Pass:       ratio >= threshold,
		})
	}
	return out
}

// Failing filters a report down to the pairs below the threshold.
func Failing(report []ContrastPair) []ContrastPair {
	var out []ContrastPair
	for _, p := range report {
		if !p.Pass {
			out = append(out, p)
		}
	}
	return out
}
