package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
)

func findPair(report []ContrastPair, fg string) (ContrastPair, bool) {
	for _, p := range report {
		if p.Foreground == fg {
			return p, true
		}
	}
	return ContrastPair{}, false
}

func TestContrastReportPassing(t *testing.T) {
	colors := accent.Compute(map[string]any{accent.FieldBase: "#336699"})
	report := ContrastReport(colors, DefaultEditorBackground, 4.5)

	p, ok := findPair(report, "titleBar.activeForeground")
	require.True(t, ok)
	assert.Equal(t, accent.GroupTitleBar, p.Group)
	assert.Equal(t, "#FFFFFF", p.FgColor)
	assert.Equal(t, "#336699", p.BgColor)
	assert.InDelta(t, 6.0, p.Ratio, 0.1)
	assert.True(t, p.Pass)

	_, ok = findPair(report, "harbormaster.text")
	assert.False(t, ok, "chrome keys are not part of the editor map")
}

func TestContrastReportFlagsLowContrast(t *testing.T) {
	colors := accent.Compute(map[string]any{accent.FieldBase: "#777777"})
	report := ContrastReport(colors, DefaultEditorBackground, 4.5)

	p, ok := findPair(report, "titleBar.activeForeground")
	require.True(t, ok)
	assert.InDelta(t, 4.48, p.Ratio, 0.01)
	assert.False(t, p.Pass)
	assert.Contains(t, Failing(report), p)
}

func TestContrastReportCompositesTranslucent(t *testing.T) {
	colors := accent.ThemeMap{
		"titleBar.inactiveForeground": "#FFFFFFB3",
		"titleBar.inactiveBackground": "#33669999",
	}
	report := ContrastReport(colors, "#000000", 4.5)
	require.Len(t, report, 1)

	p := report[0]
	assert.Equal(t, "#1F3D5C", p.BgColor)
	assert.True(t, p.Ratio > 1)
}

func TestContrastReportSkipsIncompletePairs(t *testing.T) {
	report := ContrastReport(accent.ThemeMap{"badge.background": "#000000"}, "bogus", 4.5)
	assert.Empty(t, report)
}
