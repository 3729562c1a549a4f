package accent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEndToEnd(t *testing.T) {
	m := Compute(map[string]any{FieldBase: "#336699"})

	assert.Equal(t, "#336699", m["titleBar.activeBackground"])
	assert.Equal(t, "#FFFFFF", m["titleBar.activeForeground"])
	assert.Equal(t, "#33669999", m["titleBar.inactiveBackground"])
	assert.Equal(t, "#214263", m["statusBar.background"])
	assert.Equal(t, "#FFFFFF", m["statusBar.foreground"])
	assert.Equal(t, "#336699", m["statusBar.debuggingBackground"])
	assert.Equal(t, "#336699D9", m["statusBarItem.hoverBackground"])

	assert.Len(t, m, len(EditorKeys()))
	for k := range m {
		assert.False(t, strings.HasPrefix(k, "harbormaster."), k)
	}
}

func TestBuildRecipes(t *testing.T) {
	editor, ok := LookupGroup(string(GroupEditor))
	require.True(t, ok)

	got := Build(editor, "#336699", nil)
	assert.Equal(t, ThemeMap{
		"editor.selectionBackground":         "#33669959",
		"editor.inactiveSelectionBackground": "#33669933",
		"editor.lineHighlightBackground":     "#33669914",
		"editorCursor.foreground":            "#336699",
	}, got)
}

func TestBuildOverridesWin(t *testing.T) {
	titleBar, _ := LookupGroup(string(GroupTitleBar))
	overrides := map[string]string{
		"titleBar.activeBackground": "#FF0000",
		"statusBar.background":      "#00FF00",
	}

	got := Build(titleBar, "#336699", overrides)
	assert.Equal(t, "#FF0000", got["titleBar.activeBackground"])
	assert.Equal(t, "#FFFFFF", got["titleBar.activeForeground"])
	assert.NotContains(t, got, "statusBar.background")
	assert.Len(t, got, len(titleBar.Recipes))
}

func TestBuildWithoutColor(t *testing.T) {
	statusBar, _ := LookupGroup(string(GroupStatusBar))

	assert.Empty(t, Build(statusBar, "", nil))
	assert.Equal(t,
		ThemeMap{"statusBar.background": "#FF0000"},
		Build(statusBar, "", map[string]string{"statusBar.background": "#FF0000"}),
	)
}

func TestBuildThemeMapLoneOverride(t *testing.T) {
	cfg := SetOverride(NewConfig(), "panel.border", "#abc")
	assert.Equal(t, ThemeMap{"panel.border": "#AABBCC"}, BuildThemeMap(cfg))
}

func TestBuildThemeMapOmitsUnsetGroups(t *testing.T) {
	cfg := SetGroup(NewConfig(), GroupBadges, "#000000")
	m := BuildThemeMap(cfg)
	assert.Equal(t, ThemeMap{
		"badge.background":            "#000000",
		"badge.foreground":            "#FFFFFF",
		"activityBarBadge.background": "#000000",
		"activityBarBadge.foreground": "#FFFFFF",
	}, m)
}

func TestBuildChrome(t *testing.T) {
	cfg := Normalize(map[string]any{FieldBase: "#336699"})
	chrome := BuildChrome(cfg)

	assert.Equal(t, "#336699", chrome["harbormaster.accent"])
	assert.Equal(t, "#33669933", chrome["harbormaster.panelBackground"])
	assert.Equal(t, "#FFFFFF", chrome["harbormaster.text"])
	assert.Len(t, chrome, 8)
	assert.Empty(t, BuildChrome(NewConfig()))
}

func TestCatalogKeysAreDisjoint(t *testing.T) {
	seen := map[string]GroupID{}
	for _, g := range Groups() {
		_, ok := LookupSection(string(g.Section))
		assert.True(t, ok, "group %s has unknown section %s", g.ID, g.Section)
		for _, k := range g.Keys() {
			prev, dup := seen[k]
			assert.False(t, dup, "key %s in %s and %s", k, prev, g.ID)
			seen[k] = g.ID
		}
	}
	assert.Len(t, AllKeys(), len(seen))
	assert.Len(t, EditorKeys(), len(seen)-len(GroupsIn(SectionHarbormaster)[0].Recipes))
}

func TestDiffRemovesStaleKeys(t *testing.T) {
	prev := Compute(map[string]any{FieldBase: "#336699"})
	next := Compute(map[string]any{FieldGroups: map[string]any{"titleBar": "#336699"}})

	set, removed := Diff(prev, next)
	assert.Empty(t, set)
	assert.Len(t, removed, len(prev)-len(next))
	assert.NotContains(t, removed, "titleBar.activeBackground")
	assert.Contains(t, removed, "statusBar.background")
	assert.IsIncreasing(t, removed)

	set, removed = Diff(next, prev)
	assert.Empty(t, removed)
	assert.Len(t, set, len(prev)-len(next))
}

func TestComputeIsIdempotent(t *testing.T) {
	raw := Flatten(sampleConfig())
	assert.Equal(t, Compute(raw), Compute(raw))
}
