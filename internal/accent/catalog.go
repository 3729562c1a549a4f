package accent

import (
	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

type SectionID string

type GroupID string

const (
	SectionWindow       SectionID = "window"
	SectionHighlights   SectionID = "highlights"
	SectionHarbormaster SectionID = "harbormaster"
	SectionOther        SectionID = "other"
)

const (
	GroupTitleBar      GroupID = "titleBar"
	GroupActivityBar   GroupID = "activityBar"
	GroupTabs          GroupID = "tabs"
	GroupStatusBar     GroupID = "statusBar"
	GroupSidebar       GroupID = "sidebar"
	GroupPanel         GroupID = "panel"
	GroupEditor        GroupID = "editor"
	GroupLists         GroupID = "lists"
	GroupButtons       GroupID = "buttons"
	GroupBadges        GroupID = "badges"
	GroupNotifications GroupID = "notifications"
	GroupHarbormaster  GroupID = "harbormaster"
)

type Section struct {
	ID    SectionID
	Label string
}

// KeyRecipe derives one theme key from a group's effective color.
type KeyRecipe struct {
	Key    string
	Derive func(color string) string
}

type Group struct {
	ID      GroupID
	Label   string
	Section SectionID
	Recipes []KeyRecipe
}

// Keys lists the theme keys owned by the group in recipe order.
func (g Group) Keys() []string {
	keys := make([]string, len(g.Recipes))
	for i, r := range g.Recipes {
		keys[i] = r.Key
	}
	return keys
}

func raw(c string) string { return c }

func fg(c string) string { return colormath.Contrast(c) }

func alpha(a float64) func(string) string {
	return func(c string) string { return colormath.ApplyAlpha(c, a) }
}

func fgAlpha(a float64) func(string) string {
	return func(c string) string { return colormath.ApplyAlpha(colormath.Contrast(c), a) }
}

func darken(f float64) func(string) string {
	return func(c string) string { return colormath.Darken(c, f) }
}

func darkenFg(f float64) func(string) string {
	return func(c string) string { return colormath.Contrast(colormath.Darken(c, f)) }
}

var sections = []Section{
	{ID: SectionWindow, Label: "Window"},
	{ID: SectionHighlights, Label: "Highlights"},
	{ID: SectionHarbormaster, Label: "Harbormaster"},
	{ID: SectionOther, Label: "Other"},
}

var groups = []Group{
	{ID: GroupTitleBar, Label: "Title bar", Section: SectionWindow, Recipes: []KeyRecipe{
		{"titleBar.activeBackground", raw},
		{"titleBar.activeForeground", fg},
		{"titleBar.inactiveBackground", alpha(0.6)},
		{"titleBar.inactiveForeground", fgAlpha(0.7)},
		{"titleBar.border", raw},
	}},
	{ID: GroupActivityBar, Label: "Activity bar", Section: SectionWindow, Recipes: []KeyRecipe{
		{"activityBar.background", raw},
		{"activityBar.foreground", fg},
		{"activityBar.inactiveForeground", fgAlpha(0.6)},
		{"activityBar.activeBorder", fg},
	}},
	{ID: GroupTabs, Label: "Tabs", Section: SectionWindow, Recipes: []KeyRecipe{
		{"tab.activeBackground", raw},
		{"tab.activeForeground", fg},
		{"tab.activeBorder", fg},
		{"tab.inactiveBackground", alpha(0.5)},
		{"tab.inactiveForeground", fgAlpha(0.6)},
		{"editorGroupHeader.tabsBackground", alpha(0.35)},
	}},
	{ID: GroupStatusBar, Label: "Status bar", Section: SectionWindow, Recipes: []KeyRecipe{
		{"statusBar.background", darken(0.65)},
		{"statusBar.foreground", darkenFg(0.65)},
		{"statusBar.noFolderBackground", darken(0.65)},
		{"statusBar.debuggingBackground", raw},
		{"statusBar.debuggingForeground", fg},
		{"statusBarItem.hoverBackground", alpha(0.85)},
	}},
	{ID: GroupSidebar, Label: "Side bar", Section: SectionWindow, Recipes: []KeyRecipe{
		{"sideBar.background", alpha(0.12)},
		{"sideBar.border", alpha(0.35)},
		{"sideBarTitle.foreground", raw},
		{"sideBarSectionHeader.background", alpha(0.25)},
		{"sideBarSectionHeader.border", alpha(0.35)},
	}},
	{ID: GroupPanel, Label: "Panel", Section: SectionWindow, Recipes: []KeyRecipe{
		{"panel.background", alpha(0.08)},
		{"panel.border", raw},
		{"panelTitle.activeBorder", raw},
		{"panelTitle.activeForeground", raw},
	}},
	{ID: GroupEditor, Label: "Editor", Section: SectionHighlights, Recipes: []KeyRecipe{
		{"editor.selectionBackground", alpha(0.35)},
		{"editor.inactiveSelectionBackground", alpha(0.2)},
		{"editor.lineHighlightBackground", alpha(0.08)},
		{"editorCursor.foreground", raw},
	}},
	{ID: GroupLists, Label: "Lists", Section: SectionHighlights, Recipes: []KeyRecipe{
		{"list.activeSelectionBackground", alpha(0.45)},
		{"list.inactiveSelectionBackground", alpha(0.3)},
		{"list.hoverBackground", alpha(0.2)},
		{"list.highlightForeground", raw},
		{"list.focusOutline", raw},
	}},
	{ID: GroupButtons, Label: "Buttons", Section: SectionHighlights, Recipes: []KeyRecipe{
		{"button.background", raw},
		{"button.foreground", fg},
		{"button.hoverBackground", darken(0.85)},
	}},
	{ID: GroupBadges, Label: "Badges", Section: SectionHighlights, Recipes: []KeyRecipe{
		{"badge.background", raw},
		{"badge.foreground", fg},
		{"activityBarBadge.background", raw},
		{"activityBarBadge.foreground", fg},
	}},
	{ID: GroupNotifications, Label: "Notifications", Section: SectionOther, Recipes: []KeyRecipe{
		{"notifications.background", darken(0.85)},
		{"notifications.foreground", darkenFg(0.85)},
		{"notifications.border", raw},
		{"notificationCenterHeader.background", raw},
		{"notificationCenterHeader.foreground", fg},
		{"notificationToast.border", raw},
	}},
	{ID: GroupHarbormaster, Label: "Harbormaster UI", Section: SectionHarbormaster, Recipes: []KeyRecipe{
		{"harbormaster.panelBackground", alpha(0.2)},
		{"harbormaster.cardBackground", alpha(0.12)},
		{"harbormaster.border", alpha(0.35)},
		{"harbormaster.accent", raw},
		{"harbormaster.text", fg},
		{"harbormaster.buttonBackground", alpha(0.25)},
		{"harbormaster.buttonHover", alpha(0.35)},
		{"harbormaster.pillBackground", alpha(0.25)},
	}},
}

var (
	sectionIndex = make(map[SectionID]Section, len(sections))
	groupIndex   = make(map[GroupID]Group, len(groups))
	keyOwner     = make(map[string]GroupID)
)

func init() {
	for _, s := range sections {
		sectionIndex[s.ID] = s
	}
	for _, g := range groups {
		groupIndex[g.ID] = g
		for _, r := range g.Recipes {
			if owner, dup := keyOwner[r.Key]; dup {
				panic("accent: theme key " + r.Key + " owned by both " + string(owner) + " and " + string(g.ID))
			}
			keyOwner[r.Key] = g.ID
		}
	}
}

// Sections returns the fixed sections in display order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Groups returns the fixed groups in display order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// GroupsIn returns the groups belonging to a section in display order.
func GroupsIn(id SectionID) []Group {
	var out []Group
	for _, g := range groups {
		if g.Section == id {
			out = append(out, g)
		}
	}
	return out
}

func LookupSection(id string) (Section, bool) {
	s, ok := sectionIndex[SectionID(id)]
	return s, ok
}

func LookupGroup(id string) (Group, bool) {
	g, ok := groupIndex[GroupID(id)]
	return g, ok
}

// OwnerOf reports which group owns a theme key.
func OwnerOf(key string) (GroupID, bool) {
	g, ok := keyOwner[key]
	return g, ok
}

// IsThemeKey reports whether key belongs to any group.
func IsThemeKey(key string) bool {
	_, ok := keyOwner[key]
	return ok
}

// AllKeys lists every theme key of every group, harbormaster chrome included.
func AllKeys() []string {
	var out []string
	for _, g := range groups {
		out = append(out, g.Keys()...)
	}
	return out
}

// EditorKeys lists the keys that end up in the editor's color customizations.
func EditorKeys() []string {
	var out []string
	for _, g := range groups {
		if g.ID == GroupHarbormaster {
			continue
		}
		out = append(out, g.Keys()...)
	}
	return out
}
