package accent

import (
	"strings"
)

// cssVars maps each harbormaster key to the webview custom properties it
// feeds, in emission order.
var cssVars = []struct {
	key  string
	vars []string
}{
	{"harbormaster.panelBackground", []string{"--vscode-sideBar-background", "--vscode-editor-background", "--hm-panel-bg"}},
	{"harbormaster.cardBackground", []string{"--vscode-sideBarSectionHeader-background", "--vscode-editorWidget-background", "--hm-card-bg"}},
	{"harbormaster.border", []string{"--vscode-input-border", "--hm-border"}},
	{"harbormaster.accent", []string{"--vscode-button-background", "--vscode-activityBarBadge-background", "--hm-accent"}},
	{"harbormaster.text", []string{"--vscode-foreground", "--vscode-button-foreground", "--vscode-button-secondaryForeground", "--vscode-badge-foreground", "--hm-text"}},
	{"harbormaster.buttonBackground", []string{"--vscode-button-secondaryBackground", "--hm-button-bg"}},
	{"harbormaster.buttonHover", []string{"--vscode-button-hoverBackground", "--hm-button-hover"}},
	{"harbormaster.pillBackground", []string{"--vscode-badge-background", "--hm-pill-bg"}},
}

// ChromeCSS renders the harbormaster keys of chrome as a :root block. It
// returns "" when no key is set.
func ChromeCSS(chrome ThemeMap) string {
	var entries []string
	for _, cv := range cssVars {
		v, ok := chrome[cv.key]
		if !ok || v == "" {
			continue
		}
		for _, name := range cv.vars {
			entries = append(entries, name+": "+v+";")
		}
	}
	if len(entries) == 0 {
		return ""
	}
	return ":root { " + strings.Join(entries, " ") + " }"
}
