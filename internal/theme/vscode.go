package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tailscale/hujson"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/colormath"
	"github.com/harbormaster-dev/harbormaster/internal/log"
)

const colorCustomizationsKey = "workbench.colorCustomizations"

// SettingsSink applies theme maps to the workbench.colorCustomizations object
// of a VS Code settings file. Only keys the cascade owns are touched.
type SettingsSink struct {
	fs   afero.Fs
	path string
	keys []string
}

func NewSettingsSink(fs afero.Fs, path string) *SettingsSink {
	return &SettingsSink{fs: fs, path: path, keys: accent.EditorKeys()}
}

func (s *SettingsSink) Path() string { return s.path }

func (s *SettingsSink) read() (map[string]interface{}, bool, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{}, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", s.path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return map[string]interface{}{}, true, nil
	}

	// settings.json is JSONC: comments and trailing commas are allowed.
	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if !bytes.Equal(bytes.TrimSpace(standard), bytes.TrimSpace(data)) {
		log.Warnf("Comments and trailing commas in %s are not preserved when colors are written", s.path)
	}

	var settings map[string]interface{}
	if err := json.Unmarshal(standard, &settings); err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if settings == nil {
		settings = map[string]interface{}{}
	}
	return settings, true, nil
}

func (s *SettingsSink) Apply(colors accent.ThemeMap) error {
	settings, existed, err := s.read()
	if err != nil {
		return err
	}

	customizations, ok := settings[colorCustomizationsKey].(map[string]interface{})
	if !ok {
		customizations = make(map[string]interface{})
	}
	for _, key := range s.keys {
		delete(customizations, key)
	}
	for key, value := range colors {
		customizations[key] = value
	}

	if len(customizations) == 0 {
		delete(settings, colorCustomizationsKey)
	} else {
		settings[colorCustomizationsKey] = customizations
	}

	if !existed && len(settings) == 0 {
		return nil
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(s.path), err)
	}
	if err := afero.WriteFile(s.fs, s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	log.Debugf("Wrote %d color customizations to %s", len(colors), s.path)
	return nil
}

// Current returns the cascade-owned keys presently in the settings file.
func (s *SettingsSink) Current() (accent.ThemeMap, error) {
	settings, _, err := s.read()
	if err != nil {
		return nil, err
	}
	out := accent.ThemeMap{}
	customizations, ok := settings[colorCustomizationsKey].(map[string]interface{})
	if !ok {
		return out, nil
	}
	for _, key := range s.keys {
		if v, ok := customizations[key].(string); ok {
			out[key] = v
		}
	}
	return out, nil
}

type VSCodeTheme struct {
	Schema               string            `json:"$schema"`
	Name                 string            `json:"name"`
	Type                 string            `json:"type"`
	Colors               map[string]string `json:"colors"`
	SemanticHighlighting bool              `json:"semanticHighlighting"`
}

// ExportColorTheme renders colors as a standalone VS Code color theme. The
// theme type follows the title bar background.
func ExportColorTheme(name string, colors accent.ThemeMap) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("theme name must not be empty")
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("no accent colors to export")
	}

	theme := VSCodeTheme{
		Schema:               "vscode://schemas/color-theme",
		Name:                 name,
		Type:                 "dark",
		Colors:               colors.Clone(),
		SemanticHighlighting: true,
	}
	if isLight(colors) {
		theme.Type = "light"
	}
	return json.MarshalIndent(theme, "", "  ")
}

func isLight(colors accent.ThemeMap) bool {
	for _, key := range []string{"titleBar.activeBackground", "activityBar.background", "tab.activeBackground"} {
		bg, ok := colors[key]
		if !ok || !colormath.IsOpaque(bg) {
			continue
		}
		return colormath.Luma(bg)/255.0 > 0.5
	}
	return false
}
