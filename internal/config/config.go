package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	configDir   = ".config/harbormaster"
	configFile  = "config.yaml"
	presetsFile = "presets.yaml"

	EnvProjectFile = "HM_PROJECT_FILE"
	EnvPresetsFile = "HM_PRESETS_FILE"
	EnvDevTools    = "HARBORMASTER_DEV_TOOLS"
)

type Settings struct {
	ProjectFile       string
	LegacyProjectFile string
	SettingsFile      string
	PresetsFile       string
	PreviewDebounce   time.Duration
	MinContrast       float64
	DevTools          bool
}

// rawSettings is the YAML intermediary; pointer fields tell "unset" from zero.
type rawSettings struct {
	ProjectFile       string   `yaml:"project_file"`
	LegacyProjectFile string   `yaml:"legacy_project_file"`
	SettingsFile      string   `yaml:"settings_file"`
	PresetsFile       string   `yaml:"presets_file"`
	PreviewDebounce   string   `yaml:"preview_debounce"`
	MinContrast       *float64 `yaml:"min_contrast"`
	DevTools          *bool    `yaml:"dev_tools"`
}

func Default() *Settings {
	return &Settings{
		ProjectFile:       filepath.Join(".harbormaster", "project.json"),
		LegacyProjectFile: ".project.json",
		SettingsFile:      filepath.Join(".vscode", "settings.json"),
		PresetsFile:       defaultPresetsPath(),
		PreviewDebounce:   150 * time.Millisecond,
		MinContrast:       4.5,
	}
}

// DefaultPath is ~/.config/harbormaster/config.yaml, or "" without a home.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

func defaultPresetsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return presetsFile
	}
	return filepath.Join(home, configDir, presetsFile)
}

// Load reads settings from path on fs, overlays the environment and returns
// the result. A missing file yields defaults. An empty path uses DefaultPath.
func Load(fs afero.Fs, path string) (*Settings, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		data, err := afero.ReadFile(fs, path)
		switch {
		case err == nil:
			var raw rawSettings
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			if err := merge(cfg, &raw); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func merge(cfg *Settings, raw *rawSettings) error {
	if raw.ProjectFile != "" {
		cfg.ProjectFile = raw.ProjectFile
	}
	if raw.LegacyProjectFile != "" {
		cfg.LegacyProjectFile = raw.LegacyProjectFile
	}
	if raw.SettingsFile != "" {
		cfg.SettingsFile = raw.SettingsFile
	}
	if raw.PresetsFile != "" {
		cfg.PresetsFile = ExpandPath(raw.PresetsFile)
	}
	if raw.PreviewDebounce != "" {
		d, err := time.ParseDuration(raw.PreviewDebounce)
		if err != nil {
			return fmt.Errorf("preview_debounce: %w", err)
		}
		cfg.PreviewDebounce = d
	}
	if raw.MinContrast != nil {
		cfg.MinContrast = *raw.MinContrast
	}
	if raw.DevTools != nil {
		cfg.DevTools = *raw.DevTools
	}
	return nil
}

func applyEnv(cfg *Settings) {
	if v := strings.TrimSpace(os.Getenv(EnvProjectFile)); v != "" {
		cfg.ProjectFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPresetsFile)); v != "" {
		cfg.PresetsFile = ExpandPath(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDevTools)); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.DevTools = on
		}
	}
}

func (s *Settings) Validate() error {
	if s.ProjectFile == "" {
		return fmt.Errorf("project_file must not be empty")
	}
	if filepath.IsAbs(s.ProjectFile) {
		return fmt.Errorf("project_file must be relative to the workspace: %s", s.ProjectFile)
	}
	if s.PreviewDebounce < 0 {
		return fmt.Errorf("preview_debounce must not be negative: %s", s.PreviewDebounce)
	}
	if s.MinContrast < 1 || s.MinContrast > 21 {
		return fmt.Errorf("min_contrast must be within [1, 21]: %v", s.MinContrast)
	}
	return nil
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Init writes DefaultConfigYAML to path unless a file already exists there.
func Init(fs afero.Fs, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if exists, err := afero.Exists(fs, path); err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	} else if exists {
		return fmt.Errorf("%s already exists", path)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	return afero.WriteFile(fs, path, []byte(DefaultConfigYAML), 0o644)
}
