package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/colormath"
	"github.com/harbormaster-dev/harbormaster/internal/config"
	"github.com/harbormaster-dev/harbormaster/internal/log"
	"github.com/harbormaster-dev/harbormaster/internal/project"
	"github.com/harbormaster-dev/harbormaster/internal/theme"
)

var Version = "dev"

const invalidHexMessage = "Invalid hex color. Use #RRGGBB or #RGB."

var (
	fs         = afero.NewOsFs()
	settings   = config.Default()
	dirFlag    string
	configFlag string
	levelFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "hm",
	Short: "Harbormaster accent theme tool",
	Long:  "Harbormaster tints the VS Code workbench of a project with a cascade of accent colors",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if levelFlag != "" {
			if err := log.SetLevel(levelFlag); err != nil {
				log.Fatalf("Invalid log level: %v", err)
			}
		}
		loaded, err := config.Load(fs, configFlag)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		settings = loaded
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hm %s\n", Version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the hm configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  "Write a commented default configuration to ~/.config/harbormaster/config.yaml (or --config)",
	Run:   runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Run:   runConfigShow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Workspace directory (defaults to the current directory)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the hm config file")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "", "Log level: debug, info, warn, error")

	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(versionCmd, configCmd, accentCmd, presetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		log.Fatalf("Cannot determine the config path, pass --config")
	}
	if err := config.Init(fs, path); err != nil {
		log.Fatalf("Error writing config: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	fmt.Printf("project_file:        %s\n", settings.ProjectFile)
	fmt.Printf("legacy_project_file: %s\n", settings.LegacyProjectFile)
	fmt.Printf("settings_file:       %s\n", settings.SettingsFile)
	fmt.Printf("presets_file:        %s\n", settings.PresetsFile)
	fmt.Printf("preview_debounce:    %s\n", settings.PreviewDebounce)
	fmt.Printf("min_contrast:        %.1f\n", settings.MinContrast)
	fmt.Printf("dev_tools:           %v\n", settings.DevTools)
}

func workspaceDir() string {
	if dirFlag != "" {
		abs, err := filepath.Abs(dirFlag)
		if err != nil {
			log.Fatalf("Invalid --dir: %v", err)
		}
		return abs
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}
	return wd
}

// openProject locates the workspace root and migrates a legacy project file.
func openProject() *project.Store {
	root, err := project.FindRoot(workspaceDir())
	if err != nil {
		log.Fatalf("Error locating workspace: %v", err)
	}
	store := project.NewStore(fs, root, settings.ProjectFile, settings.LegacyProjectFile)
	migrated, err := store.MigrateLegacy()
	if err != nil {
		log.Fatalf("Error migrating legacy project file: %v", err)
	}
	if migrated {
		log.Infof("Moved %s to %s", settings.LegacyProjectFile, store.Path())
	}
	return store
}

func readConfig(store *project.Store) accent.Config {
	raw, err := store.Read()
	if err != nil {
		log.Fatalf("Error reading %s: %v", store.Path(), err)
	}
	return accent.Normalize(raw)
}

func settingsSink(store *project.Store) *theme.SettingsSink {
	return theme.NewSettingsSink(fs, filepath.Join(store.Root(), settings.SettingsFile))
}

// applyTheme writes the resolved theme of cfg into the workspace settings.
func applyTheme(store *project.Store, cfg accent.Config) {
	manager := theme.NewManager(settingsSink(store), settings.PreviewDebounce)
	manager.Load(cfg)
	if err := manager.Close(); err != nil {
		log.Fatalf("Error applying theme: %v", err)
	}
}

// editAccent persists op, applies the resulting theme and returns the new
// config.
func editAccent(op func(accent.Config) accent.Config) accent.Config {
	store := openProject()
	raw, err := store.Update(func(raw map[string]any) map[string]any {
		return accent.Edit(raw, op)
	})
	if err != nil {
		log.Fatalf("Error saving %s: %v", store.Path(), err)
	}
	cfg := accent.Normalize(raw)
	applyTheme(store, cfg)
	return cfg
}

func mustHex(s string) string {
	hex, ok := colormath.Normalize(s)
	if !ok {
		log.Fatalf(invalidHexMessage)
	}
	return hex
}
