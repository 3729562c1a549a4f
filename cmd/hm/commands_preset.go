package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/log"
	"github.com/harbormaster-dev/harbormaster/internal/preset"
	"github.com/harbormaster-dev/harbormaster/internal/tui"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage named accent presets",
	Long:  "Save the current accent cascade under a name and apply it to other workspaces",
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current colors as a preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetSave,
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Replace the current colors with a preset",
	Long:  "Replace the current colors with a preset. The previous colors move to the backup slot.",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetApply,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	Run:   runPresetList,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetDelete,
}

func init() {
	presetCmd.AddCommand(presetSaveCmd, presetApplyCmd, presetListCmd, presetDeleteCmd)
}

func presetStore() *preset.Store {
	return preset.NewStore(fs, settings.PresetsFile)
}

func runPresetSave(cmd *cobra.Command, args []string) {
	cfg := readConfig(openProject())
	if err := presetStore().Save(args[0], cfg); err != nil {
		log.Fatalf("Error saving preset: %v", err)
	}
	fmt.Printf("Saved preset %s\n", args[0])
}

func runPresetApply(cmd *cobra.Command, args []string) {
	p, err := presetStore().Get(args[0])
	if errors.Is(err, preset.ErrNotFound) {
		log.Fatalf("No preset named %s (see hm preset list)", args[0])
	}
	if err != nil {
		log.Fatalf("Error reading preset: %v", err)
	}
	editAccent(func(c accent.Config) accent.Config { return accent.ApplyPreset(c, p) })
	fmt.Printf("Applied preset %s (hm accent swap restores the previous colors)\n", args[0])
}

func runPresetList(cmd *cobra.Command, args []string) {
	store := presetStore()
	names, err := store.List()
	if err != nil {
		log.Fatalf("Error reading presets: %v", err)
	}
	if len(names) == 0 {
		fmt.Println("No presets saved")
		return
	}
	for _, name := range names {
		p, err := store.Get(name)
		if err != nil {
			log.Warnf("Skipping preset %s: %v", name, err)
			continue
		}
		fmt.Printf("%-24s %s\n", name, tui.Swatch(p.Base))
	}
}

func runPresetDelete(cmd *cobra.Command, args []string) {
	if err := presetStore().Delete(args[0]); err != nil {
		if errors.Is(err, preset.ErrNotFound) {
			log.Fatalf("No preset named %s", args[0])
		}
		log.Fatalf("Error deleting preset: %v", err)
	}
	fmt.Printf("Deleted preset %s\n", args[0])
}
