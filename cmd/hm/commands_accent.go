package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/config"
	"github.com/harbormaster-dev/harbormaster/internal/log"
	"github.com/harbormaster-dev/harbormaster/internal/theme"
	"github.com/harbormaster-dev/harbormaster/internal/tui"
)

var subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565F89"))

var accentCmd = &cobra.Command{
	Use:   "accent",
	Short: "Manage the accent color cascade",
	Long:  "Set, clear and inspect the base, section, group and per-key accent colors of the workspace",
}

var accentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the accent cascade",
	Args:  cobra.NoArgs,
	Run:   runAccentShow,
}

var accentSetBaseCmd = &cobra.Command{
	Use:   "set-base <hex_color>",
	Short: "Set the base accent color",
	Args:  cobra.ExactArgs(1),
	Run:   runAccentSetBase,
}

var accentClearBaseCmd = &cobra.Command{
	Use:   "clear-base",
	Short: "Clear the base accent color",
	Args:  cobra.NoArgs,
	Run:   runAccentClearBase,
}

var accentSetSectionCmd = &cobra.Command{
	Use:   "set-section <section> <hex_color>",
	Short: "Set a section color",
	Long:  "Set the color of a section (window, highlights, harbormaster, other). Clears the section's inherit flag.",
	Args:  cobra.ExactArgs(2),
	Run:   runAccentSetSection,
}

var accentClearSectionCmd = &cobra.Command{
	Use:   "clear-section <section>",
	Short: "Clear a section color",
	Args:  cobra.ExactArgs(1),
	Run:   runAccentClearSection,
}

var accentSetGroupCmd = &cobra.Command{
	Use:   "set-group <group> <hex_color>",
	Short: "Set a group color",
	Long:  "Set the color of a group (titleBar, tabs, statusBar, ...). Clears the group's inherit flag.",
	Args:  cobra.ExactArgs(2),
	Run:   runAccentSetGroup,
}

var accentClearGroupCmd = &cobra.Command{
	Use:   "clear-group <group>",
	Short: "Clear a group color",
	Args:  cobra.ExactArgs(1),
	Run:   runAccentClearGroup,
}

var accentSetOverrideCmd = &cobra.Command{
	Use:   "set-override <theme_key> <hex_color>",
	Short: "Pin a single theme key",
	Args:  cobra.ExactArgs(2),
	Run:   runAccentSetOverride,
}

var accentClearOverrideCmd = &cobra.Command{
	Use:   "clear-override <theme_key>",
	Short: "Remove a theme key override",
	Args:  cobra.ExactArgs(1),
	Run:   runAccentClearOverride,
}

var accentInheritSectionCmd = &cobra.Command{
	Use:   "inherit-section <section>",
	Short: "Make a section inherit the base color",
	Args:  cobra.ExactArgs(1),
	Run:   runAccentInheritSection,
}

var accentInheritGroupCmd = &cobra.Command{
	Use:   "inherit-group <group>",
	Short: "Make a group inherit its section color",
	Args:  cobra.ExactArgs(1),
	Run:   runAccentInheritGroup,
}

var accentBoostCmd = &cobra.Command{
	Use:   "boost [amount|default]",
	Short: "Show or set the highlight boost",
	Long:  "Show or set the vividness boost applied to an inheriting highlights section (0 to 0.4, default 0.15)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runAccentBoost,
}

var accentClearAllCmd = &cobra.Command{
	Use:   "clear-all",
	Short: "Clear every accent color, keeping a backup",
	Args:  cobra.NoArgs,
	Run:   runAccentClearAll,
}

var accentClearAllButBaseCmd = &cobra.Command{
	Use:   "clear-all-but-base",
	Short: "Clear every accent color except the base, keeping a backup",
	Args:  cobra.NoArgs,
	Run:   runAccentClearAllButBase,
}

var accentSwapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Swap the current colors with the backup",
	Args:  cobra.NoArgs,
	Run:   runAccentSwap,
}

var accentHistoryCmd = &cobra.Command{
	Use:   "history [scope]",
	Short: "Show recently used colors",
	Long:  "Show recently used colors for every scope, or for one scope (base, section:<id>, group:<id>)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runAccentHistory,
}

var accentApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Write the resolved theme into the workspace settings",
	Args:  cobra.NoArgs,
	Run:   runAccentApply,
}

var accentPreviewCmd = &cobra.Command{
	Use:   "preview <scope> <hex_color>",
	Short: "Preview a color on a scope without saving it",
	Long:  "Apply a color to a scope (base, section:<id>, group:<id>) for a while, then restore the saved theme",
	Args:  cobra.ExactArgs(2),
	Run:   runAccentPreview,
}

var accentExportCmd = &cobra.Command{
	Use:   "export <theme_name>",
	Short: "Export the resolved colors as a VS Code color theme",
	Args:  cobra.ExactArgs(1),
	Run:   runAccentExport,
}

var accentChromeCmd = &cobra.Command{
	Use:   "chrome",
	Short: "Print the harbormaster panel CSS variables",
	Args:  cobra.NoArgs,
	Run:   runAccentChrome,
}

var accentContrastCmd = &cobra.Command{
	Use:   "contrast",
	Short: "Check text contrast of the resolved theme",
	Args:  cobra.NoArgs,
	Run:   runAccentContrast,
}

var accentEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the accent cascade interactively",
	Args:  cobra.NoArgs,
	Run:   runAccentEdit,
}

var accentWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-apply the theme whenever the project file changes",
	Args:  cobra.NoArgs,
	Run:   runAccentWatch,
}

var accentKeysCmd = &cobra.Command{
	Use:    "keys",
	Short:  "List every theme key and the group that owns it",
	Hidden: true,
	Args:   cobra.NoArgs,
	Run:    runAccentKeys,
}

func init() {
	accentInheritSectionCmd.Flags().Bool("off", false, "Stop inheriting")
	accentInheritGroupCmd.Flags().Bool("off", false, "Stop inheriting")
	accentPreviewCmd.Flags().Duration("for", 3*time.Second, "How long to keep the preview")
	accentExportCmd.Flags().StringP("output", "o", "", "Write the theme to a file instead of stdout")
	accentContrastCmd.Flags().String("background", theme.DefaultEditorBackground, "Editor background translucent colors are composited over")
	accentContrastCmd.Flags().Bool("failing", false, "Only list pairs below the threshold")

	accentCmd.AddCommand(
		accentShowCmd,
		accentSetBaseCmd,
		accentClearBaseCmd,
		accentSetSectionCmd,
		accentClearSectionCmd,
		accentSetGroupCmd,
		accentClearGroupCmd,
		accentSetOverrideCmd,
		accentClearOverrideCmd,
		accentInheritSectionCmd,
		accentInheritGroupCmd,
		accentBoostCmd,
		accentClearAllCmd,
		accentClearAllButBaseCmd,
		accentSwapCmd,
		accentHistoryCmd,
		accentApplyCmd,
		accentPreviewCmd,
		accentExportCmd,
		accentChromeCmd,
		accentContrastCmd,
		accentEditCmd,
		accentWatchCmd,
		accentKeysCmd,
	)
}

func parseSection(arg string) accent.SectionID {
	if sec, ok := accent.LookupSection(arg); ok {
		return sec.ID
	}
	var ids []string
	for _, sec := range accent.Sections() {
		ids = append(ids, string(sec.ID))
	}
	log.Fatalf("Unknown section %q (one of: %s)", arg, strings.Join(ids, ", "))
	return ""
}

func parseGroup(arg string) accent.GroupID {
	if g, ok := accent.LookupGroup(arg); ok {
		return g.ID
	}
	var ids []string
	for _, g := range accent.Groups() {
		ids = append(ids, string(g.ID))
	}
	log.Fatalf("Unknown group %q (one of: %s)", arg, strings.Join(ids, ", "))
	return ""
}

func parseScope(arg string) accent.Scope {
	s, ok := accent.ParseScope(arg)
	if !ok {
		log.Fatalf("Unknown scope %q (use base, section:<id> or group:<id>)", arg)
	}
	return s
}

func runAccentShow(cmd *cobra.Command, args []string) {
	store := openProject()
	cfg := readConfig(store)
	fmt.Print(renderCascade(cfg))
}

// renderCascade lists every scope with its effective color, then the
// overrides and boost.
func renderCascade(cfg accent.Config) string {
	var b strings.Builder

	for _, s := range accent.Scopes() {
		indent := ""
		var color string
		switch s.Kind {
		case accent.ScopeBase:
			color = cfg.Base
		case accent.ScopeSection:
			indent = "  "
			color = cfg.SectionColor(accent.SectionID(s.ID))
		case accent.ScopeGroup:
			indent = "    "
			color = cfg.Effective(accent.GroupID(s.ID))
		}
		fmt.Fprintf(&b, "%-24s %s", indent+s.Label(), tui.Swatch(color))
		if s.Kind != accent.ScopeBase && cfg.Inherits(s) {
			b.WriteString(" " + subtle.Render("inherit"))
		}
		b.WriteString("\n")
	}

	if len(cfg.Overrides) > 0 {
		b.WriteString("\nOverrides:\n")
		for _, key := range accent.ThemeMap(cfg.Overrides).SortedKeys() {
			fmt.Fprintf(&b, "  %-40s %s\n", key, tui.Swatch(cfg.Overrides[key]))
		}
	}

	fmt.Fprintf(&b, "\nHighlight boost: %.2f", cfg.Boost())
	if cfg.HighlightBoost == nil {
		b.WriteString(subtle.Render(" (default)"))
	}
	b.WriteString("\n")
	if cfg.Backup != nil {
		b.WriteString(subtle.Render("Backup available (hm accent swap)") + "\n")
	}
	return b.String()
}

func runAccentSetBase(cmd *cobra.Command, args []string) {
	hex := mustHex(args[0])
	editAccent(func(c accent.Config) accent.Config { return accent.SetBase(c, hex) })
	fmt.Printf("Base accent set to %s\n", hex)
}

func runAccentClearBase(cmd *cobra.Command, args []string) {
	editAccent(func(c accent.Config) accent.Config { return accent.SetBase(c, "") })
	fmt.Println("Base accent cleared")
}

func runAccentSetSection(cmd *cobra.Command, args []string) {
	id := parseSection(args[0])
	hex := mustHex(args[1])
	editAccent(func(c accent.Config) accent.Config { return accent.SetSection(c, id, hex) })
	fmt.Printf("Section %s set to %s\n", id, hex)
}

func runAccentClearSection(cmd *cobra.Command, args []string) {
	id := parseSection(args[0])
	editAccent(func(c accent.Config) accent.Config { return accent.SetSection(c, id, "") })
	fmt.Printf("Section %s cleared\n", id)
}

func runAccentSetGroup(cmd *cobra.Command, args []string) {
	id := parseGroup(args[0])
	hex := mustHex(args[1])
	editAccent(func(c accent.Config) accent.Config { return accent.SetGroup(c, id, hex) })
	fmt.Printf("Group %s set to %s\n", id, hex)
}

func runAccentClearGroup(cmd *cobra.Command, args []string) {
	id := parseGroup(args[0])
	editAccent(func(c accent.Config) accent.Config { return accent.SetGroup(c, id, "") })
	fmt.Printf("Group %s cleared\n", id)
}

func runAccentSetOverride(cmd *cobra.Command, args []string) {
	key := args[0]
	if !accent.IsThemeKey(key) {
		log.Fatalf("Unknown theme key: %s", key)
	}
	hex := mustHex(args[1])
	editAccent(func(c accent.Config) accent.Config { return accent.SetOverride(c, key, hex) })
	fmt.Printf("%s pinned to %s\n", key, hex)
}

func runAccentClearOverride(cmd *cobra.Command, args []string) {
	key := args[0]
	if !accent.IsThemeKey(key) {
		log.Fatalf("Unknown theme key: %s", key)
	}
	editAccent(func(c accent.Config) accent.Config { return accent.SetOverride(c, key, "") })
	fmt.Printf("Override for %s removed\n", key)
}

func runAccentInheritSection(cmd *cobra.Command, args []string) {
	id := parseSection(args[0])
	off, _ := cmd.Flags().GetBool("off")
	editAccent(func(c accent.Config) accent.Config { return accent.SetSectionInherit(c, id, !off) })
	fmt.Printf("Section %s inherit: %v\n", id, !off)
}

func runAccentInheritGroup(cmd *cobra.Command, args []string) {
	id := parseGroup(args[0])
	off, _ := cmd.Flags().GetBool("off")
	editAccent(func(c accent.Config) accent.Config { return accent.SetGroupInherit(c, id, !off) })
	fmt.Printf("Group %s inherit: %v\n", id, !off)
}

func runAccentBoost(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		cfg := readConfig(openProject())
		fmt.Printf("%.2f\n", cfg.Boost())
		return
	}
	if args[0] == "default" {
		cfg := editAccent(accent.ClearHighlightBoost)
		fmt.Printf("Highlight boost reset to %.2f\n", cfg.Boost())
		return
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		log.Fatalf("Invalid boost amount: %s", args[0])
	}
	cfg := editAccent(func(c accent.Config) accent.Config { return accent.SetHighlightBoost(c, amount) })
	fmt.Printf("Highlight boost set to %.2f\n", cfg.Boost())
}

func runAccentClearAll(cmd *cobra.Command, args []string) {
	editAccent(accent.ClearAll)
	fmt.Println("All accent colors cleared (hm accent swap restores them)")
}

func runAccentClearAllButBase(cmd *cobra.Command, args []string) {
	editAccent(accent.ClearAllButBase)
	fmt.Println("All accent colors except the base cleared (hm accent swap restores them)")
}

func runAccentSwap(cmd *cobra.Command, args []string) {
	store := openProject()
	swapped := false
	raw, err := store.Update(func(raw map[string]any) map[string]any {
		next, ok := accent.SwapBackupRaw(raw)
		swapped = ok
		return next
	})
	if err != nil {
		log.Fatalf("Error saving %s: %v", store.Path(), err)
	}
	if !swapped {
		fmt.Println("No color backup available yet")
		return
	}
	applyTheme(store, accent.Normalize(raw))
	fmt.Println("Swapped with backup")
}

func runAccentHistory(cmd *cobra.Command, args []string) {
	cfg := readConfig(openProject())

	scopes := accent.Scopes()
	if len(args) == 1 {
		scopes = []accent.Scope{parseScope(args[0])}
	}

	seen := map[string]bool{}
	for _, s := range scopes {
		key := s.HistoryKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		colors := cfg.History[key]
		if len(colors) == 0 && len(args) == 0 {
			continue
		}
		swatches := make([]string, 0, len(colors))
		for _, c := range colors {
			swatches = append(swatches, tui.Swatch(c))
		}
		if len(swatches) == 0 {
			swatches = append(swatches, subtle.Render("(none)"))
		}
		fmt.Printf("%-24s %s\n", s.Label(), strings.Join(swatches, " "))
	}
}

func runAccentApply(cmd *cobra.Command, args []string) {
	store := openProject()
	cfg := readConfig(store)
	applyTheme(store, cfg)
	fmt.Printf("Applied %d theme keys to %s\n", len(accent.BuildThemeMap(cfg)), settingsSink(store).Path())
}

func runAccentPreview(cmd *cobra.Command, args []string) {
	scope := parseScope(args[0])
	hex := mustHex(args[1])
	hold, _ := cmd.Flags().GetDuration("for")

	store := openProject()
	manager := theme.NewManager(settingsSink(store), settings.PreviewDebounce)
	manager.Load(readConfig(store))
	manager.Preview(scope, hex)
	if err := manager.Flush(); err != nil {
		log.Fatalf("Error applying preview: %v", err)
	}
	fmt.Printf("Previewing %s on %s for %s\n", hex, scope.Label(), hold)

	time.Sleep(hold)
	manager.CancelPreview()
	if err := manager.Close(); err != nil {
		log.Fatalf("Error restoring theme: %v", err)
	}
	fmt.Println("Restored saved theme")
}

func runAccentExport(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")

	cfg := readConfig(openProject())
	data, err := theme.ExportColorTheme(args[0], accent.BuildThemeMap(cfg))
	if err != nil {
		log.Fatalf("Error exporting theme: %v", err)
	}
	if output == "" {
		fmt.Println(string(data))
		return
	}
	if err := afero.WriteFile(fs, output, append(data, '\n'), 0o644); err != nil {
		log.Fatalf("Error writing %s: %v", output, err)
	}
	fmt.Printf("Wrote %s\n", output)
}

func runAccentChrome(cmd *cobra.Command, args []string) {
	cfg := readConfig(openProject())
	css := accent.ChromeCSS(accent.BuildChrome(cfg))
	if css == "" {
		fmt.Println(subtle.Render("No harbormaster chrome colors set"))
		return
	}
	fmt.Println(css)
}

func runAccentContrast(cmd *cobra.Command, args []string) {
	background, _ := cmd.Flags().GetString("background")
	onlyFailing, _ := cmd.Flags().GetBool("failing")

	cfg := readConfig(openProject())
	report := theme.ContrastReport(accent.BuildThemeMap(cfg), background, settings.MinContrast)
	if onlyFailing {
		report = theme.Failing(report)
	}
	if len(report) == 0 {
		fmt.Println("No contrast pairs to check")
		return
	}

	pass := lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A"))
	fail := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7768E"))

	fmt.Printf("%-40s  %-10s  %-10s  %s\n", "Foreground", "Text", "Background", "Ratio")
	fmt.Println(strings.Repeat("─", 76))
	for _, p := range report {
		status := pass.Render("ok")
		if !p.Pass {
			status = fail.Render(fmt.Sprintf("below %.1f", settings.MinContrast))
		}
		fmt.Printf("%-40s  %-10s  %-10s  %5.2f  %s\n", p.Foreground, p.FgColor, p.BgColor, p.Ratio, status)
	}
	if len(theme.Failing(report)) > 0 {
		os.Exit(1)
	}
}

func runAccentEdit(cmd *cobra.Command, args []string) {
	store := openProject()
	manager := theme.NewManager(settingsSink(store), settings.PreviewDebounce)

	model, err := tui.NewModel(store, manager)
	if err != nil {
		log.Fatalf("Error starting editor: %v", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	manager.CancelPreview()
	if err := manager.Close(); err != nil {
		log.Errorf("Error applying theme: %v", err)
	}
	if runErr != nil {
		log.Fatalf("Error running editor: %v", runErr)
	}
}

func runAccentWatch(cmd *cobra.Command, args []string) {
	store := openProject()
	manager := theme.NewManager(settingsSink(store), settings.PreviewDebounce)
	manager.Load(readConfig(store))

	events, closer, err := store.Watch()
	if err != nil {
		log.Fatalf("Error watching %s: %v", store.Path(), err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", store.Path())

loop:
	for {
		select {
		case _, ok := <-events:
			if !ok {
				break loop
			}
			raw, err := store.Read()
			if err != nil {
				log.Warnf("Ignoring unreadable project file: %v", err)
				continue
			}
			manager.Load(accent.Normalize(raw))
			log.Infof("Re-applied accent theme")
		case <-interrupt:
			break loop
		}
	}

	_ = closer.Close()
	if err := manager.Close(); err != nil {
		log.Fatalf("Error applying theme: %v", err)
	}
}

func runAccentKeys(cmd *cobra.Command, args []string) {
	if !settings.DevTools {
		log.Fatalf("hm accent keys needs dev tools (set %s=1 or dev_tools: true)", config.EnvDevTools)
	}
	for _, key := range accent.AllKeys() {
		owner, _ := accent.OwnerOf(key)
		fmt.Printf("%-45s %s\n", key, owner)
	}
}
