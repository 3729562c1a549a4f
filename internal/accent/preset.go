package accent

// PresetOf extracts the reusable part of a config: colors, inherit flags,
// overrides and boost. History and backup are left behind.
func PresetOf(c Config) Config {
	out := c.Snapshot()
	out.History = map[string][]string{}
	return out
}

// ApplyPreset replaces the foreground with preset p. The previous foreground
// goes to the backup slot, history is kept and every color the preset sets at
// base, section or group level is recorded.
func ApplyPreset(c Config, p Config) Config {
	out := PresetOf(p)
	out.History = c.Clone().History
	if out.Base != "" {
		out.History = Record(out.History, HistoryBase, out.Base)
	}
	for _, s := range sections {
		if color := out.Sections[s.ID]; color != "" {
			out.History = Record(out.History, string(s.ID), color)
		}
	}
	for _, g := range groups {
		if color := out.Groups[g.ID]; color != "" {
			out.History = Record(out.History, string(g.ID), color)
		}
	}
	out.Backup = backupFor(c)
	return out
}
