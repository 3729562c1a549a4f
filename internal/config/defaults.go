package config

// DefaultConfigYAML is the commented template written by `hm config init`.
const DefaultConfigYAML = `# Harbormaster settings

# Project file, relative to the workspace root
project_file: .harbormaster/project.json

# Pre-1.0 project file, migrated on first read when present
legacy_project_file: .project.json

# Editor settings file that receives workbench.colorCustomizations
settings_file: .vscode/settings.json

# Named accent presets
# presets_file: ~/.config/harbormaster/presets.yaml

# Delay before a preview is written to the editor
preview_debounce: 150ms

# Minimum WCAG contrast ratio reported as passing by 'hm accent contrast'
min_contrast: 4.5

# Show developer commands
dev_tools: false
`
