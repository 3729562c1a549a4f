package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
)

func TestRenderCascade(t *testing.T) {
	cfg := accent.SetBase(accent.NewConfig(), "#336699")
	cfg = accent.SetGroup(cfg, accent.GroupTabs, "#FF0000")
	cfg = accent.SetOverride(cfg, "statusBar.background", "#00FF00")

	out := renderCascade(cfg)
	assert.Contains(t, out, "Base accent")
	assert.Contains(t, out, "#336699")
	assert.Contains(t, out, "#FF0000")
	assert.Contains(t, out, "inherit")
	assert.Contains(t, out, "statusBar.background")
	assert.Contains(t, out, "Highlight boost: 0.15")
	assert.NotContains(t, out, "Backup available")
}

func TestRenderCascadeShowsBackup(t *testing.T) {
	cfg := accent.ClearAll(accent.SetBase(accent.NewConfig(), "#336699"))

	out := renderCascade(cfg)
	assert.Contains(t, out, "(theme default)")
	assert.Contains(t, out, "Backup available")
}
