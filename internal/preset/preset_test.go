package preset

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
)

func presetConfig() accent.Config {
	cfg := accent.SetBase(accent.NewConfig(), "#336699")
	cfg = accent.SetSection(cfg, accent.SectionOther, "#AA0000")
	cfg = accent.SetGroupInherit(cfg, accent.GroupTabs, true)
	cfg = accent.SetOverride(cfg, "badge.background", "#00FF00")
	return accent.SetHighlightBoost(cfg, 0.25)
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), "/cfg/presets.yaml")
	cfg := presetConfig()

	require.NoError(t, s.Save("ocean", cfg))

	got, err := s.Get("ocean")
	require.NoError(t, err)
	assert.Equal(t, accent.PresetOf(cfg), got)
	assert.Empty(t, got.History)
	assert.Equal(t, accent.BuildThemeMap(cfg), accent.BuildThemeMap(got))
}

func TestSaveRejectsEmpty(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), "/cfg/presets.yaml")
	assert.Error(t, s.Save("  ", presetConfig()))
	assert.Error(t, s.Save("blank", accent.NewConfig()))
}

func TestListAndDelete(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), "/cfg/presets.yaml")

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.Save("zeta", presetConfig()))
	require.NoError(t, s.Save("alpha", presetConfig()))
	require.NoError(t, s.Save("alpha", accent.SetBase(accent.NewConfig(), "#000000")))

	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	alpha, err := s.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "#000000", alpha.Base)

	require.NoError(t, s.Delete("alpha"))
	err = s.Delete("alpha")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Get("alpha")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/presets.yaml", []byte("presets: [1, 2"), 0o644))
	s := NewStore(fs, "/cfg/presets.yaml")

	_, err := s.List()
	assert.Error(t, err)
	assert.Error(t, s.Save("x", presetConfig()))
}
