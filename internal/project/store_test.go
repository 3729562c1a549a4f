package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v6"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
)

func newTestStore(fs afero.Fs) *Store {
	return NewStore(fs, "/ws", filepath.Join(".harbormaster", "project.json"), ".project.json")
}

func TestFindRootInsideRepository(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	nested := filepath.Join(root, "pkg", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindRoot(nested)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

func TestFindRootOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	got, err := FindRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestReadMissingIsEmpty(t *testing.T) {
	s := newTestStore(afero.NewMemMapFs())
	raw, err := s.Read()
	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.NotNil(t, raw)
}

func TestReadCorrupt(t *testing.T) {
	for name, body := range map[string]string{
		"garbage": "{not json",
		"array":   `["#336699"]`,
		"null":    "null",
	} {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			s := newTestStore(fs)
			require.NoError(t, afero.WriteFile(fs, s.Path(), []byte(body), 0o644))

			_, err := s.Read()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupt), err)
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStore(fs)
	raw := map[string]any{
		"project_name":   "demo",
		accent.FieldBase: "#336699",
	}

	require.NoError(t, s.Write(raw))
	exists, err := s.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	tmpExists, err := afero.Exists(fs, s.Path()+".tmp")
	require.NoError(t, err)
	assert.False(t, tmpExists)

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestUpdateAppliesEdit(t *testing.T) {
	s := newTestStore(afero.NewMemMapFs())
	require.NoError(t, s.Write(map[string]any{"project_name": "demo"}))

	next, err := s.Update(func(raw map[string]any) map[string]any {
		return accent.Edit(raw, func(c accent.Config) accent.Config {
			return accent.SetBase(c, "#abc")
		})
	})
	require.NoError(t, err)
	assert.Equal(t, "#AABBCC", next[accent.FieldBase])

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "demo", got["project_name"])
	assert.Equal(t, "#AABBCC", accent.Normalize(got).Base)
}

func TestMigrateLegacy(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStore(fs)
	require.NoError(t, afero.WriteFile(fs, "/ws/.project.json", []byte(`{"window_accent":"#123456"}`), 0o644))

	migrated, err := s.MigrateLegacy()
	require.NoError(t, err)
	assert.True(t, migrated)

	legacyExists, _ := afero.Exists(fs, "/ws/.project.json")
	assert.False(t, legacyExists)

	raw, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "#123456", raw[accent.FieldBase])

	migrated, err = s.MigrateLegacy()
	require.NoError(t, err)
	assert.False(t, migrated)
}

func TestMigrateLegacyKeepsCurrentFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStore(fs)
	require.NoError(t, s.Write(map[string]any{"project_name": "current"}))
	require.NoError(t, afero.WriteFile(fs, "/ws/.project.json", []byte(`{"project_name":"old"}`), 0o644))

	migrated, err := s.MigrateLegacy()
	require.NoError(t, err)
	assert.False(t, migrated)

	raw, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "current", raw["project_name"])
}
