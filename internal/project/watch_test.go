package project

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
)

func TestWatchReportsWrites(t *testing.T) {
	store := NewStore(afero.NewOsFs(), t.TempDir(), ".harbormaster/project.json", "")

	events, closer, err := store.Watch()
	require.NoError(t, err)

	require.NoError(t, store.Write(map[string]any{accent.FieldBase: "#336699"}))

	select {
	case _, ok := <-events:
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event for project write")
	}

	require.NoError(t, closer.Close())
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatchCreatesDirectoryThroughStoreFs(t *testing.T) {
	root := t.TempDir()
	fs := afero.NewOsFs()
	store := NewStore(fs, root, ".harbormaster/project.json", "")

	_, closer, err := store.Watch()
	require.NoError(t, err)
	defer closer.Close()

	isDir, err := afero.DirExists(fs, root+"/.harbormaster")
	require.NoError(t, err)
	assert.True(t, isDir)
}
