package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastCommand(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.execute("last"))
	assert.Contains(t, f.stdout.String(), "No previous run recorded")

	require.NoError(t, f.execute("Bar"))
	require.NoError(t, f.execute("last"))
	out := f.stdout.String()
	assert.Contains(t, out, "TestBar")
	assert.Contains(t, out, f.cfg.LogPath)
}

func TestViewCommand(t *testing.T) {
	t.Run("defaults to the configured log", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.execute("view"))
		assert.Equal(t, []string{f.cfg.LogPath}, f.viewer.viewed)
	})

	t.Run("uses the last run's log", func(t *testing.T) {
		f := newFixture(t)
		barLog := filepath.Join(t.TempDir(), "bar.log")
		require.NoError(t, f.execute("Bar", "--log", barLog))
		require.NoError(t, f.execute("view"))
		assert.Equal(t, []string{barLog}, f.viewer.viewed)
	})

	t.Run("explicit log wins", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.execute("view", "-l", "/tmp/other.log"))
		assert.Equal(t, []string{"/tmp/other.log"}, f.viewer.viewed)
	})
}
