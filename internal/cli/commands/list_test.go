package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	t.Run("lists tests grouped by file", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.execute("list"))
		out := f.stdout.String()
		assert.Contains(t, out, filepath.Join(f.project, "pkg", "foo_test.go"))
		assert.Contains(t, out, "|_TestBar")
		assert.Contains(t, out, "|_TestQux")
		assert.NotContains(t, out, "TestBarHelper")
		assert.Contains(t, out, "Found 2 test(s) in 1 file(s)")
	})

	t.Run("filter", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.execute("list", "-f", "*Qux*"))
		out := f.stdout.String()
		assert.Contains(t, out, "|_TestQux")
		assert.NotContains(t, out, "|_TestBar")
	})

	t.Run("nothing matches", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.execute("list", "--filter", "Nope"))
		assert.Contains(t, f.stdout.String(), "No tests found")
	})
}
