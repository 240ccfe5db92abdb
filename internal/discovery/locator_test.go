package discovery

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_Locate(t *testing.T) {
	t.Run("finds the only declaring file among decoys", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a/decoy.go":         "package a\n\nfunc TestBar(t *testing.T) {}\n",
			"a/noarg_test.go":    "package a\n\nfunc TestBar() {}\n",
			"a/prefix_test.go":   "package a\n\nfunc TestBarBaz(t *testing.T) {}\n",
			"pkg/foo_test.go":    "package pkg\n\nimport \"testing\"\n\nfunc TestBar(t *testing.T) {}\n",
			"pkg/other_test.go":  "package pkg\n",
			"zzz/notes_test.txt": "func TestBar(t *testing.T) {}\n",
		})

		path, found, err := NewLocator(nil).Locate(root, "TestBar")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, filepath.Join(root, "pkg", "foo_test.go"), path)
		assert.Equal(t, filepath.Join(root, "pkg"), filepath.Dir(path))
	})

	t.Run("not found visits every test file once", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a/one_test.go":   "package a\n",
			"a/b/two_test.go": "package b\n",
			"c/three_test.go": "package c\n\nfunc TestBarX(t *testing.T) {}\n",
			"c/plain.go":      "package c\n",
		})

		seen := map[string]int{}
		locator := NewLocator(nil, WithScanObserver(func(path string) { seen[path]++ }))
		path, found, err := locator.Locate(root, "TestBar")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, path)
		assert.Equal(t, map[string]int{
			filepath.Join(root, "a", "one_test.go"):      1,
			filepath.Join(root, "a", "b", "two_test.go"): 1,
			filepath.Join(root, "c", "three_test.go"):    1,
		}, seen)
	})

	t.Run("first of two matches wins and the walk stops", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a/x_test.go": "package a\n\nfunc TestBar(t *testing.T) {}\n",
			"b/y_test.go": "package b\n\nfunc TestBar(t *testing.T) {}\n",
		})

		var scanned []string
		locator := NewLocator(nil, WithScanObserver(func(path string) { scanned = append(scanned, path) }))
		path, found, err := locator.Locate(root, "TestBar")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, filepath.Join(root, "a", "x_test.go"), path)
		assert.Equal(t, []string{path}, scanned)
	})

	t.Run("unsearchable files are reported and skipped", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a/bin_test.go":  "\x00\x01\x02",
			"b/real_test.go": "package b\n\nfunc TestBar(t *testing.T) {}\n",
		})

		var errs []error
		locator := NewLocator(nil, WithErrorHandler(func(err error) { errs = append(errs, err) }))
		path, found, err := locator.Locate(root, "TestBar")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, filepath.Join(root, "b", "real_test.go"), path)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrBinaryFile)
	})

	t.Run("skip dirs and ignore files are honoured", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			".gitignore":          "generated/\n",
			"generated/x_test.go": "func TestBar(t *testing.T) {}\n",
			"vendor/y_test.go":    "func TestBar(t *testing.T) {}\n",
		})

		_, found, err := NewLocator([]string{"vendor"}).Locate(root, "TestBar")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("invalid root", func(t *testing.T) {
		_, _, err := NewLocator(nil).Locate(filepath.Join(t.TempDir(), "missing"), "TestBar")
		assert.Error(t, err)
	})
}

// fakeSource replays a fixed sequence of entries and errors
type fakeSource struct {
	items []fakeItem
	pos   int
}

type fakeItem struct {
	entry Entry
	err   error
}

func (f *fakeSource) Next() (Entry, error) {
	if f.pos >= len(f.items) {
		return Entry{}, io.EOF
	}
	it := f.items[f.pos]
	f.pos++
	return it.entry, it.err
}

func TestLocator_WithSource(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"found_test.go": "func TestBar(t *testing.T) {}\n",
	})

	walkErr := &WalkError{Path: "broken", Err: errors.New("permission denied")}
	src := &fakeSource{items: []fakeItem{
		{err: walkErr},
		{entry: Entry{Path: filepath.Join(root, "dir_test.go"), Type: fs.ModeDir}},
		{entry: Entry{Path: filepath.Join(root, "found_test.go")}},
		{entry: Entry{Path: filepath.Join(root, "never_test.go")}},
	}}

	var errs []error
	locator := NewLocator(nil,
		WithSource(func(string) EntrySource { return src }),
		WithErrorHandler(func(err error) { errs = append(errs, err) }),
	)
	path, found, err := locator.Locate(root, "TestBar")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "found_test.go"), path)
	assert.Equal(t, []error{walkErr}, errs)
	assert.Equal(t, 3, src.pos, "source is not pulled after the match")
}
