package discovery

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files (and their parent directories) under root
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
}

// drain walks src to the end, returning paths relative to root and the errors seen
func drain(t *testing.T, root string, src EntrySource) (paths []string, errs []error) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		entry, err := src.Next()
		if errors.Is(err, io.EOF) {
			return paths, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rel, relErr := filepath.Rel(root, entry.Path)
		require.NoError(t, relErr)
		paths = append(paths, filepath.ToSlash(rel))
	}
	t.Fatal("walk did not terminate")
	return nil, nil
}
