package discovery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gotest1/internal/domain"
)

// Scanner collects every test file in a tree
type Scanner struct {
	skipDirs []string
	onError  func(error)
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string, onError func(error)) *Scanner {
	if onError == nil {
		onError = func(error) {}
	}
	return &Scanner{skipDirs: skipDirs, onError: onError}
}

// Scan finds all test files in the given root directory, in walk order
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	var testFiles []string
	w := NewWalker(root, WithSkipDirs(s.skipDirs))
	for {
		entry, err := w.Next()
		if errors.Is(err, io.EOF) {
			return testFiles, nil
		}
		if err != nil {
			s.onError(err)
			continue
		}
		if entry.IsRegular() && domain.IsTestFile(entry.Name()) {
			testFiles = append(testFiles, entry.Path)
		}
	}
}
