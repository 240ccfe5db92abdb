package discovery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gotest1/internal/domain"
)

// TestPattern returns the line pattern for a declaration of the named test
// taking a *testing.T parameter
func TestPattern(name string) string {
	return `func\s+` + regexp.QuoteMeta(name) + `\(.*\*testing\.T\)`
}

// LocatorOption configures a Locator
type LocatorOption func(*Locator)

// WithErrorHandler receives walk and search errors. They never stop the search.
func WithErrorHandler(fn func(error)) LocatorOption {
	return func(l *Locator) {
		l.onError = fn
	}
}

// WithScanObserver is called with every test file before it is searched
func WithScanObserver(fn func(path string)) LocatorOption {
	return func(l *Locator) {
		l.onScan = fn
	}
}

// WithSource replaces the walker used to enumerate the tree
func WithSource(fn func(root string) EntrySource) LocatorOption {
	return func(l *Locator) {
		l.source = fn
	}
}

// Locator finds the test file declaring a given test function
type Locator struct {
	source  func(root string) EntrySource
	onError func(error)
	onScan  func(path string)
}

// NewLocator creates a Locator walking trees with the given directories skipped
func NewLocator(skipDirs []string, opts ...LocatorOption) *Locator {
	l := &Locator{
		source: func(root string) EntrySource {
			return NewWalker(root, WithSkipDirs(skipDirs))
		},
		onError: func(error) {},
		onScan:  func(string) {},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the first test file under root, in walk order, that declares
// the test name. found is false when the whole tree was searched without a match.
func (l *Locator) Locate(root, name string) (path string, found bool, err error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return "", false, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return "", false, fmt.Errorf("test path is not a directory: %s", root)
	}

	matcher, err := NewMatcher(TestPattern(name))
	if err != nil {
		return "", false, err
	}

	src := l.source(root)
	for {
		entry, err := src.Next()
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if err != nil {
			l.onError(err)
			continue
		}
		if !entry.IsRegular() || !domain.IsTestFile(entry.Name()) {
			continue
		}

		l.onScan(entry.Path)
		ok, err := matcher.Search(entry.Path)
		if err != nil {
			l.onError(err)
			continue
		}
		if ok {
			return entry.Path, true, nil
		}
	}
}
