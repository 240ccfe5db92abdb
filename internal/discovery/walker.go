package discovery

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry is a filesystem entry produced by a Walker
type Entry struct {
	Path  string      // Path joined onto the walk root
	Type  fs.FileMode // Type bits only (fs.ModeDir, fs.ModeSymlink, ...)
	Depth int         // 1 for direct children of the root
}

// Name returns the last path element
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// IsRegular reports whether the entry is a regular file
func (e Entry) IsRegular() bool {
	return e.Type.IsRegular()
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Type.IsDir()
}

// IsSymlink reports whether the entry is a symbolic link
func (e Entry) IsSymlink() bool {
	return e.Type&fs.ModeSymlink != 0
}

// EntrySource yields entries one at a time. Next returns io.EOF once exhausted;
// any other error concerns a single entry or subtree and the source stays usable.
type EntrySource interface {
	Next() (Entry, error)
}

// WalkError is a failure confined to one path of the walk
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("error walking %s: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// ErrUnknownFileType is reported for entries whose type cannot be determined
var ErrUnknownFileType = errors.New("unknown file type")

// WalkerOption configures a Walker
type WalkerOption func(*Walker)

// WithSkipDirs skips directories with any of the given names
func WithSkipDirs(names []string) WalkerOption {
	return func(w *Walker) {
		for _, name := range names {
			w.skipDirs[name] = true
		}
	}
}

// WithHidden makes the walker yield hidden entries. .git is always skipped.
func WithHidden(hidden bool) WalkerOption {
	return func(w *Walker) {
		w.hidden = hidden
	}
}

// WithIgnoreFiles replaces the ignore file names read in each directory
func WithIgnoreFiles(names ...string) WalkerOption {
	return func(w *Walker) {
		w.ignoreFiles = names
	}
}

// Walker lazily enumerates a directory tree depth-first, honouring ignore files.
// Directories are read only when the walk reaches them, so a consumer that stops
// calling Next stops all filesystem access.
type Walker struct {
	root        string
	skipDirs    map[string]bool
	hidden      bool
	ignoreFiles []string

	started bool
	stack   []*dirFrame
}

type dirFrame struct {
	path    string
	rel     []string
	depth   int
	loaded  bool
	entries []fs.DirEntry
	next    int
	rules   *ignoreRules
}

// NewWalker creates a Walker rooted at root
func NewWalker(root string, opts ...WalkerOption) *Walker {
	w := &Walker{
		root:        filepath.Clean(root),
		skipDirs:    map[string]bool{".git": true},
		ignoreFiles: DefaultIgnoreFiles,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Next returns the next entry, a per-path *WalkError, or io.EOF at the end
func (w *Walker) Next() (Entry, error) {
	if !w.started {
		w.started = true
		w.stack = append(w.stack, &dirFrame{path: w.root})
	}

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]

		if !top.loaded {
			if err := w.load(top); err != nil {
				return Entry{}, err
			}
			continue
		}

		if top.next >= len(top.entries) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		d := top.entries[top.next]
		top.next++

		name := d.Name()
		if !w.hidden && strings.HasPrefix(name, ".") {
			continue
		}
		isDir := d.IsDir()
		if isDir && w.skipDirs[name] {
			continue
		}

		rel := make([]string, len(top.rel)+1)
		copy(rel, top.rel)
		rel[len(top.rel)] = name
		if top.rules.ignored(rel, isDir) {
			continue
		}

		entry := Entry{
			Path:  filepath.Join(top.path, name),
			Type:  d.Type(),
			Depth: top.depth + 1,
		}
		if entry.Type&fs.ModeIrregular != 0 {
			return entry, &WalkError{Path: entry.Path, Err: ErrUnknownFileType}
		}
		if isDir {
			w.stack = append(w.stack, &dirFrame{
				path:  entry.Path,
				rel:   rel,
				depth: entry.Depth,
				rules: top.rules,
			})
		}
		return entry, nil
	}

	return Entry{}, io.EOF
}

// load reads a directory and its ignore files. Entries read before a failure
// are still walked.
func (w *Walker) load(f *dirFrame) error {
	f.loaded = true

	entries, err := os.ReadDir(f.path)
	f.entries = entries
	if err != nil {
		return &WalkError{Path: f.path, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	rules, err := f.rules.extend(f.path, f.rel, names, w.ignoreFiles)
	f.rules = rules
	if err != nil {
		return &WalkError{Path: f.path, Err: err}
	}
	return nil
}
