package discovery

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const commentPrefix = "#"

// DefaultIgnoreFiles are read in every directory, in increasing precedence
var DefaultIgnoreFiles = []string{".gitignore", ".ignore"}

// ignoreRules is the set of patterns in effect for one directory.
// Rules are immutable once built; children extend a copy.
type ignoreRules struct {
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

// extend returns the rules of a child directory: the parent's patterns followed
// by those read from the child's ignore files. domain is the child path relative
// to the walk root, split into components.
func (r *ignoreRules) extend(dir string, domain []string, names []string, files []string) (*ignoreRules, error) {
	var own []gitignore.Pattern
	var firstErr error
	for _, file := range files {
		if !contains(names, file) {
			continue
		}
		ps, err := readPatterns(filepath.Join(dir, file), domain)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		own = append(own, ps...)
	}
	if len(own) == 0 {
		return r, firstErr
	}

	var patterns []gitignore.Pattern
	if r != nil {
		patterns = make([]gitignore.Pattern, 0, len(r.patterns)+len(own))
		patterns = append(patterns, r.patterns...)
	}
	patterns = append(patterns, own...)
	return &ignoreRules{patterns: patterns, matcher: gitignore.NewMatcher(patterns)}, firstErr
}

// ignored reports whether the path (components relative to the walk root) is excluded
func (r *ignoreRules) ignored(path []string, isDir bool) bool {
	if r == nil || r.matcher == nil {
		return false
	}
	return r.matcher.Match(path, isDir)
}

func readPatterns(path string, domain []string) ([]gitignore.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read ignore file %s: %w", path, err)
	}
	defer f.Close()

	var ps []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := scanner.Text()
		if strings.HasPrefix(s, commentPrefix) || strings.TrimSpace(s) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(s, domain))
	}
	if err := scanner.Err(); err != nil {
		return ps, fmt.Errorf("read ignore file %s: %w", path, err)
	}
	return ps, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
