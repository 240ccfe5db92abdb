package discovery

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
)

// MaxLineSize bounds a single line held in memory while scanning
const MaxLineSize = 1024 * 1024

// ErrBinaryFile is returned when a scanned file contains a NUL byte
var ErrBinaryFile = errors.New("binary content")

// Matcher reports whether any line of a file matches a compiled pattern
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles expr once for reuse across many files
func NewMatcher(expr string) (*Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return &Matcher{re: re}, nil
}

// String returns the source pattern
func (m *Matcher) String() string {
	return m.re.String()
}

// Search scans path line by line and stops at the first matching line.
// An error means the file could not be fully searched, not that it lacks a match.
func (m *Matcher) Search(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("error searching file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if bytes.IndexByte(line, 0) >= 0 {
			return false, fmt.Errorf("error searching file %s: %w", path, ErrBinaryFile)
		}
		if m.re.Match(line) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("error searching file %s: %w", path, err)
	}
	return false, nil
}
