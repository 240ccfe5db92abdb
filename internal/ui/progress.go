package ui

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// SearchSpinner shows how many test files were scanned while a search runs.
// A nil *SearchSpinner is valid and does nothing.
type SearchSpinner struct {
	bar  *progressbar.ProgressBar
	name string
}

// NewSearchSpinner creates a spinner for the named test writing to w
func NewSearchSpinner(w io.Writer, name string) *SearchSpinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString("Searching for %s", name)),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
	)
	return &SearchSpinner{bar: bar, name: name}
}

// NewTerminalSearchSpinner returns a spinner on stderr, or nil when stderr is not a terminal
func NewTerminalSearchSpinner(name string) *SearchSpinner {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return NewSearchSpinner(os.Stderr, name)
}

// Scanned records one searched file
func (s *SearchSpinner) Scanned(path string) {
	if s == nil {
		return
	}
	s.bar.Describe(color.CyanString("Searching for %s", s.name) + " " + filepath.Base(path))
	_ = s.bar.Add(1)
}

// Finish clears the spinner so the next output starts on a clean line
func (s *SearchSpinner) Finish() {
	if s == nil {
		return
	}
	_ = s.bar.Finish()
	_ = s.bar.Clear()
}
