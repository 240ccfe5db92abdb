package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"gotest1/internal/domain"
)

// Formatter formats and displays user-facing output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintRunHeader prints the normalized test name and the command about to run
func (f *Formatter) PrintRunHeader(rc domain.RunConfig) {
	fmt.Fprintf(f.out, "Test name: %s\n", rc.Name)
	fmt.Fprintf(f.out, "Command: %s\n", rc)
}

// PrintFound prints the file the test was located in
func (f *Formatter) PrintFound(path string) {
	fmt.Fprintf(f.out, "found test in file: %s\n", path)
}

// PrintRunSummary prints a one-line summary after the child exited
func (f *Formatter) PrintRunSummary(result domain.RunResult, summary domain.OutputSummary) {
	fmt.Fprintln(f.out)
	counts := fmt.Sprintf("passed: %d | failed: %d | skipped: %d", summary.Passed, summary.Failed, summary.Skipped)
	if result.Success() {
		color.New(color.FgGreen).Fprintf(f.out, "✓ %s", counts)
	} else {
		color.New(color.FgRed).Fprintf(f.out, "✗ exit code %d | %s", result.ExitCode, counts)
	}
	fmt.Fprintf(f.out, " (%s, log: %s)\n", result.Duration.Round(time.Millisecond), result.LogPath)
	for _, name := range summary.Failures {
		color.New(color.FgRed).Fprintf(f.out, "  |_%s\n", name)
	}
}

// PrintTestList prints test cases grouped by the file declaring them
func (f *Formatter) PrintTestList(cases []domain.TestCase) {
	var files []string
	byFile := make(map[string][]domain.TestCase)
	for _, tc := range cases {
		if _, ok := byFile[tc.FilePath]; !ok {
			files = append(files, tc.FilePath)
		}
		byFile[tc.FilePath] = append(byFile[tc.FilePath], tc)
	}

	width := 0
	for _, tc := range cases {
		if len(tc.Name) > width {
			width = len(tc.Name)
		}
	}

	for _, file := range files {
		color.New(color.FgYellow).Fprintln(f.out, file)
		for _, tc := range byFile[file] {
			fmt.Fprintf(f.out, "  |_%-*s ", width, tc.Name)
			color.New(color.Faint).Fprintf(f.out, ":%d\n", tc.Line)
		}
	}

	fmt.Fprintln(f.out)
	color.New(color.FgGreen).Fprintf(f.out, "✓ Found %d test(s) in %d file(s)\n", len(cases), len(files))
}

// PrintLastRun prints the stored record of the last run as a table
func (f *Formatter) PrintLastRun(record *domain.RunRecord) {
	const labelWidth, valueWidth = 17, 55
	border := func(left, mid, right string) {
		fmt.Fprintln(f.out, left+strings.Repeat("─", labelWidth+2)+mid+strings.Repeat("─", valueWidth+2)+right)
	}
	row := func(label, value string, c *color.Color) {
		fmt.Fprintf(f.out, "│ %-*s │ ", labelWidth, label)
		c.Fprintf(f.out, "%-*s", valueWidth, value)
		fmt.Fprintln(f.out, " │")
	}

	white := color.New(color.FgWhite)
	status := color.New(color.FgGreen)
	if record.ExitCode != 0 {
		status = color.New(color.FgRed)
	}

	color.New(color.FgCyan).Fprintln(f.out, "Last test run")
	border("┌", "┬", "┐")
	rows := []struct {
		label string
		value string
		color *color.Color
	}{
		{"Test", record.TestName, white},
		{"File", record.FilePath, white},
		{"Command", record.Command, white},
		{"Log", record.LogPath, white},
		{"Exit code", fmt.Sprint(record.ExitCode), status},
		{"Passed", fmt.Sprint(record.Summary.Passed), color.New(color.FgGreen)},
		{"Failed", fmt.Sprint(record.Summary.Failed), color.New(color.FgRed)},
		{"Skipped", fmt.Sprint(record.Summary.Skipped), color.New(color.FgYellow)},
		{"Duration", fmt.Sprintf("%.2fs", record.DurationSeconds), white},
		{"Timestamp", record.Timestamp, white},
	}
	for i, r := range rows {
		if i > 0 {
			border("├", "┼", "┤")
		}
		row(r.label, r.value, r.color)
	}
	border("└", "┴", "┘")

	if len(record.Summary.Failures) > 0 {
		fmt.Fprintln(f.out)
		color.New(color.FgRed).Fprintf(f.out, "✗ %d failing test(s)\n", len(record.Summary.Failures))
		for _, name := range record.Summary.Failures {
			color.New(color.FgRed).Fprintf(f.out, "  |_%s\n", name)
		}
	}
}
