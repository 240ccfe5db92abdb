package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"

	"gotest1/internal/domain"
)

const maxLineSize = 1024 * 1024

var (
	resultLine  = regexp.MustCompile(`^\s*--- (PASS|FAIL|SKIP): (\S+) \(`)
	packageLine = regexp.MustCompile(`^(ok|FAIL)\s+(\S+)\s`)
)

// GoTestParser parses the output of go test -v
type GoTestParser struct{}

// NewGoTestParser creates a new GoTestParser
func NewGoTestParser() *GoTestParser {
	return &GoTestParser{}
}

// Parse counts passed, failed and skipped tests (subtests included) and
// collects failing test names and package result lines
func (p *GoTestParser) Parse(output io.Reader) (domain.OutputSummary, error) {
	var summary domain.OutputSummary

	scanner := bufio.NewScanner(output)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()

		if m := resultLine.FindStringSubmatch(line); m != nil {
			switch m[1] {
			case "PASS":
				summary.Passed++
			case "FAIL":
				summary.Failed++
				summary.Failures = append(summary.Failures, m[2])
			case "SKIP":
				summary.Skipped++
			}
			continue
		}

		if m := packageLine.FindStringSubmatch(line + " "); m != nil {
			summary.Packages = append(summary.Packages, m[1]+" "+m[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("parse test output: %w", err)
	}
	return summary, nil
}

// ParseFile parses a log file written by the runner
func (p *GoTestParser) ParseFile(path string) (domain.OutputSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.OutputSummary{}, fmt.Errorf("open test log: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}
