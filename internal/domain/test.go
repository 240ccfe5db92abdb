package domain

import (
	"fmt"
	"strings"
)

const (
	// TestPrefix is the prefix every Go test function name carries
	TestPrefix = "Test"
	// TestFileSuffix marks files that may declare tests
	TestFileSuffix = "_test.go"
)

// NormalizeTestName prepends TestPrefix unless name already starts with it
func NormalizeTestName(name string) string {
	if strings.HasPrefix(name, TestPrefix) {
		return name
	}
	return TestPrefix + name
}

// IsTestFile reports whether a file name follows the test file convention
func IsTestFile(name string) bool {
	return strings.HasSuffix(name, TestFileSuffix)
}

// RunConfig describes a single toolchain invocation
type RunConfig struct {
	Toolchain  string // Binary looked up on PATH, usually "go"
	Subcommand string // Toolchain subcommand, usually "test"
	Verbose    bool   // Pass -v
	Count      int    // Pass -count N when > 0
	Name       string // Normalized test name
}

// NewRunConfig builds the default go test invocation for a normalized name
func NewRunConfig(toolchain, name string, count int) RunConfig {
	return RunConfig{
		Toolchain:  toolchain,
		Subcommand: "test",
		Verbose:    true,
		Count:      count,
		Name:       name,
	}
}

// Filter returns the anchored -run expression selecting exactly one test
func (rc RunConfig) Filter() string {
	return "^" + rc.Name + "$"
}

// Args returns the toolchain arguments (without the binary itself)
func (rc RunConfig) Args() []string {
	args := []string{rc.Subcommand}
	if rc.Verbose {
		args = append(args, "-v")
	}
	if rc.Count > 0 {
		args = append(args, "-count", fmt.Sprint(rc.Count))
	}
	return append(args, "-run", rc.Filter())
}

// String renders the invocation the way a user would type it in a shell
func (rc RunConfig) String() string {
	args := rc.Args()
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, rc.Toolchain)
	parts = append(parts, args[:len(args)-1]...)
	parts = append(parts, fmt.Sprintf("%q", rc.Filter()))
	return strings.Join(parts, " ")
}

// TestCase is a test function declared in a test file
type TestCase struct {
	Name     string // Test function name
	FilePath string // Path to the file declaring it
	Line     int    // 1-based line of the declaration
}
