package discovery

import (
	"path/filepath"
	"strings"

	"gotest1/internal/domain"
)

// Filter filters test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test cases by name using wildcard matching.
// Supports patterns like "TestUser*" or "*Payment*"; a pattern without
// wildcards matches names containing it.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if matchName(tc.Name, pattern) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Unordered fallback: "*Login*User*" still finds TestUserLogin
	nonEmpty := 0
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") || !strings.Contains(name, part) {
			return false
		}
		nonEmpty++
	}
	return nonEmpty > 0
}
