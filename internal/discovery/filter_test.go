package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gotest1/internal/domain"
)

func casesNamed(names ...string) []domain.TestCase {
	cases := make([]domain.TestCase, 0, len(names))
	for _, n := range names {
		cases = append(cases, domain.TestCase{Name: n, FilePath: "pkg/x_test.go"})
	}
	return cases
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		cases    []domain.TestCase
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			cases:    casesNamed("TestUser", "TestPayment", "TestOrder"),
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			cases:    casesNamed("TestUserCreate", "TestUserDelete", "TestOrder"),
			pattern:  "TestUser*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			cases:    casesNamed("TestUser", "TestPayment", "TestOrder", "TestPaymentService"),
			pattern:  "*Payment*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			cases:    casesNamed("TestUser", "TestPayment", "TestOrder"),
			pattern:  "Payment",
			expected: 1,
		},
		{
			name:     "no matches",
			cases:    casesNamed("TestUser", "TestPayment"),
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "parts in any order",
			cases:    casesNamed("TestUserLogin", "TestLogout"),
			pattern:  "*Login*User*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.cases, tt.pattern)
			assert.Len(t, result, tt.expected)
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty test list", func(t *testing.T) {
		assert.Empty(t, filter.FilterByName(nil, "Test*"))
	})

	t.Run("only wildcards matches through filepath.Match", func(t *testing.T) {
		assert.Len(t, filter.FilterByName(casesNamed("TestA", "TestB"), "*"), 2)
	})

	t.Run("keeps file information", func(t *testing.T) {
		result := filter.FilterByName(casesNamed("TestA"), "TestA")
		assert.Equal(t, "pkg/x_test.go", result[0].FilePath)
	})
}
