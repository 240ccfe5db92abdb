package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser()

	testFile := filepath.Join(t.TempDir(), "user_test.go")
	goContent := `package user

import "testing"

func TestCreateUser(t *testing.T) {
	// test code
}

func TestUpdateUser(tt *testing.T) {}

func TestUnnamed(*testing.T) {}

func Test(t *testing.T) {}

func Testing(t *testing.T) {}

func TestMain(m *testing.M) {}

func BenchmarkUser(b *testing.B) {}

func TestHelper(t *testing.T, extra int) {}

func helperMethod(t *testing.T) {}
`
	require.NoError(t, os.WriteFile(testFile, []byte(goContent), 0644))

	t.Run("finds test functions", func(t *testing.T) {
		testCases, err := parser.FindTestCases(testFile)
		require.NoError(t, err)

		var names []string
		for _, tc := range testCases {
			names = append(names, tc.Name)
			assert.Equal(t, testFile, tc.FilePath)
		}
		assert.Equal(t, []string{"TestCreateUser", "TestUpdateUser", "TestUnnamed", "Test"}, names)
		assert.Equal(t, 5, testCases[0].Line)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases("/non/existent/file_test.go")
		assert.Error(t, err)
	})
}
