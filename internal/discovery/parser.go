package discovery

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"unicode"
	"unicode/utf8"

	"gotest1/internal/domain"
)

// testFuncPattern matches top-level test declarations such as
//
//	func TestCreateUser(t *testing.T) {
//	func TestHelper(*testing.T) {
var testFuncPattern = regexp.MustCompile(`^func\s+(Test\w*)\(\s*(?:\w+\s+)?\*testing\.T\s*\)`)

// Parser parses test files to extract test cases
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestCases finds all test functions declared in a test file, in file order
func (p *Parser) FindTestCases(filePath string) ([]domain.TestCase, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	defer f.Close()

	var testCases []domain.TestCase
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		m := testFuncPattern.FindStringSubmatch(scanner.Text())
		if m == nil || !isTestName(m[1]) {
			continue
		}
		testCases = append(testCases, domain.TestCase{
			Name:     m[1],
			FilePath: filePath,
			Line:     line,
		})
	}
	if err := scanner.Err(); err != nil {
		return testCases, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return testCases, nil
}

// isTestName applies go test's rule: the character after "Test" must not be lowercase
func isTestName(name string) bool {
	rest := name[len(domain.TestPrefix):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLower(r)
}
