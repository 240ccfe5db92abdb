package parser

import (
	"io"

	"gotest1/internal/domain"
)

// Parser summarizes test toolchain output
type Parser interface {
	Parse(output io.Reader) (domain.OutputSummary, error)
	ParseFile(path string) (domain.OutputSummary, error)
}
