package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gotest1/internal/config"
	"gotest1/internal/discovery"
	"gotest1/internal/domain"
	"gotest1/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	log       *ui.Logger
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	parser    *discovery.Parser
	formatter *ui.Formatter
	out       io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	log *ui.Logger,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *discovery.Parser,
	formatter *ui.Formatter,
	out io.Writer,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		log:       log,
		scanner:   scanner,
		filter:    filter,
		parser:    parser,
		formatter: formatter,
		out:       out,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := lc.scanner.Scan(lc.config.GetTestPath())
	if err != nil {
		return err
	}

	var cases []domain.TestCase
	for _, file := range files {
		found, err := lc.parser.FindTestCases(file)
		if err != nil {
			lc.log.Warn(err)
		}
		cases = append(cases, found...)
	}

	// Filter tests
	cases = lc.filter.FilterByName(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(lc.out, "No tests found")
		return nil
	}

	lc.formatter.PrintTestList(cases)
	return nil
}
