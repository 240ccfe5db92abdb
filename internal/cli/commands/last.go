package commands

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gotest1/internal/storage"
	"gotest1/internal/ui"
)

// LastCommand handles the last command
type LastCommand struct {
	storage   storage.Storage
	formatter *ui.Formatter
	out       io.Writer
}

// NewLastCommand creates a new LastCommand
func NewLastCommand(st storage.Storage, formatter *ui.Formatter, out io.Writer) *LastCommand {
	return &LastCommand{
		storage:   st,
		formatter: formatter,
		out:       out,
	}
}

// Execute runs the command
func (lc *LastCommand) Execute(cmd *cobra.Command, args []string) error {
	record, err := lc.storage.Load()
	if errors.Is(err, storage.ErrNoRecord) {
		color.New(color.FgYellow).Fprintln(lc.out, "No previous run recorded")
		return nil
	}
	if err != nil {
		return err
	}

	lc.formatter.PrintLastRun(record)
	return nil
}
