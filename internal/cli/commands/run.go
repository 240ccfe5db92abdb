package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"gotest1/internal/config"
	"gotest1/internal/discovery"
	"gotest1/internal/domain"
	"gotest1/internal/execution"
	"gotest1/internal/parser"
	"gotest1/internal/storage"
	"gotest1/internal/ui"

	"github.com/spf13/cobra"
)

// ErrTestNotFound is returned when no test file declares the requested test
var ErrTestNotFound = errors.New("test not found")

// RunCommand locates a single test and runs it
type RunCommand struct {
	config     *config.Config
	log        *ui.Logger
	runner     *execution.Runner
	parser     parser.Parser
	storage    storage.Storage
	formatter  *ui.Formatter
	newSpinner func(name string) *ui.SearchSpinner
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	log *ui.Logger,
	runner *execution.Runner,
	parser parser.Parser,
	st storage.Storage,
	formatter *ui.Formatter,
	newSpinner func(name string) *ui.SearchSpinner,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		log:        log,
		runner:     runner,
		parser:     parser,
		storage:    st,
		formatter:  formatter,
		newSpinner: newSpinner,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	name := domain.NormalizeTestName(args[0])
	runConfig := domain.NewRunConfig(rc.config.Toolchain, name, rc.config.Count)
	rc.formatter.PrintRunHeader(runConfig)

	// Locate the declaring file
	root := rc.config.GetTestPath()
	rc.log.Debugf("searching %s for %s", root, discovery.TestPattern(name))
	spinner := rc.newSpinner(name)
	locator := discovery.NewLocator(rc.config.PathsToIgnore,
		discovery.WithErrorHandler(rc.log.Warn),
		discovery.WithScanObserver(spinner.Scanned),
	)
	path, found, err := locator.Locate(root, name)
	spinner.Finish()
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrTestNotFound, name)
	}
	rc.formatter.PrintFound(path)

	// Run it
	result, err := rc.runner.Run(cmd.Context(), runConfig, filepath.Dir(path), rc.config.GetLogPath())
	if err != nil {
		return err
	}

	summary, err := rc.parser.ParseFile(result.LogPath)
	if err != nil {
		rc.log.Warnf("summarize test output: %v", err)
	}
	rc.formatter.PrintRunSummary(result, summary)

	if !rc.config.Flags.NoSave {
		if err := rc.storage.Save(newRunRecord(path, runConfig, result, summary)); err != nil {
			rc.log.Warnf("record run: %v", err)
		}
	}

	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

func newRunRecord(path string, runConfig domain.RunConfig, result domain.RunResult, summary domain.OutputSummary) domain.RunRecord {
	return domain.RunRecord{
		TestName:        runConfig.Name,
		FilePath:        path,
		Dir:             result.Dir,
		Command:         runConfig.String(),
		LogPath:         result.LogPath,
		ExitCode:        result.ExitCode,
		Summary:         summary,
		Duration:        result.Duration.Round(time.Millisecond).String(),
		DurationSeconds: result.Duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}
