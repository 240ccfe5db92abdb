package commands

import (
	"fmt"
	"io"

	"gotest1/internal/cli"
	"gotest1/internal/config"
	"gotest1/internal/discovery"
	"gotest1/internal/execution"
	"gotest1/internal/parser"
	"gotest1/internal/storage"
	"gotest1/internal/ui"

	"github.com/spf13/cobra"
)

// ExitError carries the test toolchain's exit code up to main
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("test toolchain exited with code %d", e.Code)
}

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	Last *LastCommand
	View *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, out, errOut io.Writer) *Commands {
	// Initialize dependencies
	log := ui.NewLogger(errOut, ui.ParseLevel(cfg.LogLevel))
	scanner := discovery.NewScanner(cfg.PathsToIgnore, log.Warn)
	filter := discovery.NewFilter()
	testCaseParser := discovery.NewParser()
	runner := execution.NewRunner(out)
	outputParser := parser.NewGoTestParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(out)
	viewer := ui.NewLogViewer()

	return &Commands{
		Run:  NewRunCommand(cfg, log, runner, outputParser, jsonStorage, formatter, ui.NewTerminalSearchSpinner),
		List: NewListCommand(cfg, log, scanner, filter, testCaseParser, formatter, out),
		Last: NewLastCommand(jsonStorage, formatter, out),
		View: NewViewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	// Root command runs a single test
	rootCmd.Use = "gotest1 NAME"
	rootCmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("missing NAME: expected exactly one test name, got %d argument(s)", len(args))
		}
		return nil
	}
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = applyFlags
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.Flags().StringVarP(&flags.LogPath, "log", "l", "", fmt.Sprintf("File receiving a copy of the test output (default %s)", cfg.GetLogPath()))
	rootCmd.Flags().IntVarP(&flags.Count, "count", "c", cfg.Count, "Passed to go test as -count (0 leaves it unset)")
	rootCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	rootCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not record this run for the last and view commands")

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered tests",
		Long:    "Scan the project and list test functions without running them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'TestUser*' or '*Payment*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	rootCmd.AddCommand(listCmd)

	// Last command
	lastCmd := &cobra.Command{
		Use:   "last",
		Short: "Show the last test run",
		Long:  "Display the recorded summary of the last test run in this project",
		Args:  cobra.NoArgs,
		RunE:  c.Last.Execute,
	}
	rootCmd.AddCommand(lastCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "View a test log interactively",
		Long:    "Page through the log of the last run (or --log) with failures highlighted",
		Args:    cobra.NoArgs,
		RunE:    c.View.Execute,
		PreRunE: applyFlags,
	}
	viewCmd.Flags().StringVarP(&flags.LogPath, "log", "l", "", "Log file to view instead of the last run's log")
	rootCmd.AddCommand(viewCmd)
}
