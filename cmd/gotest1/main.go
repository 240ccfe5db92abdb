package main

import (
	"errors"
	"fmt"
	"os"

	"gotest1/internal/cli"
	"gotest1/internal/cli/commands"
	"gotest1/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "gotest1",
		Short:   "Find a Go test by name and run it",
		Long:    `Locate the _test.go file declaring a test function, run go test for that single test in its package directory and keep a copy of the output in a log file.`,
		Version: version,
	}

	// Create config from defaults, .env and environment
	cfg, err := config.Load(config.Flags{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, os.Stdout, os.Stderr)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
