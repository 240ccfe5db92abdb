package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"gotest1/internal/domain"
)

// Runner executes the toolchain for a single test, teeing its output
type Runner struct {
	stdout io.Writer
}

// NewRunner creates a new Runner writing live output to stdout
func NewRunner(stdout io.Writer) *Runner {
	return &Runner{stdout: stdout}
}

// Run creates the log file, runs the toolchain in dir and copies its combined
// stdout and stderr to both the console and the log. A non-zero exit of the
// child is reported in the result, not as an error.
func (r *Runner) Run(ctx context.Context, rc domain.RunConfig, dir, logPath string) (domain.RunResult, error) {
	result := domain.RunResult{Dir: dir, LogPath: logPath}

	logFile, err := os.Create(logPath)
	if err != nil {
		return result, fmt.Errorf("create log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.CommandContext(ctx, rc.Toolchain, rc.Args()...)
	cmd.Dir = dir
	output, err := cmd.StdoutPipe()
	if err != nil {
		return result, fmt.Errorf("attempted to exec test toolchain: %w", err)
	}
	// Same *os.File for both streams: the child writes into one pipe
	cmd.Stderr = cmd.Stdout

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return result, fmt.Errorf("attempted to exec test toolchain %q in %s: %w", rc.Toolchain, dir, err)
	}

	n, copyErr := Tee(r.stdout, logFile, output)
	if copyErr != nil {
		// Keep the child from blocking on a full pipe
		_, _ = io.Copy(io.Discard, output)
	}
	waitErr := cmd.Wait()
	result.Bytes = n
	result.Duration = time.Since(start)

	if err := logFile.Close(); err != nil && copyErr == nil {
		copyErr = fmt.Errorf("close log file: %w", err)
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			// Killed by a signal
			result.ExitCode = 1
		}
	default:
		return result, fmt.Errorf("wait for test toolchain: %w", waitErr)
	}

	if copyErr != nil {
		return result, fmt.Errorf("copy test output: %w", copyErr)
	}
	return result, nil
}
