package domain

import "time"

// RunResult represents the outcome of one toolchain invocation
type RunResult struct {
	Dir      string        // Working directory of the child
	LogPath  string        // File holding a copy of the combined output
	ExitCode int           // Child exit code, 0 on success
	Bytes    int64         // Bytes copied from the child
	Duration time.Duration // Wall time of the child
}

// Success reports whether the toolchain exited cleanly
func (r RunResult) Success() bool {
	return r.ExitCode == 0
}

// OutputSummary holds counts parsed from go test -v output
type OutputSummary struct {
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	Skipped  int      `json:"skipped"`
	Failures []string `json:"failures,omitempty"`
	Packages []string `json:"packages,omitempty"` // Packages reported as ok or FAIL
}

// RunRecord is the persisted summary of the last run
type RunRecord struct {
	TestName        string        `json:"test_name"`
	FilePath        string        `json:"file_path"`
	Dir             string        `json:"dir"`
	Command         string        `json:"command"`
	LogPath         string        `json:"log_path"`
	ExitCode        int           `json:"exit_code"`
	Summary         OutputSummary `json:"summary"`
	Duration        string        `json:"duration"`
	DurationSeconds float64       `json:"duration_seconds"`
	Timestamp       string        `json:"timestamp"`
}
