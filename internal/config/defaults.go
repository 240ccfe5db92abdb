package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path, relative to the project path
	DefaultTestPath = "."
	// DefaultLogPath is where the combined test output is copied to
	DefaultLogPath = "/tmp/test.log"
	// DefaultToolchain is the binary invoked to run tests
	DefaultToolchain = "go"
	// DefaultOutputJSONFile is the default run record file name
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the default run record directory
	DefaultOutputJSONDir = ".gotest1"
	// DefaultLogLevel is the minimum level of diagnostics written to stderr
	DefaultLogLevel = "info"
	// DefaultEnvFile is read from the project path for overrides
	DefaultEnvFile = ".env"
)

// Environment variables that override defaults
const (
	EnvLogPath   = "GOTEST1_LOG"
	EnvToolchain = "GOTEST1_TOOLCHAIN"
	EnvCount     = "GOTEST1_COUNT"
	EnvLogLevel  = "GOTEST1_LOG_LEVEL"
)

// DefaultPathsToIgnore are directory names never descended into when searching for tests
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"testdata",
}
