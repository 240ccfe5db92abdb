package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Execution settings
	Toolchain string
	LogPath   string
	Count     int

	// Diagnostics
	LogLevel string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	LogPath    string
	Count      int
	TestPath   string
	NameFilter string
	NoSave     bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		Toolchain:      DefaultToolchain,
		LogPath:        DefaultLogPath,
		LogLevel:       DefaultLogLevel,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config, applies environment overrides and then flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.ApplyFlags(flags)
	return cfg, nil
}

// ApplyEnv reads overrides from the project .env file and the process environment.
// Process environment wins over the .env file.
func (c *Config) ApplyEnv() error {
	values := map[string]string{}

	envPath := filepath.Join(c.ProjectPath, DefaultEnvFile)
	if fileValues, err := godotenv.Read(envPath); err == nil {
		values = fileValues
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", envPath, err)
	}

	for _, key := range []string{EnvLogPath, EnvToolchain, EnvCount, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	if v := values[EnvLogPath]; v != "" {
		c.LogPath = v
	}
	if v := values[EnvToolchain]; v != "" {
		c.Toolchain = v
	}
	if v := values[EnvLogLevel]; v != "" {
		c.LogLevel = v
	}
	if v := values[EnvCount]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %s %q: expected a non-negative integer", EnvCount, v)
		}
		c.Count = n
	}
	return nil
}

// ApplyFlags stores flags and lets them override earlier settings
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.LogPath != "" {
		c.LogPath = flags.LogPath
	}
	if flags.Count > 0 {
		c.Count = flags.Count
	}
}

// GetTestPath returns the search root, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		// If TestPath is provided, make it relative to ProjectPath if it's not absolute
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	// Default: combine project path and test path
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetLogPath returns the log destination for the duplicated output
func (c *Config) GetLogPath() string {
	return c.LogPath
}

// GetOutputPath returns the absolute path to the run record file under the project
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
