//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	HorizonURL string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		HorizonURL: os.Getenv("HORIZON_INTEGRATION_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("HORIZON_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the horizon binary
func getBinaryPath() string {
	if path := os.Getenv("HORIZON_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../horizon",
		"./horizon",
		"../horizon",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "horizon"
}

// SkipIfMissingEndpoint skips tests that only need the library.
func (config *TestConfig) SkipIfMissingEndpoint(t *testing.T) {
	t.Helper()

	if config.HorizonURL == "" {
		t.Skip("HORIZON_INTEGRATION_URL not set, skipping integration test")
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	config.SkipIfMissingEndpoint(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("horizon binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the horizon binary against the configured endpoint
// with an isolated config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: t.TempDir() + "/config.yml",
		t:          t,
	}
}

// Run executes a horizon command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	full := append([]string{"--config", runner.configFile, "--horizon-url", runner.config.HorizonURL}, args...)

	cmd := exec.Command(runner.config.BinaryPath, full...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(full, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output parses as a YAML mapping
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded map[string]interface{}
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil || len(decoded) == 0 {
		t.Errorf("Output does not appear to be YAML: %s", output)
	}
}
