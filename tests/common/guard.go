package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestOutputGuard validates test outputs and keeps them as markdown next to
// the raw responses.
type TestOutputGuard struct {
	t          *testing.T
	resultsDir string
	persist    bool
}

// NewTestOutputGuardWithDir creates a new output guard with a specific results
// directory. Outputs are written only when persist is set.
func NewTestOutputGuardWithDir(t *testing.T, resultsDir string, persist bool) *TestOutputGuard {
	return &TestOutputGuard{
		t:          t,
		resultsDir: resultsDir,
		persist:    persist,
	}
}

// AssertContains checks if output contains expected text
func (g *TestOutputGuard) AssertContains(output, expected string) {
	g.t.Helper()
	if !strings.Contains(output, expected) {
		g.t.Errorf("Expected output to contain %q, but it didn't.\nOutput: %s", expected, truncate(output, 500))
	}
}

// AssertNotContains checks if output does not contain text
func (g *TestOutputGuard) AssertNotContains(output, unexpected string) {
	g.t.Helper()
	if strings.Contains(output, unexpected) {
		g.t.Errorf("Expected output NOT to contain %q, but it did.\nOutput: %s", unexpected, truncate(output, 500))
	}
}

// SaveResult saves output to the results directory
func (g *TestOutputGuard) SaveResult(name, output string) error {
	if !g.persist {
		return nil
	}

	if err := os.MkdirAll(g.resultsDir, 0755); err != nil {
		return err
	}

	outputPath := filepath.Join(g.resultsDir, name+".md")
	return os.WriteFile(outputPath, []byte(output), 0644)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
