package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/fixtures"
	"github.com/bobmcallan/finqa/internal/twin"
)

// startTwin serves a fresh twin and returns a config path and base URL for it.
func startTwin(t *testing.T) (string, string) {
	t.Helper()
	t.Setenv("FINQA_ENV", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("FINQA_FIXTURES", "")
	t.Setenv("FINQA_FINANCES_API", "")

	fixturePath, err := filepath.Abs(filepath.Join("..", "..", "data", "fixtures.json"))
	require.NoError(t, err)
	fx, err := fixtures.Load(fixturePath, common.EnvLocalhost)
	require.NoError(t, err)

	tw, err := twin.New(common.NewDefaultConfig().Twin, fx)
	require.NoError(t, err)
	srv := httptest.NewServer(tw.Handler())
	t.Cleanup(srv.Close)

	configPath := filepath.Join(t.TempDir(), "finqa.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
environment = "localhost"

[fixtures]
path = "`+filepath.ToSlash(fixturePath)+`"
`), 0644))

	return configPath, srv.URL + twin.APIPrefix
}

func TestRun_Env(t *testing.T) {
	configPath, baseURL := startTwin(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", configPath, "--base-url", baseURL, "env"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "localhost")
	assert.Contains(t, stdout.String(), baseURL)
	assert.Contains(t, stdout.String(), "default_errors")
}

func TestRun_Resolve(t *testing.T) {
	configPath, _ := startTwin(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", configPath, "resolve", "categories", "valid", "income"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "name: QA Salario")
	assert.Contains(t, stdout.String(), "- income")

	stdout.Reset()
	code = run([]string{"--config", configPath, "resolve", "users", "nobody"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "fixture not found")
}

func TestRun_Token(t *testing.T) {
	configPath, baseURL := startTwin(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", configPath, "--base-url", baseURL, "token"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "Bearer "))

	code = run([]string{"--config", configPath, "--base-url", baseURL, "token", "incorrect_password"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestRun_SmokeAgainstTwin(t *testing.T) {
	configPath, baseURL := startTwin(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", configPath, "--base-url", baseURL, "smoke"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stdout.String())
	assert.NotContains(t, stdout.String(), "FAIL")
	assert.Equal(t, 12, strings.Count(stdout.String(), "PASS"))
}

func TestRun_Usage(t *testing.T) {
	configPath, _ := startTwin(t)
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"--config", configPath, "frobnicate"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"--config", configPath, "resolve", "users"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "finqa: error:")
}

func TestRun_FlagsAfterCommand(t *testing.T) {
	configPath, baseURL := startTwin(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"env", "--config", configPath, "--base-url", baseURL, "--timeout", "5s"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), baseURL)

	assert.Equal(t, 2, run([]string{"env", "--timeout", "soon"}, &stdout, &stderr))
}
