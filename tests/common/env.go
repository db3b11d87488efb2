// Package common provides shared test infrastructure for the API suites.
//
// FINQA_TEST_TARGET selects what the suites talk to:
//
//	twin    an in-process replica of the Finances API (default)
//	remote  the base URL of the configured environment
//	docker  the twin image started with testcontainers
package common

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"

	"github.com/bobmcallan/finqa/internal/app"
	"github.com/bobmcallan/finqa/internal/clients/finances"
	fcommon "github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/fixtures"
	"github.com/bobmcallan/finqa/internal/report"
	"github.com/bobmcallan/finqa/internal/twin"
)

// Test targets
const (
	TargetTwin   = "twin"
	TargetRemote = "remote"
	TargetDocker = "docker"
)

// Env is the per-test context: a configured App bound to the selected target.
type Env struct {
	t          *testing.T
	App        *app.App
	Target     string
	ResultsDir string

	ctx       context.Context
	cancel    context.CancelFunc
	twin      *twin.Twin
	server    *httptest.Server
	container testcontainers.Container
}

// NewEnv creates the test context for the target named by FINQA_TEST_TARGET.
// It returns nil after skipping t when the target cannot be used.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	target := os.Getenv("FINQA_TEST_TARGET")
	if target == "" {
		target = TargetTwin
	}

	root := findProjectRoot()
	cfg, err := fcommon.LoadConfig(filepath.Join(root, "config", "finqa.toml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if !filepath.IsAbs(cfg.Fixtures.Path) {
		cfg.Fixtures.Path = filepath.Join(root, cfg.Fixtures.Path)
	}

	timeout := 60 * time.Second
	if envTimeout := os.Getenv("FINQA_TEST_TIMEOUT"); envTimeout != "" {
		if d, err := time.ParseDuration(envTimeout); err == nil {
			timeout = d
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	env := &Env{t: t, Target: target, ctx: ctx, cancel: cancel}

	var baseURL string
	switch target {
	case TargetTwin:
		fx, err := fixtures.Load(cfg.Fixtures.Path, cfg.Environment)
		if err != nil {
			cancel()
			t.Fatalf("Failed to load fixtures: %v", err)
		}
		env.twin, err = twin.New(cfg.Twin, fx)
		if err != nil {
			cancel()
			t.Fatalf("Failed to create twin: %v", err)
		}
		env.server = httptest.NewServer(env.twin.Handler())
		baseURL = env.server.URL + twin.APIPrefix
	case TargetRemote:
		if baseURL, err = cfg.BaseURL(); err != nil {
			cancel()
			t.Fatalf("Remote target: %v", err)
		}
	case TargetDocker:
		env.container, baseURL, err = startTwinContainer(ctx, cfg.Environment)
		if err != nil {
			cancel()
			t.Skipf("Docker target unavailable: %v", err)
			return nil
		}
	default:
		cancel()
		t.Fatalf("Unknown FINQA_TEST_TARGET %q (want twin, remote or docker)", target)
	}

	// Results directory with datetime prefix: {datetime}-{test-name}
	resultsRoot := cfg.Results.Dir
	if !filepath.IsAbs(resultsRoot) {
		resultsRoot = filepath.Join(root, resultsRoot)
	}
	env.ResultsDir = report.RunDir(resultsRoot, t.Name(), time.Now())

	logger := fcommon.NewLogger("warn")
	opts := []app.Option{app.WithBaseURL(baseURL), app.WithLogger(logger)}
	if cfg.Results.Enabled {
		opts = append(opts, app.WithRecorder(report.NewRecorder(env.ResultsDir, logger)))
	}

	env.App, err = app.NewAppFromConfig(cfg, opts...)
	if err != nil {
		env.Cleanup()
		t.Fatalf("Failed to initialize app: %v", err)
	}

	t.Logf("Target %s at %s (environment %s)", target, baseURL, cfg.Environment)
	return env
}

// Cleanup tears down the server or container
func (e *Env) Cleanup() {
	if e == nil {
		return
	}
	if e.server != nil {
		e.server.Close()
	}
	if e.container != nil {
		if err := e.container.Terminate(context.Background()); err != nil {
			e.t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
	if e.cancel != nil {
		e.cancel()
	}
}

// Context returns the test context
func (e *Env) Context() context.Context {
	return e.ctx
}

// Client returns the request builders bound to the target.
func (e *Env) Client() *finances.Client {
	return e.App.Client
}

// Fixtures returns the fixture store of the active environment.
func (e *Env) Fixtures() *fixtures.Store {
	return e.App.Fixtures
}

// Token logs in as the users fixture matching profiles and returns the
// Authorization header value. It fails the test on error.
func (e *Env) Token(profiles string) string {
	e.t.Helper()
	token, err := e.App.Token(e.ctx, profiles)
	if err != nil {
		e.t.Fatalf("Failed to obtain token for %q: %v", profiles, err)
	}
	return token
}

// Resolve returns a fixture record and fails the test when none matches.
func (e *Env) Resolve(root, profiles string) fixtures.Record {
	e.t.Helper()
	rec, err := e.App.Fixtures.Resolve(root, profiles)
	if err != nil {
		e.t.Fatalf("%v", err)
	}
	return rec
}

// IsTwin reports whether the suites run against the in-process twin.
func (e *Env) IsTwin() bool {
	return e.twin != nil
}

// Reset restores the twin to its seeded state. It is a no-op elsewhere.
func (e *Env) Reset() {
	e.t.Helper()
	if e.twin == nil {
		return
	}
	if err := e.twin.Reset(); err != nil {
		e.t.Fatalf("Failed to reset twin: %v", err)
	}
}

// OutputGuard returns a TestOutputGuard that uses the same results directory as this Env
func (e *Env) OutputGuard() *TestOutputGuard {
	return NewTestOutputGuardWithDir(e.t, e.ResultsDir, e.App.Config.Results.Enabled)
}

// findProjectRoot walks up directories to find go.mod
func findProjectRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
