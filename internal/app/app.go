// Package app wires the shared test context: configuration, logger, fixture
// store, request builders, token provider and the raw response recorder.
// It is the core used by cmd/finqa and the suites under tests/.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/finqa/internal/clients/finances"
	"github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/fixtures"
	"github.com/bobmcallan/finqa/internal/report"
	"github.com/bobmcallan/finqa/internal/tokens"
)

// App holds everything a suite needs to talk to the Finances API.
type App struct {
	Config   *common.Config
	Logger   *common.Logger
	Fixtures *fixtures.Store
	Client   *finances.Client
	Tokens   *tokens.Provider
	Recorder *report.Recorder
	BaseURL  string
}

type options struct {
	baseURL    string
	logger     *common.Logger
	recorder   *report.Recorder
	fixtureOpt []fixtures.Option
}

// Option adjusts how NewApp wires the context.
type Option func(*options)

// WithBaseURL targets baseURL instead of the configured environment URL.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithLogger replaces the logger built from the logging section.
func WithLogger(logger *common.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRecorder captures every response body into r.
func WithRecorder(r *report.Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

// WithFixtureOptions passes options through to the fixture store.
func WithFixtureOptions(opts ...fixtures.Option) Option {
	return func(o *options) {
		o.fixtureOpt = append(o.fixtureOpt, opts...)
	}
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPath picks the config file: explicit path, FINQA_CONFIG,
// finqa.toml next to the binary, then config/finqa.toml.
func ResolveConfigPath(configPath string) string {
	if configPath == "" {
		configPath = os.Getenv("FINQA_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "finqa.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/finqa.toml" // fallback for development
		}
	}
	return configPath
}

// NewApp loads configuration from configPath (see ResolveConfigPath) and
// wires the test context for the active environment.
func NewApp(configPath string, opts ...Option) (*App, error) {
	config, err := common.LoadConfig(ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewAppFromConfig(config, opts...)
}

// NewAppFromConfig wires the test context from an already loaded config.
func NewAppFromConfig(config *common.Config, opts ...Option) (*App, error) {
	startupStart := time.Now()

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = common.NewLoggerFromConfig(config.Logging)
	}

	baseURL := o.baseURL
	if baseURL == "" {
		var err error
		if baseURL, err = config.BaseURL(); err != nil {
			return nil, err
		}
	}

	fixturePath := resolveFixturePath(config.Fixtures.Path)
	store, err := fixtures.Load(fixturePath, config.Environment, o.fixtureOpt...)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	clientOpts := []finances.ClientOption{
		finances.WithLogger(logger),
		finances.WithRateLimit(config.Client.RateLimit),
	}
	if o.recorder != nil {
		clientOpts = append(clientOpts, finances.WithRecorder(o.recorder))
	}
	client := finances.NewClient(baseURL, clientOpts...)

	a := &App{
		Config:   config,
		Logger:   logger,
		Fixtures: store,
		Client:   client,
		Tokens:   tokens.NewProvider(client.Auth()),
		Recorder: o.recorder,
		BaseURL:  client.BaseURL(),
	}

	logger.Debug().
		Str("environment", config.Environment).
		Str("base_url", a.BaseURL).
		Str("fixtures", fixturePath).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// Token resolves a users fixture by profiles and returns a ready
// Authorization header value for it.
func (a *App) Token(ctx context.Context, profiles string) (string, error) {
	user, err := a.Fixtures.User(profiles)
	if err != nil {
		return "", err
	}
	return a.Tokens.ObtainBearer(ctx, user.Credentials())
}

// resolveFixturePath keeps absolute and existing relative paths, and
// otherwise looks next to the binary.
func resolveFixturePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	candidate := filepath.Join(getBinaryDir(), path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}
