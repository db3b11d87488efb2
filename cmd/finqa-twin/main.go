// Command finqa-twin serves the in-memory replica of the Finances API so the
// suites can run without the Flask application.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bobmcallan/finqa/internal/app"
	"github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/twin"
)

func main() {
	configPath := app.ResolveConfigPath(os.Getenv("FINQA_CONFIG"))

	config, err := common.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	listenURL := fmt.Sprintf("http://%s:%d%s", config.Twin.Host, config.Twin.Port, twin.APIPrefix)

	a, err := app.NewAppFromConfig(config, app.WithBaseURL(listenURL))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	t, err := twin.New(config.Twin, a.Fixtures, twin.WithLogger(a.Logger))
	if err != nil {
		a.Logger.Fatal().Err(err).Msg("Failed to create twin")
	}

	common.PrintTwinBanner(os.Stdout, config, listenURL, a.Logger)

	go func() {
		if err := t.Start(); err != nil && err != http.ErrServerClosed {
			a.Logger.Fatal().Err(err).Msg("Twin server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	common.PrintShutdownBanner(os.Stdout, a.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := t.Shutdown(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("Twin shutdown failed")
	}
	a.Logger.Info().Msg("Twin stopped")
}
