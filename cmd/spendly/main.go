package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/NicoCalcagno/Spendly/internal/api"
	"github.com/NicoCalcagno/Spendly/internal/cli"
	"github.com/NicoCalcagno/Spendly/internal/session"
	"github.com/NicoCalcagno/Spendly/internal/ui"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("SPENDLY_LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)
	tokens := cli.InitTokenStore(logger, cfg.TokenDir)

	client := api.NewClient(cfg.APIBaseURL, tokens, logger, cfg.HTTPTimeout)
	sessions := session.NewManager(client, tokens, logger)
	app := ui.NewApp(client, sessions, cfg, logger, os.Stdin, os.Stdout)

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	logger.Info("Starting spendly", "api_url", cfg.APIBaseURL)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
