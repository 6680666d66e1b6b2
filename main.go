package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"goeda/adapters/charts"
	"goeda/adapters/tabular"
	"goeda/app"
	"goeda/domain/core"
	"goeda/internal"
	"goeda/internal/config"
	"goeda/internal/errors"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	runID := core.NewRunID()
	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Logging.Level)).With("run", runID.String())
	logger.Info("reading %s, writing charts to %s", appConfig.Data.InputFile, appConfig.Charts.OutputDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := tabular.NewReader(appConfig.Data.InputFile, logger)
	renderer := charts.NewGenerator(charts.Config{
		OutputDir: appConfig.Charts.OutputDir,
		DPI:       appConfig.Charts.DPI,
	}, logger)

	pipeline := app.NewPipeline(reader, renderer, os.Stdout, logger)
	if _, err := pipeline.Run(ctx); err != nil {
		stop()
		log.Fatalf("Analysis failed (%s): %v", describeFailure(err), err)
	}
}

// describeFailure names the failure category shown in the fatal log line
func describeFailure(err error) string {
	switch {
	case core.IsStatisticalDomainError(err):
		return "statistical domain: degenerate test input"
	case core.IsNotFoundError(err):
		return "not found"
	case errors.IsAppError(err):
		return strings.ToLower(strings.ReplaceAll(errors.GetCode(err), "_", " "))
	default:
		return "unexpected"
	}
}
