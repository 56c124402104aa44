package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/de-tools/entity-atlas/pkg/runtime/terminal"
	"github.com/de-tools/entity-atlas/pkg/services/analysis"
	"github.com/de-tools/entity-atlas/pkg/services/config"
	"github.com/rs/zerolog"
)

func main() {
	settings, err := config.Load(os.Getenv("ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(settings.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := terminal.NewCLI(terminal.Options{
		Runner:   analysis.NewEngine(),
		Output:   os.Stdout,
		Debounce: settings.Watch.Debounce,
	})

	if err := cli.ExecuteContext(logger.WithContext(ctx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
