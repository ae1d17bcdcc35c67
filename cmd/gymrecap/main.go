// Package main provides the gymrecap command-line interface.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/okarhu/gymrecap/internal/errors"
	"github.com/okarhu/gymrecap/internal/logging"
)

func main() {
	ctx := context.Background()

	level := slog.LevelInfo
	if os.Getenv("GYMRECAP_DEBUG") != "" {
		level = slog.LevelDebug
	}
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	app := &application{logger: logger, lookupEnv: os.LookupEnv, out: os.Stdout}

	if err := newRootCmd(app).ExecuteContext(ctx); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "command failed", errors.SlogError(err))
		os.Exit(1)
	}
}
