package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"rating_widget/internal/application"
	"rating_widget/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx, os.Stdout); err != nil {
		slog.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	slog.Info("application stopped")
}
