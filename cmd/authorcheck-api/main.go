// Command authorcheck-api serves the detect and humanize endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"authorcheck/internal/platform/config"
	"authorcheck/internal/platform/logger"
	"authorcheck/internal/services/api"
)

func main() {
	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = "authorcheck-api"
	}
	logger.Init(opt)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Serve(ctx, config.New()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
