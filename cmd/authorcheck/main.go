// Command authorcheck is the operator CLI for the detection engine
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"authorcheck/internal/cli"
	"authorcheck/internal/platform/logger"
)

func main() {
	// stdout carries command output, logs go to stderr
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	if opt.Service == "" {
		opt.Service = "authorcheck"
	}
	logger.Init(opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRoot(cli.DefaultEnv()).ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
