package net_test

import (
	"context"
	"testing"

	"authorcheck/internal/platform/logger"
	pnet "authorcheck/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets chi and logger ids", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := chimw.GetReqID(ctx); got != "req-123" {
			t.Fatalf("chi id got %q", got)
		}
		if got := logger.RequestID(ctx); got != "req-123" {
			t.Fatalf("logger id got %q", got)
		}
	})

	t.Run("falls back to logger id", func(t *testing.T) {
		ctx := logger.WithRequest(base, "log-only")
		if got := pnet.RequestID(ctx); got != "log-only" {
			t.Fatalf("RequestID got %q", got)
		}
	})

	t.Run("empty id returns same ctx", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "")
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when id empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}
