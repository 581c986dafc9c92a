package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"authorcheck/internal/platform/config"
	"authorcheck/internal/platform/net/middleware"
)

// StackOptions tunes the common middleware stack
type StackOptions struct {
	// Timeout cancels the request context, 0 disables it
	Timeout time.Duration
	// Slow marks access log lines at warn level
	Slow time.Duration
	// CORSOrigins empty allows any origin
	CORSOrigins []string
	// MaxInFlight caps concurrent requests, 0 is unlimited
	MaxInFlight int
	// KeepSlashes lists path prefixes that serve their own trailing slash routes
	KeepSlashes []string
}

// StackFromConfig reads StackOptions from CORE_API_ keys
func StackFromConfig(cfg config.Conf) StackOptions {
	c := cfg.Prefix("CORE_API_")
	return StackOptions{
		Timeout:     c.MayDuration("REQUEST_TIMEOUT", 60*time.Second),
		Slow:        time.Duration(c.MayInt("SLOW_MS", 500)) * time.Millisecond,
		CORSOrigins: c.MayCSV("CORS_ORIGINS", []string{"*"}),
		MaxInFlight: c.MayInt("MAX_IN_FLIGHT", 0),
		KeepSlashes: []string{"/api/docs", "/debug"},
	}
}

// CommonStack returns the baseline middleware slice, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID,
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// cross-origin for the browser landing page
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(o.KeepSlashes...),
		middleware.Throttle(o.MaxInFlight),
	}
	if o.Timeout > 0 {
		stack = append(stack, middleware.Timeout(o.Timeout))
	}
	return stack
}
