package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves the chi pprof bundle under prefix, so /debug yields /debug/pprof/ and /debug/vars.
// Nothing is registered when disabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prof := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Handle(prefix, prof)
	r.Handle(prefix+"/*", prof)
}
