// Package module wires humanize into the API using modkit
package module

import (
	"net/http"

	modkit "authorcheck/internal/modkit"
	"authorcheck/internal/modkit/httpkit"
	str "authorcheck/internal/platform/strings"
	humanizehttp "authorcheck/internal/services/humanize/http"
	humanizesvc "authorcheck/internal/services/humanize/service"
)

// Module implements the humanize module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc humanizesvc.Service
}

// New constructs the humanize module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("humanize", "/humanize", opts...)
	deps = deps.WithDefaults()
	cfg := FromConfig(deps.Cfg)

	svc := humanizesvc.New(deps.Paraphraser)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: adaptHumanizePort{svc: svc}}

	m.register = func(r httpkit.Router) {
		humanizehttp.Register(r, m.ports.Service, cfg.MaxBodyBytes)
		b.Register(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
