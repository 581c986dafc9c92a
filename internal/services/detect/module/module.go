// Package module wires detect into the API using modkit
package module

import (
	"net/http"

	modkit "authorcheck/internal/modkit"
	"authorcheck/internal/modkit/httpkit"
	str "authorcheck/internal/platform/strings"
	detecthttp "authorcheck/internal/services/detect/http"
	detectsvc "authorcheck/internal/services/detect/service"
)

// Module implements the detect module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc detectsvc.Service
}

// New constructs the detect module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("detect", "/detect", opts...)
	deps = deps.WithDefaults()
	cfg := FromConfig(deps.Cfg)

	svc := detectsvc.New(deps.Scanner, deps.Classifier)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: adaptDetectPort{svc: svc}}

	m.register = func(r httpkit.Router) {
		detecthttp.Register(r, m.ports.Service, cfg.MaxBodyBytes)
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
