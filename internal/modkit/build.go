package modkit

import (
	"net/http"

	"authorcheck/internal/modkit/httpkit"
)

// Built is the resolved module setup after defaults and options apply
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Subrouter wraps the prefixed router before Register runs, identity by default
	Subrouter func(httpkit.Router) httpkit.Router
	// Register attaches extra endpoints after the module's own, no-op by default
	Register func(httpkit.Router)
}

// Option overrides part of a module's setup
type Option func(*Built)

// Build starts from the module's own name and prefix, applies opts in order and fills the hooks.
// The returned middleware slice never aliases a caller's slice
func Build(name, prefix string, opts ...Option) Built {
	b := Built{Name: name, Prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}

// WithName renames the module; the name shows in logs and port lookup panics
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix moves the module to another mount path
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends middleware that runs only for this module's routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands the module a port set owned by another module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithSubrouter wraps the module router, e.g. to add a nested path
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister attaches extra endpoints to the module router
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Built) { b.Register = fn } }
