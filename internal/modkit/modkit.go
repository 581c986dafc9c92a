// Package modkit wires HTTP modules from shared deps and per module options
package modkit

import "authorcheck/internal/modkit/httpkit"

// Module is the contract every mounted module satisfies
type Module interface {
	// MountRoutes registers the module's routes under its prefix
	MountRoutes(r httpkit.Router)
	// Ports returns the module's port set, usually a struct of interfaces
	Ports() any
	Name() string
}

// Builder is the constructor shape each module package exports as New
type Builder func(Deps, ...Option) Module
