// Package sqlite provides the public API for the SQLite Cupboard backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/internal/sqlite"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// Option configures a backend created by NewBackend.
type Option = sqlite.Option

// WithLogger sets the logger used for lifecycle and persistence events.
func WithLogger(logger *zap.Logger) Option {
	return sqlite.WithLogger(logger)
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".roster-db",
//	})
//	defer backend.Detach()
func NewBackend(opts ...Option) types.Cupboard {
	return sqlite.NewBackend(opts...)
}
