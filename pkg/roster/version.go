// Package roster holds project-wide constants.
package roster

// Version is the roster release version.
const Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/roster"
