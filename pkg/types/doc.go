// Package types defines the person record types, the shared nickname, the
// Capability marker, and the Cupboard and Table storage interfaces with their
// standard errors.
package types
