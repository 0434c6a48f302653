// Package errors provides unified error handling for uakit.
//
// It implements structured error types with machine-readable error codes
// so callers can distinguish fatal configuration errors (an unresolvable
// filter value, an unknown catalog category) from internal failures
// without matching on message strings.
package errors
