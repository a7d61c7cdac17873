//go:build !debug

package debug

// Debug enables verbose logging and full stack traces.
// Build with -tags=debug to set it.
const Debug = false
