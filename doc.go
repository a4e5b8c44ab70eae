// Package envassert provides assertions that are switched off by
// default and are enabled by setting the RUST_ENV_ASSERT environment
// variable to "true" before the process starts.
//
// When assertions are disabled a call costs a single cached-flag
// check; the condition expression itself is still evaluated by the
// caller, as with any function argument. When enabled, a violated
// assertion panics through the logger found in the context, so the
// diagnostic is reported before the stack unwinds. The panic is not
// intended to be recovered.
package envassert
