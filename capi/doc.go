// Package capi exposes vecmath through a flat, handle-based function set
// suitable for a C ABI.
//
// Each package-level function corresponds to one exported symbol of the
// shared library built from cmd/libvecmath. Vectors live in a process-wide
// [Registry] and are addressed by opaque [Handle] values; the caller frees
// what it allocates with [Destroy].
//
// Failures never cross the boundary as errors. An invalid or stale handle
// makes allocating functions return [Null], getters return NaN and mutators
// do nothing; each such call is logged at Warn through vecmath.Logger.
// Go callers that want errors use a [Registry] directly.
package capi
