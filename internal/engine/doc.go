// Package engine orchestrates the orbital computation pipeline: quantum
// number validation, volume sampling, density derivation and isosurface
// extraction, returning a renderable payload with sign tags and request
// metadata.
//
// The engine is the boundary consumed by hosts (CLI commands, the TUI
// viewer); it never imports them. A single request is synchronous and
// internally parallel:
//
//	eng := engine.New()
//	res, err := eng.Compute(ctx, engine.Request{N: 3, L: 2, M: -2})
//
// Superseded in-flight computations are discarded by canceling their
// context; the engine holds no mutable shared state, so an abandoned
// request leaves nothing to corrupt. NewCached adds an optional
// read-through memoization layer keyed on the immutable request tuple.
package engine
