// Package chain provides a fluent wrapper around either.Result[S, F]
// for building synchronous railway-style pipelines.
//
// It composes Bind, Map, MapError and Fold behind a Chain[S, F] type so
// that multi-step pipelines read top to bottom without dealing with the
// branching result at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: continue with a function returning a Result (type-changing form is a function)
// - Map/MapError: transform the success or failure value
// - Ensure: run a side effect on success without changing the result
// - GetOrElse/Fold: collapse the chain into a final value
package chain
