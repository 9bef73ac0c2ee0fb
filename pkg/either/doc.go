// Package either defines Result[S, F], a value that is exactly one of
// Success(S) or Failure(F), and the combinators that compose such values
// without branching at every step.
//
// Highlights:
// - Success/Failure (Right/Left): construct Result[S, F]
// - IsSuccess/IsFailure/Get: query the variant
// - Map/MapError: transform one side, the other passes through untouched
// - Bind/FlatMap: chain a step that itself returns a Result
// - GetOrElse/Fold: reduce a Result to a plain value
// - FromComputation/Try/FromPair: build a Result from a panicking or
//   (value, error) returning call
//
// Results are immutable; every combinator returns a new value.
package either
