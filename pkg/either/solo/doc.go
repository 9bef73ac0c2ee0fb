// Package solo contains single-value helpers that complement the core
// combinators of package either.
//
// Highlights:
// - Validate/AndValidate: turn a failed check into a Failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - FailOnError: fail a Success after inspecting its value
// - Recover/OrElse: leave the failure track
// - Sequence: collect many Results into one
package solo
