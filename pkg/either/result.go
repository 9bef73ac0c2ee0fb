package either

import "fmt"

// Result holds either a success value of type S or a failure value of type F.
// The zero value is a Failure carrying the zero F.
type Result[S, F any] struct {
	value     S
	err       F
	isSuccess bool
}

func Success[S, F any](value S) Result[S, F] {
	return Result[S, F]{
		value:     value,
		isSuccess: true,
	}
}

func Failure[S, F any](err F) Result[S, F] {
	return Result[S, F]{
		err:       err,
		isSuccess: false,
	}
}

// Right is Success under the Left/Right naming.
func Right[S, F any](value S) Result[S, F] {
	return Success[S, F](value)
}

// Left is Failure under the Left/Right naming.
func Left[S, F any](err F) Result[S, F] {
	return Failure[S, F](err)
}

// Result returns the success value, or the zero S for a Failure.
func (r Result[S, F]) Result() S {
	return r.value
}

// Err returns the failure value, or the zero F for a Success.
func (r Result[S, F]) Err() F {
	return r.err
}

func (r Result[S, F]) Get() (S, bool) {
	return r.value, r.isSuccess
}

func (r Result[S, F]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[S, F]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[S, F]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

// Equal reports whether a and b hold the same variant and payload.
func Equal[S, F comparable](a, b Result[S, F]) bool {
	return a == b
}
