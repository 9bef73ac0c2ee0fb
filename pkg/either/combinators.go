package either

// Map applies f to the success value. A Failure passes through and f is not called.
func Map[S, S2, F any](r Result[S, F], f func(S) S2) Result[S2, F] {
	if r.IsSuccess() {
		return Success[S2, F](f(r.value))
	}
	return Failure[S2, F](r.err)
}

// MapError applies f to the failure value. A Success passes through and f is not called.
func MapError[S, F, F2 any](r Result[S, F], f func(F) F2) Result[S, F2] {
	if r.IsFailure() {
		return Failure[S, F2](f(r.err))
	}
	return Success[S, F2](r.value)
}

func MapLeft[S, F, F2 any](r Result[S, F], f func(F) F2) Result[S, F2] {
	return MapError(r, f)
}

// Bind chains a computation that itself returns a Result. The first Failure
// in a chain is returned unchanged and later steps are skipped.
func Bind[S, S2, F any](r Result[S, F], f func(S) Result[S2, F]) Result[S2, F] {
	if r.IsSuccess() {
		return f(r.value)
	}
	return Failure[S2, F](r.err)
}

func FlatMap[S, S2, F any](r Result[S, F], f func(S) Result[S2, F]) Result[S2, F] {
	return Bind(r, f)
}

// GetOrElse returns the held value for a Success, even a zero or nil one,
// and def for a Failure.
func (r Result[S, F]) GetOrElse(def S) S {
	if r.IsSuccess() {
		return r.value
	}
	return def
}

func GetOrElse[S, F any](r Result[S, F], def S) S {
	return r.GetOrElse(def)
}

// Fold reduces r to a single value. Exactly one of the handlers is called.
func Fold[S, F, T any](r Result[S, F], onFailure func(F) T, onSuccess func(S) T) T {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
