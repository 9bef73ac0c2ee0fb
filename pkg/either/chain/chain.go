package chain

import (
	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/solo"
)

// Chain wraps an either.Result to enable fluent chaining
type Chain[S, F any] struct {
	result either.Result[S, F]
}

// Start creates a new chain from an either.Result
func Start[S, F any](result either.Result[S, F]) *Chain[S, F] {
	return &Chain[S, F]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[S, F any](value S) *Chain[S, F] {
	return &Chain[S, F]{
		result: either.Success[S, F](value),
	}
}

// Result returns the underlying either.Result
func (c *Chain[S, F]) Result() either.Result[S, F] {
	return c.result
}

// Then chains a function that returns either.Result[S, F]
func (c *Chain[S, F]) Then(onSuccess func(S) either.Result[S, F]) *Chain[S, F] {
	return Then(c, onSuccess)
}

// Map chains a pure transformation keeping the value type
func (c *Chain[S, F]) Map(onSuccess func(S) S) *Chain[S, F] {
	return Map(c, onSuccess)
}

func (c *Chain[S, F]) MapError(onFailure func(F) F) *Chain[S, F] {
	return &Chain[S, F]{
		result: either.MapError(c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[S, F]) Ensure(onSuccess func(S)) *Chain[S, F] {
	return &Chain[S, F]{
		result: solo.Tee(c.result, onSuccess),
	}
}

func (c *Chain[S, F]) GetOrElse(def S) S {
	return c.result.GetOrElse(def)
}

// Then chains a function that returns either.Result[S2, F]
func Then[S, S2, F any](c *Chain[S, F], onSuccess func(S) either.Result[S2, F]) *Chain[S2, F] {
	return &Chain[S2, F]{
		result: either.Bind(c.result, onSuccess),
	}
}

// Map chains a pure transformation function
func Map[S, S2, F any](c *Chain[S, F], onSuccess func(S) S2) *Chain[S2, F] {
	return &Chain[S2, F]{
		result: either.Map(c.result, onSuccess),
	}
}

// Fold collapses the chain into a final value using either.Fold
func Fold[S, F, T any](c *Chain[S, F], onFailure func(F) T, onSuccess func(S) T) T {
	return either.Fold(c.result, onFailure, onSuccess)
}
