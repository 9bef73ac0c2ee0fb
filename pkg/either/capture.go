package either

import (
	"time"

	"github.com/google/uuid"
)

// Captured is the failure produced by FromComputation. It wraps the error
// the computation panicked with.
type Captured struct {
	id        uuid.UUID
	createdAt time.Time
	err       error
}

func newCaptured(err error) *Captured {
	return &Captured{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func (c *Captured) Error() string {
	return "panic: " + c.err.Error()
}

func (c *Captured) Unwrap() error {
	return c.err
}

func (c *Captured) Id() uuid.UUID {
	return c.id
}

// CreatedAt time of capture (UTC)
func (c *Captured) CreatedAt() time.Time {
	return c.createdAt
}

// FromComputation calls thunk and wraps its return value as a Success. If
// thunk panics with an error value the panic is stopped and the error is
// returned as a Failure holding a *Captured.
//
// Panics with non-error values and cancellation errors are re-raised.
// runtime.Goexit is never intercepted.
func FromComputation[S any](thunk func() S) (res Result[S, error]) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, ok := p.(error)
		if !ok || IsCancellationError(err) {
			panic(p)
		}
		res = Failure[S, error](newCaptured(err))
	}()

	return Success[S, error](thunk())
}

// Try converts a Go (value, error) call into a Result. A typed nil error
// counts as no error.
func Try[S any](fn func() (S, error)) Result[S, error] {
	return FromPair(fn())
}

func FromPair[S any](value S, err error) Result[S, error] {
	if !IsNil(err) {
		return Failure[S, error](err)
	}
	return Success[S, error](value)
}
