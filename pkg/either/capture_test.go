package either

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func divide(a, b int) func() int {
	return func() int { return a / b }
}

func TestFromComputation_Success(t *testing.T) {
	t.Parallel()
	res := FromComputation(divide(10, 2))

	require.True(t, res.IsSuccess())
	assert.Equal(t, 5, res.Result())
	assert.Nil(t, res.Err())
}

func TestFromComputation_DivisionByZero(t *testing.T) {
	t.Parallel()
	res := FromComputation(divide(10, 0))

	require.True(t, res.IsFailure())

	var rtErr runtime.Error
	require.True(t, errors.As(res.Err(), &rtErr))
	assert.Contains(t, rtErr.Error(), "integer divide by zero")

	var captured *Captured
	require.True(t, errors.As(res.Err(), &captured))
	assert.NotEqual(t, uuid.Nil, captured.Id())
	assert.WithinDuration(t, time.Now().UTC(), captured.CreatedAt(), time.Minute)
	assert.Equal(t, "panic: "+rtErr.Error(), captured.Error())
}

func TestFromComputation_CapturesErrorPanic(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("sentinel")

	res := FromComputation(func() string {
		panic(fmt.Errorf("load: %w", sentinel))
	})

	require.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), sentinel)
}

func TestFromComputation_EachCaptureHasOwnId(t *testing.T) {
	t.Parallel()
	var a, b *Captured

	require.True(t, errors.As(FromComputation(divide(1, 0)).Err(), &a))
	require.True(t, errors.As(FromComputation(divide(1, 0)).Err(), &b))
	assert.NotEqual(t, a.Id(), b.Id())
}

func TestFromComputation_RepanicsNonError(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "not an error", func() {
		FromComputation(func() int { panic("not an error") })
	})
}

func TestFromComputation_RepanicsCancellation(t *testing.T) {
	t.Parallel()
	assert.PanicsWithError(t, context.Canceled.Error(), func() {
		FromComputation(func() int { panic(context.Canceled) })
	})
	assert.PanicsWithError(t, "wait: "+context.DeadlineExceeded.Error(), func() {
		FromComputation(func() int { panic(fmt.Errorf("wait: %w", context.DeadlineExceeded)) })
	})
}

func TestTry(t *testing.T) {
	t.Parallel()

	ok := Try(func() (int, error) { return strconv.Atoi("12") })
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 12, ok.Result())

	failed := Try(func() (int, error) { return strconv.Atoi("x") })
	require.True(t, failed.IsFailure())
	var numErr *strconv.NumError
	assert.ErrorAs(t, failed.Err(), &numErr)
}

type typedErr struct{}

func (*typedErr) Error() string { return "typed" }

func TestFromPair_TypedNilIsSuccess(t *testing.T) {
	t.Parallel()
	var nilPtr *typedErr

	res := FromPair(3, error(nilPtr))

	require.True(t, res.IsSuccess())
	assert.Equal(t, 3, res.Result())
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("x: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancellationError(errors.New("other")))
	assert.False(t, IsCancellationError(nil))
}
