package solo

import (
	"github.com/ib-77/either/pkg/either"
)

func Validate[S, F any](input S, validate func(in S) (isValid bool, failure F)) either.Result[S, F] {
	return AndValidate(either.Success[S, F](input), validate)
}

func AndValidate[S, F any](input either.Result[S, F],
	validate func(in S) (isValid bool, failure F)) either.Result[S, F] {

	if input.IsSuccess() {
		if isValid, failure := validate(input.Result()); !isValid {
			return either.Failure[S, F](failure)
		}
	}
	return input
}

func Tee[S, F any](input either.Result[S, F], onSuccess func(r S)) either.Result[S, F] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func TeeIf[S, F any](input either.Result[S, F],
	condition func(r S) bool,
	onSuccessAndCondition func(r S)) either.Result[S, F] {

	if input.IsSuccess() && condition(input.Result()) {
		onSuccessAndCondition(input.Result())
	}
	return input
}

func DoubleTee[S, F any](input either.Result[S, F],
	onSuccess func(r S),
	onFailure func(err F)) either.Result[S, F] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		onFailure(input.Err())
	}
	return input
}

// FailOnError runs check on a success value and returns a Failure when check
// reports one. Failures pass through unchecked.
func FailOnError[S, F any](input either.Result[S, F],
	check func(in S) (failure F, failed bool)) either.Result[S, F] {

	if input.IsSuccess() {
		if failure, failed := check(input.Result()); failed {
			return either.Failure[S, F](failure)
		}
	}
	return input
}

func Recover[S, F any](input either.Result[S, F], onFailure func(err F) S) either.Result[S, F] {
	if input.IsFailure() {
		return either.Success[S, F](onFailure(input.Err()))
	}
	return input
}

// OrElse switches to an alternative computation when input is a Failure.
func OrElse[S, F any](input either.Result[S, F],
	alternative func(err F) either.Result[S, F]) either.Result[S, F] {

	if input.IsFailure() {
		return alternative(input.Err())
	}
	return input
}

// Sequence returns the first Failure among inputs, or a Success holding every
// value in order.
func Sequence[S, F any](inputs ...either.Result[S, F]) either.Result[[]S, F] {
	values := make([]S, 0, len(inputs))
	for _, in := range inputs {
		if in.IsFailure() {
			return either.Failure[[]S, F](in.Err())
		}
		values = append(values, in.Result())
	}
	return either.Success[[]S, F](values)
}
