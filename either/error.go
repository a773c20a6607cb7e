// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"errors"
	"fmt"
)

// ErrPanic marks errors produced by recovering a panic inside TryCatch.
// Use errors.Is to detect it.
var ErrPanic = errors.New("either: recovered panic")

// ErrNilLeft is returned by ToError for a Left holding a nil error.
var ErrNilLeft = errors.New("either: nil error in Left")

// PanicError converts a recovered panic value into an error wrapping ErrPanic.
// Errors raised with panic keep their chain, so errors.Is works on both.
func PanicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}

// FromError converts a Go (value, error) pair into an Either.
func FromError[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}

// ToError converts an Either back into a Go (value, error) pair.
// A Left always yields a non-nil error; a nil Left becomes ErrNilLeft.
func ToError[A any](e Either[error, A]) (A, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero A
	if e.left == nil {
		return zero, ErrNilLeft
	}
	return zero, e.left
}

// TryCatch runs f and captures its error, or a panic raised by f, as a Left.
func TryCatch[A any](f func() (A, error)) (result Either[error, A]) {
	defer func() {
		if r := recover(); r != nil {
			result = Left[error, A](PanicError(r))
		}
	}()
	return FromError(f())
}
