// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskeither

import (
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/affine"
)

// TryCatch adapts a Go function returning (A, error) into a TaskEither.
// A non-nil error, or a panic raised by f, is passed to onRejected to build
// the Left. A recovered panic arrives as an error wrapping [either.ErrPanic].
func TryCatch[E, A any](f func() (A, error), onRejected func(error) E) TaskEither[E, A] {
	return func() either.Either[E, A] {
		return either.MapLeft(either.TryCatch(f), onRejected)
	}
}

// TryCatchK lifts a fallible unary function.
func TryCatchK[E, A, B any](f func(A) (B, error), onRejected func(error) E) func(A) TaskEither[E, B] {
	return func(a A) TaskEither[E, B] {
		return TryCatch(func() (B, error) { return f(a) }, onRejected)
	}
}

// Taskify0 adapts a callback-style function with no arguments.
// The TaskEither blocks until the callback fires. Only the first callback
// invocation counts; later ones are dropped.
func Taskify0[A any](f func(cb func(A, error))) TaskEither[error, A] {
	return func() either.Either[error, A] {
		slot := affine.NewSlot[either.Either[error, A]]()
		f(func(a A, err error) {
			if slot.Settled() {
				return
			}
			slot.Settle(either.FromError(a, err))
		})
		return slot.Wait()
	}
}

// Taskify1 adapts a callback-style function with one argument.
func Taskify1[T, A any](f func(T, func(A, error))) func(T) TaskEither[error, A] {
	return func(t T) TaskEither[error, A] {
		return Taskify0(func(cb func(A, error)) { f(t, cb) })
	}
}

// Taskify2 adapts a callback-style function with two arguments.
func Taskify2[T1, T2, A any](f func(T1, T2, func(A, error))) func(T1, T2) TaskEither[error, A] {
	return func(t1 T1, t2 T2) TaskEither[error, A] {
		return Taskify0(func(cb func(A, error)) { f(t1, t2, cb) })
	}
}
