// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readertaskeither

import (
	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/taskeither"
)

// TryCatch adapts an environment-reading Go function returning (A, error).
// A non-nil error or a panic is passed to onRejected.
func TryCatch[R, E, A any](f func(R) (A, error), onRejected func(error) E) ReaderTaskEither[R, E, A] {
	return func(r R) taskeither.TaskEither[E, A] {
		return taskeither.TryCatch(func() (A, error) { return f(r) }, onRejected)
	}
}

// TryCatchK lifts a fallible unary function.
func TryCatchK[R, E, A, B any](f func(R, A) (B, error), onRejected func(error) E) func(A) ReaderTaskEither[R, E, B] {
	return func(a A) ReaderTaskEither[R, E, B] {
		return TryCatch(func(r R) (B, error) { return f(r, a) }, onRejected)
	}
}

// Bracket acquires a resource, uses it and releases it, all with the same
// environment. release runs exactly once after use returns and sees use's
// result. A failing release replaces use's result.
func Bracket[R, E, Res, B any](
	acquire ReaderTaskEither[R, E, Res],
	use func(Res) ReaderTaskEither[R, E, B],
	release func(Res, either.Either[E, B]) ReaderTaskEither[R, E, effect.Unit],
) ReaderTaskEither[R, E, B] {
	return func(r R) taskeither.TaskEither[E, B] {
		return taskeither.Bracket(acquire(r),
			func(res Res) taskeither.TaskEither[E, B] { return use(res)(r) },
			func(res Res, result either.Either[E, B]) taskeither.TaskEither[E, effect.Unit] {
				return release(res, result)(r)
			},
		)
	}
}
