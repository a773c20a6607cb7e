// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readertaskeither

import (
	"code.hybscloud.com/effect/internal/readert"
	"code.hybscloud.com/effect/semigroup"
	"code.hybscloud.com/effect/taskeither"
)

// ApPar applies a wrapped function to a wrapped value, running both
// concurrently with the same environment.
func ApPar[R, E, A, B any](fab ReaderTaskEither[R, E, func(A) B], fa ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, B] {
	return readert.Ap(taskeither.ApPar[E, A, B], fab, fa)
}

// ApSeq applies a wrapped function to a wrapped value; fa starts after fab
// has returned and is skipped when fab fails.
func ApSeq[R, E, A, B any](fab ReaderTaskEither[R, E, func(A) B], fa ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, B] {
	return readert.Ap(taskeither.ApSeq[E, A, B], fab, fa)
}

// Ap is ApPar.
func Ap[R, E, A, B any](fab ReaderTaskEither[R, E, func(A) B], fa ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, B] {
	return ApPar(fab, fa)
}

// ApValidation runs both concurrently and combines both failures with sg.
func ApValidation[R, E, A, B any](sg semigroup.Semigroup[E], fab ReaderTaskEither[R, E, func(A) B], fa ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, B] {
	return readert.Ap(func(tab taskeither.TaskEither[E, func(A) B], ta taskeither.TaskEither[E, A]) taskeither.TaskEither[E, B] {
		return taskeither.ApValidation(sg, tab, ta)
	}, fab, fa)
}

// ApFirst runs fa then fb, keeping the first success value.
func ApFirst[R, E, A, B any](fa ReaderTaskEither[R, E, A], fb ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, A] {
	return FlatMap(fa, func(a A) ReaderTaskEither[R, E, A] { return As(fb, a) })
}

// ApSecond runs fa then fb, keeping the second success value.
func ApSecond[R, E, A, B any](fa ReaderTaskEither[R, E, A], fb ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, B] {
	return FlatMap(fa, func(A) ReaderTaskEither[R, E, B] { return fb })
}
