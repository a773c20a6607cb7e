// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readertaskeither

import (
	"code.hybscloud.com/effect/reader"
	"code.hybscloud.com/effect/semigroup"
	"code.hybscloud.com/effect/task"
	"code.hybscloud.com/effect/taskeither"
)

// Alt returns ma if it succeeds, otherwise runs the alternative with the
// same environment.
func Alt[R, E, A any](ma ReaderTaskEither[R, E, A], that func() ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, A] {
	return func(r R) taskeither.TaskEither[E, A] {
		return taskeither.Alt(ma(r), func() taskeither.TaskEither[E, A] { return that()(r) })
	}
}

// AltValidation is Alt that combines both failures with sg.
func AltValidation[R, E, A any](sg semigroup.Semigroup[E], ma ReaderTaskEither[R, E, A], that func() ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, A] {
	return func(r R) taskeither.TaskEither[E, A] {
		return taskeither.AltValidation(sg, ma(r), func() taskeither.TaskEither[E, A] { return that()(r) })
	}
}

// OrElse recovers from a failure with a new computation.
func OrElse[R, E, F, A any](ma ReaderTaskEither[R, E, A], onLeft func(E) ReaderTaskEither[R, F, A]) ReaderTaskEither[R, F, A] {
	return func(r R) taskeither.TaskEither[F, A] {
		return taskeither.OrElse(ma(r), func(e E) taskeither.TaskEither[F, A] { return onLeft(e)(r) })
	}
}

// TapError runs onLeft on a failure; the original Left is kept unless
// onLeft fails.
func TapError[R, E, A, B any](ma ReaderTaskEither[R, E, A], onLeft func(E) ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, A] {
	return OrElse(ma, func(e E) ReaderTaskEither[R, E, A] {
		return FlatMap(onLeft(e), func(B) ReaderTaskEither[R, E, A] { return Left[R, E, A](e) })
	})
}

// OrLeft replaces a failure with one computed by an environment-reading task.
func OrLeft[R, E, F, A any](ma ReaderTaskEither[R, E, A], onLeft func(E) reader.Reader[R, task.Task[F]]) ReaderTaskEither[R, F, A] {
	return func(r R) taskeither.TaskEither[F, A] {
		return taskeither.OrLeft(ma(r), func(e E) task.Task[F] { return onLeft(e)(r) })
	}
}
