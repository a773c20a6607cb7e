// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskeither

import (
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/eithert"
	"code.hybscloud.com/effect/semigroup"
	"code.hybscloud.com/effect/task"
)

// Alt returns ma if it succeeds, otherwise runs the alternative.
// that is not started when ma succeeds.
func Alt[E, A any](ma TaskEither[E, A], that func() TaskEither[E, A]) TaskEither[E, A] {
	return eithert.Alt(task.FlatMap[either.Either[E, A], either.Either[E, A]], task.Of[either.Either[E, A]], ma, that)
}

// AltValidation is Alt that combines both failures with sg.
func AltValidation[E, A any](sg semigroup.Semigroup[E], ma TaskEither[E, A], that func() TaskEither[E, A]) TaskEither[E, A] {
	return task.FlatMap(ma, func(e either.Either[E, A]) TaskEither[E, A] {
		if e.IsRight() {
			return task.Of(e)
		}
		return task.Map(that(), func(alt either.Either[E, A]) either.Either[E, A] {
			return either.AltValidation(sg, e, func() either.Either[E, A] { return alt })
		})
	})
}

// OrElse recovers from a failure with a new computation.
func OrElse[E, F, A any](ma TaskEither[E, A], onLeft func(E) TaskEither[F, A]) TaskEither[F, A] {
	return eithert.OrElse(task.FlatMap[either.Either[E, A], either.Either[F, A]], task.Of[either.Either[F, A]], ma, onLeft)
}

// TapError runs onLeft on a failure for its effect. The original Left is
// kept unless onLeft itself fails.
func TapError[E, A, B any](ma TaskEither[E, A], onLeft func(E) TaskEither[E, B]) TaskEither[E, A] {
	return OrElse(ma, func(e E) TaskEither[E, A] {
		return FlatMap(onLeft(e), func(B) TaskEither[E, A] { return Left[E, A](e) })
	})
}

// OrLeft replaces a failure with one computed by a task.
func OrLeft[E, F, A any](ma TaskEither[E, A], onLeft func(E) task.Task[F]) TaskEither[F, A] {
	return OrElse(ma, func(e E) TaskEither[F, A] { return LeftTask[F, A](onLeft(e)) })
}
