// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskeither

import (
	"github.com/samber/mo"

	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/eithert"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/option"
	"code.hybscloud.com/effect/task"
)

// Map applies a pure function to the success value.
func Map[E, A, B any](ma TaskEither[E, A], f func(A) B) TaskEither[E, B] {
	return eithert.Map(task.Map[either.Either[E, A], either.Either[E, B]], ma, f)
}

// FlatMap sequences two computations.
// If ma fails, f is never called and the Left is returned as is.
func FlatMap[E, A, B any](ma TaskEither[E, A], f func(A) TaskEither[E, B]) TaskEither[E, B] {
	return eithert.FlatMap(
		task.FlatMap[either.Either[E, A], either.Either[E, B]],
		task.Of[either.Either[E, B]],
		ma, f,
	)
}

// Flatten removes one level of nesting.
func Flatten[E, A any](mma TaskEither[E, TaskEither[E, A]]) TaskEither[E, A] {
	return FlatMap(mma, effect.Identity[TaskEither[E, A]])
}

// BiMap maps both sides.
func BiMap[E, F, A, B any](ma TaskEither[E, A], f func(E) F, g func(A) B) TaskEither[F, B] {
	return eithert.BiMap(task.Map[either.Either[E, A], either.Either[F, B]], ma, f, g)
}

// MapLeft maps the failure value.
func MapLeft[E, F, A any](ma TaskEither[E, A], f func(E) F) TaskEither[F, A] {
	return eithert.MapLeft(task.Map[either.Either[E, A], either.Either[F, A]], ma, f)
}

// Swap exchanges the sides.
func Swap[E, A any](ma TaskEither[E, A]) TaskEither[A, E] {
	return eithert.Swap(task.Map[either.Either[E, A], either.Either[A, E]], ma)
}

// As replaces the success value with b.
func As[E, A, B any](ma TaskEither[E, A], b B) TaskEither[E, B] {
	return Map(ma, func(A) B { return b })
}

// AsUnit discards the success value.
func AsUnit[E, A any](ma TaskEither[E, A]) TaskEither[E, effect.Unit] {
	return As(ma, effect.Unit{})
}

// Flap applies a wrapped function to a plain value.
func Flap[E, A, B any](fab TaskEither[E, func(A) B], a A) TaskEither[E, B] {
	return Map(fab, func(f func(A) B) B { return f(a) })
}

// Tap runs f on the success value and keeps that value,
// unless f fails, in which case its Left is returned.
func Tap[E, A, B any](ma TaskEither[E, A], f func(A) TaskEither[E, B]) TaskEither[E, A] {
	return FlatMap(ma, func(a A) TaskEither[E, A] {
		return As(f(a), a)
	})
}

// TapEither is Tap with an Either-returning function.
func TapEither[E, A, B any](ma TaskEither[E, A], f func(A) either.Either[E, B]) TaskEither[E, A] {
	return Tap(ma, func(a A) TaskEither[E, B] { return FromEither(f(a)) })
}

// TapIO runs a synchronous effect on the success value.
func TapIO[E, A, B any](ma TaskEither[E, A], f func(A) io.IO[B]) TaskEither[E, A] {
	return Tap(ma, func(a A) TaskEither[E, B] { return FromIO[E](f(a)) })
}

// TapTask runs a task on the success value.
func TapTask[E, A, B any](ma TaskEither[E, A], f func(A) task.Task[B]) TaskEither[E, A] {
	return Tap(ma, func(a A) TaskEither[E, B] { return FromTask[E](f(a)) })
}

// FlatMapEither sequences with an Either-returning function.
func FlatMapEither[E, A, B any](ma TaskEither[E, A], f func(A) either.Either[E, B]) TaskEither[E, B] {
	return FlatMap(ma, func(a A) TaskEither[E, B] { return FromEither(f(a)) })
}

// FlatMapIO sequences with an IO-returning function.
func FlatMapIO[E, A, B any](ma TaskEither[E, A], f func(A) io.IO[B]) TaskEither[E, B] {
	return FlatMap(ma, func(a A) TaskEither[E, B] { return FromIO[E](f(a)) })
}

// FlatMapTask sequences with a Task-returning function.
func FlatMapTask[E, A, B any](ma TaskEither[E, A], f func(A) task.Task[B]) TaskEither[E, B] {
	return FlatMap(ma, func(a A) TaskEither[E, B] { return FromTask[E](f(a)) })
}

// FlatMapOption sequences with an option-returning function.
// None becomes Left(onNone(a)).
func FlatMapOption[E, A, B any](ma TaskEither[E, A], f func(A) mo.Option[B], onNone func(A) E) TaskEither[E, B] {
	return FlatMapEither(ma, option.Lift(f, onNone))
}

// FilterOrElse keeps a success that satisfies pred, otherwise fails with onFalse(a).
func FilterOrElse[E, A any](ma TaskEither[E, A], pred func(A) bool, onFalse func(A) E) TaskEither[E, A] {
	return FlatMapEither(ma, func(a A) either.Either[E, A] {
		return either.FromPredicate(a, pred, onFalse)
	})
}
