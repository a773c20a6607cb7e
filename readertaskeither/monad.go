// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readertaskeither

import (
	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/readert"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/reader"
	"code.hybscloud.com/effect/readereither"
	"code.hybscloud.com/effect/task"
	"code.hybscloud.com/effect/taskeither"
)

// Map applies a pure function to the success value.
func Map[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) B) ReaderTaskEither[R, E, B] {
	return readert.Map(taskeither.Map[E, A, B], ma, f)
}

// FlatMap sequences two computations, passing both the same environment.
// A Left short-circuits: f is not called.
func FlatMap[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, B] {
	return readert.FlatMap(taskeither.FlatMap[E, A, B], ma, f)
}

// Flatten removes one level of nesting.
func Flatten[R, E, A any](mma ReaderTaskEither[R, E, ReaderTaskEither[R, E, A]]) ReaderTaskEither[R, E, A] {
	return FlatMap(mma, effect.Identity[ReaderTaskEither[R, E, A]])
}

// As replaces the success value with b.
func As[R, E, A, B any](ma ReaderTaskEither[R, E, A], b B) ReaderTaskEither[R, E, B] {
	return Map(ma, func(A) B { return b })
}

// AsUnit discards the success value.
func AsUnit[R, E, A any](ma ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, effect.Unit] {
	return As(ma, effect.Unit{})
}

// FlatMapEither sequences with an Either-returning function.
func FlatMapEither[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) either.Either[E, B]) ReaderTaskEither[R, E, B] {
	return FlatMap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromEither[R](f(a)) })
}

// FlatMapTaskEither sequences with a TaskEither-returning function.
func FlatMapTaskEither[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) taskeither.TaskEither[E, B]) ReaderTaskEither[R, E, B] {
	return FlatMap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromTaskEither[R](f(a)) })
}

// FlatMapReader sequences with a Reader-returning function.
func FlatMapReader[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) reader.Reader[R, B]) ReaderTaskEither[R, E, B] {
	return FlatMap(ma, func(a A) ReaderTaskEither[R, E, B] { return RightReader[E](f(a)) })
}

// FlatMapReaderEither sequences with a ReaderEither-returning function.
func FlatMapReaderEither[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) readereither.ReaderEither[R, E, B]) ReaderTaskEither[R, E, B] {
	return FlatMap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromReaderEither(f(a)) })
}

// FlatMapIO sequences with an IO-returning function.
func FlatMapIO[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) io.IO[B]) ReaderTaskEither[R, E, B] {
	return FlatMap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromIO[R, E](f(a)) })
}

// FlatMapTask sequences with a Task-returning function.
func FlatMapTask[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) task.Task[B]) ReaderTaskEither[R, E, B] {
	return FlatMap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromTask[R, E](f(a)) })
}

// Tap runs f on the success value and keeps that value unless f fails.
func Tap[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, A] {
	return FlatMap(ma, func(a A) ReaderTaskEither[R, E, A] { return As(f(a), a) })
}

// TapEither is Tap with an Either-returning function.
func TapEither[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) either.Either[E, B]) ReaderTaskEither[R, E, A] {
	return Tap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromEither[R](f(a)) })
}

// TapIO is Tap with an IO-returning function.
func TapIO[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) io.IO[B]) ReaderTaskEither[R, E, A] {
	return Tap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromIO[R, E](f(a)) })
}

// TapTask is Tap with a Task-returning function.
func TapTask[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) task.Task[B]) ReaderTaskEither[R, E, A] {
	return Tap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromTask[R, E](f(a)) })
}

// TapReader is Tap with a Reader-returning function.
func TapReader[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) reader.Reader[R, B]) ReaderTaskEither[R, E, A] {
	return Tap(ma, func(a A) ReaderTaskEither[R, E, B] { return RightReader[E](f(a)) })
}

// TapTaskEither is Tap with a TaskEither-returning function.
func TapTaskEither[R, E, A, B any](ma ReaderTaskEither[R, E, A], f func(A) taskeither.TaskEither[E, B]) ReaderTaskEither[R, E, A] {
	return Tap(ma, func(a A) ReaderTaskEither[R, E, B] { return FromTaskEither[R](f(a)) })
}

// FilterOrElse keeps a success that satisfies pred, otherwise fails with onFalse(a).
func FilterOrElse[R, E, A any](ma ReaderTaskEither[R, E, A], pred func(A) bool, onFalse func(A) E) ReaderTaskEither[R, E, A] {
	return FlatMapEither(ma, func(a A) either.Either[E, A] {
		return either.FromPredicate(a, pred, onFalse)
	})
}

// BiMap maps both sides.
func BiMap[R, E, F, A, B any](ma ReaderTaskEither[R, E, A], f func(E) F, g func(A) B) ReaderTaskEither[R, F, B] {
	return readert.MapF(ma, func(t taskeither.TaskEither[E, A]) taskeither.TaskEither[F, B] {
		return taskeither.BiMap(t, f, g)
	})
}

// MapLeft maps the failure value.
func MapLeft[R, E, F, A any](ma ReaderTaskEither[R, E, A], f func(E) F) ReaderTaskEither[R, F, A] {
	return readert.MapF(ma, func(t taskeither.TaskEither[E, A]) taskeither.TaskEither[F, A] {
		return taskeither.MapLeft(t, f)
	})
}

// Swap exchanges the sides.
func Swap[R, E, A any](ma ReaderTaskEither[R, E, A]) ReaderTaskEither[R, A, E] {
	return readert.MapF(ma, taskeither.Swap[E, A])
}
