// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package readertaskeither implements ReaderTaskEither: an asynchronous
// computation that reads an environment R and fails with E or succeeds
// with A.
//
// A ReaderTaskEither[R, E, A] is a function from R to a
// [taskeither.TaskEither]. [FlatMap] hands the same environment to both
// steps. [Local] substitutes a derived environment for the duration of one
// computation; the caller's value is never mutated.
//
// # Widening
//
// Two computations that need different environments are combined by
// projecting each out of a larger one with Local:
//
//	type DB interface{ Query(string) (int, error) }
//	type Clock interface{ Now() time.Time }
//	type Env interface { DB; Clock }
//
//	count := readertaskeither.Local(countRows, func(e Env) DB { return e })
//	stamp := readertaskeither.Local(now, func(e Env) Clock { return e })
//	both := readertaskeither.ApSecond(count, stamp)
//
// Failure types are unified the same way with [MapLeft], or by sharing a
// common type such as error.
package readertaskeither

import (
	"github.com/samber/mo"

	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/readert"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/reader"
	"code.hybscloud.com/effect/readereither"
	"code.hybscloud.com/effect/task"
	"code.hybscloud.com/effect/taskeither"
)

// ReaderTaskEither is a Reader producing a TaskEither.
type ReaderTaskEither[R, E, A any] = reader.Reader[R, taskeither.TaskEither[E, A]]

// Left creates a failed computation.
func Left[R, E, A any](e E) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](taskeither.Left[E, A](e))
}

// Right creates a successful computation.
func Right[R, E, A any](a A) ReaderTaskEither[R, E, A] {
	return readert.Of[R](taskeither.Right[E, A], a)
}

// Of is Right.
func Of[R, E, A any](a A) ReaderTaskEither[R, E, A] {
	return Right[R, E](a)
}

// ThrowError is Left.
func ThrowError[R, E, A any](e E) ReaderTaskEither[R, E, A] {
	return Left[R, E, A](e)
}

// RightTask lifts a task into the success side.
func RightTask[R, E, A any](ma task.Task[A]) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](taskeither.RightTask[E](ma))
}

// LeftTask lifts a task into the failure side.
func LeftTask[R, E, A any](me task.Task[E]) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](taskeither.LeftTask[E, A](me))
}

// RightIO lifts an IO into the success side.
func RightIO[R, E, A any](ma io.IO[A]) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](taskeither.RightIO[E](ma))
}

// LeftIO lifts an IO into the failure side.
func LeftIO[R, E, A any](me io.IO[E]) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](taskeither.LeftIO[E, A](me))
}

// RightReader lifts a reader into the success side.
func RightReader[E, R, A any](ma reader.Reader[R, A]) ReaderTaskEither[R, E, A] {
	return readert.FromReader(taskeither.Right[E, A], ma)
}

// LeftReader lifts a reader into the failure side.
func LeftReader[A, R, E any](me reader.Reader[R, E]) ReaderTaskEither[R, E, A] {
	return readert.FromReader(taskeither.Left[E, A], me)
}

// FromReader is RightReader.
func FromReader[E, R, A any](ma reader.Reader[R, A]) ReaderTaskEither[R, E, A] {
	return RightReader[E](ma)
}

// FromIO is RightIO.
func FromIO[R, E, A any](ma io.IO[A]) ReaderTaskEither[R, E, A] {
	return RightIO[R, E](ma)
}

// FromTask is RightTask.
func FromTask[R, E, A any](ma task.Task[A]) ReaderTaskEither[R, E, A] {
	return RightTask[R, E](ma)
}

// FromEither ignores the environment and returns e.
func FromEither[R, E, A any](e either.Either[E, A]) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](taskeither.FromEither(e))
}

// FromTaskEither ignores the environment and returns ma.
func FromTaskEither[R, E, A any](ma taskeither.TaskEither[E, A]) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](ma)
}

// FromReaderEither lifts a synchronous ReaderEither.
func FromReaderEither[R, E, A any](ma readereither.ReaderEither[R, E, A]) ReaderTaskEither[R, E, A] {
	return readert.FromReader(taskeither.FromEither[E, A], ma)
}

// FromOption converts Some(a) to Right(a) and None to Left(onNone()).
func FromOption[R, E, A any](o mo.Option[A], onNone func() E) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](taskeither.FromOption(o, onNone))
}

// FromPredicate returns Right(a) if pred holds, Left(onFalse(a)) otherwise.
func FromPredicate[R, E, A any](a A, pred func(A) bool, onFalse func(A) E) ReaderTaskEither[R, E, A] {
	return readert.Lift[R](taskeither.FromPredicate(a, pred, onFalse))
}

// Ask returns the environment.
func Ask[R, E any]() ReaderTaskEither[R, E, R] {
	return readert.Ask[R](taskeither.Right[E, R])
}

// Asks projects a value out of the environment.
func Asks[R, E, A any](f func(R) A) ReaderTaskEither[R, E, A] {
	return readert.Asks(taskeither.Right[E, A], f)
}

// AsksReaderTaskEither builds a computation from the environment.
func AsksReaderTaskEither[R, E, A any](f func(R) ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, A] {
	return func(r R) taskeither.TaskEither[E, A] { return f(r)(r) }
}

// Local runs ma in the environment produced by f.
func Local[R1, R2, E, A any](ma ReaderTaskEither[R1, E, A], f func(R2) R1) ReaderTaskEither[R2, E, A] {
	return readert.Local(ma, f)
}

// Run runs ma with the given environment.
func Run[R, E, A any](ma ReaderTaskEither[R, E, A], env R) either.Either[E, A] {
	return ma(env)()
}

// Match eliminates the result with pure functions.
func Match[R, E, A, B any](ma ReaderTaskEither[R, E, A], onLeft func(E) B, onRight func(A) B) reader.Reader[R, task.Task[B]] {
	return readert.MapF(ma, func(t taskeither.TaskEither[E, A]) task.Task[B] {
		return taskeither.Match(t, onLeft, onRight)
	})
}

// MatchE eliminates the result with environment-reading tasks.
func MatchE[R, E, A, B any](
	ma ReaderTaskEither[R, E, A],
	onLeft func(E) reader.Reader[R, task.Task[B]],
	onRight func(A) reader.Reader[R, task.Task[B]],
) reader.Reader[R, task.Task[B]] {
	return func(r R) task.Task[B] {
		return taskeither.MatchE(ma(r),
			func(e E) task.Task[B] { return onLeft(e)(r) },
			func(a A) task.Task[B] { return onRight(a)(r) },
		)
	}
}

// GetOrElse recovers every failure with onLeft.
func GetOrElse[R, E, A any](ma ReaderTaskEither[R, E, A], onLeft func(E) reader.Reader[R, task.Task[A]]) reader.Reader[R, task.Task[A]] {
	return func(r R) task.Task[A] {
		return taskeither.GetOrElse(ma(r), func(e E) task.Task[A] { return onLeft(e)(r) })
	}
}
