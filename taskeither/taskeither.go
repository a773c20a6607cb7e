// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package taskeither implements TaskEither, an asynchronous computation that
// either fails with E or succeeds with A.
//
// A TaskEither[E, A] is a [task.Task] producing an [either.Either]. Calling
// it always returns; failure is a resolved Left, never a panic. Sequencing
// with [FlatMap] short-circuits on the first Left.
//
// # Applicative strategies
//
//   - [ApPar] (also [Ap]): both operands start before either is awaited.
//   - [ApSeq]: the second operand starts after the first returns, and
//     never starts when the first is a Left.
//   - [ApValidation]: parallel, accumulating both failures with a semigroup.
//
// [TraverseArray] is parallel and [TraverseArraySeq] is sequential; the
// sequential form stops at the first Left without starting the rest.
//
// # Boundaries
//
// [TryCatch] and [TryCatchK] are the only combinators that convert foreign
// failures (returned errors or panics) into Left. [Taskify1] and friends
// adapt callback-style APIs.
//
// # Resource safety
//
// [Bracket] runs release exactly once after use, whatever use produced.
package taskeither

import (
	"github.com/samber/mo"

	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/eithert"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/option"
	"code.hybscloud.com/effect/task"
)

// TaskEither is a Task producing an Either.
type TaskEither[E, A any] = task.Task[either.Either[E, A]]

// Left creates a failed computation.
func Left[E, A any](e E) TaskEither[E, A] {
	return eithert.Left(task.Of[either.Either[E, A]], e)
}

// Right creates a successful computation.
func Right[E, A any](a A) TaskEither[E, A] {
	return eithert.Right(task.Of[either.Either[E, A]], a)
}

// Of is Right.
func Of[E, A any](a A) TaskEither[E, A] {
	return Right[E](a)
}

// ThrowError is Left.
func ThrowError[E, A any](e E) TaskEither[E, A] {
	return Left[E, A](e)
}

// RightTask lifts a task into the success side.
func RightTask[E, A any](ma task.Task[A]) TaskEither[E, A] {
	return eithert.RightF(task.Map[A, either.Either[E, A]], ma)
}

// LeftTask lifts a task into the failure side.
func LeftTask[E, A any](me task.Task[E]) TaskEither[E, A] {
	return eithert.LeftF(task.Map[E, either.Either[E, A]], me)
}

// RightIO lifts an IO into the success side.
func RightIO[E, A any](ma io.IO[A]) TaskEither[E, A] {
	return RightTask[E](task.FromIO(ma))
}

// LeftIO lifts an IO into the failure side.
func LeftIO[E, A any](me io.IO[E]) TaskEither[E, A] {
	return LeftTask[E, A](task.FromIO(me))
}

// FromIO is RightIO.
func FromIO[E, A any](ma io.IO[A]) TaskEither[E, A] {
	return RightIO[E](ma)
}

// FromTask is RightTask.
func FromTask[E, A any](ma task.Task[A]) TaskEither[E, A] {
	return RightTask[E](ma)
}

// FromEither lifts an already computed Either.
func FromEither[E, A any](e either.Either[E, A]) TaskEither[E, A] {
	return task.Of(e)
}

// FromOption converts Some(a) to Right(a) and None to Left(onNone()).
func FromOption[E, A any](o mo.Option[A], onNone func() E) TaskEither[E, A] {
	return func() either.Either[E, A] {
		return option.ToEither(o, onNone)
	}
}

// FromPredicate returns Right(a) if pred holds, Left(onFalse(a)) otherwise.
func FromPredicate[E, A any](a A, pred func(A) bool, onFalse func(A) E) TaskEither[E, A] {
	return func() either.Either[E, A] {
		return either.FromPredicate(a, pred, onFalse)
	}
}

// Match eliminates the result with pure functions.
func Match[E, A, B any](ma TaskEither[E, A], onLeft func(E) B, onRight func(A) B) task.Task[B] {
	return eithert.Match(task.Map[either.Either[E, A], B], ma, onLeft, onRight)
}

// MatchE eliminates the result with task-returning functions.
func MatchE[E, A, B any](ma TaskEither[E, A], onLeft func(E) task.Task[B], onRight func(A) task.Task[B]) task.Task[B] {
	return eithert.MatchE(task.FlatMap[either.Either[E, A], B], ma, onLeft, onRight)
}

// GetOrElse recovers every failure with onLeft.
func GetOrElse[E, A any](ma TaskEither[E, A], onLeft func(E) task.Task[A]) task.Task[A] {
	return eithert.GetOrElse(task.FlatMap[either.Either[E, A], A], task.Of[A], ma, onLeft)
}

// ToUnion collapses a TaskEither whose sides share a type.
func ToUnion[A any](ma TaskEither[A, A]) task.Task[A] {
	return task.Map(ma, either.ToUnion[A])
}
