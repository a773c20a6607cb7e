// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package statereadertaskeither implements StateReaderTaskEither: an
// asynchronous, environment-reading computation that threads a state S
// and fails with E or succeeds with A.
//
// A StateReaderTaskEither[S, R, E, A] takes the incoming state and returns
// a [readertaskeither.ReaderTaskEither] producing the result paired with
// the next state. [FlatMap] feeds the state produced by one step into the
// next; a Left stops the chain and no later step observes any state.
//
// Everything is sequential: there is no parallel Ap, since two branches
// cannot both consume the same state.
package statereadertaskeither

import (
	"github.com/samber/mo"

	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/statet"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/reader"
	"code.hybscloud.com/effect/readereither"
	"code.hybscloud.com/effect/readertaskeither"
	"code.hybscloud.com/effect/state"
	"code.hybscloud.com/effect/task"
	"code.hybscloud.com/effect/taskeither"
)

// StateReaderTaskEither is a state transition inside a ReaderTaskEither.
type StateReaderTaskEither[S, R, E, A any] = func(S) readertaskeither.ReaderTaskEither[R, E, effect.Pair[A, S]]

// Left creates a failed computation.
func Left[S, R, E, A any](e E) StateReaderTaskEither[S, R, E, A] {
	return func(S) readertaskeither.ReaderTaskEither[R, E, effect.Pair[A, S]] {
		return readertaskeither.Left[R, E, effect.Pair[A, S]](e)
	}
}

// Right creates a successful computation that leaves the state unchanged.
func Right[S, R, E, A any](a A) StateReaderTaskEither[S, R, E, A] {
	return statet.Of[S](readertaskeither.Right[R, E, effect.Pair[A, S]], a)
}

// Of is Right.
func Of[S, R, E, A any](a A) StateReaderTaskEither[S, R, E, A] {
	return Right[S, R, E](a)
}

// ThrowError is Left.
func ThrowError[S, R, E, A any](e E) StateReaderTaskEither[S, R, E, A] {
	return Left[S, R, E, A](e)
}

// FromReaderTaskEither lifts a ReaderTaskEither, leaving the state unchanged.
func FromReaderTaskEither[S, R, E, A any](ma readertaskeither.ReaderTaskEither[R, E, A]) StateReaderTaskEither[S, R, E, A] {
	return statet.FromF(readertaskeither.Map[R, E, A, effect.Pair[A, S]], ma)
}

// RightTask lifts a task into the success side.
func RightTask[S, R, E, A any](ma task.Task[A]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.RightTask[R, E](ma))
}

// LeftTask lifts a task into the failure side.
func LeftTask[S, R, E, A any](me task.Task[E]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.LeftTask[R, E, A](me))
}

// RightIO lifts an IO into the success side.
func RightIO[S, R, E, A any](ma io.IO[A]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.RightIO[R, E](ma))
}

// LeftIO lifts an IO into the failure side.
func LeftIO[S, R, E, A any](me io.IO[E]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.LeftIO[R, E, A](me))
}

// RightReader lifts a reader into the success side.
func RightReader[S, E, R, A any](ma reader.Reader[R, A]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.RightReader[E](ma))
}

// LeftReader lifts a reader into the failure side.
func LeftReader[S, A, R, E any](me reader.Reader[R, E]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.LeftReader[A](me))
}

// RightState lifts a pure state transition into the success side.
func RightState[R, E, S, A any](ma state.State[S, A]) StateReaderTaskEither[S, R, E, A] {
	return statet.FromState(readertaskeither.Right[R, E, effect.Pair[A, S]], ma)
}

// LeftState fails with the value computed by me. The state me produces is
// discarded along with the rest of the chain.
func LeftState[R, A, S, E any](me state.State[S, E]) StateReaderTaskEither[S, R, E, A] {
	return func(s S) readertaskeither.ReaderTaskEither[R, E, effect.Pair[A, S]] {
		e, _ := me(s)
		return readertaskeither.Left[R, E, effect.Pair[A, S]](e)
	}
}

// FromState is RightState.
func FromState[R, E, S, A any](ma state.State[S, A]) StateReaderTaskEither[S, R, E, A] {
	return RightState[R, E](ma)
}

// FromReader is RightReader.
func FromReader[S, E, R, A any](ma reader.Reader[R, A]) StateReaderTaskEither[S, R, E, A] {
	return RightReader[S, E](ma)
}

// FromIO is RightIO.
func FromIO[S, R, E, A any](ma io.IO[A]) StateReaderTaskEither[S, R, E, A] {
	return RightIO[S, R, E](ma)
}

// FromTask is RightTask.
func FromTask[S, R, E, A any](ma task.Task[A]) StateReaderTaskEither[S, R, E, A] {
	return RightTask[S, R, E](ma)
}

// FromEither lifts an already computed Either.
func FromEither[S, R, E, A any](e either.Either[E, A]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.FromEither[R](e))
}

// FromTaskEither lifts a TaskEither.
func FromTaskEither[S, R, E, A any](ma taskeither.TaskEither[E, A]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.FromTaskEither[R](ma))
}

// FromReaderEither lifts a ReaderEither.
func FromReaderEither[S, R, E, A any](ma readereither.ReaderEither[R, E, A]) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.FromReaderEither(ma))
}

// FromOption converts Some(a) to Right(a) and None to Left(onNone()).
func FromOption[S, R, E, A any](o mo.Option[A], onNone func() E) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.FromOption[R](o, onNone))
}

// FromPredicate returns Right(a) if pred holds, Left(onFalse(a)) otherwise.
func FromPredicate[S, R, E, A any](a A, pred func(A) bool, onFalse func(A) E) StateReaderTaskEither[S, R, E, A] {
	return FromEither[S, R](either.FromPredicate(a, pred, onFalse))
}

// Get returns the current state as the result.
func Get[S, R, E any]() StateReaderTaskEither[S, R, E, S] {
	return statet.Get[S](readertaskeither.Right[R, E, effect.Pair[S, S]])
}

// Gets returns a projection of the current state.
func Gets[S, R, E, A any](f func(S) A) StateReaderTaskEither[S, R, E, A] {
	return statet.Gets(readertaskeither.Right[R, E, effect.Pair[A, S]], f)
}

// Put replaces the state.
func Put[S, R, E any](s S) StateReaderTaskEither[S, R, E, effect.Unit] {
	return statet.Put(readertaskeither.Right[R, E, effect.Pair[effect.Unit, S]], s)
}

// Modify replaces the state with f applied to it.
func Modify[S, R, E any](f func(S) S) StateReaderTaskEither[S, R, E, effect.Unit] {
	return statet.Modify(readertaskeither.Right[R, E, effect.Pair[effect.Unit, S]], f)
}

// Ask returns the environment.
func Ask[S, R, E any]() StateReaderTaskEither[S, R, E, R] {
	return FromReaderTaskEither[S](readertaskeither.Ask[R, E]())
}

// Asks projects a value out of the environment.
func Asks[S, R, E, A any](f func(R) A) StateReaderTaskEither[S, R, E, A] {
	return FromReaderTaskEither[S](readertaskeither.Asks[R, E](f))
}

// AsksStateReaderTaskEither builds a computation from the environment.
func AsksStateReaderTaskEither[S, R, E, A any](f func(R) StateReaderTaskEither[S, R, E, A]) StateReaderTaskEither[S, R, E, A] {
	return func(s S) readertaskeither.ReaderTaskEither[R, E, effect.Pair[A, S]] {
		return func(r R) taskeither.TaskEither[E, effect.Pair[A, S]] {
			return f(r)(s)(r)
		}
	}
}

// Local runs ma in the environment produced by f.
func Local[S, R1, R2, E, A any](ma StateReaderTaskEither[S, R1, E, A], f func(R2) R1) StateReaderTaskEither[S, R2, E, A] {
	return func(s S) readertaskeither.ReaderTaskEither[R2, E, effect.Pair[A, S]] {
		return readertaskeither.Local(ma(s), f)
	}
}

// Run runs ma from s, producing the result paired with the final state.
func Run[S, R, E, A any](ma StateReaderTaskEither[S, R, E, A], s S) readertaskeither.ReaderTaskEither[R, E, effect.Pair[A, S]] {
	return ma(s)
}

// Evaluate runs ma from s and keeps only the result.
func Evaluate[S, R, E, A any](ma StateReaderTaskEither[S, R, E, A], s S) readertaskeither.ReaderTaskEither[R, E, A] {
	return statet.Evaluate(readertaskeither.Map[R, E, effect.Pair[A, S], A], ma, s)
}

// Execute runs ma from s and keeps only the final state.
func Execute[S, R, E, A any](ma StateReaderTaskEither[S, R, E, A], s S) readertaskeither.ReaderTaskEither[R, E, S] {
	return statet.Execute(readertaskeither.Map[R, E, effect.Pair[A, S], S], ma, s)
}
