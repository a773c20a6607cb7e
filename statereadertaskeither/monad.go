// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statereadertaskeither

import (
	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/statet"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/reader"
	"code.hybscloud.com/effect/readertaskeither"
	"code.hybscloud.com/effect/state"
	"code.hybscloud.com/effect/task"
	"code.hybscloud.com/effect/taskeither"
)

// Map applies a pure function to the success value.
func Map[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) B) StateReaderTaskEither[S, R, E, B] {
	return statet.Map(readertaskeither.Map[R, E, effect.Pair[A, S], effect.Pair[B, S]], ma, f)
}

// FlatMap runs ma and, on success, runs f on its result from the state ma
// produced. A Left short-circuits: f is not called.
func FlatMap[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) StateReaderTaskEither[S, R, E, B]) StateReaderTaskEither[S, R, E, B] {
	return statet.FlatMap(readertaskeither.FlatMap[R, E, effect.Pair[A, S], effect.Pair[B, S]], ma, f)
}

// Flatten removes one level of nesting.
func Flatten[S, R, E, A any](mma StateReaderTaskEither[S, R, E, StateReaderTaskEither[S, R, E, A]]) StateReaderTaskEither[S, R, E, A] {
	return FlatMap(mma, effect.Identity[StateReaderTaskEither[S, R, E, A]])
}

// As replaces the success value with b.
func As[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], b B) StateReaderTaskEither[S, R, E, B] {
	return Map(ma, func(A) B { return b })
}

// AsUnit discards the success value.
func AsUnit[S, R, E, A any](ma StateReaderTaskEither[S, R, E, A]) StateReaderTaskEither[S, R, E, effect.Unit] {
	return As(ma, effect.Unit{})
}

// Ap runs fab, then fa from the state fab produced, and applies the
// function to the value.
func Ap[S, R, E, A, B any](fab StateReaderTaskEither[S, R, E, func(A) B], fa StateReaderTaskEither[S, R, E, A]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(fab, func(f func(A) B) StateReaderTaskEither[S, R, E, B] { return Map(fa, f) })
}

// ApFirst runs fa then fb, keeping the first success value.
func ApFirst[S, R, E, A, B any](fa StateReaderTaskEither[S, R, E, A], fb StateReaderTaskEither[S, R, E, B]) StateReaderTaskEither[S, R, E, A] {
	return FlatMap(fa, func(a A) StateReaderTaskEither[S, R, E, A] { return As(fb, a) })
}

// ApSecond runs fa then fb, keeping the second success value.
func ApSecond[S, R, E, A, B any](fa StateReaderTaskEither[S, R, E, A], fb StateReaderTaskEither[S, R, E, B]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(fa, func(A) StateReaderTaskEither[S, R, E, B] { return fb })
}

// FlatMapEither sequences with an Either-returning function.
func FlatMapEither[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) either.Either[E, B]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return FromEither[S, R](f(a)) })
}

// FlatMapTaskEither sequences with a TaskEither-returning function.
func FlatMapTaskEither[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) taskeither.TaskEither[E, B]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return FromTaskEither[S, R](f(a)) })
}

// FlatMapReader sequences with a Reader-returning function.
func FlatMapReader[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) reader.Reader[R, B]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return RightReader[S, E](f(a)) })
}

// FlatMapReaderTaskEither sequences with a ReaderTaskEither-returning function.
func FlatMapReaderTaskEither[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) readertaskeither.ReaderTaskEither[R, E, B]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return FromReaderTaskEither[S](f(a)) })
}

// FlatMapState sequences with a pure state transition.
func FlatMapState[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) state.State[S, B]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return RightState[R, E](f(a)) })
}

// FlatMapIO sequences with an IO-returning function.
func FlatMapIO[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) io.IO[B]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return FromIO[S, R, E](f(a)) })
}

// FlatMapTask sequences with a Task-returning function.
func FlatMapTask[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) task.Task[B]) StateReaderTaskEither[S, R, E, B] {
	return FlatMap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return FromTask[S, R, E](f(a)) })
}

// Tap runs f on the success value for its effect and state change, keeping
// the original value unless f fails.
func Tap[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) StateReaderTaskEither[S, R, E, B]) StateReaderTaskEither[S, R, E, A] {
	return FlatMap(ma, func(a A) StateReaderTaskEither[S, R, E, A] { return As(f(a), a) })
}

// TapEither is Tap with an Either-returning function.
func TapEither[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) either.Either[E, B]) StateReaderTaskEither[S, R, E, A] {
	return Tap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return FromEither[S, R](f(a)) })
}

// TapIO is Tap with an IO-returning function.
func TapIO[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) io.IO[B]) StateReaderTaskEither[S, R, E, A] {
	return Tap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return FromIO[S, R, E](f(a)) })
}

// TapTask is Tap with a Task-returning function.
func TapTask[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) task.Task[B]) StateReaderTaskEither[S, R, E, A] {
	return Tap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return FromTask[S, R, E](f(a)) })
}

// TapReader is Tap with a Reader-returning function.
func TapReader[S, R, E, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(A) reader.Reader[R, B]) StateReaderTaskEither[S, R, E, A] {
	return Tap(ma, func(a A) StateReaderTaskEither[S, R, E, B] { return RightReader[S, E](f(a)) })
}

// FilterOrElse keeps a success that satisfies pred, otherwise fails with onFalse(a).
func FilterOrElse[S, R, E, A any](ma StateReaderTaskEither[S, R, E, A], pred func(A) bool, onFalse func(A) E) StateReaderTaskEither[S, R, E, A] {
	return FlatMapEither(ma, func(a A) either.Either[E, A] {
		return either.FromPredicate(a, pred, onFalse)
	})
}

// BiMap maps both sides.
func BiMap[S, R, E, F, A, B any](ma StateReaderTaskEither[S, R, E, A], f func(E) F, g func(A) B) StateReaderTaskEither[S, R, F, B] {
	return func(s S) readertaskeither.ReaderTaskEither[R, F, effect.Pair[B, S]] {
		return readertaskeither.BiMap(ma(s), f, func(p effect.Pair[A, S]) effect.Pair[B, S] {
			return effect.MakePair(g(p.Fst), p.Snd)
		})
	}
}

// MapLeft maps the failure value.
func MapLeft[S, R, E, F, A any](ma StateReaderTaskEither[S, R, E, A], f func(E) F) StateReaderTaskEither[S, R, F, A] {
	return func(s S) readertaskeither.ReaderTaskEither[R, F, effect.Pair[A, S]] {
		return readertaskeither.MapLeft(ma(s), f)
	}
}

// Alt returns ma if it succeeds, otherwise runs the alternative from the
// same incoming state.
func Alt[S, R, E, A any](ma StateReaderTaskEither[S, R, E, A], that func() StateReaderTaskEither[S, R, E, A]) StateReaderTaskEither[S, R, E, A] {
	return func(s S) readertaskeither.ReaderTaskEither[R, E, effect.Pair[A, S]] {
		return readertaskeither.Alt(ma(s), func() readertaskeither.ReaderTaskEither[R, E, effect.Pair[A, S]] {
			return that()(s)
		})
	}
}
