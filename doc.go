// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effect provides composable effect types for Go.
//
// Each effect is a plain generic function type living in its own package,
// so values compose with ordinary function calls and need no runtime:
//
//	Type                                   Underlying form
//	either.Either[E, A]                    Left(E) or Right(A)
//	io.IO[A]                               func() A
//	task.Task[A]                           func() A, may block
//	taskeither.TaskEither[E, A]            func() Either[E, A]
//	reader.Reader[R, A]                    func(R) A
//	readereither.ReaderEither[R, E, A]     func(R) Either[E, A]
//	readertaskeither.ReaderTaskEither      func(R) TaskEither[E, A]
//	state.State[S, A]                      func(S) (A, S)
//	statereadertaskeither.…                func(S) ReaderTaskEither[R, E, Pair[A, S]]
//
// The identity package is the trivial effect: its operations act on plain
// values and serve as the reference for the laws below.
//
// This package holds the types and helpers shared by all of them: [Unit],
// [Pair] and the function combinators [Identity], [Constant], [Compose],
// [Flip], [Curry] and [Uncurry].
//
// # Calling Convention
//
// Every operation is data-first. There is no pipe operator; chains are
// written inside out or broken into named steps:
//
//	n := taskeither.FlatMap(taskeither.Of[string]("foo"), func(s string) taskeither.TaskEither[string, int] {
//		if len(s) > 2 {
//			return taskeither.Of[string](len(s))
//		}
//		return taskeither.Left[string, int]("foo")
//	})
//	n() // Right(3)
//
// # Vocabulary
//
// Each effect package exposes the same names where they make sense:
//
//   - Of, Map, FlatMap, Flatten, Ap, ApFirst, ApSecond, Tap: functor and monad
//   - BiMap, MapLeft, Swap: both sides of an Either result
//   - Alt, OrElse, TapError, GetOrElse, Match: recovery and elimination
//   - Do, BindTo, Bind, Let, ApS: do notation over an accumulating scope
//   - TraverseArray, SequenceArray: collections
//
// Failure is a value: a Left stops FlatMap chains and is never recovered
// implicitly. [either.TryCatch] and [taskeither.TryCatch] are the only
// places where a returned error or a panic becomes a Left.
//
// # Laws
//
// For every monad M in the module, with == meaning equal results once run:
//
//	Map(m, Identity)            == m
//	Map(m, Compose(f, g))       == Map(Map(m, f), g)
//	FlatMap(Of(a), f)           == f(a)
//	FlatMap(m, Of)              == m
//	FlatMap(FlatMap(m, f), g)   == FlatMap(m, func(a) FlatMap(f(a), g))
//
// # Concurrency
//
// Task-based types choose their strategy by function name. ApPar (and Ap)
// starts both operands before awaiting either; ApSeq starts the second only
// after the first returns, and the Either-carrying types skip it after a
// Left. TraverseArray runs every element concurrently;
// TraverseArraySeq runs them in order and stops at the first Left.
// State-carrying types are sequential only.
//
// # Transformers
//
// The composite types are built by layering: Either over Task, Reader over
// TaskEither, State over ReaderTaskEither. Go has no higher-kinded types, so
// the layering helpers in internal/eithert, internal/readert and
// internal/statet take the base monad's Map, Of and FlatMap as explicit
// function arguments.
package effect
