// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package io implements IO, the synchronous effect primitive.
//
// An IO[A] is a niladic function producing A. Combinators build new
// functions without calling anything; only invoking the final IO runs the
// chain, synchronously and left to right. Results are never memoised:
// calling an IO twice runs it twice.
//
// An IO never fails. Failure, when needed, is carried inside A
// (for example IO[either.Either[E, A]]).
package io

import (
	"github.com/samber/lo"

	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/semigroup"
)

// IO is a deferred synchronous computation.
type IO[A any] = func() A

// Of lifts a pure value.
func Of[A any](a A) IO[A] {
	return func() A { return a }
}

// Map applies a pure function to the result.
func Map[A, B any](ma IO[A], f func(A) B) IO[B] {
	return func() B {
		return f(ma())
	}
}

// FlatMap sequences two IO computations.
// It runs ma, then passes the result to f and runs the IO it returns.
func FlatMap[A, B any](ma IO[A], f func(A) IO[B]) IO[B] {
	return func() B {
		return f(ma())()
	}
}

// Flatten removes one level of nesting.
func Flatten[A any](mma IO[IO[A]]) IO[A] {
	return func() A {
		return mma()()
	}
}

// Ap runs fab, then fa, and applies the function.
func Ap[A, B any](fab IO[func(A) B], fa IO[A]) IO[B] {
	return func() B {
		f := fab()
		return f(fa())
	}
}

// ApFirst runs both, keeping the first result.
func ApFirst[A, B any](fa IO[A], fb IO[B]) IO[A] {
	return func() A {
		a := fa()
		fb()
		return a
	}
}

// ApSecond runs both, keeping the second result.
func ApSecond[A, B any](fa IO[A], fb IO[B]) IO[B] {
	return func() B {
		fa()
		return fb()
	}
}

// Tap runs f on the result for its effect and keeps the original value.
func Tap[A, B any](ma IO[A], f func(A) IO[B]) IO[A] {
	return func() A {
		a := ma()
		f(a)()
		return a
	}
}

// As replaces the result with b.
func As[A, B any](ma IO[A], b B) IO[B] {
	return Map(ma, func(A) B { return b })
}

// AsUnit discards the result.
func AsUnit[A any](ma IO[A]) IO[effect.Unit] {
	return As(ma, effect.Unit{})
}

// Flap applies the function result to a plain value.
func Flap[A, B any](fab IO[func(A) B], a A) IO[B] {
	return Map(fab, func(f func(A) B) B { return f(a) })
}

// TailRec repeatedly runs f until it yields Right.
// The loop is iterative, so deep recursion uses constant stack.
func TailRec[A, B any](a A, f func(A) IO[either.Either[A, B]]) IO[B] {
	return func() B {
		cur := a
		for {
			next := f(cur)()
			if b, ok := next.GetRight(); ok {
				return b
			}
			cur, _ = next.GetLeft()
		}
	}
}

// TraverseArrayWithIndex maps each element with its index and runs the
// resulting IO values in order.
func TraverseArrayWithIndex[A, B any](as []A, f func(int, A) IO[B]) IO[[]B] {
	return func() []B {
		return lo.Map(as, func(a A, i int) B {
			return f(i, a)()
		})
	}
}

// TraverseArray maps each element and runs the resulting IO values in order.
func TraverseArray[A, B any](as []A, f func(A) IO[B]) IO[[]B] {
	return TraverseArrayWithIndex(as, func(_ int, a A) IO[B] { return f(a) })
}

// SequenceArray runs each IO in order and collects the results.
func SequenceArray[A any](as []IO[A]) IO[[]A] {
	return TraverseArrayWithIndex(as, func(_ int, ma IO[A]) IO[A] { return ma })
}

// GetSemigroup lifts a semigroup on A into one on IO[A].
func GetSemigroup[A any](sg semigroup.Semigroup[A]) semigroup.Semigroup[IO[A]] {
	return func(x, y IO[A]) IO[A] {
		return func() A {
			return sg(x(), y())
		}
	}
}
