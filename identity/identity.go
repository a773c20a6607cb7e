// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package identity implements the Identity effect.
//
// Identity[A] is represented by A itself: the effect adds nothing, so every
// combinator degenerates to plain function application. It is the base case
// the other packages are checked against in law tests.
package identity

import "code.hybscloud.com/effect/either"

// Of lifts a value. It is the identity function.
func Of[A any](a A) A { return a }

// Extract returns the wrapped value.
func Extract[A any](wa A) A { return wa }

// Map applies f.
func Map[A, B any](fa A, f func(A) B) B { return f(fa) }

// Ap applies the function to the value.
func Ap[A, B any](fab func(A) B, fa A) B { return fab(fa) }

// FlatMap applies f.
func FlatMap[A, B any](ma A, f func(A) B) B { return f(ma) }

// Flatten is the identity function.
func Flatten[A any](mma A) A { return mma }

// Tap runs f for its result and keeps the original value.
func Tap[A, B any](ma A, f func(A) B) A {
	_ = f(ma)
	return ma
}

// Extend is the comonadic dual of FlatMap.
func Extend[A, B any](wa A, f func(A) B) B { return f(wa) }

// Duplicate is the identity function.
func Duplicate[A any](wa A) A { return wa }

// Alt keeps the first value; the alternative is never evaluated.
func Alt[A any](fa A, _ func() A) A { return fa }

// Reduce folds the single value into b.
func Reduce[A, B any](fa A, b B, f func(B, A) B) B { return f(b, fa) }

// ReduceRight folds the single value into b from the right.
func ReduceRight[A, B any](fa A, b B, f func(A, B) B) B { return f(fa, b) }

// FoldMap maps the single value into a monoid.
func FoldMap[A, M any](fa A, f func(A) M) M { return f(fa) }

// TailRec runs f until it returns Right. A Left feeds the next iteration.
// The loop is iterative, so arbitrarily deep recursion uses constant stack.
func TailRec[A, B any](a A, f func(A) either.Either[A, B]) B {
	for {
		next := f(a)
		if b, ok := next.GetRight(); ok {
			return b
		}
		a, _ = next.GetLeft()
	}
}
