// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package task implements Task, the asynchronous effect primitive.
//
// A Task[A] is a niladic function that may block while asynchronous work
// completes and then returns A. As with IO, nothing runs until the Task is
// called, results are never memoised, and a Task never fails: failure is
// carried in A (see package taskeither).
//
// Two applicative strategies are provided:
//
//   - [ApPar] starts both operands before awaiting either result.
//   - [ApSeq] does not start the second operand until the first returns.
//
// Parallel operands run on their own goroutines. There is no cancellation:
// once started, a Task runs to completion.
package task

import (
	"time"

	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/semigroup"
)

// Task is a deferred computation that may block on asynchronous work.
type Task[A any] = func() A

// Of lifts a pure value.
func Of[A any](a A) Task[A] {
	return func() A { return a }
}

// FromIO lifts a synchronous IO.
func FromIO[A any](ma io.IO[A]) Task[A] {
	return ma
}

// Fork starts ma on a new goroutine and returns a channel that receives the
// result. The channel is buffered, so the goroutine never blocks on an
// abandoned result.
func Fork[A any](ma Task[A]) <-chan A {
	ch := make(chan A, 1)
	go func() {
		ch <- ma()
	}()
	return ch
}

// Delay postpones ma by d.
func Delay[A any](d time.Duration, ma Task[A]) Task[A] {
	return func() A {
		time.Sleep(d)
		return ma()
	}
}

// Map applies a pure function to the result.
func Map[A, B any](ma Task[A], f func(A) B) Task[B] {
	return func() B {
		return f(ma())
	}
}

// FlatMap sequences two tasks. f is not called until ma has returned.
func FlatMap[A, B any](ma Task[A], f func(A) Task[B]) Task[B] {
	return func() B {
		return f(ma())()
	}
}

// Flatten removes one level of nesting.
func Flatten[A any](mma Task[Task[A]]) Task[A] {
	return func() A {
		return mma()()
	}
}

// ApPar applies a function task to a value task, running both concurrently.
// fa is started on its own goroutine before fab runs.
func ApPar[A, B any](fab Task[func(A) B], fa Task[A]) Task[B] {
	return func() B {
		ac := Fork(fa)
		f := fab()
		return f(<-ac)
	}
}

// ApSeq applies a function task to a value task, running fab to completion
// before fa is started.
func ApSeq[A, B any](fab Task[func(A) B], fa Task[A]) Task[B] {
	return func() B {
		f := fab()
		return f(fa())
	}
}

// Ap is ApPar.
func Ap[A, B any](fab Task[func(A) B], fa Task[A]) Task[B] {
	return ApPar(fab, fa)
}

// ApFirst runs both concurrently, keeping the first result.
func ApFirst[A, B any](fa Task[A], fb Task[B]) Task[A] {
	return ApPar(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecond runs both concurrently, keeping the second result.
func ApSecond[A, B any](fa Task[A], fb Task[B]) Task[B] {
	return ApPar(Map(fa, func(A) func(B) B {
		return effect.Identity[B]
	}), fb)
}

// ApFirstSeq runs fa then fb, keeping the first result.
func ApFirstSeq[A, B any](fa Task[A], fb Task[B]) Task[A] {
	return func() A {
		a := fa()
		fb()
		return a
	}
}

// ApSecondSeq runs fa then fb, keeping the second result.
func ApSecondSeq[A, B any](fa Task[A], fb Task[B]) Task[B] {
	return func() B {
		fa()
		return fb()
	}
}

// Tap runs f on the result for its effect and keeps the original value.
func Tap[A, B any](ma Task[A], f func(A) Task[B]) Task[A] {
	return func() A {
		a := ma()
		f(a)()
		return a
	}
}

// TapIO runs a synchronous effect on the result and keeps the original value.
func TapIO[A, B any](ma Task[A], f func(A) io.IO[B]) Task[A] {
	return Tap(ma, func(a A) Task[B] { return FromIO(f(a)) })
}

// As replaces the result with b.
func As[A, B any](ma Task[A], b B) Task[B] {
	return Map(ma, func(A) B { return b })
}

// AsUnit discards the result.
func AsUnit[A any](ma Task[A]) Task[effect.Unit] {
	return As(ma, effect.Unit{})
}

// Flap applies the function result to a plain value.
func Flap[A, B any](fab Task[func(A) B], a A) Task[B] {
	return Map(fab, func(f func(A) B) B { return f(a) })
}

// TailRec repeatedly runs f until it yields Right, awaiting each step
// before starting the next. The loop uses constant stack.
func TailRec[A, B any](a A, f func(A) Task[either.Either[A, B]]) Task[B] {
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

// GetSemigroup lifts a semigroup on A into one on Task[A]. x completes
// before y starts.
func GetSemigroup[A any](sg semigroup.Semigroup[A]) semigroup.Semigroup[Task[A]] {
	return func(x, y Task[A]) Task[A] {
		return func() A {
			return sg(x(), y())
		}
	}
}
