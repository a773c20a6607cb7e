// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reader implements Reader, a computation that reads an immutable
// environment.
//
// Reader[R, A] is a function of R. [Local] runs a computation in a derived
// environment by substitution: the caller's environment is never touched,
// so the override ends when the call returns.
package reader

import "code.hybscloud.com/effect"

// Reader is a function from an environment R to a result A.
type Reader[R, A any] = func(R) A

// Of ignores the environment and returns a.
func Of[R, A any](a A) Reader[R, A] {
	return func(R) A { return a }
}

// Ask returns the environment itself.
func Ask[R any]() Reader[R, R] {
	return effect.Identity[R]
}

// Asks projects a value out of the environment.
func Asks[R, A any](f func(R) A) Reader[R, A] {
	return f
}

// Local runs ma in the environment produced by f.
func Local[R1, R2, A any](ma Reader[R1, A], f func(R2) R1) Reader[R2, A] {
	return func(r R2) A { return ma(f(r)) }
}

// Run runs ma with the given environment.
func Run[R, A any](ma Reader[R, A], env R) A {
	return ma(env)
}

// Map applies a pure function to the result.
func Map[R, A, B any](ma Reader[R, A], f func(A) B) Reader[R, B] {
	return effect.Compose(ma, f)
}

// FlatMap sequences two readers, passing the same environment to both.
func FlatMap[R, A, B any](ma Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	return func(r R) B { return f(ma(r))(r) }
}

// Flatten removes one level of nesting.
func Flatten[R, A any](mma Reader[R, Reader[R, A]]) Reader[R, A] {
	return func(r R) A { return mma(r)(r) }
}

// Ap applies a wrapped function to a wrapped value.
func Ap[R, A, B any](fab Reader[R, func(A) B], fa Reader[R, A]) Reader[R, B] {
	return func(r R) B { return fab(r)(fa(r)) }
}

// Tap runs f for its result and keeps the original value.
func Tap[R, A, B any](ma Reader[R, A], f func(A) Reader[R, B]) Reader[R, A] {
	return func(r R) A {
		a := ma(r)
		f(a)(r)
		return a
	}
}

// Compose feeds the result of ab as the environment of bc.
func Compose[A, B, C any](ab Reader[A, B], bc Reader[B, C]) Reader[A, C] {
	return effect.Compose(ab, bc)
}
