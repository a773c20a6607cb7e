// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package readert layers an environment over a base monad M.
//
// A computation is func(R) MA, where MA is M[A]. The environment is passed
// unchanged to every step; it is never mutated, only substituted by Local.
package readert

// Of ignores the environment and lifts a into the base monad.
func Of[R, A, MA any](mof func(A) MA, a A) func(R) MA {
	return func(R) MA { return mof(a) }
}

// Lift ignores the environment and returns ma.
func Lift[R, MA any](ma MA) func(R) MA {
	return func(R) MA { return ma }
}

// Ask returns the environment itself.
func Ask[R, MR any](mof func(R) MR) func(R) MR {
	return func(r R) MR { return mof(r) }
}

// Asks projects a value out of the environment.
func Asks[R, A, MA any](mof func(A) MA, f func(R) A) func(R) MA {
	return func(r R) MA { return mof(f(r)) }
}

// FromReader lifts a plain reader into the base monad.
func FromReader[R, A, MA any](mof func(A) MA, ma func(R) A) func(R) MA {
	return func(r R) MA { return mof(ma(r)) }
}

// Local runs ma in an environment derived from the caller's by f.
func Local[R1, R2, MA any](ma func(R1) MA, f func(R2) R1) func(R2) MA {
	return func(r R2) MA { return ma(f(r)) }
}

// Map maps the result.
func Map[R, A, B, MA, MB any](fmap func(MA, func(A) B) MB, ma func(R) MA, f func(A) B) func(R) MB {
	return func(r R) MB { return fmap(ma(r), f) }
}

// MapF transforms the base computation directly.
func MapF[R, MA, MB any](ma func(R) MA, f func(MA) MB) func(R) MB {
	return func(r R) MB { return f(ma(r)) }
}

// FlatMap sequences two computations, giving both the same environment.
func FlatMap[R, A, MA, MB any](mchain func(MA, func(A) MB) MB, ma func(R) MA, f func(A) func(R) MB) func(R) MB {
	return func(r R) MB {
		return mchain(ma(r), func(a A) MB { return f(a)(r) })
	}
}

// Ap applies with the base applicative, giving both operands the same environment.
func Ap[R, MAB, MA, MB any](fap func(MAB, MA) MB, fab func(R) MAB, fa func(R) MA) func(R) MB {
	return func(r R) MB { return fap(fab(r), fa(r)) }
}
