// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskeither

import (
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/eithert"
	"code.hybscloud.com/effect/semigroup"
	"code.hybscloud.com/effect/task"
)

// ApPar applies a wrapped function to a wrapped value, running both
// concurrently. When both fail, the function side's Left is returned.
func ApPar[E, A, B any](fab TaskEither[E, func(A) B], fa TaskEither[E, A]) TaskEither[E, B] {
	return apWith(task.ApPar[either.Either[E, A], either.Either[E, B]], either.Ap[E, A, B], fab, fa)
}

// ApSeq applies a wrapped function to a wrapped value; fa is started only
// after fab has returned, and not at all when fab fails.
func ApSeq[E, A, B any](fab TaskEither[E, func(A) B], fa TaskEither[E, A]) TaskEither[E, B] {
	return FlatMap(fab, func(f func(A) B) TaskEither[E, B] { return Map(fa, f) })
}

// Ap is ApPar.
func Ap[E, A, B any](fab TaskEither[E, func(A) B], fa TaskEither[E, A]) TaskEither[E, B] {
	return ApPar(fab, fa)
}

// ApValidation runs both concurrently and, when both fail,
// combines the failures with sg.
func ApValidation[E, A, B any](sg semigroup.Semigroup[E], fab TaskEither[E, func(A) B], fa TaskEither[E, A]) TaskEither[E, B] {
	return apWith(
		task.ApPar[either.Either[E, A], either.Either[E, B]],
		func(gab either.Either[E, func(A) B], ga either.Either[E, A]) either.Either[E, B] {
			return either.ApValidation(sg, gab, ga)
		},
		fab, fa,
	)
}

func apWith[E, A, B any](
	fap func(task.Task[func(either.Either[E, A]) either.Either[E, B]], task.Task[either.Either[E, A]]) task.Task[either.Either[E, B]],
	combine func(either.Either[E, func(A) B], either.Either[E, A]) either.Either[E, B],
	fab TaskEither[E, func(A) B],
	fa TaskEither[E, A],
) TaskEither[E, B] {
	return eithert.ApWith(
		task.Map[either.Either[E, func(A) B], func(either.Either[E, A]) either.Either[E, B]],
		fap, combine, fab, fa,
	)
}

// ApFirst runs fa then fb, keeping the first success value.
// Either failure fails the whole; fb is not run when fa fails.
func ApFirst[E, A, B any](fa TaskEither[E, A], fb TaskEither[E, B]) TaskEither[E, A] {
	return FlatMap(fa, func(a A) TaskEither[E, A] {
		return As(fb, a)
	})
}

// ApSecond runs fa then fb, keeping the second success value.
func ApSecond[E, A, B any](fa TaskEither[E, A], fb TaskEither[E, B]) TaskEither[E, B] {
	return FlatMap(fa, func(A) TaskEither[E, B] { return fb })
}

// ApFirstPar runs both concurrently, keeping the first success value.
func ApFirstPar[E, A, B any](fa TaskEither[E, A], fb TaskEither[E, B]) TaskEither[E, A] {
	return ApPar(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecondPar runs both concurrently, keeping the second success value.
func ApSecondPar[E, A, B any](fa TaskEither[E, A], fb TaskEither[E, B]) TaskEither[E, B] {
	return ApPar(Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
}

// GetSemigroup returns the left-most success when exactly one side
// succeeds and concatenates the values with sg when both do.
// The operands run sequentially.
func GetSemigroup[E, A any](sg semigroup.Semigroup[A]) semigroup.Semigroup[TaskEither[E, A]] {
	return func(x, y TaskEither[E, A]) TaskEither[E, A] {
		return func() either.Either[E, A] {
			ex, ey := x(), y()
			a, xok := ex.GetRight()
			b, yok := ey.GetRight()
			switch {
			case xok && yok:
				return either.Right[E](sg(a, b))
			case yok:
				return ey
			}
			return ex
		}
	}
}

// GetApplySemigroup concatenates two successes with sg; any failure wins.
// The operands run sequentially and y is skipped when x fails.
func GetApplySemigroup[E, A any](sg semigroup.Semigroup[A]) semigroup.Semigroup[TaskEither[E, A]] {
	return func(x, y TaskEither[E, A]) TaskEither[E, A] {
		return ApSeq(Map(x, func(a A) func(A) A {
			return func(b A) A { return sg(a, b) }
		}), y)
	}
}
