// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eithert layers Either over a base monad M.
//
// Go has no higher-kinded types, so the base monad is passed as its
// operations: fmap, mof and mchain are the base Map, Of and FlatMap
// instantiated at the concrete payload types. MA and MB stand for
// M[Either[E, A]] and M[Either[E, B]].
package eithert

import "code.hybscloud.com/effect/either"

// Right lifts a success value into the base monad.
func Right[E, A, MA any](mof func(either.Either[E, A]) MA, a A) MA {
	return mof(either.Right[E](a))
}

// Left lifts a failure value into the base monad.
func Left[E, A, MA any](mof func(either.Either[E, A]) MA, e E) MA {
	return mof(either.Left[E, A](e))
}

// RightF lifts a base computation of A into the success side.
func RightF[E, A, FA, MA any](fmap func(FA, func(A) either.Either[E, A]) MA, fa FA) MA {
	return fmap(fa, either.Right[E, A])
}

// LeftF lifts a base computation of E into the failure side.
func LeftF[E, A, FE, MA any](fmap func(FE, func(E) either.Either[E, A]) MA, fe FE) MA {
	return fmap(fe, either.Left[E, A])
}

// Map maps the success side.
func Map[E, A, B, MA, MB any](fmap func(MA, func(either.Either[E, A]) either.Either[E, B]) MB, ma MA, f func(A) B) MB {
	return fmap(ma, func(e either.Either[E, A]) either.Either[E, B] {
		return either.Map(e, f)
	})
}

// BiMap maps both sides.
func BiMap[E, F, A, B, MA, MB any](fmap func(MA, func(either.Either[E, A]) either.Either[F, B]) MB, ma MA, f func(E) F, g func(A) B) MB {
	return fmap(ma, func(e either.Either[E, A]) either.Either[F, B] {
		return either.BiMap(e, f, g)
	})
}

// MapLeft maps the failure side.
func MapLeft[E, F, A, MA, MB any](fmap func(MA, func(either.Either[E, A]) either.Either[F, A]) MB, ma MA, f func(E) F) MB {
	return fmap(ma, func(e either.Either[E, A]) either.Either[F, A] {
		return either.MapLeft(e, f)
	})
}

// Swap exchanges the sides.
func Swap[E, A, MA, MB any](fmap func(MA, func(either.Either[E, A]) either.Either[A, E]) MB, ma MA) MB {
	return fmap(ma, either.Swap[E, A])
}

// FlatMap sequences on the success side. A Left short-circuits through mof
// without calling f.
func FlatMap[E, A, B, MA, MB any](
	mchain func(MA, func(either.Either[E, A]) MB) MB,
	mof func(either.Either[E, B]) MB,
	ma MA,
	f func(A) MB,
) MB {
	return mchain(ma, func(e either.Either[E, A]) MB {
		if a, ok := e.GetRight(); ok {
			return f(a)
		}
		l, _ := e.GetLeft()
		return mof(either.Left[E, B](l))
	})
}

// OrElse sequences on the failure side, the dual of FlatMap.
func OrElse[E, F, A, MA, MB any](
	mchain func(MA, func(either.Either[E, A]) MB) MB,
	mof func(either.Either[F, A]) MB,
	ma MA,
	onLeft func(E) MB,
) MB {
	return mchain(ma, func(e either.Either[E, A]) MB {
		if l, ok := e.GetLeft(); ok {
			return onLeft(l)
		}
		a, _ := e.GetRight()
		return mof(either.Right[F](a))
	})
}

// Alt runs that only when ma fails.
func Alt[E, A, MA any](
	mchain func(MA, func(either.Either[E, A]) MA) MA,
	mof func(either.Either[E, A]) MA,
	ma MA,
	that func() MA,
) MA {
	return mchain(ma, func(e either.Either[E, A]) MA {
		if e.IsRight() {
			return mof(e)
		}
		return that()
	})
}

// ApWith applies the base applicative, combining the two inner Either values
// with combine. Either's Ap gives fail-fast semantics; ApValidation gives
// accumulation.
func ApWith[E, A, B, MAB, MG, MA, MB any](
	fmap func(MAB, func(either.Either[E, func(A) B]) func(either.Either[E, A]) either.Either[E, B]) MG,
	fap func(MG, MA) MB,
	combine func(either.Either[E, func(A) B], either.Either[E, A]) either.Either[E, B],
	fab MAB,
	fa MA,
) MB {
	return fap(fmap(fab, func(gab either.Either[E, func(A) B]) func(either.Either[E, A]) either.Either[E, B] {
		return func(ga either.Either[E, A]) either.Either[E, B] {
			return combine(gab, ga)
		}
	}), fa)
}

// Match eliminates the inner Either with pure functions.
func Match[E, A, B, MA, MB any](fmap func(MA, func(either.Either[E, A]) B) MB, ma MA, onLeft func(E) B, onRight func(A) B) MB {
	return fmap(ma, func(e either.Either[E, A]) B {
		return either.Match(e, onLeft, onRight)
	})
}

// MatchE eliminates the inner Either with effectful functions.
func MatchE[E, A, MA, MB any](mchain func(MA, func(either.Either[E, A]) MB) MB, ma MA, onLeft func(E) MB, onRight func(A) MB) MB {
	return mchain(ma, func(e either.Either[E, A]) MB {
		return either.Match(e, onLeft, onRight)
	})
}

// GetOrElse recovers every failure into the base monad.
func GetOrElse[E, A, MA, MB any](
	mchain func(MA, func(either.Either[E, A]) MB) MB,
	mof func(A) MB,
	ma MA,
	onLeft func(E) MB,
) MB {
	return MatchE(mchain, ma, onLeft, mof)
}
