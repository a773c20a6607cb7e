// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package readereither implements ReaderEither: a synchronous computation
// that reads an environment R and fails with E or succeeds with A.
//
// It is Either layered over Reader; every combinator delegates to
// [reader] and [either] through the Either transformer.
package readereither

import (
	"github.com/samber/mo"

	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/internal/eithert"
	"code.hybscloud.com/effect/internal/readert"
	"code.hybscloud.com/effect/option"
	"code.hybscloud.com/effect/reader"
	"code.hybscloud.com/effect/semigroup"
)

// ReaderEither is a Reader producing an Either.
type ReaderEither[R, E, A any] = reader.Reader[R, either.Either[E, A]]

// Left creates a failed computation.
func Left[R, E, A any](e E) ReaderEither[R, E, A] {
	return eithert.Left(reader.Of[R, either.Either[E, A]], e)
}

// Right creates a successful computation.
func Right[R, E, A any](a A) ReaderEither[R, E, A] {
	return eithert.Right(reader.Of[R, either.Either[E, A]], a)
}

// Of is Right.
func Of[R, E, A any](a A) ReaderEither[R, E, A] {
	return Right[R, E](a)
}

// ThrowError is Left.
func ThrowError[R, E, A any](e E) ReaderEither[R, E, A] {
	return Left[R, E, A](e)
}

// RightReader lifts a reader into the success side.
func RightReader[E, R, A any](ma reader.Reader[R, A]) ReaderEither[R, E, A] {
	return eithert.RightF(reader.Map[R, A, either.Either[E, A]], ma)
}

// LeftReader lifts a reader into the failure side.
func LeftReader[A, R, E any](me reader.Reader[R, E]) ReaderEither[R, E, A] {
	return eithert.LeftF(reader.Map[R, E, either.Either[E, A]], me)
}

// FromReader is RightReader.
func FromReader[E, R, A any](ma reader.Reader[R, A]) ReaderEither[R, E, A] {
	return RightReader[E](ma)
}

// FromEither ignores the environment and returns e.
func FromEither[R, E, A any](e either.Either[E, A]) ReaderEither[R, E, A] {
	return reader.Of[R](e)
}

// FromOption converts Some(a) to Right(a) and None to Left(onNone()).
func FromOption[R, E, A any](o mo.Option[A], onNone func() E) ReaderEither[R, E, A] {
	return func(R) either.Either[E, A] { return option.ToEither(o, onNone) }
}

// FromPredicate returns Right(a) if pred holds, Left(onFalse(a)) otherwise.
func FromPredicate[R, E, A any](a A, pred func(A) bool, onFalse func(A) E) ReaderEither[R, E, A] {
	return FromEither[R](either.FromPredicate(a, pred, onFalse))
}

// Ask returns the environment.
func Ask[R, E any]() ReaderEither[R, E, R] {
	return readert.Ask[R](either.Right[E, R])
}

// Asks projects a value out of the environment.
func Asks[R, E, A any](f func(R) A) ReaderEither[R, E, A] {
	return readert.Asks(either.Right[E, A], f)
}

// AsksReaderEither builds a computation from the environment.
func AsksReaderEither[R, E, A any](f func(R) ReaderEither[R, E, A]) ReaderEither[R, E, A] {
	return func(r R) either.Either[E, A] { return f(r)(r) }
}

// Local runs ma in the environment produced by f.
func Local[R1, R2, E, A any](ma ReaderEither[R1, E, A], f func(R2) R1) ReaderEither[R2, E, A] {
	return readert.Local(ma, f)
}

// Match eliminates the result with pure functions.
func Match[R, E, A, B any](ma ReaderEither[R, E, A], onLeft func(E) B, onRight func(A) B) reader.Reader[R, B] {
	return eithert.Match(reader.Map[R, either.Either[E, A], B], ma, onLeft, onRight)
}

// MatchE eliminates the result with reader-returning functions.
func MatchE[R, E, A, B any](ma ReaderEither[R, E, A], onLeft func(E) reader.Reader[R, B], onRight func(A) reader.Reader[R, B]) reader.Reader[R, B] {
	return eithert.MatchE(reader.FlatMap[R, either.Either[E, A], B], ma, onLeft, onRight)
}

// GetOrElse recovers every failure with onLeft.
func GetOrElse[R, E, A any](ma ReaderEither[R, E, A], onLeft func(E) reader.Reader[R, A]) reader.Reader[R, A] {
	return eithert.GetOrElse(reader.FlatMap[R, either.Either[E, A], A], reader.Of[R, A], ma, onLeft)
}

// Map applies a pure function to the success value.
func Map[R, E, A, B any](ma ReaderEither[R, E, A], f func(A) B) ReaderEither[R, E, B] {
	return eithert.Map(reader.Map[R, either.Either[E, A], either.Either[E, B]], ma, f)
}

// MapLeft maps the failure value.
func MapLeft[R, E, F, A any](ma ReaderEither[R, E, A], f func(E) F) ReaderEither[R, F, A] {
	return eithert.MapLeft(reader.Map[R, either.Either[E, A], either.Either[F, A]], ma, f)
}

// BiMap maps both sides.
func BiMap[R, E, F, A, B any](ma ReaderEither[R, E, A], f func(E) F, g func(A) B) ReaderEither[R, F, B] {
	return eithert.BiMap(reader.Map[R, either.Either[E, A], either.Either[F, B]], ma, f, g)
}

// Swap exchanges the sides.
func Swap[R, E, A any](ma ReaderEither[R, E, A]) ReaderEither[R, A, E] {
	return eithert.Swap(reader.Map[R, either.Either[E, A], either.Either[A, E]], ma)
}

// Ap applies a wrapped function to a wrapped value.
func Ap[R, E, A, B any](fab ReaderEither[R, E, func(A) B], fa ReaderEither[R, E, A]) ReaderEither[R, E, B] {
	return apWith(either.Ap[E, A, B], fab, fa)
}

// ApValidation is Ap that combines both failures with sg.
func ApValidation[R, E, A, B any](sg semigroup.Semigroup[E], fab ReaderEither[R, E, func(A) B], fa ReaderEither[R, E, A]) ReaderEither[R, E, B] {
	return apWith(func(gab either.Either[E, func(A) B], ga either.Either[E, A]) either.Either[E, B] {
		return either.ApValidation(sg, gab, ga)
	}, fab, fa)
}

func apWith[R, E, A, B any](
	combine func(either.Either[E, func(A) B], either.Either[E, A]) either.Either[E, B],
	fab ReaderEither[R, E, func(A) B],
	fa ReaderEither[R, E, A],
) ReaderEither[R, E, B] {
	return eithert.ApWith(
		reader.Map[R, either.Either[E, func(A) B], func(either.Either[E, A]) either.Either[E, B]],
		reader.Ap[R, either.Either[E, A], either.Either[E, B]],
		combine, fab, fa,
	)
}

// ApFirst combines two computations, keeping the first success value.
func ApFirst[R, E, A, B any](fa ReaderEither[R, E, A], fb ReaderEither[R, E, B]) ReaderEither[R, E, A] {
	return FlatMap(fa, func(a A) ReaderEither[R, E, A] {
		return Map(fb, func(B) A { return a })
	})
}

// ApSecond combines two computations, keeping the second success value.
func ApSecond[R, E, A, B any](fa ReaderEither[R, E, A], fb ReaderEither[R, E, B]) ReaderEither[R, E, B] {
	return FlatMap(fa, func(A) ReaderEither[R, E, B] { return fb })
}

// FlatMap sequences two computations, passing both the same environment.
// A Left short-circuits: f is not called.
func FlatMap[R, E, A, B any](ma ReaderEither[R, E, A], f func(A) ReaderEither[R, E, B]) ReaderEither[R, E, B] {
	return eithert.FlatMap(
		reader.FlatMap[R, either.Either[E, A], either.Either[E, B]],
		reader.Of[R, either.Either[E, B]],
		ma, f,
	)
}

// Flatten removes one level of nesting.
func Flatten[R, E, A any](mma ReaderEither[R, E, ReaderEither[R, E, A]]) ReaderEither[R, E, A] {
	return FlatMap(mma, effect.Identity[ReaderEither[R, E, A]])
}

// FlatMapEither sequences with an Either-returning function.
func FlatMapEither[R, E, A, B any](ma ReaderEither[R, E, A], f func(A) either.Either[E, B]) ReaderEither[R, E, B] {
	return func(r R) either.Either[E, B] { return either.FlatMap(ma(r), f) }
}

// FlatMapReader sequences with a Reader-returning function.
func FlatMapReader[R, E, A, B any](ma ReaderEither[R, E, A], f func(A) reader.Reader[R, B]) ReaderEither[R, E, B] {
	return FlatMap(ma, func(a A) ReaderEither[R, E, B] { return RightReader[E](f(a)) })
}

// Tap runs f on the success value and keeps that value unless f fails.
func Tap[R, E, A, B any](ma ReaderEither[R, E, A], f func(A) ReaderEither[R, E, B]) ReaderEither[R, E, A] {
	return FlatMap(ma, func(a A) ReaderEither[R, E, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// TapEither is Tap with an Either-returning function.
func TapEither[R, E, A, B any](ma ReaderEither[R, E, A], f func(A) either.Either[E, B]) ReaderEither[R, E, A] {
	return func(r R) either.Either[E, A] { return either.Tap(ma(r), f) }
}

// TapReader is Tap with a Reader-returning function.
func TapReader[R, E, A, B any](ma ReaderEither[R, E, A], f func(A) reader.Reader[R, B]) ReaderEither[R, E, A] {
	return Tap(ma, func(a A) ReaderEither[R, E, B] { return RightReader[E](f(a)) })
}

// Alt returns ma if it succeeds, otherwise the alternative.
func Alt[R, E, A any](ma ReaderEither[R, E, A], that func() ReaderEither[R, E, A]) ReaderEither[R, E, A] {
	return eithert.Alt(reader.FlatMap[R, either.Either[E, A], either.Either[E, A]], reader.Of[R, either.Either[E, A]], ma, that)
}

// AltValidation is Alt that combines both failures with sg.
func AltValidation[R, E, A any](sg semigroup.Semigroup[E], ma ReaderEither[R, E, A], that func() ReaderEither[R, E, A]) ReaderEither[R, E, A] {
	return func(r R) either.Either[E, A] {
		return either.AltValidation(sg, ma(r), func() either.Either[E, A] { return that()(r) })
	}
}

// OrElse recovers from a failure with a new computation.
func OrElse[R, E, F, A any](ma ReaderEither[R, E, A], onLeft func(E) ReaderEither[R, F, A]) ReaderEither[R, F, A] {
	return eithert.OrElse(reader.FlatMap[R, either.Either[E, A], either.Either[F, A]], reader.Of[R, either.Either[F, A]], ma, onLeft)
}

// TapError runs onLeft on a failure; the original Left is kept unless
// onLeft fails.
func TapError[R, E, A, B any](ma ReaderEither[R, E, A], onLeft func(E) ReaderEither[R, E, B]) ReaderEither[R, E, A] {
	return OrElse(ma, func(e E) ReaderEither[R, E, A] {
		return FlatMap(onLeft(e), func(B) ReaderEither[R, E, A] { return Left[R, E, A](e) })
	})
}

// OrLeft replaces a failure with one computed by a reader.
func OrLeft[R, E, F, A any](ma ReaderEither[R, E, A], onLeft func(E) reader.Reader[R, F]) ReaderEither[R, F, A] {
	return OrElse(ma, func(e E) ReaderEither[R, F, A] { return LeftReader[A](onLeft(e)) })
}

// FilterOrElse keeps a success that satisfies pred, otherwise fails with onFalse(a).
func FilterOrElse[R, E, A any](ma ReaderEither[R, E, A], pred func(A) bool, onFalse func(A) E) ReaderEither[R, E, A] {
	return func(r R) either.Either[E, A] { return either.FilterOrElse(ma(r), pred, onFalse) }
}

// TraverseArray maps each element and collects the results, stopping at the
// first Left.
func TraverseArray[R, E, A, B any](as []A, f func(A) ReaderEither[R, E, B]) ReaderEither[R, E, []B] {
	return func(r R) either.Either[E, []B] {
		return either.TraverseArray(as, func(a A) either.Either[E, B] { return f(a)(r) })
	}
}

// SequenceArray runs each computation and collects the results.
func SequenceArray[R, E, A any](as []ReaderEither[R, E, A]) ReaderEither[R, E, []A] {
	return TraverseArray(as, effect.Identity[ReaderEither[R, E, A]])
}
