// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "code.hybscloud.com/effect"

// Monad operations for Either.
//
// Minimal definition: Of and FlatMap. Map, Ap and the taps are derived,
// written out directly to skip the intermediate Right construction.

// Map applies a function to the Right value.
func Map[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMap sequences two Either computations.
// A Left short-circuits: f is not called.
func FlatMap[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// Flatten removes one level of nesting.
func Flatten[E, A any](mma Either[E, Either[E, A]]) Either[E, A] {
	return FlatMap(mma, effect.Identity[Either[E, A]])
}

// Ap applies a wrapped function to a wrapped value.
// The function side's Left takes precedence.
func Ap[E, A, B any](fab Either[E, func(A) B], fa Either[E, A]) Either[E, B] {
	if !fab.isRight {
		return Left[E, B](fab.left)
	}
	if !fa.isRight {
		return Left[E, B](fa.left)
	}
	return Right[E](fab.right(fa.right))
}

// ApFirst combines two effects, keeping the first result.
func ApFirst[E, A, B any](fa Either[E, A], fb Either[E, B]) Either[E, A] {
	return FlatMap(fa, func(a A) Either[E, A] {
		return Map(fb, func(B) A { return a })
	})
}

// ApSecond combines two effects, keeping the second result.
func ApSecond[E, A, B any](fa Either[E, A], fb Either[E, B]) Either[E, B] {
	return FlatMap(fa, func(A) Either[E, B] { return fb })
}

// Tap runs f on the Right value for its effect and keeps the original value.
// A Left returned by f replaces the result.
func Tap[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, A] {
	return FlatMap(e, func(a A) Either[E, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// As replaces the Right value with b.
func As[E, A, B any](e Either[E, A], b B) Either[E, B] {
	return Map(e, func(A) B { return b })
}

// AsUnit discards the Right value.
func AsUnit[E, A any](e Either[E, A]) Either[E, effect.Unit] {
	return As(e, effect.Unit{})
}

// Flap applies a wrapped function to a plain value.
func Flap[E, A, B any](fab Either[E, func(A) B], a A) Either[E, B] {
	return Map(fab, func(f func(A) B) B { return f(a) })
}

// BiMap maps both sides.
func BiMap[E, F, A, B any](e Either[E, A], f func(E) F, g func(A) B) Either[F, B] {
	if e.isRight {
		return Right[F](g(e.right))
	}
	return Left[F, B](f(e.left))
}

// MapLeft applies a function to the Left value.
func MapLeft[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// Alt returns e if it is Right, otherwise the lazily built alternative.
func Alt[E, A any](e Either[E, A], that func() Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	return that()
}

// OrElse recovers from a Left with a new computation, possibly changing E.
func OrElse[E, F, A any](e Either[E, A], onLeft func(E) Either[F, A]) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return onLeft(e.left)
}

// TapError runs onLeft on the Left value and keeps the original Left,
// unless onLeft itself fails.
func TapError[E, A, B any](e Either[E, A], onLeft func(E) Either[E, B]) Either[E, A] {
	if e.isRight {
		return e
	}
	if l, ok := onLeft(e.left).GetLeft(); ok {
		return Left[E, A](l)
	}
	return e
}

// OrLeft replaces a Left with a new Left built by onLeft.
func OrLeft[E, F, A any](e Either[E, A], onLeft func(E) F) Either[F, A] {
	return MapLeft(e, onLeft)
}

// Swap exchanges Left and Right.
func Swap[E, A any](e Either[E, A]) Either[A, E] {
	if e.isRight {
		return Left[A, E](e.right)
	}
	return Right[A](e.left)
}

// FilterOrElse keeps a Right that satisfies pred, otherwise Left(onFalse(a)).
func FilterOrElse[E, A any](e Either[E, A], pred func(A) bool, onFalse func(A) E) Either[E, A] {
	return FlatMap(e, func(a A) Either[E, A] {
		return FromPredicate(a, pred, onFalse)
	})
}
