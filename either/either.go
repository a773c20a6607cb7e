// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package either provides the two-variant result type used by every
// failure-carrying effect in this module.
//
// [Either] holds either a Left (failure) or a Right (success), never both.
// Combinators never panic; failure is only representable as a Left.
// Functions are data-first: the Either comes before the function argument.
package either

import "fmt"

// Either represents a value that is either Left (error) or Right (success).
// The zero value is Left with the zero E.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// Of is Right, the Pointed constructor.
func Of[E, A any](a A) Either[E, A] {
	return Right[E](a)
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// Unwrap returns both payloads and the tag. Exactly one payload is meaningful.
func (e Either[E, A]) Unwrap() (A, E, bool) {
	return e.right, e.left, e.isRight
}

// String implements fmt.Stringer.
func (e Either[E, A]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Match pattern matches on the Either, calling onLeft or onRight.
// Exactly one branch runs.
func Match[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Fold is an alias of Match.
func Fold[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	return Match(e, onLeft, onRight)
}

// GetOrElse returns the Right value, or onLeft applied to the Left value.
func GetOrElse[E, A any](e Either[E, A], onLeft func(E) A) A {
	if e.isRight {
		return e.right
	}
	return onLeft(e.left)
}

// ToUnion collapses an Either whose sides share a type.
func ToUnion[A any](e Either[A, A]) A {
	if e.isRight {
		return e.right
	}
	return e.left
}

// FromPredicate returns Right(a) if pred holds, Left(onFalse(a)) otherwise.
func FromPredicate[E, A any](a A, pred func(A) bool, onFalse func(A) E) Either[E, A] {
	if pred(a) {
		return Right[E](a)
	}
	return Left[E, A](onFalse(a))
}

// FromNilable returns Right(*p) for a non-nil pointer, Left(onNil()) otherwise.
func FromNilable[E, A any](p *A, onNil func() E) Either[E, A] {
	if p == nil {
		return Left[E, A](onNil())
	}
	return Right[E](*p)
}
