// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package semigroup provides associative combine operations used by the
// validation applicatives to accumulate failures.
package semigroup

import (
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Semigroup combines two values associatively:
// s(s(x, y), z) == s(x, s(y, z)).
type Semigroup[A any] func(x, y A) A

// Concat applies the semigroup.
func (s Semigroup[A]) Concat(x, y A) A {
	return s(x, y)
}

// ConcatAll folds as into start from left to right.
func (s Semigroup[A]) ConcatAll(start A, as []A) A {
	return lo.Reduce(as, func(acc A, a A, _ int) A {
		return s(acc, a)
	}, start)
}

// First keeps the left operand.
func First[A any]() Semigroup[A] {
	return func(x, _ A) A { return x }
}

// Last keeps the right operand.
func Last[A any]() Semigroup[A] {
	return func(_, y A) A { return y }
}

// Errors accumulates errors with multierr.Append.
// nil operands are dropped, so Errors is also usable with nil as identity.
func Errors() Semigroup[error] {
	return multierr.Append
}

// Slice concatenates slices into a freshly allocated slice.
// Neither operand is modified.
func Slice[A any]() Semigroup[[]A] {
	return func(x, y []A) []A {
		out := make([]A, 0, len(x)+len(y))
		out = append(out, x...)
		return append(out, y...)
	}
}

// Intercalate joins strings with sep between them.
func Intercalate(sep string) Semigroup[string] {
	return func(x, y string) string {
		return strings.Join([]string{x, y}, sep)
	}
}

// Sum adds numbers.
func Sum[A ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64]() Semigroup[A] {
	return func(x, y A) A { return x + y }
}
