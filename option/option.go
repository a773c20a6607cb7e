// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package option bridges github.com/samber/mo options and [either.Either].
//
// Options enter the effect stacks through ToEither; every FromOption
// constructor in this module delegates here.
package option

import (
	"github.com/samber/mo"

	"code.hybscloud.com/effect/either"
)

// ToEither converts Some(a) to Right(a) and None to Left(onNone()).
// onNone is only called for None.
func ToEither[E, A any](o mo.Option[A], onNone func() E) either.Either[E, A] {
	if a, ok := o.Get(); ok {
		return either.Right[E](a)
	}
	return either.Left[E, A](onNone())
}

// FromEither keeps the Right value and drops the Left.
func FromEither[E, A any](e either.Either[E, A]) mo.Option[A] {
	if a, ok := e.GetRight(); ok {
		return mo.Some(a)
	}
	return mo.None[A]()
}

// FromLeft keeps the Left value and drops the Right.
func FromLeft[E, A any](e either.Either[E, A]) mo.Option[E] {
	if l, ok := e.GetLeft(); ok {
		return mo.Some(l)
	}
	return mo.None[E]()
}

// FromNilable returns Some(*p) for a non-nil pointer and None otherwise.
func FromNilable[A any](p *A) mo.Option[A] {
	if p == nil {
		return mo.None[A]()
	}
	return mo.Some(*p)
}

// Lift adapts a partial function returning an option into one returning Either.
func Lift[E, A, B any](f func(A) mo.Option[B], onNone func(A) E) func(A) either.Either[E, B] {
	return func(a A) either.Either[E, B] {
		return ToEither(f(a), func() E { return onNone(a) })
	}
}
