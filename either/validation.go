// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "code.hybscloud.com/effect/semigroup"

// ApValidation is Ap that accumulates failures.
// When both sides are Left, their values are combined with sg.
func ApValidation[E, A, B any](sg semigroup.Semigroup[E], fab Either[E, func(A) B], fa Either[E, A]) Either[E, B] {
	switch {
	case !fab.isRight && !fa.isRight:
		return Left[E, B](sg(fab.left, fa.left))
	case !fab.isRight:
		return Left[E, B](fab.left)
	case !fa.isRight:
		return Left[E, B](fa.left)
	}
	return Right[E](fab.right(fa.right))
}

// AltValidation is Alt that accumulates failures.
// When both sides are Left, their values are combined with sg.
func AltValidation[E, A any](sg semigroup.Semigroup[E], e Either[E, A], that func() Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	alt := that()
	if alt.isRight {
		return alt
	}
	return Left[E, A](sg(e.left, alt.left))
}
