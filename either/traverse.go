// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// TraverseArrayWithIndex maps each element with its index and collects the
// results. The first Left stops the traversal; later elements are not visited.
func TraverseArrayWithIndex[E, A, B any](as []A, f func(int, A) Either[E, B]) Either[E, []B] {
	out := make([]B, 0, len(as))
	for i, a := range as {
		b := f(i, a)
		if !b.isRight {
			return Left[E, []B](b.left)
		}
		out = append(out, b.right)
	}
	return Right[E](out)
}

// TraverseArray maps each element and collects the results.
func TraverseArray[E, A, B any](as []A, f func(A) Either[E, B]) Either[E, []B] {
	return TraverseArrayWithIndex(as, func(_ int, a A) Either[E, B] { return f(a) })
}

// SequenceArray turns a slice of Either into an Either of slice.
func SequenceArray[E, A any](as []Either[E, A]) Either[E, []A] {
	return TraverseArrayWithIndex(as, func(_ int, a Either[E, A]) Either[E, A] { return a })
}
