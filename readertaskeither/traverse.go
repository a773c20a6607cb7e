// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readertaskeither

import "code.hybscloud.com/effect/taskeither"

// TraverseArrayWithIndex runs f on every element concurrently with the same
// environment. The first Left in index order is returned.
func TraverseArrayWithIndex[R, E, A, B any](as []A, f func(int, A) ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, []B] {
	return func(r R) taskeither.TaskEither[E, []B] {
		return taskeither.TraverseArrayWithIndex(as, func(i int, a A) taskeither.TaskEither[E, B] { return f(i, a)(r) })
	}
}

// TraverseArray is TraverseArrayWithIndex without the index.
func TraverseArray[R, E, A, B any](as []A, f func(A) ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, []B] {
	return TraverseArrayWithIndex(as, func(_ int, a A) ReaderTaskEither[R, E, B] { return f(a) })
}

// SequenceArray runs all computations concurrently.
func SequenceArray[R, E, A any](as []ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, []A] {
	return TraverseArray(as, func(ma ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, A] { return ma })
}

// TraverseArrayWithIndexSeq runs f on each element in order. The first Left
// aborts the traversal: later elements are never started.
func TraverseArrayWithIndexSeq[R, E, A, B any](as []A, f func(int, A) ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, []B] {
	return func(r R) taskeither.TaskEither[E, []B] {
		return taskeither.TraverseArrayWithIndexSeq(as, func(i int, a A) taskeither.TaskEither[E, B] { return f(i, a)(r) })
	}
}

// TraverseArraySeq is TraverseArrayWithIndexSeq without the index.
func TraverseArraySeq[R, E, A, B any](as []A, f func(A) ReaderTaskEither[R, E, B]) ReaderTaskEither[R, E, []B] {
	return TraverseArrayWithIndexSeq(as, func(_ int, a A) ReaderTaskEither[R, E, B] { return f(a) })
}

// SequenceArraySeq runs the computations one after another.
func SequenceArraySeq[R, E, A any](as []ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, []A] {
	return TraverseArraySeq(as, func(ma ReaderTaskEither[R, E, A]) ReaderTaskEither[R, E, A] { return ma })
}
