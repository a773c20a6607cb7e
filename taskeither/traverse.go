// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskeither

import (
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/task"
)

// TraverseArrayWithIndex maps each element with its index and runs all the
// resulting computations concurrently. Every branch runs to completion; the
// first Left in index order is returned.
func TraverseArrayWithIndex[E, A, B any](as []A, f func(int, A) TaskEither[E, B]) TaskEither[E, []B] {
	return task.Map(task.TraverseArrayWithIndex(as, f), either.SequenceArray[E, B])
}

// TraverseArray is TraverseArrayWithIndex without the index.
func TraverseArray[E, A, B any](as []A, f func(A) TaskEither[E, B]) TaskEither[E, []B] {
	return TraverseArrayWithIndex(as, func(_ int, a A) TaskEither[E, B] { return f(a) })
}

// SequenceArray runs all computations concurrently.
func SequenceArray[E, A any](as []TaskEither[E, A]) TaskEither[E, []A] {
	return TraverseArrayWithIndex(as, func(_ int, ma TaskEither[E, A]) TaskEither[E, A] { return ma })
}

// TraverseArrayWithIndexSeq maps each element with its index and runs the
// resulting computations one after another. The first Left aborts the
// traversal: later elements are never started.
func TraverseArrayWithIndexSeq[E, A, B any](as []A, f func(int, A) TaskEither[E, B]) TaskEither[E, []B] {
	return func() either.Either[E, []B] {
		return either.TraverseArrayWithIndex(as, func(i int, a A) either.Either[E, B] {
			return f(i, a)()
		})
	}
}

// TraverseArraySeq is TraverseArrayWithIndexSeq without the index.
func TraverseArraySeq[E, A, B any](as []A, f func(A) TaskEither[E, B]) TaskEither[E, []B] {
	return TraverseArrayWithIndexSeq(as, func(_ int, a A) TaskEither[E, B] { return f(a) })
}

// SequenceArraySeq runs the computations one after another.
func SequenceArraySeq[E, A any](as []TaskEither[E, A]) TaskEither[E, []A] {
	return TraverseArrayWithIndexSeq(as, func(_ int, ma TaskEither[E, A]) TaskEither[E, A] { return ma })
}
