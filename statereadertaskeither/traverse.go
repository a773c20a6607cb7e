// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statereadertaskeither

import (
	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/readertaskeither"
	"code.hybscloud.com/effect/taskeither"
)

// TraverseArrayWithIndex runs f on each element in order, threading the
// state from one step to the next. The first Left aborts the traversal.
func TraverseArrayWithIndex[S, R, E, A, B any](as []A, f func(int, A) StateReaderTaskEither[S, R, E, B]) StateReaderTaskEither[S, R, E, []B] {
	return func(s S) readertaskeither.ReaderTaskEither[R, E, effect.Pair[[]B, S]] {
		return func(r R) taskeither.TaskEither[E, effect.Pair[[]B, S]] {
			return func() either.Either[E, effect.Pair[[]B, S]] {
				bs := make([]B, 0, len(as))
				cur := s
				for i, a := range as {
					res := f(i, a)(cur)(r)()
					p, ok := res.GetRight()
					if !ok {
						e, _ := res.GetLeft()
						return either.Left[E, effect.Pair[[]B, S]](e)
					}
					bs = append(bs, p.Fst)
					cur = p.Snd
				}
				return either.Right[E](effect.MakePair(bs, cur))
			}
		}
	}
}

// TraverseArray is TraverseArrayWithIndex without the index.
func TraverseArray[S, R, E, A, B any](as []A, f func(A) StateReaderTaskEither[S, R, E, B]) StateReaderTaskEither[S, R, E, []B] {
	return TraverseArrayWithIndex(as, func(_ int, a A) StateReaderTaskEither[S, R, E, B] { return f(a) })
}

// SequenceArray runs the computations in order.
func SequenceArray[S, R, E, A any](as []StateReaderTaskEither[S, R, E, A]) StateReaderTaskEither[S, R, E, []A] {
	return TraverseArray(as, effect.Identity[StateReaderTaskEither[S, R, E, A]])
}
