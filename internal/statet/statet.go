// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package statet threads state through a base monad M.
//
// A computation is func(S) MP, where MP is M[Pair[A, S]]. Every step
// receives the state produced by the previous one; the incoming state is
// never mutated.
package statet

import "code.hybscloud.com/effect"

// Of returns a without touching the state.
func Of[S, A, MP any](mof func(effect.Pair[A, S]) MP, a A) func(S) MP {
	return func(s S) MP { return mof(effect.MakePair(a, s)) }
}

// FromF lifts a base computation, leaving the state unchanged.
func FromF[S, A, MA, MP any](fmap func(MA, func(A) effect.Pair[A, S]) MP, ma MA) func(S) MP {
	return func(s S) MP {
		return fmap(ma, func(a A) effect.Pair[A, S] { return effect.MakePair(a, s) })
	}
}

// FromState lifts a pure state transition.
func FromState[S, A, MP any](mof func(effect.Pair[A, S]) MP, ma func(S) (A, S)) func(S) MP {
	return func(s S) MP {
		a, next := ma(s)
		return mof(effect.MakePair(a, next))
	}
}

// Get returns the current state as the result.
func Get[S, MP any](mof func(effect.Pair[S, S]) MP) func(S) MP {
	return func(s S) MP { return mof(effect.MakePair(s, s)) }
}

// Gets returns a projection of the current state.
func Gets[S, A, MP any](mof func(effect.Pair[A, S]) MP, f func(S) A) func(S) MP {
	return func(s S) MP { return mof(effect.MakePair(f(s), s)) }
}

// Put replaces the state.
func Put[S, MP any](mof func(effect.Pair[effect.Unit, S]) MP, s S) func(S) MP {
	return func(S) MP { return mof(effect.MakePair(effect.Unit{}, s)) }
}

// Modify replaces the state with f applied to it.
func Modify[S, MP any](mof func(effect.Pair[effect.Unit, S]) MP, f func(S) S) func(S) MP {
	return func(s S) MP { return mof(effect.MakePair(effect.Unit{}, f(s))) }
}

// Map maps the result, leaving the state untouched.
func Map[S, A, B, MP, MQ any](fmap func(MP, func(effect.Pair[A, S]) effect.Pair[B, S]) MQ, ma func(S) MP, f func(A) B) func(S) MQ {
	return func(s S) MQ {
		return fmap(ma(s), func(p effect.Pair[A, S]) effect.Pair[B, S] {
			return effect.MakePair(f(p.Fst), p.Snd)
		})
	}
}

// FlatMap runs ma, then runs f on its result with the state ma produced.
func FlatMap[S, A, MP, MQ any](mchain func(MP, func(effect.Pair[A, S]) MQ) MQ, ma func(S) MP, f func(A) func(S) MQ) func(S) MQ {
	return func(s S) MQ {
		return mchain(ma(s), func(p effect.Pair[A, S]) MQ {
			return f(p.Fst)(p.Snd)
		})
	}
}

// Evaluate runs ma from s and keeps only the result.
func Evaluate[S, A, MP, MA any](fmap func(MP, func(effect.Pair[A, S]) A) MA, ma func(S) MP, s S) MA {
	return fmap(ma(s), func(p effect.Pair[A, S]) A { return p.Fst })
}

// Execute runs ma from s and keeps only the final state.
func Execute[S, A, MP, MS any](fmap func(MP, func(effect.Pair[A, S]) S) MS, ma func(S) MP, s S) MS {
	return fmap(ma(s), func(p effect.Pair[A, S]) S { return p.Snd })
}
