// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package state implements State, a pure computation threading a value
// of type S from step to step.
//
// A State[S, A] takes the incoming state and returns its result together
// with the next state. Nothing is shared: every step sees exactly the state
// the previous step returned.
package state

import "code.hybscloud.com/effect"

// State is a state transition producing a result.
type State[S, A any] = func(S) (A, S)

// Of returns a without touching the state.
func Of[S, A any](a A) State[S, A] {
	return func(s S) (A, S) { return a, s }
}

// Get returns the current state as the result.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) { return s, s }
}

// Gets returns a projection of the current state.
func Gets[S, A any](f func(S) A) State[S, A] {
	return func(s S) (A, S) { return f(s), s }
}

// Put replaces the state.
func Put[S any](s S) State[S, effect.Unit] {
	return func(S) (effect.Unit, S) { return effect.Unit{}, s }
}

// Modify replaces the state with f applied to it.
func Modify[S any](f func(S) S) State[S, effect.Unit] {
	return func(s S) (effect.Unit, S) { return effect.Unit{}, f(s) }
}

// Map applies f to the result.
func Map[S, A, B any](ma State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, next := ma(s)
		return f(a), next
	}
}

// FlatMap runs ma, then runs f on its result from the state ma produced.
func FlatMap[S, A, B any](ma State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, next := ma(s)
		return f(a)(next)
	}
}

// Flatten removes one level of nesting.
func Flatten[S, A any](mma State[S, State[S, A]]) State[S, A] {
	return FlatMap(mma, effect.Identity[State[S, A]])
}

// Ap runs fab, then fa, and applies the function to the value.
func Ap[S, A, B any](fab State[S, func(A) B], fa State[S, A]) State[S, B] {
	return FlatMap(fab, func(f func(A) B) State[S, B] { return Map(fa, f) })
}

// Tap runs f for its state change and keeps the original result.
func Tap[S, A, B any](ma State[S, A], f func(A) State[S, B]) State[S, A] {
	return FlatMap(ma, func(a A) State[S, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// Run runs ma from s and returns both the result and the final state.
func Run[S, A any](ma State[S, A], s S) (A, S) {
	return ma(s)
}

// Evaluate runs ma from s and returns only the result.
func Evaluate[S, A any](ma State[S, A], s S) A {
	a, _ := ma(s)
	return a
}

// Execute runs ma from s and returns only the final state.
func Execute[S, A any](ma State[S, A], s S) S {
	_, next := ma(s)
	return next
}

// TraverseArrayWithIndex runs f on each element in order, threading the
// state through every step.
func TraverseArrayWithIndex[S, A, B any](as []A, f func(int, A) State[S, B]) State[S, []B] {
	return func(s S) ([]B, S) {
		bs := make([]B, len(as))
		for i, a := range as {
			bs[i], s = f(i, a)(s)
		}
		return bs, s
	}
}

// TraverseArray is TraverseArrayWithIndex without the index.
func TraverseArray[S, A, B any](as []A, f func(A) State[S, B]) State[S, []B] {
	return TraverseArrayWithIndex(as, func(_ int, a A) State[S, B] { return f(a) })
}

// SequenceArray runs the computations in order.
func SequenceArray[S, A any](as []State[S, A]) State[S, []A] {
	return TraverseArray(as, effect.Identity[State[S, A]])
}
