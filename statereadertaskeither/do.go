// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statereadertaskeither

// Do starts a do-notation block with an initial scope value.
func Do[S, R, E, T any](empty T) StateReaderTaskEither[S, R, E, T] {
	return Of[S, R, E](empty)
}

// BindTo starts a block from an existing computation.
func BindTo[S, R, E, T, A any](ma StateReaderTaskEither[S, R, E, A], set func(A) T) StateReaderTaskEither[S, R, E, T] {
	return Map(ma, set)
}

// Bind runs f against the current scope and stores its result with set.
func Bind[S, R, E, T1, T2, V any](ma StateReaderTaskEither[S, R, E, T1], f func(T1) StateReaderTaskEither[S, R, E, V], set func(T1, V) T2) StateReaderTaskEither[S, R, E, T2] {
	return FlatMap(ma, func(t T1) StateReaderTaskEither[S, R, E, T2] {
		return Map(f(t), func(v V) T2 { return set(t, v) })
	})
}

// Let stores a pure value computed from the scope.
func Let[S, R, E, T1, T2, V any](ma StateReaderTaskEither[S, R, E, T1], f func(T1) V, set func(T1, V) T2) StateReaderTaskEither[S, R, E, T2] {
	return Map(ma, func(t T1) T2 { return set(t, f(t)) })
}

// ApS runs fb after ma, threading the state, and stores its result with set.
func ApS[S, R, E, T1, T2, V any](ma StateReaderTaskEither[S, R, E, T1], fb StateReaderTaskEither[S, R, E, V], set func(T1, V) T2) StateReaderTaskEither[S, R, E, T2] {
	return Ap(Map(ma, func(t T1) func(V) T2 {
		return func(v V) T2 { return set(t, v) }
	}), fb)
}
