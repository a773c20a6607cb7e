// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readertaskeither

// Do starts a do-notation block with an initial scope value.
func Do[R, E, S any](empty S) ReaderTaskEither[R, E, S] {
	return Of[R, E](empty)
}

// BindTo starts a block from an existing computation.
func BindTo[R, E, S, A any](ma ReaderTaskEither[R, E, A], set func(A) S) ReaderTaskEither[R, E, S] {
	return Map(ma, set)
}

// Bind runs f against the current scope and stores its result with set.
func Bind[R, E, S1, S2, T any](ma ReaderTaskEither[R, E, S1], f func(S1) ReaderTaskEither[R, E, T], set func(S1, T) S2) ReaderTaskEither[R, E, S2] {
	return FlatMap(ma, func(s S1) ReaderTaskEither[R, E, S2] {
		return Map(f(s), func(t T) S2 { return set(s, t) })
	})
}

// Let stores a pure value computed from the scope.
func Let[R, E, S1, S2, T any](ma ReaderTaskEither[R, E, S1], f func(S1) T, set func(S1, T) S2) ReaderTaskEither[R, E, S2] {
	return Map(ma, func(s S1) S2 { return set(s, f(s)) })
}

// ApS runs fb concurrently with ma and stores its result with set.
func ApS[R, E, S1, S2, T any](ma ReaderTaskEither[R, E, S1], fb ReaderTaskEither[R, E, T], set func(S1, T) S2) ReaderTaskEither[R, E, S2] {
	return ApPar(Map(ma, func(s S1) func(T) S2 {
		return func(t T) S2 { return set(s, t) }
	}), fb)
}
