// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package io

// Do starts a do-notation block with an initial scope value.
func Do[S any](empty S) IO[S] {
	return Of(empty)
}

// BindTo starts a block from an existing IO.
func BindTo[S, A any](ma IO[A], set func(A) S) IO[S] {
	return Map(ma, set)
}

// Bind runs f against the current scope and stores its result with set.
func Bind[S1, S2, T any](ma IO[S1], f func(S1) IO[T], set func(S1, T) S2) IO[S2] {
	return FlatMap(ma, func(s S1) IO[S2] {
		return Map(f(s), func(t T) S2 { return set(s, t) })
	})
}

// Let stores a pure value computed from the scope.
func Let[S1, S2, T any](ma IO[S1], f func(S1) T, set func(S1, T) S2) IO[S2] {
	return Map(ma, func(s S1) S2 { return set(s, f(s)) })
}

// ApS stores the result of an IO that does not depend on the scope.
func ApS[S1, S2, T any](ma IO[S1], fb IO[T], set func(S1, T) S2) IO[S2] {
	return Ap(Map(ma, func(s S1) func(T) S2 {
		return func(t T) S2 { return set(s, t) }
	}), fb)
}
