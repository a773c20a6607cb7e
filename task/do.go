// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Do starts a do-notation block with an initial scope value.
func Do[S any](empty S) Task[S] {
	return Of(empty)
}

// BindTo starts a block from an existing task.
func BindTo[S, A any](ma Task[A], set func(A) S) Task[S] {
	return Map(ma, set)
}

// Bind runs f against the current scope and stores its result with set.
func Bind[S1, S2, T any](ma Task[S1], f func(S1) Task[T], set func(S1, T) S2) Task[S2] {
	return FlatMap(ma, func(s S1) Task[S2] {
		return Map(f(s), func(t T) S2 { return set(s, t) })
	})
}

// Let stores a pure value computed from the scope.
func Let[S1, S2, T any](ma Task[S1], f func(S1) T, set func(S1, T) S2) Task[S2] {
	return Map(ma, func(s S1) S2 { return set(s, f(s)) })
}

// ApS runs fb concurrently with ma and stores its result with set.
func ApS[S1, S2, T any](ma Task[S1], fb Task[T], set func(S1, T) S2) Task[S2] {
	return ApPar(Map(ma, func(s S1) func(T) S2 {
		return func(t T) S2 { return set(s, t) }
	}), fb)
}
