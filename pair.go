// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Unit is the informationless type returned by effects that produce no
// meaningful result, such as Put.
type Unit = struct{}

// Pair holds two values.
// State-carrying effects use Pair[A, S] for their (result, next state) output.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair builds a Pair with full type inference.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Swap exchanges the two components.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.Fst, p.Snd
}
