// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statereadertaskeither_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"code.hybscloud.com/effect"
	srte "code.hybscloud.com/effect/statereadertaskeither"
)

func counted(n int, ok bool) program[int] {
	if !ok {
		return srte.Left[int, cfg, string, int]("e")
	}
	return srte.FlatMap(srte.Get[int, cfg, string](), func(s int) program[int] {
		return srte.As(srte.Put[int, cfg, string](s+1), n+s)
	})
}

func guarded(n int) program[int] {
	if n%4 == 0 {
		return srte.Left[int, cfg, string, int]("div4")
	}
	return srte.FlatMap(srte.Asks[int, cfg, string](func(c cfg) int { return c.step }), func(step int) program[int] {
		return srte.As(srte.Modify[int, cfg, string](func(s int) int { return s * step }), n-step)
	})
}

func bump(n int) program[int] {
	return srte.As(srte.Modify[int, cfg, string](func(s int) int { return s + n }), n)
}

// TestPropertyStateReaderTaskEitherLaws compares final (value, state) pairs
// under generated initial states and environments.
func TestPropertyStateReaderTaskEitherLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("functor identity", prop.ForAll(func(n, s, step int, ok bool) bool {
		m := counted(n, ok)
		c := cfg{step: step}
		return run(srte.Map(m, effect.Identity[int]), s, c) == run(m, s, c)
	}, gen.Int(), gen.IntRange(-1000, 1000), gen.IntRange(-10, 10), gen.Bool()))

	properties.Property("functor composition", prop.ForAll(func(n, s, step int, ok bool) bool {
		m := counted(n, ok)
		c := cfg{step: step}
		f := func(x int) int { return x ^ 0x5a }
		g := func(x int) int { return x - 9 }
		return run(srte.Map(m, effect.Compose(f, g)), s, c) == run(srte.Map(srte.Map(m, f), g), s, c)
	}, gen.Int(), gen.IntRange(-1000, 1000), gen.IntRange(-10, 10), gen.Bool()))

	properties.Property("left identity", prop.ForAll(func(n, s, step int) bool {
		c := cfg{step: step}
		return run(srte.FlatMap(srte.Of[int, cfg, string](n), guarded), s, c) == run(guarded(n), s, c)
	}, gen.Int(), gen.IntRange(-1000, 1000), gen.IntRange(-10, 10)))

	properties.Property("right identity", prop.ForAll(func(n, s, step int, ok bool) bool {
		m := counted(n, ok)
		c := cfg{step: step}
		return run(srte.FlatMap(m, srte.Of[int, cfg, string, int]), s, c) == run(m, s, c)
	}, gen.Int(), gen.IntRange(-1000, 1000), gen.IntRange(-10, 10), gen.Bool()))

	properties.Property("associativity", prop.ForAll(func(n, s, step int, ok bool) bool {
		m := counted(n, ok)
		c := cfg{step: step}
		left := srte.FlatMap(srte.FlatMap(m, guarded), bump)
		right := srte.FlatMap(m, func(x int) program[int] { return srte.FlatMap(guarded(x), bump) })
		return run(left, s, c) == run(right, s, c)
	}, gen.Int(), gen.IntRange(-1000, 1000), gen.IntRange(-10, 10), gen.Bool()))

	properties.Property("put then get", prop.ForAll(func(s, v int) bool {
		prog := srte.ApSecond(srte.Put[int, cfg, string](v), srte.Get[int, cfg, string]())
		return run(prog, s, cfg{}) == right(v, v)
	}, gen.Int(), gen.Int()))

	properties.TestingRun(t)
}
