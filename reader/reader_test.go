// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/reader"
)

const propertyN = 1000

type config struct {
	Name  string
	Depth int
}

func TestAskAsks(t *testing.T) {
	cfg := config{Name: "svc", Depth: 2}
	assert.Equal(t, cfg, reader.Run(reader.Ask[config](), cfg))
	assert.Equal(t, "svc", reader.Run(reader.Asks(func(c config) string { return c.Name }), cfg))
	assert.Equal(t, 9, reader.Run(reader.Of[config](9), cfg))
}

func TestLocalDoesNotLeak(t *testing.T) {
	depth := reader.Asks(func(c config) int { return c.Depth })
	deeper := reader.Local(depth, func(c config) config {
		c.Depth++
		return c
	})
	both := reader.FlatMap(deeper, func(inner int) reader.Reader[config, [2]int] {
		return reader.Map(depth, func(outer int) [2]int { return [2]int{inner, outer} })
	})
	cfg := config{Depth: 1}
	assert.Equal(t, [2]int{2, 1}, reader.Run(both, cfg))
	assert.Equal(t, 1, cfg.Depth)
}

func TestLocalChangesEnvironmentType(t *testing.T) {
	name := reader.Asks(func(s string) int { return len(s) })
	fromConfig := reader.Local(name, func(c config) string { return c.Name })
	assert.Equal(t, 5, fromConfig(config{Name: "hello"}))
}

func TestFlatMapSharesEnvironment(t *testing.T) {
	var seen []int
	record := func(tag int) reader.Reader[int, int] {
		return func(r int) int {
			seen = append(seen, r)
			return tag
		}
	}
	out := reader.FlatMap(record(1), func(a int) reader.Reader[int, int] {
		return reader.Map(record(2), func(b int) int { return a + b })
	})
	assert.Equal(t, 3, out(10))
	assert.Equal(t, []int{10, 10}, seen)
}

func TestReaderCombinators(t *testing.T) {
	env := config{Name: "ab", Depth: 3}
	nested := reader.Of[config](reader.Asks(func(c config) int { return c.Depth }))
	assert.Equal(t, 3, reader.Flatten(nested)(env))

	fab := reader.Asks(func(c config) func(int) string {
		return func(n int) string { return c.Name + strconv.Itoa(n) }
	})
	assert.Equal(t, "ab7", reader.Ap(fab, reader.Of[config](7))(env))

	var tapped string
	tap := reader.Tap(reader.Of[config](1), func(int) reader.Reader[config, effect.Unit] {
		return func(c config) effect.Unit { tapped = c.Name; return effect.Unit{} }
	})
	assert.Equal(t, 1, tap(env))
	assert.Equal(t, "ab", tapped)

	length := reader.Compose(func(c config) string { return c.Name }, func(s string) int { return len(s) })
	assert.Equal(t, 2, length(env))
}

// --- Group 1: Monad Laws ---

// TestPropertyReaderLaws runs both sides with the same random environment.
func TestPropertyReaderLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(a int) reader.Reader[int, int] { return func(r int) int { return a + r } }
	g := func(a int) reader.Reader[int, int] { return func(r int) int { return a * r } }
	for range propertyN {
		env := rng.IntN(2001) - 1000
		a := rng.IntN(2001) - 1000
		m := reader.Asks(func(r int) int { return r - a })
		if reader.Map(m, effect.Identity[int])(env) != m(env) {
			t.Fatalf("functor identity failed (env=%d)", env)
		}
		if reader.FlatMap(reader.Of[int](a), f)(env) != f(a)(env) {
			t.Fatalf("left identity failed (a=%d env=%d)", a, env)
		}
		if reader.FlatMap(m, reader.Of[int, int])(env) != m(env) {
			t.Fatalf("right identity failed (env=%d)", env)
		}
		left := reader.FlatMap(reader.FlatMap(m, f), g)(env)
		right := reader.FlatMap(m, func(x int) reader.Reader[int, int] { return reader.FlatMap(f(x), g) })(env)
		if left != right {
			t.Fatalf("associativity: %d != %d (env=%d)", left, right, env)
		}
	}
}
