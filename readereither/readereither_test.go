// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package readereither_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/reader"
	"code.hybscloud.com/effect/readereither"
	"code.hybscloud.com/effect/semigroup"
)

type env struct {
	Limit int
}

func atMost(n int) readereither.ReaderEither[env, string, int] {
	return func(e env) either.Either[string, int] {
		if n > e.Limit {
			return either.Left[string, int]("over limit: " + strconv.Itoa(n))
		}
		return either.Right[string](n)
	}
}

func TestConstructors(t *testing.T) {
	e := env{Limit: 3}
	assert.Equal(t, either.Right[string](1), readereither.Right[env, string](1)(e))
	assert.Equal(t, either.Right[string](1), readereither.Of[env, string](1)(e))
	assert.Equal(t, either.Left[string, int]("x"), readereither.Left[env, string, int]("x")(e))
	assert.Equal(t, either.Left[string, int]("x"), readereither.ThrowError[env, string, int]("x")(e))
	assert.Equal(t, either.Right[string](3), readereither.RightReader[string](func(e env) int { return e.Limit })(e))
	assert.Equal(t, either.Right[string](3), readereither.FromReader[string](func(e env) int { return e.Limit })(e))
	assert.Equal(t, either.Left[int, string](3), readereither.LeftReader[string](func(e env) int { return e.Limit })(e))
	assert.Equal(t, either.Right[string](2), readereither.FromEither[env](either.Right[string](2))(e))
	assert.Equal(t, either.Left[string, int]("none"),
		readereither.FromOption[env](mo.None[int](), func() string { return "none" })(e))
	assert.Equal(t, either.Right[string](4),
		readereither.FromPredicate[env](4, func(n int) bool { return n > 0 }, func(int) string { return "neg" })(e))
}

func TestEnvironment(t *testing.T) {
	e := env{Limit: 7}
	assert.Equal(t, either.Right[string](e), readereither.Ask[env, string]()(e))
	assert.Equal(t, either.Right[string](7), readereither.Asks[env, string](func(e env) int { return e.Limit })(e))
	assert.Equal(t, either.Right[string](5),
		readereither.AsksReaderEither(func(e env) readereither.ReaderEither[env, string, int] { return atMost(e.Limit - 2) })(e))

	loose := readereither.Local(atMost(10), func(e env) env { e.Limit = 100; return e })
	assert.Equal(t, either.Right[string](10), loose(e))
	assert.Equal(t, either.Left[string, int]("over limit: 10"), atMost(10)(e))
}

func TestFlatMapShortCircuit(t *testing.T) {
	e := env{Limit: 5}
	called := false
	out := readereither.FlatMap(atMost(9), func(n int) readereither.ReaderEither[env, string, int] {
		called = true
		return atMost(n)
	})
	assert.Equal(t, either.Left[string, int]("over limit: 9"), out(e))
	assert.False(t, called)

	ok := readereither.FlatMap(atMost(2), func(n int) readereither.ReaderEither[env, string, int] { return atMost(n * 2) })
	assert.Equal(t, either.Right[string](4), ok(e))

	assert.Equal(t, either.Right[string](3), readereither.Flatten(readereither.Of[env, string](atMost(3)))(e))
	assert.Equal(t, either.Right[string]("3"),
		readereither.FlatMapEither(atMost(3), func(n int) either.Either[string, string] { return either.Right[string](strconv.Itoa(n)) })(e))
	assert.Equal(t, either.Right[string](8),
		readereither.FlatMapReader(atMost(3), func(n int) reader.Reader[env, int] { return func(e env) int { return n + e.Limit } })(e))
}

func TestMapAndBifunctor(t *testing.T) {
	e := env{Limit: 5}
	assert.Equal(t, either.Right[string](6), readereither.Map(atMost(3), func(n int) int { return n * 2 })(e))
	assert.Equal(t, either.Left[int, int](13), readereither.MapLeft(atMost(9), func(s string) int { return len(s) })(e))
	assert.Equal(t, either.Right[int]("3"), readereither.BiMap(atMost(3), func(s string) int { return len(s) }, strconv.Itoa)(e))
	assert.Equal(t, either.Left[int, string](3), readereither.Swap(atMost(3))(e))
}

func TestApSemantics(t *testing.T) {
	e := env{Limit: 5}
	inc := readereither.Of[env, string](func(n int) int { return n + 1 })
	assert.Equal(t, either.Right[string](4), readereither.Ap(inc, atMost(3))(e))
	assert.Equal(t, either.Right[string](3), readereither.ApFirst(atMost(3), atMost(4))(e))
	assert.Equal(t, either.Right[string](4), readereither.ApSecond(atMost(3), atMost(4))(e))

	badFn := readereither.Left[env, string, func(int) int]("fn")
	assert.Equal(t, either.Left[string, int]("fn"), readereither.Ap(badFn, atMost(9))(e))
	assert.Equal(t, either.Left[string, int]("fn; over limit: 9"),
		readereither.ApValidation(semigroup.Intercalate("; "), badFn, atMost(9))(e))
}

func TestRecovery(t *testing.T) {
	e := env{Limit: 5}
	fallback := func() readereither.ReaderEither[env, string, int] { return atMost(1) }
	assert.Equal(t, either.Right[string](1), readereither.Alt(atMost(9), fallback)(e))
	assert.Equal(t, either.Right[string](2), readereither.Alt(atMost(2), fallback)(e))

	recovered := readereither.OrElse(atMost(9), func(s string) readereither.ReaderEither[env, int, int] {
		return readereither.Right[env, int](len(s))
	})
	assert.Equal(t, either.Right[int](13), recovered(e))

	assert.Equal(t, either.Left[int, int](5),
		readereither.OrLeft(atMost(9), func(string) reader.Reader[env, int] { return func(e env) int { return e.Limit } })(e))

	var logged string
	tapped := readereither.TapError(atMost(9), func(s string) readereither.ReaderEither[env, string, bool] {
		logged = s
		return readereither.Right[env, string](true)
	})
	assert.Equal(t, either.Left[string, int]("over limit: 9"), tapped(e))
	assert.Equal(t, "over limit: 9", logged)

	assert.Equal(t, 5, readereither.GetOrElse(atMost(9), func(string) reader.Reader[env, int] {
		return func(e env) int { return e.Limit }
	})(e))
}

func TestAltValidationErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	out := readereither.AltValidation(semigroup.Errors(),
		readereither.Left[env, error, int](errA),
		func() readereither.ReaderEither[env, error, int] { return readereither.Left[env, error, int](errB) },
	)(env{})
	err, ok := out.GetLeft()
	require.True(t, ok)
	assert.Equal(t, []error{errA, errB}, multierr.Errors(err))
}

func TestTapAndFilter(t *testing.T) {
	e := env{Limit: 5}
	var seen []int
	tap := readereither.Tap(atMost(2), func(n int) readereither.ReaderEither[env, string, bool] {
		seen = append(seen, n)
		return readereither.Of[env, string](true)
	})
	assert.Equal(t, either.Right[string](2), tap(e))

	tapE := readereither.TapEither(atMost(2), func(n int) either.Either[string, bool] { return either.Left[string, bool]("tap") })
	assert.Equal(t, either.Left[string, int]("tap"), tapE(e))

	tapR := readereither.TapReader(atMost(3), func(n int) reader.Reader[env, bool] {
		return func(env) bool { seen = append(seen, n); return true }
	})
	assert.Equal(t, either.Right[string](3), tapR(e))
	assert.Equal(t, []int{2, 3}, seen)

	even := readereither.FilterOrElse(atMost(3), func(n int) bool { return n%2 == 0 }, func(int) string { return "odd" })
	assert.Equal(t, either.Left[string, int]("odd"), even(e))
}

func TestMatch(t *testing.T) {
	e := env{Limit: 5}
	show := func(ma readereither.ReaderEither[env, string, int]) string {
		return readereither.Match(ma, func(s string) string { return "L:" + s }, strconv.Itoa)(e)
	}
	assert.Equal(t, "3", show(atMost(3)))
	assert.Equal(t, "L:over limit: 6", show(atMost(6)))

	withEnv := readereither.MatchE(atMost(3),
		func(string) reader.Reader[env, int] { return reader.Of[env](-1) },
		func(n int) reader.Reader[env, int] { return func(e env) int { return n * e.Limit } },
	)
	assert.Equal(t, 15, withEnv(e))
}

func TestTraverseArray(t *testing.T) {
	e := env{Limit: 5}
	assert.Equal(t, either.Right[string]([]int{1, 2, 3}), readereither.TraverseArray([]int{1, 2, 3}, atMost)(e))

	var visited []int
	out := readereither.TraverseArray([]int{1, 6, 2}, func(n int) readereither.ReaderEither[env, string, int] {
		visited = append(visited, n)
		return atMost(n)
	})(e)
	assert.Equal(t, either.Left[string, []int]("over limit: 6"), out)
	assert.Equal(t, []int{1, 6}, visited)

	seq := readereither.SequenceArray([]readereither.ReaderEither[env, string, int]{atMost(4), atMost(5)})
	assert.Equal(t, either.Right[string]([]int{4, 5}), seq(e))
}
