// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statereadertaskeither_test

import (
	"strconv"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/reader"
	"code.hybscloud.com/effect/readereither"
	"code.hybscloud.com/effect/readertaskeither"
	srte "code.hybscloud.com/effect/statereadertaskeither"
	"code.hybscloud.com/effect/task"
	"code.hybscloud.com/effect/taskeither"
)

type cfg struct{ step int }

type program[A any] = srte.StateReaderTaskEither[int, cfg, string, A]

func run[A any](ma program[A], s int, c cfg) either.Either[string, effect.Pair[A, int]] {
	return readertaskeither.Run(srte.Run(ma, s), c)
}

func right[A any](a A, s int) either.Either[string, effect.Pair[A, int]] {
	return either.Right[string](effect.MakePair(a, s))
}

func left[A any](e string) either.Either[string, effect.Pair[A, int]] {
	return either.Left[string, effect.Pair[A, int]](e)
}

// --- Group 1: State threading ---

func TestIncrement(t *testing.T) {
	inc := srte.FlatMap(srte.Get[int, cfg, string](), func(s int) program[effect.Unit] {
		return srte.Put[int, cfg, string](s + 1)
	})
	assert.Equal(t, right(effect.Unit{}, 6), run(inc, 5, cfg{}))
}

func TestStepFromEnvironment(t *testing.T) {
	step := srte.FlatMap(srte.Asks[int, cfg, string](func(c cfg) int { return c.step }), func(n int) program[int] {
		return srte.Map(srte.Modify[int, cfg, string](func(s int) int { return s + n }), func(effect.Unit) int { return n })
	})
	twice := srte.ApSecond(step, step)
	assert.Equal(t, right(3, 16), run(twice, 10, cfg{step: 3}))
}

func TestShortCircuitHidesState(t *testing.T) {
	called := false
	prog := srte.FlatMap(
		srte.ApSecond(srte.Put[int, cfg, string](99), srte.Left[int, cfg, string, int]("stop")),
		func(int) program[int] {
			called = true
			return srte.Of[int, cfg, string](0)
		},
	)
	assert.Equal(t, left[int]("stop"), run(prog, 1, cfg{}))
	assert.False(t, called)
}

func TestEvaluateExecute(t *testing.T) {
	prog := srte.ApFirst(srte.Gets[int, cfg, string](strconv.Itoa), srte.Modify[int, cfg, string](func(s int) int { return s * 2 }))
	assert.Equal(t, either.Right[string]("4"), readertaskeither.Run(srte.Evaluate(prog, 4), cfg{}))
	assert.Equal(t, either.Right[string](8), readertaskeither.Run(srte.Execute(prog, 4), cfg{}))
}

// --- Group 2: Constructors ---

func TestConstructors(t *testing.T) {
	c := cfg{step: 2}
	double := func(s int) (int, int) { return s * 2, s + 1 }

	assert.Equal(t, right(1, 0), run(srte.Right[int, cfg, string](1), 0, c))
	assert.Equal(t, left[int]("t"), run(srte.ThrowError[int, cfg, string, int]("t"), 0, c))
	assert.Equal(t, right(7, 3), run(srte.FromReaderTaskEither[int](readertaskeither.Of[cfg, string](7)), 3, c))
	assert.Equal(t, right(5, 0), run(srte.RightTask[int, cfg, string](task.Of(5)), 0, c))
	assert.Equal(t, left[int]("lt"), run(srte.LeftTask[int, cfg, string, int](task.Of("lt")), 0, c))
	assert.Equal(t, right(6, 0), run(srte.RightIO[int, cfg, string](io.Of(6)), 0, c))
	assert.Equal(t, left[int]("li"), run(srte.LeftIO[int, cfg, string, int](io.Of("li")), 0, c))
	assert.Equal(t, right(6, 0), run(srte.FromIO[int, cfg, string](io.Of(6)), 0, c))
	assert.Equal(t, right(5, 0), run(srte.FromTask[int, cfg, string](task.Of(5)), 0, c))
	assert.Equal(t, right(2, 1), run(srte.RightReader[int, string](func(c cfg) int { return c.step }), 1, c))
	assert.Equal(t, right(2, 1), run(srte.FromReader[int, string](func(c cfg) int { return c.step }), 1, c))
	assert.Equal(t, left[int]("2"), run(srte.LeftReader[int, int](func(c cfg) string { return strconv.Itoa(c.step) }), 1, c))
	assert.Equal(t, right(10, 6), run(srte.RightState[cfg, string](double), 5, c))
	assert.Equal(t, right(10, 6), run(srte.FromState[cfg, string](double), 5, c))
	assert.Equal(t, left[int]("5"), run(srte.LeftState[cfg, int](func(s int) (string, int) { return strconv.Itoa(s), s + 1 }), 5, c))
	assert.Equal(t, right(9, 0), run(srte.FromEither[int, cfg](either.Right[string](9)), 0, c))
	assert.Equal(t, right(9, 0), run(srte.FromTaskEither[int, cfg](taskeither.Of[string](9)), 0, c))
	assert.Equal(t, left[int]("re"), run(srte.FromReaderEither[int](readereither.Left[cfg, string, int]("re")), 0, c))
	assert.Equal(t, left[int]("none"), run(srte.FromOption[int, cfg](mo.None[int](), func() string { return "none" }), 0, c))
	assert.Equal(t, right(4, 0), run(srte.FromPredicate[int, cfg](4, func(n int) bool { return n > 0 }, strconv.Itoa), 0, c))
	assert.Equal(t, right(c, 0), run(srte.Ask[int, cfg, string](), 0, c))
	assert.Equal(t, right(4, 1), run(srte.AsksStateReaderTaskEither(func(c cfg) program[int] {
		return srte.Gets[int, cfg, string](func(s int) int { return s + c.step*2 - 1 })
	}), 1, c))
}

func TestLocal(t *testing.T) {
	step := srte.Asks[int, cfg, string](func(c cfg) int { return c.step })
	widened := srte.Local(step, func(n int) cfg { return cfg{step: n * 10} })
	out := readertaskeither.Run(srte.Run(widened, 0), 4)
	assert.Equal(t, either.Right[string](effect.MakePair(40, 0)), out)
}

// --- Group 3: Combinators ---

func TestMonadVariants(t *testing.T) {
	c := cfg{step: 3}
	base := srte.Of[int, cfg, string](2)
	assert.Equal(t, right(2, 0), run(srte.Flatten(srte.Of[int, cfg, string](base)), 0, c))
	assert.Equal(t, right("k", 0), run(srte.As(base, "k"), 0, c))
	assert.Equal(t, right(effect.Unit{}, 0), run(srte.AsUnit(base), 0, c))
	assert.Equal(t, right(3, 0), run(srte.FlatMapEither(base, func(n int) either.Either[string, int] {
		return either.Right[string](n + 1)
	}), 0, c))
	assert.Equal(t, right(4, 0), run(srte.FlatMapTaskEither(base, func(n int) taskeither.TaskEither[string, int] {
		return taskeither.Of[string](n * 2)
	}), 0, c))
	assert.Equal(t, right(6, 0), run(srte.FlatMapReader(base, func(n int) reader.Reader[cfg, int] {
		return func(c cfg) int { return n * c.step }
	}), 0, c))
	assert.Equal(t, left[int]("rte"), run(srte.FlatMapReaderTaskEither(base, func(int) readertaskeither.ReaderTaskEither[cfg, string, int] {
		return readertaskeither.Left[cfg, string, int]("rte")
	}), 0, c))
	assert.Equal(t, right(12, 6), run(srte.FlatMapState(base, func(n int) func(int) (int, int) {
		return func(s int) (int, int) { return n + s + 7, s + 3 }
	}), 3, c))
	assert.Equal(t, right(20, 0), run(srte.FlatMapIO(base, func(n int) io.IO[int] { return io.Of(n * 10) }), 0, c))
	assert.Equal(t, right(22, 0), run(srte.FlatMapTask(base, func(n int) task.Task[int] { return task.Of(n + 20) }), 0, c))
	assert.Equal(t, left[int]("small"), run(srte.FilterOrElse(base, func(n int) bool { return n > 5 }, func(int) string { return "small" }), 0, c))
}

func TestTapVariants(t *testing.T) {
	var seen []string
	note := func(s string) { seen = append(seen, s) }
	prog := srte.TapReader(
		srte.TapTask(
			srte.TapIO(
				srte.TapEither(
					srte.Tap(srte.Of[int, cfg, string](1), func(int) program[effect.Unit] {
						note("tap")
						return srte.Modify[int, cfg, string](func(s int) int { return s + 100 })
					}),
					func(int) either.Either[string, bool] { note("either"); return either.Right[string](true) }),
				func(int) io.IO[bool] { return func() bool { note("io"); return true } }),
			func(int) task.Task[bool] { return func() bool { note("task"); return true } }),
		func(int) reader.Reader[cfg, bool] { return func(cfg) bool { note("reader"); return true } })

	assert.Equal(t, right(1, 100), run(prog, 0, cfg{}))
	assert.Equal(t, []string{"tap", "either", "io", "task", "reader"}, seen)
}

func TestBifunctor(t *testing.T) {
	l := srte.Left[int, cfg, string, int]("abc")
	out := readertaskeither.Run(srte.Run(srte.BiMap(l, func(s string) int { return len(s) }, strconv.Itoa), 0), cfg{})
	assert.Equal(t, either.Left[int, effect.Pair[string, int]](3), out)

	mapped := readertaskeither.Run(srte.Run(srte.MapLeft(l, func(s string) int { return len(s) }), 0), cfg{})
	assert.Equal(t, either.Left[int, effect.Pair[int, int]](3), mapped)

	ok := readertaskeither.Run(srte.Run(srte.BiMap(srte.Of[int, cfg, string](5), func(s string) int { return len(s) }, strconv.Itoa), 2), cfg{})
	assert.Equal(t, either.Right[int](effect.MakePair("5", 2)), ok)
}

func TestAltRestartsFromIncomingState(t *testing.T) {
	failed := srte.ApSecond(srte.Put[int, cfg, string](50), srte.Left[int, cfg, string, int]("boom"))
	fallback := srte.Gets[int, cfg, string](func(s int) int { return s })
	prog := srte.Alt(failed, func() program[int] { return fallback })
	assert.Equal(t, right(7, 7), run(prog, 7, cfg{}))

	kept := srte.Alt(srte.Of[int, cfg, string](1), func() program[int] {
		t.Fatal("alternative must not run when the first succeeds")
		return fallback
	})
	assert.Equal(t, right(1, 7), run(kept, 7, cfg{}))
}

func TestApplicativeThreadsFunctionFirst(t *testing.T) {
	var order []string
	fab := srte.FlatMap(srte.Modify[int, cfg, string](func(s int) int { order = append(order, "f"); return s + 1 }),
		func(effect.Unit) program[func(int) int] {
			return srte.Of[int, cfg, string](func(n int) int { return n * 10 })
		})
	fa := srte.Gets[int, cfg, string](func(s int) int { order = append(order, "a"); return s })
	assert.Equal(t, right(60, 6), run(srte.Ap(fab, fa), 5, cfg{}))
	assert.Equal(t, []string{"f", "a"}, order)
}

// --- Group 4: Do notation and traversal ---

type tally struct {
	before int
	step   int
	after  int
	label  string
}

func TestDoNotation(t *testing.T) {
	prog := srte.Let(
		srte.Bind(
			srte.ApS(
				srte.BindTo(srte.Get[int, cfg, string](), func(s int) tally { return tally{before: s} }),
				srte.Asks[int, cfg, string](func(c cfg) int { return c.step }),
				func(tl tally, step int) tally { tl.step = step; return tl },
			),
			func(tl tally) program[int] {
				return srte.ApSecond(srte.Modify[int, cfg, string](func(s int) int { return s + tl.step }), srte.Get[int, cfg, string]())
			},
			func(tl tally, after int) tally { tl.after = after; return tl },
		),
		func(tl tally) string { return strconv.Itoa(tl.before) + "->" + strconv.Itoa(tl.after) },
		func(tl tally, label string) tally { tl.label = label; return tl },
	)
	assert.Equal(t, right(tally{before: 1, step: 4, after: 5, label: "1->5"}, 5), run(prog, 1, cfg{step: 4}))

	empty := srte.Do[int, cfg, string](tally{label: "x"})
	assert.Equal(t, right(tally{label: "x"}, 9), run(empty, 9, cfg{}))
}

func TestTraverseThreadsState(t *testing.T) {
	push := func(n int) program[int] {
		return srte.FlatMap(srte.Get[int, cfg, string](), func(s int) program[int] {
			return srte.As(srte.Put[int, cfg, string](s+n), s)
		})
	}
	assert.Equal(t, right([]int{0, 1, 3}, 6), run(srte.TraverseArray([]int{1, 2, 3}, push), 0, cfg{}))
	assert.Equal(t, right([]int{10, 11}, 13), run(srte.SequenceArray([]program[int]{push(1), push(2)}), 10, cfg{}))

	indexed := srte.TraverseArrayWithIndex([]string{"a", "b"}, func(i int, s string) program[string] {
		return srte.As(srte.Modify[int, cfg, string](func(st int) int { return st + i }), s+strconv.Itoa(i))
	})
	assert.Equal(t, right([]string{"a0", "b1"}, 1), run(indexed, 0, cfg{}))
}

func TestTraverseStopsAtFirstLeft(t *testing.T) {
	var started []int
	step := func(n int) program[int] {
		return func(s int) readertaskeither.ReaderTaskEither[cfg, string, effect.Pair[int, int]] {
			started = append(started, n)
			if n < 0 {
				return readertaskeither.Left[cfg, string, effect.Pair[int, int]]("negative")
			}
			return readertaskeither.Right[cfg, string](effect.MakePair(n, s+1))
		}
	}
	assert.Equal(t, left[[]int]("negative"), run(srte.TraverseArray([]int{1, -1, 2}, step), 0, cfg{}))
	assert.Equal(t, []int{1, -1}, started)
}
