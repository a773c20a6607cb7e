// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option_test

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/option"
)

func TestToEither(t *testing.T) {
	calls := 0
	onNone := func() string { calls++; return "none" }
	assert.Equal(t, either.Right[string](1), option.ToEither(mo.Some(1), onNone))
	assert.Equal(t, 0, calls, "onNone must not run for Some")
	assert.Equal(t, either.Left[string, int]("none"), option.ToEither(mo.None[int](), onNone))
	assert.Equal(t, 1, calls)
}

func TestFromEither(t *testing.T) {
	assert.Equal(t, mo.Some(2), option.FromEither(either.Right[string](2)))
	assert.Equal(t, mo.None[int](), option.FromEither(either.Left[string, int]("e")))
	assert.Equal(t, mo.Some("e"), option.FromLeft(either.Left[string, int]("e")))
	assert.Equal(t, mo.None[string](), option.FromLeft(either.Right[string](2)))
}

func TestFromNilable(t *testing.T) {
	n := 4
	assert.Equal(t, mo.Some(4), option.FromNilable(&n))
	assert.True(t, option.FromNilable[int](nil).IsAbsent())
}

func TestLift(t *testing.T) {
	lookup := map[string]int{"a": 1}
	find := option.Lift(func(k string) mo.Option[int] {
		v, ok := lookup[k]
		return mo.TupleToOption(v, ok)
	}, func(k string) string { return "missing " + k })
	assert.Equal(t, either.Right[string](1), find("a"))
	assert.Equal(t, either.Left[string, int]("missing b"), find("b"))
}
