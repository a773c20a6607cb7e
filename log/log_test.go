// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/log"
	"code.hybscloud.com/effect/readertaskeither"
	"code.hybscloud.com/effect/taskeither"
)

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestWriteLevels(t *testing.T) {
	logger, logs := newObserved()
	cases := []struct {
		level log.Level
		want  zapcore.Level
	}{
		{log.LevelDebug, zapcore.DebugLevel},
		{log.LevelInfo, zapcore.InfoLevel},
		{log.LevelWarn, zapcore.WarnLevel},
		{log.LevelError, zapcore.ErrorLevel},
		{log.Level("verbose"), zapcore.InfoLevel},
	}
	for _, tc := range cases {
		log.Write(logger, tc.level, string(tc.level))
	}
	entries := logs.All()
	require.Len(t, entries, len(cases))
	for i, tc := range cases {
		assert.Equal(t, string(tc.level), entries[i].Message)
		assert.Equal(t, tc.want, entries[i].Level)
	}
}

func TestIOIsLazy(t *testing.T) {
	logger, logs := newObserved()
	step := log.IO(logger, log.LevelInfo, "tick", zap.Int("n", 1))
	assert.Zero(t, logs.Len())

	io.FlatMap(step, func(struct{}) io.IO[struct{}] { return step })()
	assert.Equal(t, 2, logs.FilterMessage("tick").Len())
	assert.EqualValues(t, 1, logs.All()[0].ContextMap()["n"])
}

func TestIOUnknownLevelLogsAtInfo(t *testing.T) {
	logger, logs := newObserved()
	log.IO(logger, log.Level("trace"), "fallback")()
	entries := logs.FilterMessage("fallback").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestFields(t *testing.T) {
	logger, logs := newObserved()
	log.Write(logger, log.LevelInfo, "fields", log.Fields(map[string]any{"user": "ann", "retries": 2})...)
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "ann", ctx["user"])
	assert.EqualValues(t, 2, ctx["retries"])
}

func TestEither(t *testing.T) {
	logger, logs := newObserved()
	boom := errors.New("boom")

	l := either.Left[error, int](boom)
	assert.Equal(t, l, log.Either(logger, "left", l))
	r := either.Right[error](5)
	assert.Equal(t, r, log.Either(logger, "right", r))
	log.Either(logger, "plain", either.Left[string, int]("bad"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.EqualValues(t, 5, entries[1].ContextMap()["value"])
	assert.Equal(t, "bad", entries[2].ContextMap()["error"])
}

func TestTapTaskEither(t *testing.T) {
	logger, logs := newObserved()
	ma := log.TapTaskEither(logger, "fetch", taskeither.Left[string, int]("timeout"))
	assert.Zero(t, logs.Len())

	assert.Equal(t, either.Left[string, int]("timeout"), ma())
	entries := logs.FilterMessage("fetch").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestTapReaderTaskEither(t *testing.T) {
	logger, logs := newObserved()
	ma := log.TapReaderTaskEither(logger, "load", readertaskeither.Asks[string, error](func(s string) int { return len(s) }))
	assert.Equal(t, either.Right[error](3), readertaskeither.Run(ma, "abc"))
	entries := logs.FilterMessage("load").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.EqualValues(t, 3, entries[0].ContextMap()["value"])
}

func TestTestLoggerAndSync(t *testing.T) {
	logger := log.NewTestLogger()
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.NotPanics(t, func() { log.Sync(logger) })
}
