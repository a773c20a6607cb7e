// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package log provides logging as effects, backed by zap.
//
// Nothing is written when a combinator is called. The returned IO or
// TaskEither logs when it is run, so logging composes like any other step.
// Loggers are passed explicitly; the package holds no global logger.
package log

import (
	"go.uber.org/zap"

	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/io"
	"code.hybscloud.com/effect/readertaskeither"
	"code.hybscloud.com/effect/task"
	"code.hybscloud.com/effect/taskeither"
)

// Level is the severity of a log entry. Any value other than the four
// constants below logs at info.
type Level string

const (
	// LevelDebug is for detailed internal information.
	LevelDebug Level = "debug"

	// LevelInfo is for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is for failures.
	LevelError Level = "error"
)

// Write logs msg at level immediately. Unknown levels log at info.
func Write(logger *zap.Logger, level Level, msg string, fields ...zap.Field) {
	switch level {
	case LevelDebug:
		logger.Debug(msg, fields...)
	case LevelWarn:
		logger.Warn(msg, fields...)
	case LevelError:
		logger.Error(msg, fields...)
	default:
		logger.Info(msg, fields...)
	}
}

// IO returns an IO that logs msg at level each time it runs.
func IO(logger *zap.Logger, level Level, msg string, fields ...zap.Field) io.IO[effect.Unit] {
	return func() effect.Unit {
		Write(logger, level, msg, fields...)
		return effect.Unit{}
	}
}

// Fields converts a map of structured values into zap fields.
func Fields(m map[string]any) []zap.Field {
	fields := make([]zap.Field, 0, len(m))
	for k, v := range m {
		fields = append(fields, zap.Any(k, v))
	}
	return fields
}

// ErrorField renders a failure value. error values use zap.Error; anything
// else is logged under the "error" key as is.
func ErrorField[E any](e E) zap.Field {
	if err, ok := any(e).(error); ok {
		return zap.Error(err)
	}
	return zap.Any("error", e)
}

// Either logs a Left at error level and a Right at debug level, then
// returns e unchanged.
func Either[E, A any](logger *zap.Logger, msg string, e either.Either[E, A]) either.Either[E, A] {
	if l, ok := e.GetLeft(); ok {
		logger.Error(msg, ErrorField(l))
		return e
	}
	r, _ := e.GetRight()
	logger.Debug(msg, zap.Any("value", r))
	return e
}

// TapTaskEither logs the outcome of ma when it completes. The result is
// passed through unchanged.
func TapTaskEither[E, A any](logger *zap.Logger, msg string, ma taskeither.TaskEither[E, A]) taskeither.TaskEither[E, A] {
	return task.Map(ma, func(e either.Either[E, A]) either.Either[E, A] {
		return Either(logger, msg, e)
	})
}

// TapReaderTaskEither logs the outcome of ma when it completes.
func TapReaderTaskEither[R, E, A any](logger *zap.Logger, msg string, ma readertaskeither.ReaderTaskEither[R, E, A]) readertaskeither.ReaderTaskEither[R, E, A] {
	return func(r R) taskeither.TaskEither[E, A] {
		return TapTaskEither(logger, msg, ma(r))
	}
}
