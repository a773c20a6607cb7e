// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskeither

import (
	"code.hybscloud.com/effect"
	"code.hybscloud.com/effect/either"
	"code.hybscloud.com/effect/task"
)

// Bracket provides resource acquisition and release.
// This follows the bracket pattern: acquire → use → release, where release
// is guaranteed to run once use has returned, whether use succeeded or failed.
//
// release receives the resource and use's result. If release fails, its
// Left is returned; otherwise use's result is returned unchanged.
// When acquire fails neither use nor release runs.
func Bracket[E, R, B any](
	acquire TaskEither[E, R],
	use func(R) TaskEither[E, B],
	release func(R, either.Either[E, B]) TaskEither[E, effect.Unit],
) TaskEither[E, B] {
	return FlatMap(acquire, func(r R) TaskEither[E, B] {
		return task.FlatMap(use(r), func(result either.Either[E, B]) TaskEither[E, B] {
			return FlatMap(release(r, result), func(effect.Unit) TaskEither[E, B] {
				return task.Of(result)
			})
		})
	})
}

// OnError runs cleanup only if body fails, then fails with the original
// error. A failing cleanup replaces the original error.
func OnError[E, A any](body TaskEither[E, A], cleanup func(E) TaskEither[E, effect.Unit]) TaskEither[E, A] {
	return OrElse(body, func(e E) TaskEither[E, A] {
		return FlatMap(cleanup(e), func(effect.Unit) TaskEither[E, A] {
			return Left[E, A](e)
		})
	})
}
