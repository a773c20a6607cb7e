// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"sync"

	"github.com/samber/lo"
)

// TraverseArrayWithIndex maps each element with its index and runs every
// resulting task concurrently. Results keep the input order.
func TraverseArrayWithIndex[A, B any](as []A, f func(int, A) Task[B]) Task[[]B] {
	return func() []B {
		tasks := lo.Map(as, func(a A, i int) Task[B] { return f(i, a) })
		return runAll(tasks)
	}
}

// TraverseArray maps each element and runs the resulting tasks concurrently.
func TraverseArray[A, B any](as []A, f func(A) Task[B]) Task[[]B] {
	return TraverseArrayWithIndex(as, func(_ int, a A) Task[B] { return f(a) })
}

// SequenceArray runs every task concurrently and collects the results in order.
func SequenceArray[A any](as []Task[A]) Task[[]A] {
	return func() []A {
		return runAll(as)
	}
}

// TraverseArrayWithIndexSeq maps each element with its index and runs the
// resulting tasks one after another.
func TraverseArrayWithIndexSeq[A, B any](as []A, f func(int, A) Task[B]) Task[[]B] {
	return func() []B {
		out := make([]B, len(as))
		for i, a := range as {
			out[i] = f(i, a)()
		}
		return out
	}
}

// TraverseArraySeq maps each element and runs the resulting tasks in order.
func TraverseArraySeq[A, B any](as []A, f func(A) Task[B]) Task[[]B] {
	return TraverseArrayWithIndexSeq(as, func(_ int, a A) Task[B] { return f(a) })
}

// SequenceArraySeq runs the tasks one after another.
func SequenceArraySeq[A any](as []Task[A]) Task[[]A] {
	return TraverseArrayWithIndexSeq(as, func(_ int, ma Task[A]) Task[A] { return ma })
}

// runAll starts every task on its own goroutine and waits for all of them.
// Each goroutine writes a distinct slot, so no further synchronisation is needed.
func runAll[A any](tasks []Task[A]) []A {
	out := make([]A, len(tasks))
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, t := range tasks {
		go func() {
			defer wg.Done()
			out[i] = t()
		}()
	}
	wg.Wait()
	return out
}
