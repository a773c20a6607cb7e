// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affine provides a one-shot result slot for completion callbacks
// handed to foreign code, such as the callbacks adapted by Taskify.
package affine

import (
	"sync/atomic"
)

// Slot receives at most one value. The first Settle wins; later calls
// are dropped.
type Slot[A any] struct {
	used atomic.Uintptr
	done chan A
}

// NewSlot creates an empty slot.
func NewSlot[A any]() *Slot[A] {
	return &Slot[A]{done: make(chan A, 1)}
}

// Settle stores v if the slot is still empty and reports whether it did.
// Settle never blocks.
func (s *Slot[A]) Settle(v A) bool {
	if s.used.Add(1) != 1 {
		return false
	}
	s.done <- v
	return true
}

// Settled reports whether Settle has already claimed the slot.
func (s *Slot[A]) Settled() bool {
	return s.used.Load() != 0
}

// Wait blocks until the slot is settled and returns the value.
// Only one Wait may receive it.
func (s *Slot[A]) Wait() A {
	return <-s.done
}
