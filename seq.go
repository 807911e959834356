// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"iter"

	"code.hybscloud.com/kont"
)

// FromSlice creates a generator producing the elements of xs in order.
func FromSlice[T any](xs []T) *Generator[T, struct{}] {
	return NewExpr[T, struct{}](ExprLoop(0, func(i int) kont.Expr[kont.Either[int, struct{}]] {
		if i >= len(xs) {
			return kont.ExprReturn(kont.Right[int, struct{}](struct{}{}))
		}
		return ExprYieldThen(xs[i], kont.ExprReturn(kont.Left[int, struct{}](i+1)))
	}))
}

// FromSeq creates a generator producing the elements of seq in order.
// The sequence is pulled lazily: nothing is consumed before the first
// advance, and abandoning the generator via Stop releases the pull
// iterator.
func FromSeq[T any](seq iter.Seq[T]) *Generator[T, struct{}] {
	g := &Generator[T, struct{}]{serial: nextSerial()}
	// The owner parameter, not the constructed handle, receives the
	// cleanup hook: after a Move the moved-to handle runs the first
	// advance and must be the one whose Stop releases the iterator.
	g.start = func(owner *Generator[T, struct{}]) (struct{}, *kont.Suspension[struct{}]) {
		next, stop := iter.Pull(seq)
		owner.cleanup = stop
		return kont.Step(Loop(struct{}{}, func(struct{}) kont.Eff[kont.Either[struct{}, struct{}]] {
			v, ok := next()
			if !ok {
				return kont.Pure(kont.Right[struct{}, struct{}](struct{}{}))
			}
			return YieldThen(v, kont.Pure(kont.Left[struct{}, struct{}](struct{}{})))
		}))
	}
	return g
}

// Values returns a reusable range over generators built by factory.
// Each for-range loop constructs a fresh generator, so the sequence can
// be ranged any number of times even though each generator is
// single-shot. Breaking out of a loop stops that generator.
func Values[T any](factory func() *Generator[T, struct{}]) iter.Seq[T] {
	return func(yield func(T) bool) {
		g := factory()
		defer g.Stop()
		for g.Next() {
			v, _ := g.Value()
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a one-shot range over the remaining produced values.
// Iteration consumes the generator and stops when it finishes or first
// requests an input. Breaking out of the loop leaves the generator
// suspended; a later drain resumes after the delivered value.
func (g *Generator[T, U]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for g.Next() {
			v, _ := g.Value()
			if !yield(v) {
				return
			}
		}
	}
}
