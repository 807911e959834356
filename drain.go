// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"iter"

	"code.hybscloud.com/lfq"
)

// Drains consume: values taken are never replayed, and every drain
// stops when the computation finishes or first requests an input it
// cannot answer.

// ToSlice drains the remaining produced values into a slice, in
// production order.
func ToSlice[T, U any](g *Generator[T, U]) []T {
	var out []T
	for g.Next() {
		v, _ := g.Value()
		out = append(out, v)
	}
	return out
}

// ToQueue drains produced values into a bounded SPSC queue.
// Returns the number of values enqueued. Non-blocking: on a full queue
// it returns [code.hybscloud.com/iox.ErrWouldBlock] with the
// undelivered value still readable at [Generator.Value]; a later call
// resumes the drain without loss or duplication. A value already
// parked at the current yield point is shipped first.
func ToQueue[T, U any](g *Generator[T, U], q *lfq.SPSC[T]) (int, error) {
	n := 0
	// slot: reused enqueue argument; the queue copies on Enqueue,
	// avoiding a per-element heap escape.
	var slot T
	for {
		v, ok := g.Value()
		if ok {
			slot = v
			if err := q.Enqueue(&slot); err != nil {
				return n, err
			}
			n++
		}
		if !g.Next() {
			return n, nil
		}
	}
}

// ToSliceWith drains an interactive computation by answering every
// input request with the same input value.
func ToSliceWith[T, U any](g *Generator[T, U], input U) []T {
	var out []T
	for !g.Done() {
		if g.Next() {
			v, _ := g.Value()
			out = append(out, v)
			continue
		}
		if !g.Awaiting() {
			break
		}
		if !g.Send(input) {
			break
		}
		if v, ok := g.Value(); ok {
			out = append(out, v)
		}
	}
	return out
}

// ToSliceSeq drains an interactive computation by answering input
// requests from inputs, in order. Stops when either side is exhausted;
// if inputs run out first the generator stays parked at its input
// point and can be driven further.
func ToSliceSeq[T, U any](g *Generator[T, U], inputs iter.Seq[U]) []T {
	var out []T
	next, stop := iter.Pull(inputs)
	defer stop()
	for !g.Done() {
		if g.Next() {
			v, _ := g.Value()
			out = append(out, v)
			continue
		}
		if !g.Awaiting() {
			break
		}
		u, ok := next()
		if !ok {
			break
		}
		if !g.Send(u) {
			break
		}
		if v, ok := g.Value(); ok {
			out = append(out, v)
		}
	}
	return out
}
