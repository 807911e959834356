// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pumpCapacity is the bounded capacity for pump transport queues.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const pumpCapacity = 4

// Pump couples an interactive generator to a pair of bounded lock-free
// SPSC queues so that one peer goroutine can inject inputs and consume
// produced values while the owner drives the stepping.
//
// Single-owner discipline carries over: exactly one goroutine calls
// Step or Run, and exactly one peer goroutine uses In and Out. The
// pump owns the generator; driving it directly while the pump runs
// breaks the turn discipline.
type Pump[T, U any] struct {
	g       *Generator[T, U]
	in      lfq.SPSC[U]
	out     lfq.SPSC[T]
	closed  atomix.Uint32
	slot    T
	pending bool
}

// NewPump wires g to fresh input and output queues.
func NewPump[T, U any](g *Generator[T, U]) *Pump[T, U] {
	p := &Pump[T, U]{g: g}
	p.in.Init(pumpCapacity)
	p.out.Init(pumpCapacity)
	return p
}

// In returns the input queue. The peer enqueues one input per requested
// turn; Enqueue returns iox.ErrWouldBlock while the queue is full.
func (p *Pump[T, U]) In() *lfq.SPSC[U] {
	return &p.in
}

// Out returns the output queue. The peer dequeues produced values;
// Dequeue returns iox.ErrWouldBlock while the queue is empty.
func (p *Pump[T, U]) Out() *lfq.SPSC[T] {
	return &p.out
}

// Step makes one unit of progress: ship the pending produced value to
// the output queue, or advance the generator by one turn, dequeuing an
// input when one is requested.
//
// Non-blocking: returns iox.ErrWouldBlock when the output queue is
// full or an input is not yet available (nothing is lost; retry after
// the peer makes progress), ErrClosed after Close, and ErrDone once
// the computation has finished. A body panic is re-raised to the
// caller and the pump reports ErrDone thereafter.
func (p *Pump[T, U]) Step() error {
	if p.closed.Load() != 0 {
		return ErrClosed
	}
	if p.pending {
		if err := p.out.Enqueue(&p.slot); err != nil {
			return err
		}
		p.pending = false
		return nil
	}
	if p.g.Done() {
		return ErrDone
	}
	if p.g.Awaiting() {
		u, err := p.in.Dequeue()
		if err != nil {
			return err
		}
		p.g.Send(u)
	} else {
		p.g.Next()
	}
	if v, ok := p.g.Value(); ok {
		p.slot = v
		p.pending = true
	}
	return nil
}

// Run drives Step until the computation finishes, waiting past
// iox.ErrWouldBlock with adaptive backoff (iox.Backoff) on the calling
// goroutine. Returns nil on normal completion, ErrClosed if the pump
// is closed mid-run. Does not spawn goroutines or create channels.
func (p *Pump[T, U]) Run() error {
	var bo iox.Backoff
	for {
		err := p.Step()
		if err == nil {
			bo.Reset()
			continue
		}
		if iox.IsWouldBlock(err) {
			bo.Wait()
			continue
		}
		if err == ErrDone {
			return nil
		}
		return err
	}
}

// Close signals shutdown: subsequent Steps return ErrClosed.
// Safe to call from the peer goroutine. The generator keeps its state;
// the owner may Stop it or detach and drive it directly.
func (p *Pump[T, U]) Close() {
	p.closed.Add(1)
}

// Serial returns the serial number of the pumped computation.
func (p *Pump[T, U]) Serial() Serial {
	return p.g.Serial()
}
