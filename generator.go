// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// state is the lifecycle tag of a resumable computation.
type state uint8

const (
	stateCreated state = iota
	stateSuspended
	stateAwaiting
	stateCompleted
	stateFaulted
)

// Generator is the owning handle of a resumable computation producing
// values of type T and consuming injected inputs of type U.
//
// A generator is single-owner: one live handle drives it, one turn at a
// time, on whatever goroutine holds the handle. Transfer ownership with
// [Generator.Move]; the old handle becomes inert. Misuse of the turn
// discipline — sending while no input is requested, advancing while one
// is — is reported by boolean results, never by panics. A panic raised
// by the body itself marks the generator done and is re-raised out of
// the triggering advance exactly once.
type Generator[T, U any] struct {
	// start receives the handle that runs the first advance, so a
	// source constructor can attach its cleanup hook to the owner
	// actually stepping the body even after a Move.
	start    func(owner *Generator[T, U]) (struct{}, *kont.Suspension[struct{}])
	susp     *kont.Suspension[struct{}]
	st       state
	value    T
	lastSent U
	hasSent  bool
	cleanup  func()
	serial   Serial
}

// New creates a generator from a Cont-world body.
// The body does not run until the first advance.
func New[T, U any](body kont.Eff[struct{}]) *Generator[T, U] {
	return &Generator[T, U]{
		start:  func(*Generator[T, U]) (struct{}, *kont.Suspension[struct{}]) { return kont.Step(body) },
		serial: nextSerial(),
	}
}

// NewExpr creates a generator from an Expr-world body.
// The body does not run until the first advance. The Expr's pooled
// frames are consumed during evaluation; build a fresh body per
// generator.
func NewExpr[T, U any](body kont.Expr[struct{}]) *Generator[T, U] {
	return &Generator[T, U]{
		start:  func(*Generator[T, U]) (struct{}, *kont.Suspension[struct{}]) { return kont.StepExpr(body) },
		serial: nextSerial(),
	}
}

// step resumes the body with v and classifies the landing point.
// A body panic marks the generator faulted, releases the frame, and
// re-raises to the caller of the triggering advance.
func (g *Generator[T, U]) step(v kont.Resumed) {
	defer func() {
		if r := recover(); r != nil {
			if g.susp != nil {
				g.susp.Discard()
				g.susp = nil
			}
			g.st = stateFaulted
			var zero T
			g.value = zero
			g.finalize()
			panic(r)
		}
	}()
	var susp *kont.Suspension[struct{}]
	if g.start != nil {
		run := g.start
		g.start = nil
		_, susp = run(g)
	} else {
		s := g.susp
		g.susp = nil
		_, susp = s.Resume(v)
	}
	if susp == nil {
		g.st = stateCompleted
		var zero T
		g.value = zero
		g.finalize()
		return
	}
	g.susp = susp
	switch op := susp.Op().(type) {
	case Yield[T]:
		g.value = op.Value
		g.st = stateSuspended
	case Await[U]:
		var zero T
		g.value = zero
		g.st = stateAwaiting
	default:
		panic("coro: unhandled effect in generator")
	}
}

// finalize runs the registered cleanup hook once, on the first
// transition to a terminal state.
func (g *Generator[T, U]) finalize() {
	if g.cleanup != nil {
		c := g.cleanup
		g.cleanup = nil
		c()
	}
}

// Next advances to the next produced value.
// Returns true iff the computation parked at a yield point with a fresh
// value. Returns false without advancing when an input is pending
// ([Generator.Awaiting]) or the computation is done.
func (g *Generator[T, U]) Next() bool {
	switch g.st {
	case stateCreated, stateSuspended:
	default:
		return false
	}
	g.step(struct{}{})
	return g.st == stateSuspended
}

// Value returns the value produced at the current yield point.
// Defined only while parked at one: after an advance that returned true
// and before the next resumption.
func (g *Generator[T, U]) Value() (T, bool) {
	if g.st != stateSuspended {
		var zero T
		return zero, false
	}
	return g.value, true
}

// Send delivers u to the pending input point and resumes.
// Returns true iff the computation is still live afterwards. Returns
// false without advancing when no input is pending or the computation
// is done.
func (g *Generator[T, U]) Send(u U) bool {
	if g.st != stateAwaiting {
		return false
	}
	g.lastSent = u
	g.hasSent = true
	g.step(u)
	return !g.Done()
}

// SendIte advances to the pending input point if not already parked at
// one, then delivers u. Returns false when the computation finished
// before or during the advance, or when the advance parked at a yield
// point instead; in the latter case the value stays readable via
// [Generator.Value].
func (g *Generator[T, U]) SendIte(u U) bool {
	switch g.st {
	case stateCreated, stateSuspended:
		g.step(struct{}{})
	}
	if g.st != stateAwaiting {
		return false
	}
	return g.Send(u)
}

// LastSent returns the most recently delivered input.
// Reports false before the first successful Send and after Stop.
func (g *Generator[T, U]) LastSent() (U, bool) {
	if !g.hasSent {
		var zero U
		return zero, false
	}
	return g.lastSent, true
}

// Awaiting reports whether the computation is parked at an input point.
func (g *Generator[T, U]) Awaiting() bool {
	return g.st == stateAwaiting
}

// Done reports whether the computation finished, faulted, was stopped,
// or was moved from.
func (g *Generator[T, U]) Done() bool {
	return g.st == stateCompleted || g.st == stateFaulted
}

// Stop abandons the computation without running it further.
// The parked frame is discarded, registered cleanup runs, and the
// generator reports done. Stopping a done or moved-from generator is
// a no-op.
func (g *Generator[T, U]) Stop() {
	if g.Done() {
		return
	}
	if g.susp != nil {
		g.susp.Discard()
		g.susp = nil
	}
	g.start = nil
	g.st = stateCompleted
	var zeroT T
	g.value = zeroT
	var zeroU U
	g.lastSent = zeroU
	g.hasSent = false
	g.finalize()
}

// Move transfers ownership to a new handle and leaves the receiver
// inert: every subsequent operation on it reports done or no value.
func (g *Generator[T, U]) Move() *Generator[T, U] {
	moved := *g
	*g = Generator[T, U]{st: stateCompleted, serial: g.serial}
	return &moved
}

// Serial returns the serial number assigned to this computation.
func (g *Generator[T, U]) Serial() Serial {
	return g.serial
}
