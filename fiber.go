// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Fiber is the owning handle of a cooperative task: a resumable
// computation with no value or input channel. Bodies park with
// [PauseThen] or [ExprPauseThen] and run one slice per Resume.
//
// Like [Generator], a fiber is single-owner and caller-driven: turns
// run on the goroutine holding the handle, in the order it chooses.
type Fiber struct {
	start  func() (struct{}, *kont.Suspension[struct{}])
	susp   *kont.Suspension[struct{}]
	st     state
	serial Serial
}

// NewFiber creates a fiber from a Cont-world body.
// The body does not run until the first Resume.
func NewFiber(body kont.Eff[struct{}]) *Fiber {
	return &Fiber{
		start:  func() (struct{}, *kont.Suspension[struct{}]) { return kont.Step(body) },
		serial: nextSerial(),
	}
}

// NewFiberExpr creates a fiber from an Expr-world body.
// The Expr's pooled frames are consumed during evaluation; build a
// fresh body per fiber.
func NewFiberExpr(body kont.Expr[struct{}]) *Fiber {
	return &Fiber{
		start:  func() (struct{}, *kont.Suspension[struct{}]) { return kont.StepExpr(body) },
		serial: nextSerial(),
	}
}

// Resume runs the fiber until its next pause point or completion.
// Resuming a done or moved-from fiber is a no-op. A body panic marks
// the fiber done and re-raises to this caller exactly once.
func (f *Fiber) Resume() {
	switch f.st {
	case stateCreated, stateSuspended:
	default:
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if f.susp != nil {
				f.susp.Discard()
				f.susp = nil
			}
			f.st = stateFaulted
			panic(r)
		}
	}()
	var susp *kont.Suspension[struct{}]
	if f.start != nil {
		run := f.start
		f.start = nil
		_, susp = run()
	} else {
		s := f.susp
		f.susp = nil
		_, susp = s.Resume(struct{}{})
	}
	if susp == nil {
		f.st = stateCompleted
		return
	}
	f.susp = susp
	switch susp.Op().(type) {
	case Pause:
		f.st = stateSuspended
	default:
		panic("coro: unhandled effect in fiber")
	}
}

// Done reports whether the fiber finished, faulted, was stopped, or
// was moved from.
func (f *Fiber) Done() bool {
	return f.st == stateCompleted || f.st == stateFaulted
}

// Stop abandons the fiber without running it further.
// Stopping a done or moved-from fiber is a no-op.
func (f *Fiber) Stop() {
	if f.Done() {
		return
	}
	if f.susp != nil {
		f.susp.Discard()
		f.susp = nil
	}
	f.start = nil
	f.st = stateCompleted
}

// Move transfers ownership to a new handle and leaves the receiver
// inert: Resume becomes a no-op and Done reports true.
func (f *Fiber) Move() *Fiber {
	moved := *f
	*f = Fiber{st: stateCompleted, serial: f.serial}
	return &moved
}

// Serial returns the serial number assigned to this fiber.
func (f *Fiber) Serial() Serial {
	return f.serial
}

// Drive resumes the given fibers round-robin, in argument order, until
// every fiber is done. Runs entirely on the calling goroutine; a fiber
// that finishes drops out of the rotation, and the library imposes no
// fairness beyond the given order. A body panic propagates to the
// caller with the remaining fibers untouched since their last turn.
func Drive(fibers ...*Fiber) {
	for {
		progress := false
		for _, f := range fibers {
			if f.Done() {
				continue
			}
			f.Resume()
			progress = true
		}
		if !progress {
			return
		}
	}
}
