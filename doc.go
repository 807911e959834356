// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coro provides resumable computations via algebraic effects
// on [code.hybscloud.com/kont].
//
// Bodies are ordinary effectful computations that suspend at typed
// operations; handles step them one turn at a time.
//
// # Architecture
//
//   - Operations: [Yield] emits a value outward, [Await] requests a value inward, [Pause] is a bare suspension point. Suspensions are one-shot; a handle resumes each at most once.
//   - Lifecycle: Misuse of a handle (advancing a finished computation, sending when no input is requested) reports false and changes nothing. Body panics are re-raised exactly once at the driving call, after which the handle is done.
//   - Execution: Dual-world API supporting closure-based (Cont-world) and defunctionalized (Expr-world) bodies.
//   - Ownership: Handles are single-owner. [Generator.Move] and [Fiber.Move] transfer ownership, leaving the source inert.
//
// # API Topologies
//
//   - Handles: [Generator] for value-producing bodies, [Fiber] for effect-only bodies. [New], [NewFiber] accept Cont-world bodies; [NewExpr], [NewFiberExpr] accept Expr-world ones.
//   - Cont-world: [YieldThen], [AwaitBind], [PauseThen].
//   - Expr-world: Zero-allocation variants [ExprYieldThen], [ExprAwaitBind], [ExprPauseThen]. Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based iterative bodies.
//   - Sources: [FromSlice], [FromSeq] lift data into generators; [Values] and [Generator.All] expose generators to range-over-func.
//   - Drains: [ToSlice], [ToSliceWith], [ToSliceSeq], [ToQueue], [ToSliceError] consume generators whole.
//
// # Integration
//
//   - Cooperative scheduling: [Drive] (or [DriveError]) round-robins a set of fibers to completion.
//   - Queue boundary: [Pump] couples a generator to lock-free bounded SPSC queues via [code.hybscloud.com/lfq]; steps return [code.hybscloud.com/iox.ErrWouldBlock] on backpressure, and [Pump.Run] waits past boundaries using adaptive backoff.
//
// # Example
//
//	body := coro.Loop(10, func(left int) kont.Eff[kont.Either[int, struct{}]] {
//		if left <= 0 {
//			return kont.Pure(kont.Right[int, struct{}](struct{}{}))
//		}
//		return coro.AwaitBind(func(step int) kont.Eff[kont.Either[int, struct{}]] {
//			return coro.YieldThen(left-step, kont.Pure(kont.Left[int, struct{}](left-step)))
//		})
//	})
//	g := coro.New[int, int](body)
//	fmt.Println(coro.ToSliceWith(g, 1)) // [9 8 7 6 5 4 3 2 1 0]
package coro
