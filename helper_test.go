// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"code.hybscloud.com/coro"
	"code.hybscloud.com/kont"
)

// countdown builds the canonical interactive body: await a step, yield
// the decremented remainder, finish once the remainder reaches zero or
// below.
func countdown(start int) kont.Eff[struct{}] {
	return coro.Loop(start, func(left int) kont.Eff[kont.Either[int, struct{}]] {
		if left <= 0 {
			return kont.Pure(kont.Right[int, struct{}](struct{}{}))
		}
		return coro.AwaitBind(func(step int) kont.Eff[kont.Either[int, struct{}]] {
			return coro.YieldThen(left-step, kont.Pure(kont.Left[int, struct{}](left-step)))
		})
	})
}

// exprCountdown is countdown in the defunctionalized world.
func exprCountdown(start int) kont.Expr[struct{}] {
	return coro.ExprLoop(start, func(left int) kont.Expr[kont.Either[int, struct{}]] {
		if left <= 0 {
			return kont.ExprReturn(kont.Right[int, struct{}](struct{}{}))
		}
		return coro.ExprAwaitBind(func(step int) kont.Expr[kont.Either[int, struct{}]] {
			return coro.ExprYieldThen(left-step, kont.ExprReturn(kont.Left[int, struct{}](left-step)))
		})
	})
}

// mark appends s to log when the body runs past this point, then
// continues with next. Binding on Pure defers the append until the
// handle actually advances here, so tests can observe turn boundaries.
func mark(log *[]string, s string, next kont.Eff[struct{}]) kont.Eff[struct{}] {
	return kont.Bind(kont.Pure(struct{}{}), func(_ struct{}) kont.Eff[struct{}] {
		*log = append(*log, s)
		return next
	})
}

// driveSends drives g with one advance and one input per step,
// collecting every value it yields.
func driveSends(g *coro.Generator[int, int], steps []int) []int {
	var out []int
	for _, step := range steps {
		g.Next()
		if !g.Send(step) {
			break
		}
		if v, ok := g.Value(); ok {
			out = append(out, v)
		}
	}
	return out
}

// driveSendIte drives g via SendIte, collecting every value it yields.
func driveSendIte(g *coro.Generator[int, int], steps []int) []int {
	var out []int
	for _, step := range steps {
		if !g.SendIte(step) {
			break
		}
		if v, ok := g.Value(); ok {
			out = append(out, v)
		}
	}
	return out
}
