// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// YieldThen produces v and then continues with next.
// Fuses Perform(Yield[T]{Value: v}) + Then.
func YieldThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield[T]{Value: v}), next)
}

// AwaitBind waits for an injected input and passes it to f.
// Fuses Perform(Await[U]{}) + Bind.
func AwaitBind[U, B any](f func(U) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await[U]{}), f)
}

// PauseThen parks the fiber for one turn and then continues with next.
// Fuses Perform(Pause{}) + Then.
func PauseThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Pause{}), next)
}
