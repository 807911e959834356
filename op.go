// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Yield is the effect operation for producing a value of type T.
// Perform(Yield[T]{Value: v}) parks the computation with v readable
// at the owning handle until the next advance.
type Yield[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// Await is the effect operation for requesting an injected input of type U.
// Perform(Await[U]{}) parks the computation until the owning handle
// delivers an input via Send; the operation resumes to that input.
type Await[U any] struct {
	kont.Phantom[U]
}

// Pause is the effect operation for parking a fiber for one turn.
// A pause is a yield with no payload.
type Pause = Yield[struct{}]
