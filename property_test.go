// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"reflect"
	"slices"
	"testing"
	"testing/quick"

	"code.hybscloud.com/coro"
)

// TestPropertyDrainPreservesOrder proves that for any arbitrarily
// generated sequence of integers, lifting it into a generator and
// draining it back preserves the sequence without loss, duplication,
// or reordering.
func TestPropertyDrainPreservesOrder(t *testing.T) {
	propertyOrder := func(payload []int) bool {
		g := coro.FromSlice(payload)
		drained := coro.ToSlice(g)

		// Use reflect.DeepEqual to correctly handle empty vs nil slices.
		if len(payload) == 0 && len(drained) == 0 {
			return true
		}
		return reflect.DeepEqual(payload, drained)
	}

	if err := quick.Check(propertyOrder, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyCountdownMatchesSimulation proves that driving the
// countdown body with arbitrary inputs produces exactly the remainders
// a direct simulation produces, for any start value and step sequence.
func TestPropertyCountdownMatchesSimulation(t *testing.T) {
	propertyCountdown := func(start uint8, rawSteps []uint8) bool {
		begin := int(start)
		inputs := make([]int, len(rawSteps))
		for i, s := range rawSteps {
			// Normalize to positive steps so the walk always progresses.
			inputs[i] = int(s%7) + 1
		}

		var want []int
		left := begin
		for _, step := range inputs {
			if left <= 0 {
				break
			}
			left -= step
			want = append(want, left)
		}

		g := coro.New[int, int](countdown(begin))
		got := coro.ToSliceSeq(g, slices.Values(inputs))

		if len(got) == 0 && len(want) == 0 {
			return true
		}
		return reflect.DeepEqual(got, want)
	}

	if err := quick.Check(propertyCountdown, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyMoveTransparent proves that transferring ownership at an
// arbitrary point mid-drain never loses, duplicates, or reorders
// values, and always leaves the source handle inert.
func TestPropertyMoveTransparent(t *testing.T) {
	propertyMove := func(payload []int, moveAtRaw uint8) bool {
		g := coro.FromSlice(payload)
		if len(payload) == 0 {
			h := g.Move()
			return len(coro.ToSlice(h)) == 0 && !g.Next()
		}
		moveAt := int(moveAtRaw) % len(payload)

		var got []int
		for i := 0; i < moveAt; i++ {
			if !g.Next() {
				return false
			}
			v, _ := g.Value()
			got = append(got, v)
		}
		h := g.Move()
		got = append(got, coro.ToSlice(h)...)

		if g.Next() {
			return false
		}
		return reflect.DeepEqual(got, payload)
	}

	if err := quick.Check(propertyMove, nil); err != nil {
		t.Error(err)
	}
}
