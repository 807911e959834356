// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed reports an operation on a closed pump.
	ErrClosed = errors.New("coro: pump closed")
	// ErrDone reports an operation on a finished computation.
	ErrDone = errors.New("coro: computation done")
	// ErrFault wraps a non-error body panic captured by an
	// error-reporting drain.
	ErrFault = errors.New("coro: computation fault")
)

// ToSliceError drains g like [ToSlice] but converts a body fault into
// an error instead of re-raising it. Values produced before the fault
// are returned alongside the error. A panic value that is an error is
// returned as is; any other value is wrapped in ErrFault.
func ToSliceError[T, U any](g *Generator[T, U]) (out []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = faultError(r)
		}
	}()
	for g.Next() {
		v, _ := g.Value()
		out = append(out, v)
	}
	return out, nil
}

// DriveError runs [Drive] and converts a fiber fault into an error.
func DriveError(fibers ...*Fiber) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = faultError(r)
		}
	}()
	Drive(fibers...)
	return nil
}

func faultError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", ErrFault, r)
}
