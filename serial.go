// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/atomix"
)

// Serial identifies a resumable computation within the process.
// Serials survive Move and Stop; a moved-to handle keeps reporting the
// serial assigned at construction.
type Serial = uint32

var serialCounter atomix.Uint32

// nextSerial assigns process-unique serial numbers to generators and
// fibers in construction order.
func nextSerial() Serial {
	return serialCounter.Add(1)
}
