// SPDX-License-Identifier: MIT
package rowops

import (
	"errors"
	"fmt"
)

// ErrZeroScale is returned when a row would be scaled by a (near) zero
// constant, which is not an elementary row operation.
var ErrZeroScale = errors.New("rowops: scale factor is zero")

const (
	opNewSystem = "NewSystem"
	opSwap      = "Swap"
	opScale     = "Scale"
	opCombine   = "Combine"
	opEliminate = "Eliminate"
)

func rowopsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
