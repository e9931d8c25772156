// SPDX-License-Identifier: MIT
package lu

import "fmt"

const (
	opFactorize        = "Factorize"
	opFactorizePivoted = "FactorizePivoted"
	opReconstruct      = "Reconstruct"
)

func luErrorf(tag string, err error) error {
	return fmt.Errorf("lu: %s: %w", tag, err)
}
