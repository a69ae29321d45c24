// SPDX-License-Identifier: MIT

package formula

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Parse. Callers match them with errors.Is;
// Parse wraps them with the offending formula and byte offset.
var (
	// ErrMalformedFormula indicates unbalanced brackets: an opener without
	// its closer, or a closer without an opener.
	ErrMalformedFormula = errors.New("formula: unbalanced parentheses")

	// ErrCountOverflow indicates that a count, a group multiplier or an
	// accumulated atom total exceeds MaxCount.
	ErrCountOverflow = errors.New("formula: atom count exceeds 2^53")
)

// parseErrorf attaches the formula and the byte offset to a sentinel.
func parseErrorf(src string, pos int, err error) error {
	return fmt.Errorf("formula %q at %d: %w", src, pos, err)
}
