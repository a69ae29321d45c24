// SPDX-License-Identifier: MIT

package equation

import "errors"

// ErrMalformedEquation indicates that the text does not contain exactly one
// arrow, or that a side has no terms left after splitting and trimming.
var ErrMalformedEquation = errors.New("equation: malformed equation")

// Panic messages of option constructors (programmer errors).
const (
	panicNoArrows    = "equation: WithArrows: at least one non-empty arrow is required"
	panicEmptyJoiner = "equation: WithJoiner: joiner must be non-empty"
	panicJoinerClash = "equation: joiner must not occur inside an arrow"
)
