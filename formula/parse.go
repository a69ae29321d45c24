// SPDX-License-Identifier: MIT

package formula

import "strconv"

// MaxCount bounds every count, multiplier and accumulated total. Every
// integer up to it is exactly representable as a float64.
const MaxCount = 1 << 53

// defaultCount applies when an element or a group has no trailing digits.
const defaultCount = 1

// closers pairs every accepted group opener with its closer.
var closers = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
}

// Parse converts a chemical formula into its Composition.
//
// Implementation:
//   - Stage 1: normalize Unicode subscript digits to ASCII.
//   - Stage 2: scan src[0:len) left to right with an explicit index; elements
//     add count×multiplier into the accumulator, groups recurse into their
//     inner range with multiplier×groupMultiplier.
//   - Stage 3: freeze the accumulator into an immutable Composition.
//
// Behavior highlights:
//   - Implicit counts default to 1; a symbol that recurs accumulates.
//   - Unknown characters are skipped; the empty formula yields an empty
//     Composition and no error.
//
// Errors:
//   - ErrMalformedFormula (unbalanced brackets), ErrCountOverflow; both wrapped
//     with the normalized formula and byte offset.
//
// Complexity:
//   - Time O(n·d), Space O(d + e); see package doc.
func Parse(formula string) (Composition, error) {
	src := NormalizeSubscripts(formula)
	acc := newAccumulator()
	if err := parseGroup(src, 0, len(src), 1, acc); err != nil {
		return Composition{}, err
	}

	return acc.freeze(), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures built from literal formulas.
func MustParse(formula string) Composition {
	c, err := Parse(formula)
	if err != nil {
		panic(err)
	}

	return c
}

// parseGroup scans src[lo:hi) with the given external multiplier.
// The scan index strictly increases on every branch, so the loop terminates.
func parseGroup(src string, lo, hi, mult int, acc *accumulator) error {
	var (
		i    = lo
		next int
		qty  int
		ok   bool
	)
	for i < hi {
		ch := src[i]
		switch {
		case isUpper(ch):
			var sym string
			sym, next = scanSymbol(src, i, hi)
			qty, next, ok = scanCount(src, next, hi)
			if !ok {
				return parseErrorf(src, i, ErrCountOverflow)
			}
			if qty, ok = mulInt(qty, mult); !ok || !acc.add(sym, qty) {
				return parseErrorf(src, i, ErrCountOverflow)
			}
			i = next

		case isOpener(ch):
			end, err := matchBracket(src, i, hi)
			if err != nil {
				return err
			}
			qty, next, ok = scanCount(src, end+1, hi)
			if !ok {
				return parseErrorf(src, end+1, ErrCountOverflow)
			}
			if qty, ok = mulInt(mult, qty); !ok {
				return parseErrorf(src, end+1, ErrCountOverflow)
			}
			if err = parseGroup(src, i+1, end, qty, acc); err != nil {
				return err
			}
			i = next

		case isCloser(ch):
			// A closer reachable here has no opener in the current range.
			return parseErrorf(src, i, ErrMalformedFormula)

		default:
			i++
		}
	}

	return nil
}

// scanSymbol reads an uppercase letter plus any following lowercase letters.
func scanSymbol(src string, start, hi int) (string, int) {
	i := start + 1
	for i < hi && isLower(src[i]) {
		i++
	}

	return src[start:i], i
}

// scanCount reads a run of ASCII digits starting at start. With no digits it
// returns defaultCount and start unchanged; ok is false above MaxCount.
func scanCount(src string, start, hi int) (n, next int, ok bool) {
	i := start
	for i < hi && isDigit(src[i]) {
		i++
	}
	if i == start {
		return defaultCount, start, true
	}
	n, err := strconv.Atoi(src[start:i])
	if err != nil || n > MaxCount {
		return 0, i, false
	}

	return n, i, true
}

// matchBracket returns the index of the closer that balances src[open],
// counting only brackets of the same kind.
func matchBracket(src string, open, hi int) (int, error) {
	opener, closer := src[open], closers[src[open]]
	depth := 1
	for i := open + 1; i < hi; i++ {
		switch src[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return 0, parseErrorf(src, open, ErrMalformedFormula)
}

// mulInt multiplies two non-negative ints, reporting a product above MaxCount.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > MaxCount/b {
		return 0, false
	}

	return a * b, true
}

func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isOpener(ch byte) bool {
	_, ok := closers[ch]

	return ok
}

func isCloser(ch byte) bool { return ch == ')' || ch == ']' || ch == '}' }
