// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRunPrompt_Session feeds several lines through the prompt loop.
func TestRunPrompt_Session(t *testing.T) {
	in := strings.NewReader("H2 + O2 -> H2O\n\nFe + O2 -> Fe2O3\n")
	var out bytes.Buffer

	code := runPrompt(in, &out, DefaultConfig())
	assert.Equal(t, exitOK, code)

	s := out.String()
	assert.True(t, strings.HasPrefix(s, banner))
	assert.Contains(t, s, "2H2 + O2 → 2H2O")
	assert.Contains(t, s, "4Fe + 3O2 → 2Fe2O3")
	assert.Contains(t, s, "Fe2O3          : 2")
}

// TestRunPrompt_ErrorsDoNotStopSession checks that failures are reported and
// the loop continues; the exit code follows the last equation.
func TestRunPrompt_ErrorsDoNotStopSession(t *testing.T) {
	in := strings.NewReader("H2 + O2\nMg(OH2 -> MgO\nH2 + O2 -> H2\nN2 + H2 -> NH3\n")
	var out bytes.Buffer

	code := runPrompt(in, &out, DefaultConfig())
	assert.Equal(t, exitOK, code)

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, inputHint))
	assert.Contains(t, s, "Could not balance the equation automatically.")
	assert.Contains(t, s, "N2 + 3H2 → 2NH3")
}

// TestRunPrompt_LastFailureSetsExitCode ensures a trailing failure is reported.
func TestRunPrompt_LastFailureSetsExitCode(t *testing.T) {
	var out bytes.Buffer
	code := runPrompt(strings.NewReader("H2 + O2\n"), &out, DefaultConfig())
	assert.Equal(t, exitFailed, code)
}

// TestBalanceLine_Verbose prints the diagnostic report.
func TestBalanceLine_Verbose(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verbose = true
	var out bytes.Buffer

	ok := balanceLine(&out, "H2 + O2 -> H2O", cfg)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "=== BALANCE MATRIX ===")
	assert.Contains(t, out.String(), "H: 2 0 -2 = 0")
}

// TestBalanceLine_RecoversPanics ensures an invalid config that slipped past
// Validate is reported instead of crashing.
func TestBalanceLine_RecoversPanics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBound = 0 // WithMaxBound panics
	var out bytes.Buffer

	ok := balanceLine(&out, "H2 + O2 -> H2O", cfg)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "unexpected internal failure")
}
