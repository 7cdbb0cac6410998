// Package testutil provides shared testing utilities used across the project.
package testutil

import (
	"regexp"
	"strings"
	"testing"
)

// ansiRegex matches ANSI Control Sequence Introducer sequences (ESC [ ...
// letter) so colored terminal output can be reduced to plain text.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape codes from a string, letting tests
// assert on CLI output regardless of the active color theme.
//
// Parameters:
//   - s: The string potentially containing ANSI escape codes.
//
// Returns:
//   - string: The input string with all ANSI escape codes removed.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// AssertContains fails the test when the ANSI-stripped form of got does not
// contain want.
//
// Parameters:
//   - t: The testing context.
//   - got: The raw (possibly colored) output under test.
//   - want: The substring expected in the stripped output.
func AssertContains(t *testing.T, got, want string) {
	t.Helper()
	if stripped := StripAnsiCodes(got); !strings.Contains(stripped, want) {
		t.Errorf("output %q does not contain %q", stripped, want)
	}
}
