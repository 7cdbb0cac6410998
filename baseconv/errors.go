package baseconv

import "fmt"

// TableRole identifies which of the converter's two tables an error refers to.
type TableRole string

const (
	// RoleSource designates the table digits are parsed from.
	RoleSource TableRole = "source"
	// RoleDestination designates the table digits are rendered into.
	RoleDestination TableRole = "destination"
)

// TableRule identifies which validation rule a table violated.
type TableRule string

const (
	// RuleNonEmpty is violated by a table with no characters.
	RuleNonEmpty TableRule = "non-empty"
	// RuleNoDuplicates is violated by a table containing a repeated character.
	RuleNoDuplicates TableRule = "no-duplicates"
)

// InvalidTableError reports that a supplied alphabet table failed validation.
// It carries which table was at fault and which rule was violated, so callers
// can distinguish an empty source table from a duplicated destination digit.
type InvalidTableError struct {
	// Role names the offending table (source or destination).
	Role TableRole
	// Rule is the validation rule that was violated.
	Rule TableRule
	// Dup is the repeated character, set only when Rule is RuleNoDuplicates.
	Dup rune
}

// Error returns the error message for an InvalidTableError.
//
// Returns:
//   - string: A message naming the table and the violated rule.
func (e *InvalidTableError) Error() string {
	if e.Rule == RuleNoDuplicates {
		return fmt.Sprintf("invalid %s table: duplicate character %q", e.Role, e.Dup)
	}
	return fmt.Sprintf("invalid %s table: table is empty", e.Role)
}

// InvalidDigitError reports that an input character has no entry in the
// source alphabet. Position is counted in Unicode scalar values, not bytes,
// so it is meaningful for multi-byte alphabets.
type InvalidDigitError struct {
	// Digit is the offending character.
	Digit rune
	// Position is the zero-based character index within the input.
	Position int
}

// Error returns the error message for an InvalidDigitError.
//
// Returns:
//   - string: A message naming the character and its position.
func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d: not in source table", e.Digit, e.Position)
}
