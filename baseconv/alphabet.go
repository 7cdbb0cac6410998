package baseconv

// Preset tables for the most common numeral systems. They are ordinary
// tables: any of them can appear on either side of a Converter.
const (
	// TableBinary is the base-2 digit table.
	TableBinary = "01"
	// TableOctal is the base-8 digit table.
	TableOctal = "01234567"
	// TableDecimal is the base-10 digit table.
	TableDecimal = "0123456789"
	// TableHex is the lowercase base-16 digit table.
	TableHex = "0123456789abcdef"
)

// alphabet is an ordered, duplicate-free sequence of characters defining a
// numeral base: the character at position i denotes digit value i, and the
// base is the number of characters.
//
// Characters are Unicode scalar values. A table of CJK characters has the
// same base as a table of the same number of ASCII characters, regardless of
// encoded byte length.
//
// An alphabet is immutable after construction; the digit lookup map is only
// written by newAlphabet.
type alphabet struct {
	table string
	runes []rune
	index map[rune]int
}

// newAlphabet validates table and builds the digit lookup structures.
// Validation is eager: a Converter never holds an unvalidated table.
//
// Parameters:
//   - role: Which side of the conversion the table serves; used only to
//     attribute validation errors.
//   - table: The ordered digit characters.
//
// Returns:
//   - alphabet: The validated alphabet.
//   - error: An *InvalidTableError if the table is empty or contains a
//     repeated character.
func newAlphabet(role TableRole, table string) (alphabet, error) {
	if table == "" {
		return alphabet{}, &InvalidTableError{Role: role, Rule: RuleNonEmpty}
	}
	runes := []rune(table)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, seen := index[r]; seen {
			return alphabet{}, &InvalidTableError{Role: role, Rule: RuleNoDuplicates, Dup: r}
		}
		index[r] = i
	}
	return alphabet{table: table, runes: runes, index: index}, nil
}

// base returns the numeral base defined by the alphabet, i.e. its number of
// distinct characters.
func (a alphabet) base() uint32 {
	return uint32(len(a.runes))
}

// digit looks up the digit value of r.
func (a alphabet) digit(r rune) (uint32, bool) {
	i, ok := a.index[r]
	return uint32(i), ok
}

// char returns the character denoting digit value d. The render loop only
// produces remainders below the base, so d is always in range.
func (a alphabet) char(d uint32) rune {
	return a.runes[d]
}
