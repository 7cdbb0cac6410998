// Package baseconv converts digit strings between arbitrary numeral bases,
// where each base is defined by a caller-supplied ordered table of characters
// rather than a fixed radix. Inputs of any length are supported: values pass
// through an arbitrary-precision intermediate (bigint.Magnitude) and are never
// materialized as native integers.
//
// The conversion runs in two phases. Parsing accumulates the input through
// Horner's method (multiply by the source base, add the digit), and rendering
// extracts destination digits least-significant-first by repeated division.
// Both phases touch a limb sequence that grows with the digits consumed, so a
// full conversion is O(n²) in the input length; thousand-digit inputs are
// fine, but callers with unbounded inputs should bound them before calling.
package baseconv

import (
	"github.com/agbru/anybase/bigint"
)

// Converter transforms digit strings from a source alphabet to a destination
// alphabet. A Converter is immutable once constructed and performs no shared
// mutation during Convert, so a single instance is safe for concurrent use.
type Converter struct {
	src alphabet
	dst alphabet
}

// NewConverter creates a Converter from the two digit tables.
// Both tables are validated eagerly: a returned Converter is fully valid, and
// an invalid table surfaces here rather than during conversion.
//
// Parameters:
//   - srcTable: The ordered digit characters of the source base.
//   - dstTable: The ordered digit characters of the destination base.
//
// Returns:
//   - *Converter: The validated converter.
//   - error: An *InvalidTableError naming the offending table and rule.
func NewConverter(srcTable, dstTable string) (*Converter, error) {
	src, err := newAlphabet(RoleSource, srcTable)
	if err != nil {
		return nil, err
	}
	dst, err := newAlphabet(RoleDestination, dstTable)
	if err != nil {
		return nil, err
	}
	return &Converter{src: src, dst: dst}, nil
}

// Convert transforms input from the source base to the destination base.
//
// Leading zero-digit characters are insignificant and do not survive the
// round trip: the output never starts with the destination zero digit unless
// the value itself is zero, in which case the output is exactly one zero
// digit. An empty input parses as zero.
//
// Parameters:
//   - input: The digit string over the source alphabet, most significant
//     digit first.
//
// Returns:
//   - string: The digit string over the destination alphabet.
//   - error: An *InvalidDigitError for the first input character missing from
//     the source table.
func (c *Converter) Convert(input string) (string, error) {
	m, err := c.parse(input)
	if err != nil {
		return "", err
	}
	return c.render(m)
}

// parse accumulates the input into a Magnitude via Horner's method.
func (c *Converter) parse(input string) (*bigint.Magnitude, error) {
	srcBase := c.src.base()
	m := bigint.Zero()
	pos := 0
	for _, r := range input {
		d, ok := c.src.digit(r)
		if !ok {
			return nil, &InvalidDigitError{Digit: r, Position: pos}
		}
		m.MulSmall(srcBase)
		m.AddSmall(d)
		pos++
	}
	return m, nil
}

// render consumes the Magnitude, extracting destination digits by repeated
// division. Digits come out least significant first and are reversed at the
// end.
func (c *Converter) render(m *bigint.Magnitude) (string, error) {
	if m.IsZero() {
		return string(c.dst.char(0)), nil
	}
	dstBase := c.dst.base()
	var out []rune
	for !m.IsZero() {
		rem, err := m.DivModSmall(dstBase)
		if err != nil {
			// Unreachable through NewConverter: an empty destination table
			// is rejected at construction.
			return "", err
		}
		out = append(out, c.dst.char(rem))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// Inverse creates a fresh Converter with the source and destination tables
// swapped. The new converter is validated independently; the receiver is not
// modified.
//
// Returns:
//   - *Converter: A converter translating in the opposite direction.
//   - error: An *InvalidTableError if validation of the swapped tables fails.
func (c *Converter) Inverse() (*Converter, error) {
	return NewConverter(c.dst.table, c.src.table)
}

// SrcTable returns the source digit table as supplied at construction.
func (c *Converter) SrcTable() string { return c.src.table }

// DstTable returns the destination digit table as supplied at construction.
func (c *Converter) DstTable() string { return c.dst.table }

// SrcBase returns the numeral base of the source alphabet.
func (c *Converter) SrcBase() int { return int(c.src.base()) }

// DstBase returns the numeral base of the destination alphabet.
func (c *Converter) DstBase() int { return int(c.dst.base()) }

// ConvertBase converts input from the base defined by srcTable to the base
// defined by dstTable. It is the stateless convenience form of constructing a
// Converter and calling Convert once.
//
// Parameters:
//   - input: The digit string over the source alphabet.
//   - srcTable: The ordered digit characters of the source base.
//   - dstTable: The ordered digit characters of the destination base.
//
// Returns:
//   - string: The converted digit string.
//   - error: An *InvalidTableError or *InvalidDigitError, as for NewConverter
//     and Convert.
func ConvertBase(input, srcTable, dstTable string) (string, error) {
	c, err := NewConverter(srcTable, dstTable)
	if err != nil {
		return "", err
	}
	return c.Convert(input)
}
