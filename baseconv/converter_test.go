package baseconv

import (
	"errors"
	"strings"
	"testing"
)

// knownConversions is a test oracle of conversions with externally verified
// results.
var knownConversions = []struct {
	input string
	src   string
	dst   string
	want  string
}{
	{"ff", TableHex, TableOctal, "377"},
	{"377", TableOctal, TableHex, "ff"},
	{"12345", TableDecimal, "0123456789abcdefghijklmnopqrstuvwxyz", "9ix"},
	{"9ix", "0123456789abcdefghijklmnopqrstuvwxyz", TableDecimal, "12345"},
	{"1010", TableBinary, TableDecimal, "10"},
	{"10", TableDecimal, TableBinary, "1010"},
	{"0", TableDecimal, TableHex, "0"},
	{"0", TableDecimal, TableDecimal, "0"},
	{"777", TableOctal, TableDecimal, "511"},
	{"hello", "abcdefghijklmnopqrstuvwxyz", TableHex, "320048"},
	// Leading zero digits are insignificant; self-conversion strips them.
	{"0123", TableDecimal, TableDecimal, "123"},
	{"abc", "abc", "abc", "bc"},
	{"000", TableDecimal, TableHex, "0"},
	{"0000", TableHex, TableOctal, "0"},
	// Self-conversion is the identity for inputs without leading zeros.
	{"1111", TableBinary, TableBinary, "1111"},
	// Empty input parses as zero.
	{"", TableDecimal, TableHex, "0"},
}

// TestConvertBase validates the stateless entry point against the oracle.
func TestConvertBase(t *testing.T) {
	for _, tc := range knownConversions {
		tc := tc
		t.Run(tc.input+"/"+tc.src+">"+tc.dst, func(t *testing.T) {
			t.Parallel()
			got, err := ConvertBase(tc.input, tc.src, tc.dst)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Incorrect result.\nExpected: %s\nGot: %s", tc.want, got)
			}
		})
	}
}

// TestConverterReuse validates that a single Converter instance produces
// correct results across repeated calls, and that Inverse round-trips.
func TestConverterReuse(t *testing.T) {
	c, err := NewConverter(TableDecimal, TableBinary)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := c.Convert("10")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "1010" {
		t.Errorf("Convert(10): got %s, want 1010", got)
	}

	inv, err := c.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	back, err := inv.Convert("1010")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if back != "10" {
		t.Errorf("Inverse().Convert(1010): got %s, want 10", back)
	}

	// The original converter must be unaffected by Inverse.
	again, err := c.Convert("10")
	if err != nil || again != "1010" {
		t.Errorf("Converter mutated by Inverse: got %s, err %v", again, err)
	}
}

// TestAccessors validates the pure accessors of construction-time state.
func TestAccessors(t *testing.T) {
	c, err := NewConverter(TableHex, "你好世界")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.SrcTable() != TableHex {
		t.Errorf("SrcTable: got %q", c.SrcTable())
	}
	if c.DstTable() != "你好世界" {
		t.Errorf("DstTable: got %q", c.DstTable())
	}
	if c.SrcBase() != 16 {
		t.Errorf("SrcBase: got %d, want 16", c.SrcBase())
	}
	// The base is counted in characters, not bytes.
	if c.DstBase() != 4 {
		t.Errorf("DstBase: got %d, want 4", c.DstBase())
	}
}

// TestInvalidTables validates the construction-time table checks.
func TestInvalidTables(t *testing.T) {
	cases := []struct {
		name string
		src  string
		dst  string
		role TableRole
		rule TableRule
	}{
		{"empty source", "", TableDecimal, RoleSource, RuleNonEmpty},
		{"empty destination", TableDecimal, "", RoleDestination, RuleNonEmpty},
		{"duplicate in source", "011", TableDecimal, RoleSource, RuleNoDuplicates},
		{"duplicate in destination", TableDecimal, "abca", RoleDestination, RuleNoDuplicates},
		{"duplicate CJK", "你好你", TableDecimal, RoleSource, RuleNoDuplicates},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := ConvertBase("0", tc.src, tc.dst)
			var tableErr *InvalidTableError
			if !errors.As(err, &tableErr) {
				t.Fatalf("Expected *InvalidTableError, got %v", err)
			}
			if tableErr.Role != tc.role {
				t.Errorf("Role: got %s, want %s", tableErr.Role, tc.role)
			}
			if tableErr.Rule != tc.rule {
				t.Errorf("Rule: got %s, want %s", tableErr.Rule, tc.rule)
			}
		})
	}
}

// TestInvalidDigit validates that an input character missing from the source
// table is reported with the character and its rune position.
func TestInvalidDigit(t *testing.T) {
	_, err := ConvertBase("9", TableBinary, TableDecimal)
	var digitErr *InvalidDigitError
	if !errors.As(err, &digitErr) {
		t.Fatalf("Expected *InvalidDigitError, got %v", err)
	}
	if digitErr.Digit != '9' || digitErr.Position != 0 {
		t.Errorf("got digit %q at %d, want '9' at 0", digitErr.Digit, digitErr.Position)
	}

	// Position counts characters, not bytes: the bad digit after two CJK
	// characters is at position 2.
	_, err = ConvertBase("你好x", "你好世界", TableBinary)
	if !errors.As(err, &digitErr) {
		t.Fatalf("Expected *InvalidDigitError, got %v", err)
	}
	if digitErr.Digit != 'x' || digitErr.Position != 2 {
		t.Errorf("got digit %q at %d, want 'x' at 2", digitErr.Digit, digitErr.Position)
	}
}

// TestNonASCIITables validates round trips through multi-byte alphabets,
// where character count and byte length differ.
func TestNonASCIITables(t *testing.T) {
	c, err := NewConverter(TableBinary, "你好世界")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	dec, err := c.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	const input = "101010"
	encoded, err := c.Convert(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	decoded, err := dec.Convert(encoded)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decoded != input {
		t.Errorf("round trip through CJK table: got %s, want %s", decoded, input)
	}

	// 101010 = 42 = 222 in base 4, and the base-4 digit '2' is '世'.
	if encoded != "世世世" {
		t.Errorf("encoded form: got %s, want 世世世", encoded)
	}
}

// TestLargeMagnitudeFidelity converts a 10,000-digit hexadecimal value to
// binary and back, verifying the original string is reproduced exactly. This
// exercises deep limb sequences far beyond any machine-integer width.
func TestLargeMagnitudeFidelity(t *testing.T) {
	if testing.Short() {
		t.Skip("quadratic-cost conversion skipped in short mode")
	}

	input := strings.Repeat("f", 10000)

	bin, err := ConvertBase(input, TableHex, TableBinary)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// 0xf...f over n hex digits is exactly 4n one-bits.
	if len(bin) != 40000 || strings.Count(bin, "1") != 40000 {
		t.Fatalf("binary form malformed: len=%d", len(bin))
	}

	back, err := ConvertBase(bin, TableBinary, TableHex)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if back != input {
		t.Errorf("10,000-digit round trip mismatch (got %d chars)", len(back))
	}
}

// TestBidirectionalConversion runs forward and backward conversions over a
// mixed set of table pairs, expecting the round trip to reproduce the input
// with leading zero digits stripped.
func TestBidirectionalConversion(t *testing.T) {
	cases := []struct {
		input string
		src   string
		dst   string
	}{
		{"ff", TableHex, TableOctal},
		{"377", TableOctal, TableHex},
		{"zzzz", "0123456789abcdefghijklmnopqrstuvwxyz", TableDecimal},
		{"abc", "abcdefghijklmnopqrstuvwxyz", TableDecimal},
		{"gopher", "abcdefghijklmnopqrstuvwxyz", TableDecimal},
		{"hello", "abcdefghijklmnopqrstuvwxyz", TableHex},
	}

	for _, tc := range cases {
		tc := tc
		forward, err := ConvertBase(tc.input, tc.src, tc.dst)
		if err != nil {
			t.Fatalf("forward %q: %v", tc.input, err)
		}
		backward, err := ConvertBase(forward, tc.dst, tc.src)
		if err != nil {
			t.Fatalf("backward %q: %v", forward, err)
		}

		want := tc.input
		if len(want) > 1 {
			want = strings.TrimLeft(want, string([]rune(tc.src)[0]))
			if want == "" {
				want = string([]rune(tc.src)[0])
			}
		}
		if backward != want {
			t.Errorf("%q -> %q -> %q, want %q", tc.input, forward, backward, want)
		}
	}
}
