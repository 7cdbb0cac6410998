package bigint

import (
	"errors"
	"math"
	"testing"
)

// TestZeroCanonicalForm validates that the zero constructor produces the
// canonical single-limb representation.
func TestZeroCanonicalForm(t *testing.T) {
	m := Zero()
	if !m.IsZero() {
		t.Fatal("Zero() is not reported as zero.")
	}
	if len(m.limbs) != 1 || m.limbs[0] != 0 {
		t.Fatalf("Zero() is not canonical: limbs=%v", m.limbs)
	}
}

// TestMulSmallSpecialCases covers the k == 0 and k == 1 short-circuits.
func TestMulSmallSpecialCases(t *testing.T) {
	m := Zero().SetUint64(123456789)

	m.MulSmall(1)
	if v, _ := m.Uint64(); v != 123456789 {
		t.Errorf("MulSmall(1) changed the value: got %d", v)
	}

	m.MulSmall(0)
	if !m.IsZero() {
		t.Errorf("MulSmall(0) did not reset to zero: got %s", m)
	}
	if len(m.limbs) != 1 {
		t.Errorf("MulSmall(0) is not canonical: limbs=%v", m.limbs)
	}
}

// TestArithmeticAgainstUint64 exercises the three primitives on values that
// still fit in a machine word, so the expected results can be computed with
// plain uint64 arithmetic. A product of two 32-bit operands always fits in 64
// bits, so even the saturated case is exact.
func TestArithmeticAgainstUint64(t *testing.T) {
	cases := []struct {
		name  string
		start uint64
		mul   uint32
		add   uint32
		div   uint32
	}{
		{"small", 7, 16, 9, 8},
		{"limb boundary", math.MaxUint32, 2, 1, 10},
		{"max limb times max multiplier", math.MaxUint32, math.MaxUint32, math.MaxUint32, 7},
		{"power of two radix", 1 << 31, 2, 0, 1 << 16},
		{"zero start", 0, 36, 35, 16},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Zero().SetUint64(tc.start)
			m.MulSmall(tc.mul)
			m.AddSmall(tc.add)

			want := tc.start*uint64(tc.mul) + uint64(tc.add)
			got, ok := m.Uint64()
			if !ok || got != want {
				t.Fatalf("mul/add mismatch: got %d (ok=%v), want %d", got, ok, want)
			}

			rem, err := m.DivModSmall(tc.div)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if uint64(rem) != want%uint64(tc.div) {
				t.Errorf("remainder mismatch: got %d, want %d", rem, want%uint64(tc.div))
			}
			if gotQ, ok := m.Uint64(); !ok || gotQ != want/uint64(tc.div) {
				t.Errorf("quotient mismatch: got %d (ok=%v), want %d", gotQ, ok, want/uint64(tc.div))
			}
		})
	}
}

// TestAddSmallEarlyTermination verifies that a carry that dies out early
// leaves the more significant limbs untouched.
func TestAddSmallEarlyTermination(t *testing.T) {
	m := &Magnitude{limbs: []uint32{1, 5, 9}}
	m.AddSmall(2)
	want := []uint32{3, 5, 9}
	for i, limb := range m.limbs {
		if limb != want[i] {
			t.Fatalf("limb %d: got %d, want %d (limbs=%v)", i, limb, want[i], m.limbs)
		}
	}
}

// TestAddSmallCarryChain forces a carry to ripple across saturated limbs and
// grow the limb sequence.
func TestAddSmallCarryChain(t *testing.T) {
	m := &Magnitude{limbs: []uint32{math.MaxUint32, math.MaxUint32}}
	m.AddSmall(1)
	want := []uint32{0, 0, 1}
	if len(m.limbs) != len(want) {
		t.Fatalf("limb count: got %v, want %v", m.limbs, want)
	}
	for i, limb := range m.limbs {
		if limb != want[i] {
			t.Fatalf("limb %d: got %d, want %d", i, limb, want[i])
		}
	}
}

// TestDivModSmallNormalizes checks that division strips the leading limb it
// zeroes out, restoring canonical form.
func TestDivModSmallNormalizes(t *testing.T) {
	m := &Magnitude{limbs: []uint32{0, 1}} // value 2^32
	rem, err := m.DivModSmall(math.MaxUint32)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// 2^32 = 1 * (2^32 - 1) + 1
	if rem != 1 {
		t.Errorf("remainder: got %d, want 1", rem)
	}
	if len(m.limbs) != 1 || m.limbs[0] != 1 {
		t.Errorf("quotient not canonical: limbs=%v", m.limbs)
	}
}

// TestDivModSmallByZero validates the defensive division-by-zero contract:
// a typed error and an unmodified receiver.
func TestDivModSmallByZero(t *testing.T) {
	m := Zero().SetUint64(42)
	_, err := m.DivModSmall(0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Expected ErrDivisionByZero, got %v", err)
	}
	if v, _ := m.Uint64(); v != 42 {
		t.Errorf("value modified by failed division: got %d", v)
	}
}

// TestStringDecimal validates the diagnostic decimal rendering, including a
// value wider than one limb.
func TestStringDecimal(t *testing.T) {
	cases := []struct {
		value uint64
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{4294967296, "4294967296"}, // 2^32, two limbs
		{18446744073709551615, "18446744073709551615"},
	}
	for _, tc := range cases {
		m := Zero().SetUint64(tc.value)
		if got := m.String(); got != tc.want {
			t.Errorf("String(%d): got %q, want %q", tc.value, got, tc.want)
		}
		// String must not consume the receiver.
		if v, _ := m.Uint64(); v != tc.value {
			t.Errorf("String() mutated the receiver: got %d, want %d", v, tc.value)
		}
	}
}

// TestEqualCanonical verifies value equality on canonical representations.
func TestEqualCanonical(t *testing.T) {
	a := Zero().SetUint64(1 << 40)
	b := Zero().SetUint64(1 << 40)
	c := Zero().SetUint64(1<<40 + 1)
	if !a.Equal(b) {
		t.Error("equal values reported unequal")
	}
	if a.Equal(c) {
		t.Error("unequal values reported equal")
	}
	if !Zero().Equal(Zero()) {
		t.Error("two zeros reported unequal")
	}
}
