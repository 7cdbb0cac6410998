// Package bigint implements the arbitrary-precision unsigned integer used as
// the intermediate representation for base conversion.
//
// A Magnitude stores its value as a little-endian sequence of 32-bit limbs in
// base 2^32. The package exposes only the three primitives the conversion
// algorithm needs (multiply by a small constant, add a small constant, divide
// by a small constant with remainder), all of which mutate the value in place
// and restore canonical form before returning.
//
// Overflow safety: every intermediate product or sum is computed in uint64.
// For limb, k and carry all strictly below 2^32, the largest intermediate is
// (2^32-1)*(2^32-1) + (2^32-1) = 2^64 - 2^33 + 2^32, which is below 2^64, so
// the uint64 intermediate can never wrap. Because the limb radix is exactly
// 2^32, the low half of the intermediate is the new limb and the high half is
// the carry; no division is required for carry extraction.
package bigint

import "errors"

// limbBits is the width of a single limb in bits. The limb radix is 2^limbBits.
const limbBits = 32

// ErrDivisionByZero is returned by DivModSmall when the divisor is zero.
// The conversion layer validates destination tables eagerly, so a zero base
// can never reach the render phase through the public constructors; the error
// exists as an internal safety guard rather than a user-facing condition.
var ErrDivisionByZero = errors.New("bigint: division by zero")

// Magnitude is an arbitrary-precision unsigned integer.
//
// Invariants maintained by every exported operation:
//   - the limb slice is never empty;
//   - no limb exists beyond the most significant non-zero one, except that the
//     value zero is represented by exactly one zero limb;
//   - value = Σ limbs[i] * (2^32)^i.
//
// The zero value of the struct is not valid; use Zero to construct an instance.
type Magnitude struct {
	// limbs holds the value in little-endian order: limbs[0] is the least
	// significant limb.
	limbs []uint32
}

// Zero creates a new Magnitude representing the value zero, in canonical form
// (a single zero limb).
//
// Returns:
//   - *Magnitude: A new Magnitude equal to 0.
func Zero() *Magnitude {
	return &Magnitude{limbs: []uint32{0}}
}

// IsZero reports whether the Magnitude represents the value zero.
//
// Returns:
//   - bool: true iff the canonical representation is a single zero limb.
func (m *Magnitude) IsZero() bool {
	return len(m.limbs) == 1 && m.limbs[0] == 0
}

// normalize restores canonical form by removing superfluous most-significant
// zero limbs, down to a minimum length of one limb.
func (m *Magnitude) normalize() {
	for len(m.limbs) > 1 && m.limbs[len(m.limbs)-1] == 0 {
		m.limbs = m.limbs[:len(m.limbs)-1]
	}
}

// MulSmall multiplies the value in place by k.
//
// The sweep runs from the least significant limb upward, computing
// limb*k + carry in uint64 and splitting it into a new limb (low 32 bits) and
// the next carry (high 32 bits). Any carry remaining after the sweep is
// appended as new most-significant limbs.
//
// Parameters:
//   - k: The multiplier. k == 0 resets the value to canonical zero; k == 1 is
//     a no-op.
func (m *Magnitude) MulSmall(k uint32) {
	if k == 0 {
		m.limbs = m.limbs[:1]
		m.limbs[0] = 0
		return
	}
	if k == 1 {
		return
	}
	var carry uint64
	for i, limb := range m.limbs {
		prod := uint64(limb)*uint64(k) + carry
		m.limbs[i] = uint32(prod)
		carry = prod >> limbBits
	}
	for carry > 0 {
		m.limbs = append(m.limbs, uint32(carry))
		carry >>= limbBits
	}
}

// AddSmall adds k to the value in place.
//
// The carry propagation follows the same discipline as MulSmall, but the sweep
// terminates early once the carry reaches zero since the remaining limbs are
// unaffected.
//
// Parameters:
//   - k: The value to add.
func (m *Magnitude) AddSmall(k uint32) {
	carry := uint64(k)
	for i, limb := range m.limbs {
		if carry == 0 {
			return
		}
		sum := uint64(limb) + carry
		m.limbs[i] = uint32(sum)
		carry = sum >> limbBits
	}
	for carry > 0 {
		m.limbs = append(m.limbs, uint32(carry))
		carry >>= limbBits
	}
}

// DivModSmall divides the value in place by k and returns the remainder.
//
// Long division runs from the most significant limb downward: for each limb,
// the running remainder is combined with the limb into a uint64 value, the
// limb is overwritten by the quotient and the remainder carries into the next
// step. The result is re-normalized before returning.
//
// Parameters:
//   - k: The divisor.
//
// Returns:
//   - uint32: The remainder of the division.
//   - error: ErrDivisionByZero if k == 0; the value is left unmodified in
//     that case.
func (m *Magnitude) DivModSmall(k uint32) (uint32, error) {
	if k == 0 {
		return 0, ErrDivisionByZero
	}
	var rem uint64
	for i := len(m.limbs) - 1; i >= 0; i-- {
		v := rem<<limbBits | uint64(m.limbs[i])
		m.limbs[i] = uint32(v / uint64(k))
		rem = v % uint64(k)
	}
	m.normalize()
	return uint32(rem), nil
}

// SetUint64 replaces the value with v, in canonical form.
//
// Parameters:
//   - v: The new value.
//
// Returns:
//   - *Magnitude: The receiver, for chaining.
func (m *Magnitude) SetUint64(v uint64) *Magnitude {
	m.limbs = m.limbs[:0]
	m.limbs = append(m.limbs, uint32(v))
	if hi := uint32(v >> limbBits); hi != 0 {
		m.limbs = append(m.limbs, hi)
	}
	return m
}

// Uint64 returns the value as a uint64 when it fits.
//
// Returns:
//   - uint64: The value, if representable.
//   - bool: false when the magnitude exceeds math.MaxUint64.
func (m *Magnitude) Uint64() (uint64, bool) {
	if len(m.limbs) > 2 {
		return 0, false
	}
	v := uint64(m.limbs[0])
	if len(m.limbs) == 2 {
		v |= uint64(m.limbs[1]) << limbBits
	}
	return v, true
}

// Equal reports whether two magnitudes represent the same value. Both sides
// are assumed to be in canonical form, which every exported operation
// guarantees.
//
// Parameters:
//   - other: The Magnitude to compare against.
//
// Returns:
//   - bool: true iff the limb sequences are identical.
func (m *Magnitude) Equal(other *Magnitude) bool {
	if len(m.limbs) != len(other.limbs) {
		return false
	}
	for i, limb := range m.limbs {
		if limb != other.limbs[i] {
			return false
		}
	}
	return true
}

// String renders the value in decimal. It operates on a copy, so the receiver
// is left untouched. Intended for diagnostics and test failure messages; the
// conversion layer renders through alphabets instead.
func (m *Magnitude) String() string {
	if m.IsZero() {
		return "0"
	}
	work := &Magnitude{limbs: append([]uint32(nil), m.limbs...)}
	var digits []byte
	for !work.IsZero() {
		rem, _ := work.DivModSmall(10)
		digits = append(digits, byte('0'+rem))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
