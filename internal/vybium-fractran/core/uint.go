package core

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Uint is a native unsigned integer state. Products that exceed 64 bits
// panic with ErrNativeOverflow rather than wrap.
type Uint uint64

// NewUint returns v as a Uint, rejecting zero.
func NewUint(v uint64) (Uint, error) {
	if v == 0 {
		return 0, ErrZeroValue
	}
	return Uint(v), nil
}

// Uint64 returns the native value
func (u Uint) Uint64() uint64 { return uint64(u) }

// IsZero reports whether u is zero
func (u Uint) IsZero() bool { return u == 0 }

// Mul returns u * other
func (u Uint) Mul(other Uint) Uint {
	hi, lo := bits.Mul64(uint64(u), uint64(other))
	if hi != 0 {
		panic(fmt.Errorf("%w: %d * %d exceeds 64 bits", ErrNativeOverflow, u, other))
	}
	return Uint(lo)
}

// Div returns u / other, which must be exact
func (u Uint) Div(other Uint) Uint {
	if !other.Divides(u) {
		panic(fmt.Errorf("%w: %d / %d", ErrNonIntegralDivision, u, other))
	}
	return u / other
}

// Divides reports whether u divides other
func (u Uint) Divides(other Uint) bool {
	if u == 0 {
		return other == 0
	}
	return other%u == 0
}

// Clone returns u; Uint is a plain value
func (u Uint) Clone() Uint { return u }

// Equal reports whether u == other
func (u Uint) Equal(other Uint) bool { return u == other }

// Words returns the value as a single word
func (u Uint) Words() []uint64 { return []uint64{uint64(u)} }

// String returns the decimal value
func (u Uint) String() string { return strconv.FormatUint(uint64(u), 10) }
