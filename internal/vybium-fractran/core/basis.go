package core

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"
)

// Basis is a positive integer stored as the exponents of its prime
// factorization: [a, b, c, ...] = 2^a * 3^b * 5^c * ...
//
// Missing trailing exponents are zero, so the value 1 is the empty vector.
// Multiplication and division become exponent addition and subtraction, which
// keeps intermediate values small where a native integer would overflow.
type Basis struct {
	exps []uint32
}

// NewBasis factors value by trial division against the register bank.
// Zero returns ErrZeroValue; a value with a prime factor beyond the bank
// returns a *RegisterOverflowError.
func NewBasis(value uint64) (Basis, error) {
	if value == 0 {
		return Basis{}, ErrZeroValue
	}

	var exps []uint32
	curr := value
	for _, p := range Primes() {
		if curr == 1 {
			break
		}
		var exp uint32
		for curr%p == 0 {
			curr /= p
			exp++
		}
		exps = append(exps, exp)
	}

	if curr != 1 {
		return Basis{}, &RegisterOverflowError{Value: value, Largest: LargestPrime()}
	}
	return Basis{exps: exps}, nil
}

// MustBasis is NewBasis for values known to be representable. It panics on
// error.
func MustBasis(value uint64) Basis {
	b, err := NewBasis(value)
	if err != nil {
		panic(err)
	}
	return b
}

// BasisFromExponents builds a Basis directly from an exponent vector.
func BasisFromExponents(exps []uint32) (Basis, error) {
	exps = trimZeros(exps)
	if len(exps) > RegisterCount() {
		return Basis{}, fmt.Errorf("%w: %d exponents exceed %d registers",
			ErrRegisterOverflow, len(exps), RegisterCount())
	}
	return Basis{exps: append([]uint32(nil), exps...)}, nil
}

// Exponents returns a copy of the exponent vector.
func (b Basis) Exponents() []uint32 {
	return append([]uint32(nil), b.exps...)
}

// Exponent returns the exponent of the i-th register, zero when absent.
func (b Basis) Exponent(i int) uint32 {
	if i < 0 || i >= len(b.exps) {
		return 0
	}
	return b.exps[i]
}

// Len returns the number of stored exponents.
func (b Basis) Len() int {
	return len(b.exps)
}

// TryUint64 folds the exponents back into a native integer, reporting false
// if the value does not fit in 64 bits.
func (b Basis) TryUint64() (uint64, bool) {
	ps := Primes()
	acc := uint64(1)
	for i, exp := range b.exps {
		for e := uint32(0); e < exp; e++ {
			hi, lo := bits.Mul64(acc, ps[i])
			if hi != 0 {
				return 0, false
			}
			acc = lo
		}
	}
	return acc, true
}

// Uint64 returns the represented value. It panics with ErrNativeOverflow
// when the value exceeds 64 bits; use Big for an exact result.
func (b Basis) Uint64() uint64 {
	v, ok := b.TryUint64()
	if !ok {
		panic(fmt.Errorf("%w: %s exceeds 64 bits", ErrNativeOverflow, b))
	}
	return v
}

// Big returns the represented value exactly.
func (b Basis) Big() *big.Int {
	ps := Primes()
	acc := big.NewInt(1)
	for i, exp := range b.exps {
		if exp == 0 {
			continue
		}
		pow := new(big.Int).Exp(new(big.Int).SetUint64(ps[i]), big.NewInt(int64(exp)), nil)
		acc.Mul(acc, pow)
	}
	return acc
}

// IsZero is always false: a Basis cannot represent zero.
func (b Basis) IsZero() bool { return false }

// Mul returns the product: exponents add, the shorter vector zero-padded.
func (b Basis) Mul(other Basis) Basis {
	n := max(len(b.exps), len(other.exps))
	if n == 0 {
		return Basis{}
	}
	out := make([]uint32, n)
	for i := range out {
		x, y := b.Exponent(i), other.Exponent(i)
		if x > math.MaxUint32-y {
			panic(fmt.Sprintf("exponent overflow in register %d", i))
		}
		out[i] = x + y
	}
	return Basis{exps: out}
}

// Div returns the quotient: exponents subtract. It panics with
// ErrNonIntegralDivision if other does not divide b.
func (b Basis) Div(other Basis) Basis {
	if !other.Divides(b) {
		panic(fmt.Errorf("%w: cannot divide %s by %s", ErrNonIntegralDivision, b, other))
	}
	out := make([]uint32, len(b.exps))
	for i := range out {
		out[i] = b.exps[i] - other.Exponent(i)
	}
	return Basis{exps: trimZeros(out)}
}

// Divides reports whether b divides other: every exponent of b must be at
// most the matching exponent of other, absent positions counting as zero.
func (b Basis) Divides(other Basis) bool {
	n := max(len(b.exps), len(other.exps))
	for i := 0; i < n; i++ {
		if b.Exponent(i) > other.Exponent(i) {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no storage with b.
func (b Basis) Clone() Basis {
	if len(b.exps) == 0 {
		return Basis{}
	}
	return Basis{exps: append([]uint32(nil), b.exps...)}
}

// Equal compares values, ignoring trailing zero exponents.
func (b Basis) Equal(other Basis) bool {
	n := max(len(b.exps), len(other.exps))
	for i := 0; i < n; i++ {
		if b.Exponent(i) != other.Exponent(i) {
			return false
		}
	}
	return true
}

// Words returns the exponent vector widened to 64 bits.
func (b Basis) Words() []uint64 {
	words := make([]uint64, len(b.exps))
	for i, exp := range b.exps {
		words[i] = uint64(exp)
	}
	return words
}

// String renders the factorization, e.g. "2^3 ✕ 5^2", or "1".
func (b Basis) String() string {
	ps := Primes()
	parts := make([]string, 0, len(b.exps))
	for i, exp := range b.exps {
		if exp != 0 {
			parts = append(parts, fmt.Sprintf("%d^%d", ps[i], exp))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, " ✕ ")
}

// GoString wraps String for %#v.
func (b Basis) GoString() string {
	return "Basis(" + b.String() + ")"
}

func trimZeros(exps []uint32) []uint32 {
	n := len(exps)
	for n > 0 && exps[n-1] == 0 {
		n--
	}
	return exps[:n]
}
