package core

import (
	"fmt"
	"sync"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/primes"
)

// MaxRegs is the default register count: the n-th prime is the largest one
// allowed as a factor. With 1000 registers the first value that cannot be
// expressed is 7927.
const MaxRegs uint16 = 1000

var (
	regOnce   sync.Once
	regCount  uint16
	regPrimes []uint64
)

// InitRegisters fixes the size of the process-wide register bank. It must run
// before the first Basis is built; calling it again with the same size is a
// no-op, while a different size returns ErrRegistersInitialized.
func InitRegisters(n uint16) error {
	if n == 0 {
		return fmt.Errorf("register count must be positive")
	}
	regOnce.Do(func() {
		regCount = n
		regPrimes = primes.FirstNPrimes(n)
	})
	if regCount != n {
		return fmt.Errorf("%w: have %d registers, requested %d", ErrRegistersInitialized, regCount, n)
	}
	return nil
}

// Primes returns the ordered prime list backing the register bank. The slice
// is shared and must not be modified.
func Primes() []uint64 {
	regOnce.Do(func() {
		regCount = MaxRegs
		regPrimes = primes.FirstNPrimes(MaxRegs)
	})
	return regPrimes
}

// RegisterCount returns the number of registers in the bank.
func RegisterCount() int {
	return len(Primes())
}

// LargestPrime returns the largest prime usable as a factor.
func LargestPrime() uint64 {
	ps := Primes()
	return ps[len(ps)-1]
}
