// Package primes supplies the ordered prime list that indexes register banks.
package primes

import "math"

// smallBound is the sieve limit used when n < 6: the fifth prime is 11.
const smallBound = 11

// UpperBound returns a sieve limit guaranteed to contain at least n primes.
// For n >= 6 the n-th prime is below n(ln n + ln ln n).
func UpperBound(n uint16) int {
	if n < 6 {
		return smallBound
	}
	x := float64(n)
	return int(math.Floor(x * (math.Log(x) + math.Log(math.Log(x)))))
}

// FirstNPrimes computes the first n primes in ascending order using the
// sieve of Eratosthenes.
func FirstNPrimes(n uint16) []uint64 {
	if n == 0 {
		return []uint64{}
	}

	limit := UpperBound(n)
	composite := make([]bool, limit+1)
	primes := make([]uint64, 0, n)

	for i := 2; i <= limit && len(primes) < int(n); i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, uint64(i))
		for m := i * i; m <= limit; m += i {
			composite[m] = true
		}
	}

	return primes
}

// IsPrime reports whether p is prime by trial division.
func IsPrime(p uint64) bool {
	if p < 2 {
		return false
	}
	if p < 4 {
		return true
	}
	if p%2 == 0 {
		return false
	}
	for i := uint64(3); i*i <= p; i += 2 {
		if p%i == 0 {
			return false
		}
	}
	return true
}
