package core

import (
	"errors"
	"sync"
	"testing"
)

func TestRegisters(t *testing.T) {
	if got := RegisterCount(); got != int(MaxRegs) {
		t.Fatalf("RegisterCount() = %d, want %d", got, MaxRegs)
	}
	if got := LargestPrime(); got != 7919 {
		t.Errorf("LargestPrime() = %d, want 7919", got)
	}

	// Re-initializing with the same size is allowed.
	if err := InitRegisters(MaxRegs); err != nil {
		t.Errorf("InitRegisters(MaxRegs) failed: %v", err)
	}
	if err := InitRegisters(12); !errors.Is(err, ErrRegistersInitialized) {
		t.Errorf("InitRegisters(12) error = %v, want ErrRegistersInitialized", err)
	}
	if err := InitRegisters(0); err == nil {
		t.Error("InitRegisters(0) should fail")
	}
}

// The bank is read-only after initialization and safe to share.
func TestRegistersConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			for v := seed; v < seed+500; v++ {
				if got := MustBasis(v).Uint64(); got != v {
					t.Errorf("round trip of %d = %d", v, got)
					return
				}
			}
		}(uint64(i*500 + 1))
	}
	wg.Wait()
}
