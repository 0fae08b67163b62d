package core

import (
	"errors"
	"math/big"
	"reflect"
	"testing"
)

// TestNewBasis tests factorization into exponent vectors
func TestNewBasis(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  []uint32
	}{
		{"one is empty", 1, nil},
		{"two", 2, []uint32{1}},
		{"200 = 2^3 * 5^2", 200, []uint32{3, 0, 2}},
		{"2520", 2520, []uint32{3, 2, 1, 1}},
		{"largest register", 7919, func() []uint32 {
			exps := make([]uint32, 1000)
			exps[999] = 1
			return exps
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBasis(tt.value)
			if err != nil {
				t.Fatalf("NewBasis(%d) failed: %v", tt.value, err)
			}
			got := b.Exponents()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewBasis(%d) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// TestNewBasisErrors tests the zero and overflow boundaries
func TestNewBasisErrors(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		_, err := NewBasis(0)
		if !errors.Is(err, ErrZeroValue) {
			t.Errorf("NewBasis(0) error = %v, want ErrZeroValue", err)
		}
	})

	t.Run("first prime outside the bank", func(t *testing.T) {
		_, err := NewBasis(7927)
		var overflow *RegisterOverflowError
		if !errors.As(err, &overflow) {
			t.Fatalf("NewBasis(7927) error = %v, want RegisterOverflowError", err)
		}
		if overflow.Value != 7927 {
			t.Errorf("overflow.Value = %d, want 7927", overflow.Value)
		}
		if overflow.Largest != 7919 {
			t.Errorf("overflow.Largest = %d, want 7919", overflow.Largest)
		}
		if !errors.Is(err, ErrRegisterOverflow) {
			t.Error("RegisterOverflowError should match ErrRegisterOverflow")
		}
	})

	t.Run("composite with large factor", func(t *testing.T) {
		if _, err := NewBasis(2 * 3 * 7927); !errors.Is(err, ErrRegisterOverflow) {
			t.Errorf("expected register overflow, got %v", err)
		}
	})
}

// TestBasisRoundTrip tests that reconstruction inverts construction
func TestBasisRoundTrip(t *testing.T) {
	values := []uint64{1, 2, 3, 5, 10, 20, 60, 2520, 70000, 7919, 1 << 63, 3 * 7919 * 7907}
	for _, v := range values {
		b, err := NewBasis(v)
		if err != nil {
			t.Fatalf("NewBasis(%d) failed: %v", v, err)
		}
		if got := b.Uint64(); got != v {
			t.Errorf("round trip of %d = %d", v, got)
		}
	}

	for v := uint64(1); v <= 5000; v++ {
		b, err := NewBasis(v)
		if err != nil {
			t.Fatalf("NewBasis(%d) failed: %v", v, err)
		}
		if got := b.Uint64(); got != v {
			t.Fatalf("round trip of %d = %d", v, got)
		}
	}
}

// TestBasisMul tests the multiplicative homomorphism
func TestBasisMul(t *testing.T) {
	lhs := []uint64{1, 2, 5, 8, 100, 256, 2520}
	rhs := []uint64{1, 5, 7, 11, 102, 353, 1000}
	for _, a := range lhs {
		for _, b := range rhs {
			got := MustBasis(a).Mul(MustBasis(b)).Uint64()
			if got != a*b {
				t.Errorf("%d * %d = %d, want %d", a, b, got, a*b)
			}
		}
	}

	t.Run("length is max of inputs", func(t *testing.T) {
		p := MustBasis(8).Mul(MustBasis(25))
		if p.Len() != 3 {
			t.Errorf("Len() = %d, want 3", p.Len())
		}
	})

	t.Run("does not alias inputs", func(t *testing.T) {
		a := MustBasis(12)
		before := a.Exponents()
		_ = a.Mul(MustBasis(18))
		if !reflect.DeepEqual(a.Exponents(), before) {
			t.Error("Mul modified its receiver")
		}
	})
}

// TestBasisDivides tests divisibility against the native remainder
func TestBasisDivides(t *testing.T) {
	tests := []struct {
		a, b uint64
		want bool
	}{
		{7, 28, true},
		{32, 128, true},
		{40, 40, true},
		{1, 28, true},
		{1, 1, true},
		{70, 7, false},
		{2, 7, false},
		{100, 250, false},
		{9, 3, false},
	}
	for _, tt := range tests {
		if got := MustBasis(tt.a).Divides(MustBasis(tt.b)); got != tt.want {
			t.Errorf("Divides(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	for a := uint64(1); a <= 120; a++ {
		for b := uint64(1); b <= 120; b++ {
			want := b%a == 0
			if got := Divides(MustBasis(a), MustBasis(b)); got != want {
				t.Fatalf("Divides(%d, %d) = %v, want %v", a, b, got, want)
			}
		}
	}
}

// TestBasisDiv tests exact division and the contract panic
func TestBasisDiv(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		got := MustBasis(2520).Div(MustBasis(36))
		if got.Uint64() != 70 {
			t.Errorf("2520 / 36 = %d, want 70", got.Uint64())
		}
	})

	t.Run("trailing zeros trimmed", func(t *testing.T) {
		got := MustBasis(10).Div(MustBasis(5))
		if got.Len() != 1 {
			t.Errorf("10 / 5 has %d exponents, want 1", got.Len())
		}
		if one := MustBasis(49).Div(MustBasis(49)); one.Len() != 0 || one.String() != "1" {
			t.Errorf("49 / 49 = %s (len %d), want 1", one, one.Len())
		}
	})

	t.Run("dividend shorter than divisor", func(t *testing.T) {
		got := MustBasis(6).Div(rawBasis([]uint32{1, 0, 0, 0}))
		if got.Uint64() != 3 {
			t.Errorf("6 / 2 = %d, want 3", got.Uint64())
		}
	})

	t.Run("non-integral panics", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic")
			}
			err, ok := r.(error)
			if !ok || !errors.Is(err, ErrNonIntegralDivision) {
				t.Errorf("panic value = %v, want ErrNonIntegralDivision", r)
			}
		}()
		MustBasis(7).Div(MustBasis(2))
	})
}

// TestBasisBeyondNative tests values whose native form overflows 64 bits
func TestBasisBeyondNative(t *testing.T) {
	huge, err := BasisFromExponents([]uint32{70, 0, 3})
	if err != nil {
		t.Fatalf("BasisFromExponents failed: %v", err)
	}
	if _, ok := huge.TryUint64(); ok {
		t.Error("2^70 * 5^3 should not fit in 64 bits")
	}
	want := new(big.Int).Lsh(big.NewInt(125), 70)
	if huge.Big().Cmp(want) != 0 {
		t.Errorf("Big() = %s, want %s", huge.Big(), want)
	}

	// Dividing back down lands in native range again.
	small := huge.Div(MustBasis(1 << 62))
	if small.Uint64() != 256*125 {
		t.Errorf("Uint64() = %d, want %d", small.Uint64(), 256*125)
	}

	defer func() {
		if recover() == nil {
			t.Error("Uint64 on an oversized value should panic")
		}
	}()
	_ = huge.Uint64()
}

func TestBasisFromExponents(t *testing.T) {
	if _, err := BasisFromExponents(make([]uint32, 1001)); err != nil {
		t.Errorf("trailing zeros beyond the bank should be trimmed: %v", err)
	}
	exps := make([]uint32, 1001)
	exps[1000] = 1
	if _, err := BasisFromExponents(exps); !errors.Is(err, ErrRegisterOverflow) {
		t.Errorf("expected ErrRegisterOverflow, got %v", err)
	}
}

func TestBasisString(t *testing.T) {
	tests := map[uint64]string{
		1:   "1",
		2:   "2^1",
		200: "2^3 ✕ 5^2",
		77:  "7^1 ✕ 11^1",
	}
	for v, want := range tests {
		if got := MustBasis(v).String(); got != want {
			t.Errorf("String(%d) = %q, want %q", v, got, want)
		}
	}
	if got := MustBasis(12).GoString(); got != "Basis(2^2 ✕ 3^1)" {
		t.Errorf("GoString() = %q", got)
	}
}

func TestBasisCloneEqual(t *testing.T) {
	a := MustBasis(360)
	c := a.Clone()
	if !a.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.exps[0] = 9
	if a.Exponent(0) != 3 {
		t.Error("clone shares storage with original")
	}

	padded := Basis{exps: []uint32{1, 0, 0}}
	if !padded.Equal(MustBasis(2)) {
		t.Error("Equal should ignore trailing zeros")
	}
	if padded.Equal(MustBasis(4)) {
		t.Error("2 should not equal 4")
	}
}

func rawBasis(exps []uint32) Basis {
	return Basis{exps: exps}
}
