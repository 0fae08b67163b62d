package vm

import (
	"testing"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
)

// TestFractionStep tests the single Fractran operation on native integers
func TestFractionStep(t *testing.T) {
	tests := []struct {
		name        string
		num, den    core.Uint
		input       core.Uint
		want        core.Uint
		wantChanged bool
	}{
		{"1/2 on 4", 1, 2, 4, 2, true},
		{"1/2 on 2", 1, 2, 2, 1, true},
		{"1/2 on 1", 1, 2, 1, 1, false},
		{"6/7 on 28", 6, 7, 28, 24, true},
		{"3/5 on 7", 3, 5, 7, 7, false},
		{"unit fraction still changes", 5, 5, 9, 9, true},
		{"product makes it integral", 10, 4, 2, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewFraction(tt.num, tt.den).Step(tt.input)
			if res.Changed != tt.wantChanged {
				t.Errorf("Changed = %v, want %v", res.Changed, tt.wantChanged)
			}
			if res.Value != tt.want {
				t.Errorf("Value = %d, want %d", res.Value, tt.want)
			}
		})
	}
}

// TestFractionStepBasis tests the same operation on factorized states
func TestFractionStepBasis(t *testing.T) {
	f := NewFraction(core.MustBasis(6), core.MustBasis(7))

	res := f.Step(core.MustBasis(28))
	if !res.Changed || res.Value.Uint64() != 24 {
		t.Errorf("6/7 on 28 = (%v, %s), want (true, 24)", res.Changed, res.Value)
	}

	input := core.MustBasis(10)
	res = f.Step(input)
	if res.Changed || !res.Value.Equal(input) {
		t.Errorf("6/7 on 10 = (%v, %s), want (false, 10)", res.Changed, res.Value)
	}
}

func TestNewFractionZero(t *testing.T) {
	for _, pair := range [][2]core.Uint{{0, 1}, {1, 0}, {0, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewFraction(%d, %d) should panic", pair[0], pair[1])
				}
			}()
			NewFraction(pair[0], pair[1])
		}()
	}
}

func TestFractionString(t *testing.T) {
	if got := NewFraction[core.Uint](17, 91).String(); got != "17 / 91" {
		t.Errorf("String() = %q, want %q", got, "17 / 91")
	}
	if got := NewFraction(core.MustBasis(15), core.MustBasis(2)).String(); got != "3^1 ✕ 5^1 / 2^1" {
		t.Errorf("String() = %q", got)
	}
}

func TestFractionWords(t *testing.T) {
	got := NewFraction(core.MustBasis(12), core.MustBasis(5)).Words()
	want := []uint64{2, 2, 1, 3, 0, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Words() = %v, want %v", got, want)
		}
	}
}
