package vm

import (
	"bytes"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/utils"
)

// TestProgramDigest tests digest length, determinism and sensitivity
func TestProgramDigest(t *testing.T) {
	hashes := []struct {
		name string
		size int
	}{
		{utils.HashTip5, hash.DigestLen * 8},
		{utils.HashSHA3, 32},
		{utils.HashSHA256, 32},
	}

	for _, h := range hashes {
		t.Run(h.name, func(t *testing.T) {
			a, err := ProgramDigest(nativeProgram(multiplyNums, multiplyDenoms), h.name)
			if err != nil {
				t.Fatalf("ProgramDigest failed: %v", err)
			}
			if len(a) != h.size {
				t.Errorf("digest length = %d, want %d", len(a), h.size)
			}

			b, _ := ProgramDigest(nativeProgram(multiplyNums, multiplyDenoms), h.name)
			if !bytes.Equal(a, b) {
				t.Error("digest is not deterministic")
			}

			// Reordering fractions changes scan priority, so it must change the digest.
			reordered, _ := ProgramDigest(nativeProgram(
				[]uint64{11, 455, 1, 3, 11, 1},
				[]uint64{13, 33, 11, 7, 2, 3},
			), h.name)
			if bytes.Equal(a, reordered) {
				t.Error("reordered program has the same digest")
			}
		})
	}
}

func TestProgramDigestErrors(t *testing.T) {
	if _, err := ProgramDigest[core.Uint](nil, utils.HashSHA3); err == nil {
		t.Error("nil program should fail")
	}
	if _, err := ProgramDigest(nativeProgram([]uint64{1}, []uint64{2}), "md5"); err == nil {
		t.Error("unknown hash should fail")
	}
}

func TestProgramDigestRepresentations(t *testing.T) {
	native, err := ProgramDigest(nativeProgram(multiplyNums, multiplyDenoms), utils.HashSHA3)
	if err != nil {
		t.Fatalf("ProgramDigest failed: %v", err)
	}
	basis, err := ProgramDigest(basisProgram(multiplyNums, multiplyDenoms), utils.HashSHA3)
	if err != nil {
		t.Fatalf("ProgramDigest failed: %v", err)
	}
	if bytes.Equal(native, basis) {
		t.Error("native and basis encodings should hash differently")
	}
}
