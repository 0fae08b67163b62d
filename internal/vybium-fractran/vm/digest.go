package vm

import (
	"crypto/sha256"
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/utils"
)

// ProgramDigest computes the attestation digest of a program description.
//
// The program is encoded as words (fraction count, then each fraction's
// length-prefixed numerator and denominator words) and hashed with
// hashFunction. Digests depend on the state representation, since a Basis
// fraction encodes exponents where a Uint fraction encodes the value.
func ProgramDigest[T core.Nat[T]](p *Program[T], hashFunction string) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("program cannot be nil")
	}

	words := p.Words()
	switch hashFunction {
	case utils.HashTip5:
		return digestToBytes(hash.HashVarlen(wordsToElements(words))), nil
	case utils.HashSHA3:
		h := sha3.Sum256(utils.WordsToBytes(words))
		return h[:], nil
	case utils.HashSHA256:
		h := sha256.Sum256(utils.WordsToBytes(words))
		return h[:], nil
	default:
		return nil, fmt.Errorf("unsupported hash function: %s", hashFunction)
	}
}

// wordsToElements lifts words into the base field
func wordsToElements(words []uint64) []field.Element {
	elements := make([]field.Element, len(words))
	for i, w := range words {
		elements[i] = field.New(w)
	}
	return elements
}

// digestToBytes serializes a digest, each element little-endian
func digestToBytes(digest hash.Digest) []byte {
	result := make([]byte, len(digest)*8)
	for i, elem := range digest {
		val := elem.Value()
		for j := 0; j < 8; j++ {
			result[i*8+j] = byte(val >> (j * 8))
		}
	}
	return result
}
