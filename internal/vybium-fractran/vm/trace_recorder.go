package vm

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/merkle"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/utils"
)

// TraceRecorder collects the states emitted by an evaluator and commits to
// them with a Merkle tree. Each leaf is the Tip5 hash of the step index
// followed by the state's words.
type TraceRecorder[T core.Nat[T]] struct {
	leaves []hash.Digest
}

// NewTraceRecorder creates an empty recorder
func NewTraceRecorder[T core.Nat[T]]() *TraceRecorder[T] {
	return &TraceRecorder[T]{
		leaves: make([]hash.Digest, 0),
	}
}

// Record appends one emitted state
func (tr *TraceRecorder[T]) Record(state T) {
	words := state.Words()
	elements := make([]field.Element, 0, len(words)+1)
	elements = append(elements, field.New(uint64(len(tr.leaves))))
	elements = append(elements, wordsToElements(words)...)
	tr.leaves = append(tr.leaves, hash.HashVarlen(elements))
}

// Len returns the number of recorded states
func (tr *TraceRecorder[T]) Len() int {
	return len(tr.leaves)
}

// Commitment builds the Merkle tree over the recorded states, padded with
// zero digests to a power of two, and returns its serialized root.
func (tr *TraceRecorder[T]) Commitment() ([]byte, error) {
	size := utils.NextPowerOfTwo(len(tr.leaves))
	if size < 2 {
		size = 2
	}

	leaves := make([]hash.Digest, size)
	copy(leaves, tr.leaves)

	tree, err := merkle.New(leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to create Merkle tree: %w", err)
	}

	root := tree.Root()
	result := make([]byte, len(root)*8)
	for i, elem := range root {
		val := elem.Value()
		for j := 0; j < 8; j++ {
			result[i*8+j] = byte(val >> (j * 8))
		}
	}
	return result, nil
}
