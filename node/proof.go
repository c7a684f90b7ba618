package node

import (
	"bytes"
	"hash"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/accumulator/merkletree"
	"github.com/ethereum/go-ethereum/common"
	"github.com/kysee/ztx/types"
)

// CommitmentProof is a merkle membership proof of a private commitment.
// ProofSet[0] is the commitment itself.
type CommitmentProof struct {
	Root      []byte
	ProofSet  [][]byte
	Index     uint64
	NumLeaves uint64
}

// CommitmentProof builds the membership proof of the first leaf equal to commitment.
func (l *Ledger) CommitmentProof(commitment types.PrivateCommitment) (*CommitmentProof, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, ok := l.commitmentIdx[commitment]
	if !ok {
		return nil, errors.Wrapf(ErrCommitmentNotFound, "%s", commitment)
	}

	var buf bytes.Buffer
	for _, c := range l.commitments {
		buf.Write(c[:])
	}
	root, proofSet, numLeaves, err := merkletree.BuildReaderProof(
		&buf,
		l.newTreeHasher(),
		common.HashLength,
		idx,
	)
	if err != nil {
		return nil, err
	}
	return &CommitmentProof{
		Root:      root,
		ProofSet:  proofSet,
		Index:     idx,
		NumLeaves: numLeaves,
	}, nil
}

// VerifyCommitmentProof checks that proof places commitment under proof.Root.
func VerifyCommitmentProof(newHasher func() hash.Hash, commitment types.PrivateCommitment, proof *CommitmentProof) bool {
	if proof == nil || len(proof.ProofSet) == 0 || !bytes.Equal(proof.ProofSet[0], commitment[:]) {
		return false
	}
	return merkletree.VerifyProof(newHasher(), proof.Root, proof.ProofSet, proof.Index, proof.NumLeaves)
}

// VerifyCommitmentProof checks proof against the current root of l.
func (l *Ledger) VerifyCommitmentProof(commitment types.PrivateCommitment, proof *CommitmentProof) bool {
	if proof == nil || !bytes.Equal(proof.Root, l.Root()) {
		return false
	}
	return VerifyCommitmentProof(l.newTreeHasher, commitment, proof)
}
