package node

import (
	"hash"

	"github.com/kysee/ztx/utils"
	"github.com/rs/zerolog"
)

const (
	// DefaultMerkleDepth bounds the commitment tree to 2^32 leaves.
	DefaultMerkleDepth = 32

	// maxMerkleDepth leaves the tree unbounded; leaf indexes are uint64.
	maxMerkleDepth = 64
)

type Option func(*Ledger)

// WithTreeHasher sets the hasher constructor of the commitment merkle tree.
func WithTreeHasher(newHasher func() hash.Hash) Option {
	return func(l *Ledger) {
		l.newTreeHasher = newHasher
	}
}

// WithDigest sets the digest used for transaction hashes, and so for OutputIDs.
func WithDigest(digest utils.Digest) Option {
	return func(l *Ledger) {
		l.digest = digest
	}
}

// WithMerkleDepth bounds the commitment tree to 2^depth leaves. A depth
// outside [0, 64] falls back to DefaultMerkleDepth.
func WithMerkleDepth(depth int) Option {
	return func(l *Ledger) {
		l.depth = depth
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}
