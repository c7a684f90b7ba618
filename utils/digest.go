package utils

import (
	"bytes"
	"hash"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
)

// DigestSize is the only output width accepted for commitment and nullifier derivation.
const DigestSize = common.HashLength

var ErrInvalidDigestSize = errors.New("invalid digest size")

// Digest is a one-way hash function whose output is exactly DigestSize bytes.
// The zero value hashes with DefaultHasher.
type Digest struct {
	newHasher func() hash.Hash
}

// NewDigest wraps a hasher constructor, rejecting any hasher that does not
// produce DigestSize bytes.
func NewDigest(newHasher func() hash.Hash) (Digest, error) {
	if newHasher == nil {
		return Digest{}, errors.Wrap(ErrInvalidDigestSize, "nil hasher constructor")
	}
	if size := newHasher().Size(); size != DigestSize {
		return Digest{}, errors.Wrapf(ErrInvalidDigestSize, "expected(%d), got(%d)", DigestSize, size)
	}
	return Digest{newHasher: newHasher}, nil
}

func MustDigest(newHasher func() hash.Hash) Digest {
	d, err := NewDigest(newHasher)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	DefaultDigest   = MustDigest(DefaultHasher)
	MiMCDigest      = MustDigest(MiMCHasher)
	Poseidon2Digest = MustDigest(Poseidon2Hasher)
	Keccak256Digest = MustDigest(Keccak256Hasher)
	Blake2sDigest   = MustDigest(Blake2sHasher)
	Blake2bDigest   = MustDigest(Blake2bHasher)
	SHA3Digest      = MustDigest(SHA3Hasher)

	// Digests lists every shipped digest by name.
	Digests = map[string]Digest{
		"default":   DefaultDigest,
		"mimc":      MiMCDigest,
		"poseidon2": Poseidon2Digest,
		"keccak256": Keccak256Digest,
		"blake2s":   Blake2sDigest,
		"blake2b":   Blake2bDigest,
		"sha3":      SHA3Digest,
	}
)

// Hasher returns a fresh hasher instance.
func (d Digest) Hasher() hash.Hash {
	if d.newHasher == nil {
		return DefaultHasher()
	}
	return d.newHasher()
}

// Sum hashes the concatenation of ins; how ins is split does not matter.
func (d Digest) Sum(ins ...[]byte) common.Hash {
	return common.BytesToHash(HashSum(d.Hasher(), bytes.Join(ins, nil)))
}
