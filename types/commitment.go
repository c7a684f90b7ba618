package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/kysee/ztx/utils"
)

// CommitmentType is the tag byte leading an encoded Commitment.
type CommitmentType byte

const (
	PrivateCommitmentType CommitmentType = 1
	PublicCommitmentType  CommitmentType = 2
)

const (
	PrivateCommitmentLength = 1 + common.HashLength
	PublicCommitmentLength  = 1 + OutputLength
)

func (t CommitmentType) String() string {
	switch t {
	case PrivateCommitmentType:
		return "private"
	case PublicCommitmentType:
		return "public"
	default:
		return fmt.Sprintf("CommitmentType(%d)", byte(t))
	}
}

// Commitment is either a PrivateCommitment or a PublicCommitment.
// The set of implementations is closed.
type Commitment interface {
	Encodable
	Type() CommitmentType
	isCommitment()
}

// PrivateCommitment is a hiding commitment to an Output, produced by Output.Commitment.
type PrivateCommitment common.Hash

// Nullifier derives the nullifier of the commitment by hashing the commitment and salt.
func (c PrivateCommitment) Nullifier(salt common.Hash, digest utils.Digest) PrivateNullifier {
	return PrivateNullifier(digest.Sum(c[:], salt.Bytes()))
}

func (c PrivateCommitment) Hash() common.Hash {
	return common.Hash(c)
}

func (c PrivateCommitment) Type() CommitmentType {
	return PrivateCommitmentType
}

func (c PrivateCommitment) ByteLength() int {
	return PrivateCommitmentLength
}

func (c PrivateCommitment) Bytes() []byte {
	bz := make([]byte, 0, PrivateCommitmentLength)
	bz = append(bz, byte(PrivateCommitmentType))
	return append(bz, c[:]...)
}

func (c PrivateCommitment) String() string {
	return fmt.Sprintf("PrivateCommitment(%s)", common.Hash(c).Hex())
}

func (PrivateCommitment) isCommitment() {}

// PublicCommitment states ownership of an Output directly.
type PublicCommitment struct {
	Output *Output
}

func (c *PublicCommitment) Type() CommitmentType {
	return PublicCommitmentType
}

func (c *PublicCommitment) ByteLength() int {
	return 1 + c.Output.ByteLength()
}

func (c *PublicCommitment) Bytes() []byte {
	bz := make([]byte, 0, PublicCommitmentLength)
	bz = append(bz, byte(PublicCommitmentType))
	return append(bz, c.Output.Bytes()...)
}

func (c *PublicCommitment) String() string {
	return fmt.Sprintf("PublicCommitment(%s)", c.Output)
}

func (*PublicCommitment) isCommitment() {}

// CommitmentFromBytes decodes a tagged Commitment from the prefix of bz.
func CommitmentFromBytes(bz []byte) (Commitment, int, error) {
	if len(bz) == 0 {
		return nil, 0, shortBuffer("commitment", 1, 0)
	}

	switch CommitmentType(bz[0]) {
	case PrivateCommitmentType:
		if len(bz) < PrivateCommitmentLength {
			return nil, 0, shortBuffer("private commitment", PrivateCommitmentLength, len(bz))
		}
		return PrivateCommitment(common.BytesToHash(bz[1:PrivateCommitmentLength])), PrivateCommitmentLength, nil
	case PublicCommitmentType:
		output, n, err := OutputFromBytes(bz[1:])
		if err != nil {
			return nil, 0, err
		}
		return &PublicCommitment{Output: output}, 1 + n, nil
	default:
		return nil, 0, errors.Wrapf(ErrUnsupportedCommitmentType, "tag(%d)", bz[0])
	}
}
