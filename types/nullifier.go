package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
)

// NullifierType is the tag byte leading an encoded Nullifier.
// The values match CommitmentType.
type NullifierType byte

const (
	PrivateNullifierType NullifierType = 1
	PublicNullifierType  NullifierType = 2
)

const (
	PrivateNullifierLength = 1 + common.HashLength
	PublicNullifierLength  = 1 + OutputIDLength
)

func (t NullifierType) String() string {
	switch t {
	case PrivateNullifierType:
		return "private"
	case PublicNullifierType:
		return "public"
	default:
		return fmt.Sprintf("NullifierType(%d)", byte(t))
	}
}

// Nullifier marks a previously committed output as spent.
// It is either a PrivateNullifier or a PublicNullifier.
type Nullifier interface {
	Encodable
	Type() NullifierType
	isNullifier()
}

// PrivateNullifier is the one-way derivative of a PrivateCommitment, see PrivateCommitment.Nullifier.
type PrivateNullifier common.Hash

func (n PrivateNullifier) Hash() common.Hash {
	return common.Hash(n)
}

func (n PrivateNullifier) Type() NullifierType {
	return PrivateNullifierType
}

func (n PrivateNullifier) ByteLength() int {
	return PrivateNullifierLength
}

func (n PrivateNullifier) Bytes() []byte {
	bz := make([]byte, 0, PrivateNullifierLength)
	bz = append(bz, byte(PrivateNullifierType))
	return append(bz, n[:]...)
}

func (n PrivateNullifier) String() string {
	return fmt.Sprintf("PrivateNullifier(%s)", common.Hash(n).Hex())
}

func (PrivateNullifier) isNullifier() {}

// PublicNullifier names the spent output directly.
type PublicNullifier struct {
	OutputID OutputID
}

func (n PublicNullifier) Type() NullifierType {
	return PublicNullifierType
}

func (n PublicNullifier) ByteLength() int {
	return 1 + n.OutputID.ByteLength()
}

func (n PublicNullifier) Bytes() []byte {
	bz := make([]byte, 0, PublicNullifierLength)
	bz = append(bz, byte(PublicNullifierType))
	return append(bz, n.OutputID.Bytes()...)
}

func (n PublicNullifier) String() string {
	return fmt.Sprintf("PublicNullifier(%s)", n.OutputID)
}

func (PublicNullifier) isNullifier() {}

// NullifierFromBytes decodes a tagged Nullifier from the prefix of bz.
func NullifierFromBytes(bz []byte) (Nullifier, int, error) {
	if len(bz) == 0 {
		return nil, 0, shortBuffer("nullifier", 1, 0)
	}

	switch NullifierType(bz[0]) {
	case PrivateNullifierType:
		if len(bz) < PrivateNullifierLength {
			return nil, 0, shortBuffer("private nullifier", PrivateNullifierLength, len(bz))
		}
		return PrivateNullifier(common.BytesToHash(bz[1:PrivateNullifierLength])), PrivateNullifierLength, nil
	case PublicNullifierType:
		id, n, err := OutputIDFromBytes(bz[1:])
		if err != nil {
			return nil, 0, err
		}
		return PublicNullifier{OutputID: id}, 1 + n, nil
	default:
		return nil, 0, errors.Wrapf(ErrUnsupportedNullifierType, "tag(%d)", bz[0])
	}
}
