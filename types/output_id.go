package types

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
)

// OutputIDLength is the encoded size of an OutputID: txhash(32) | index(4).
const OutputIDLength = common.HashLength + 4

// OutputID references the output at Index of the transaction hashed to TxHash.
type OutputID struct {
	TxHash common.Hash
	Index  uint32
}

func NewOutputID(txHash common.Hash, index uint32) OutputID {
	return OutputID{TxHash: txHash, Index: index}
}

func (id OutputID) ByteLength() int {
	return OutputIDLength
}

func (id OutputID) Bytes() []byte {
	bz := make([]byte, OutputIDLength)
	copy(bz, id.TxHash[:])
	binary.BigEndian.PutUint32(bz[common.HashLength:], id.Index)
	return bz
}

func OutputIDFromBytes(bz []byte) (OutputID, int, error) {
	if len(bz) < OutputIDLength {
		return OutputID{}, 0, shortBuffer("output id", OutputIDLength, len(bz))
	}
	return OutputID{
		TxHash: common.BytesToHash(bz[:common.HashLength]),
		Index:  binary.BigEndian.Uint32(bz[common.HashLength:OutputIDLength]),
	}, OutputIDLength, nil
}

func (id OutputID) Base58() string {
	return base58.Encode(id.Bytes())
}

// OutputIDFromBase58 parses the text form produced by OutputID.Base58.
func OutputIDFromBase58(s string) (OutputID, error) {
	bz := base58.Decode(s)
	if len(bz) != OutputIDLength {
		return OutputID{}, errors.Wrapf(ErrFailedToDecode, "base58 output id: expected(%d) bytes, got(%d)", OutputIDLength, len(bz))
	}
	id, _, err := OutputIDFromBytes(bz)
	return id, err
}

func (id OutputID) String() string {
	return fmt.Sprintf("OutputID{txhash=%s, index=%d}", id.TxHash.Hex(), id.Index)
}
