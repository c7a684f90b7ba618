package types

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/kysee/ztx/utils"
)

const (
	// MaxListElements is the largest count a 16-bit list prefix can carry.
	MaxListElements = math.MaxUint16

	countLength = 2
)

// Transaction spends Inputs and creates Outputs. Both lists keep their order on the wire:
//
//	inCount(2) | Nullifier* | outCount(2) | Commitment*
type Transaction struct {
	Inputs  []Nullifier
	Outputs []Commitment
}

func NewTransaction(inputs []Nullifier, outputs []Commitment) *Transaction {
	return &Transaction{
		Inputs:  inputs,
		Outputs: outputs,
	}
}

// PayloadLength is the sum of the element lengths, without the two count prefixes.
func (tx *Transaction) PayloadLength() int {
	n := 0
	for _, in := range tx.Inputs {
		n += in.ByteLength()
	}
	for _, out := range tx.Outputs {
		n += out.ByteLength()
	}
	return n
}

// ByteLength is the full wire length, count prefixes included.
func (tx *Transaction) ByteLength() int {
	return 2*countLength + tx.PayloadLength()
}

// Validate checks the list sizes and that no element is nil. Every element
// must be encodable once Validate passes.
func (tx *Transaction) Validate() error {
	if len(tx.Inputs) > MaxListElements {
		return errors.Wrapf(ErrTooManyElements, "inputs: max(%d), got(%d)", MaxListElements, len(tx.Inputs))
	}
	if len(tx.Outputs) > MaxListElements {
		return errors.Wrapf(ErrTooManyElements, "outputs: max(%d), got(%d)", MaxListElements, len(tx.Outputs))
	}
	for i, in := range tx.Inputs {
		switch nf := in.(type) {
		case nil:
			return errors.Wrapf(ErrInvalidElement, "inputs[%d]: nil", i)
		case *PublicNullifier:
			if nf == nil {
				return errors.Wrapf(ErrInvalidElement, "inputs[%d]: nil %T", i, nf)
			}
		}
	}
	for i, out := range tx.Outputs {
		switch c := out.(type) {
		case nil:
			return errors.Wrapf(ErrInvalidElement, "outputs[%d]: nil", i)
		case *PublicCommitment:
			if c == nil || c.Output == nil {
				return errors.Wrapf(ErrInvalidElement, "outputs[%d]: public commitment without output", i)
			}
		}
	}
	return nil
}

func (tx *Transaction) Encode() ([]byte, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	bz := make([]byte, 0, tx.ByteLength())
	bz = binary.BigEndian.AppendUint16(bz, uint16(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		bz = append(bz, in.Bytes()...)
	}
	bz = binary.BigEndian.AppendUint16(bz, uint16(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		bz = append(bz, out.Bytes()...)
	}
	return bz, nil
}

// Bytes returns the wire encoding. It panics if Validate fails;
// use Encode to get an error instead.
func (tx *Transaction) Bytes() []byte {
	bz, err := tx.Encode()
	if err != nil {
		panic(err)
	}
	return bz
}

// TransactionFromBytes decodes a Transaction from the prefix of bz.
// The first element that fails to decode fails the whole transaction with that element's error.
func TransactionFromBytes(bz []byte) (*Transaction, int, error) {
	inputs, cursor, err := decodeList(bz, 0, "inputs", NullifierFromBytes)
	if err != nil {
		return nil, 0, err
	}
	outputs, cursor, err := decodeList(bz, cursor, "outputs", CommitmentFromBytes)
	if err != nil {
		return nil, 0, err
	}

	logger.Debug().Int("inputs", len(inputs)).Int("outputs", len(outputs)).Int("bytes", cursor).Msg("decoded transaction")

	return &Transaction{Inputs: inputs, Outputs: outputs}, cursor, nil
}

func decodeList[T any](bz []byte, cursor int, what string, decode DecodeFunc[T]) ([]T, int, error) {
	if len(bz) < cursor+countLength {
		return nil, 0, shortBuffer(what+" count", cursor+countLength, len(bz))
	}
	count := int(binary.BigEndian.Uint16(bz[cursor:]))
	cursor += countLength

	var list []T
	if count > 0 {
		list = make([]T, 0, min(count, len(bz)-cursor))
	}
	for i := 0; i < count; i++ {
		elem, n, err := decode(bz[cursor:])
		if err != nil {
			return nil, 0, err
		}
		cursor += n
		list = append(list, elem)
	}
	return list, cursor, nil
}

// Hash digests the wire encoding. OutputIDs reference outputs through this hash.
func (tx *Transaction) Hash(digest utils.Digest) common.Hash {
	return digest.Sum(tx.Bytes())
}

func (tx *Transaction) OutputID(digest utils.Digest, index uint32) (OutputID, error) {
	if int(index) >= len(tx.Outputs) {
		return OutputID{}, errors.Newf("output index out of range: index(%d), outputs(%d)", index, len(tx.Outputs))
	}
	return NewOutputID(tx.Hash(digest), index), nil
}

func (tx *Transaction) Equal(other *Transaction) bool {
	if tx == nil || other == nil {
		return tx == other
	}
	return bytes.Equal(tx.Bytes(), other.Bytes())
}

func (tx *Transaction) Hex() string {
	return hexutil.Encode(tx.Bytes())
}

// TransactionFromHex decodes a 0x-prefixed hex transaction. Trailing bytes are rejected.
func TransactionFromHex(s string) (*Transaction, error) {
	bz, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "hex transaction")
	}
	tx, n, err := TransactionFromBytes(bz)
	if err != nil {
		return nil, err
	}
	if n != len(bz) {
		return nil, errors.Newf("hex transaction: %d trailing bytes", len(bz)-n)
	}
	return tx, nil
}
