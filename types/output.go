package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/kysee/ztx/utils"
)

const (
	AmountLength = 32
	// OutputLength is the encoded size of an Output: amount(32) | asset(32) | owner(20).
	OutputLength = AmountLength + common.HashLength + common.AddressLength
)

// Output is a transparent unspent output.
type Output struct {
	Amount *uint256.Int
	Asset  common.Hash
	Owner  common.Address
}

func NewOutput(amount *uint256.Int, asset common.Hash, owner common.Address) *Output {
	amt := new(uint256.Int)
	if amount != nil {
		amt.Set(amount)
	}
	return &Output{
		Amount: amt,
		Asset:  asset,
		Owner:  owner,
	}
}

// Commitment hashes amount, asset, owner and salt, in that order.
func (o *Output) Commitment(salt common.Hash, digest utils.Digest) PrivateCommitment {
	amt := o.amountBytes()
	return PrivateCommitment(digest.Sum(amt[:], o.Asset.Bytes(), o.Owner.Bytes(), salt.Bytes()))
}

func (o *Output) ByteLength() int {
	return OutputLength
}

func (o *Output) Bytes() []byte {
	amt := o.amountBytes()
	bz := make([]byte, 0, OutputLength)
	bz = append(bz, amt[:]...)
	bz = append(bz, o.Asset.Bytes()...)
	bz = append(bz, o.Owner.Bytes()...)
	return bz
}

// OutputFromBytes decodes an Output from the first OutputLength bytes of bz.
func OutputFromBytes(bz []byte) (*Output, int, error) {
	if len(bz) < OutputLength {
		return nil, 0, shortBuffer("output", OutputLength, len(bz))
	}

	o := &Output{
		Amount: new(uint256.Int).SetBytes32(bz[:AmountLength]),
		Asset:  common.BytesToHash(bz[AmountLength : AmountLength+common.HashLength]),
		Owner:  common.BytesToAddress(bz[AmountLength+common.HashLength : OutputLength]),
	}
	return o, OutputLength, nil
}

func (o *Output) Equal(other *Output) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.amount().Eq(other.amount()) && o.Asset == other.Asset && o.Owner == other.Owner
}

func (o *Output) String() string {
	return fmt.Sprintf("Output{amount=%s, asset=%s, owner=%s}", o.amount().Dec(), o.Asset.Hex(), o.Owner.Hex())
}

// a nil amount encodes as zero
func (o *Output) amount() *uint256.Int {
	if o.Amount == nil {
		return new(uint256.Int)
	}
	return o.Amount
}

func (o *Output) amountBytes() [AmountLength]byte {
	return o.amount().Bytes32()
}
