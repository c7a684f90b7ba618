package types

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/kysee/ztx/utils"
	"github.com/stretchr/testify/require"
)

func sampleTransaction() *Transaction {
	return NewTransaction(
		[]Nullifier{
			PrivateNullifier(randHash()),
			PublicNullifier{OutputID: NewOutputID(randHash(), 0)},
			PrivateNullifier(randHash()),
		},
		[]Commitment{
			PrivateCommitment(randHash()),
			&PublicCommitment{Output: NewOutput(uint256.NewInt(1000), randHash(), randAddress())},
		},
	)
}

func TestTransactionCodec(t *testing.T) {
	tx := sampleTransaction()

	bz := tx.Bytes()
	require.Len(t, bz, tx.ByteLength())
	require.Equal(t, tx.PayloadLength()+4, tx.ByteLength())
	require.Equal(t, []byte{0x00, 0x03}, bz[:2])

	decoded, n, err := TransactionFromBytes(bz)
	require.NoError(t, err)
	require.Equal(t, len(bz), n)
	require.Equal(t, tx, decoded)
	require.True(t, tx.Equal(decoded))

	// order is significant
	swapped := NewTransaction(
		[]Nullifier{tx.Inputs[1], tx.Inputs[0], tx.Inputs[2]},
		tx.Outputs,
	)
	require.False(t, tx.Equal(swapped))
}

func TestTransactionCodec_Empty(t *testing.T) {
	tx := NewTransaction(nil, nil)

	bz := tx.Bytes()
	require.Equal(t, []byte{0, 0, 0, 0}, bz)
	require.Equal(t, 0, tx.PayloadLength())
	require.Equal(t, 4, tx.ByteLength())

	decoded, n, err := TransactionFromBytes(bz)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, tx, decoded)
}

func TestTransactionFromBytes_Trailing(t *testing.T) {
	tx := sampleTransaction()
	bz := append(tx.Bytes(), utils.RandBytes(10)...)

	decoded, n, err := TransactionFromBytes(bz)
	require.NoError(t, err)
	require.Equal(t, tx.ByteLength(), n)
	require.Equal(t, tx.Bytes(), decoded.Bytes())
}

func TestTransactionFromBytes_Invalid(t *testing.T) {
	_, _, err := TransactionFromBytes(nil)
	require.ErrorIs(t, err, ErrFailedToDecode)

	_, _, err = TransactionFromBytes([]byte{0})
	require.ErrorIs(t, err, ErrFailedToDecode)

	// one input claimed, but only 3 bytes of it
	_, _, err = TransactionFromBytes([]byte{0, 1, 2, 3, 4})
	require.ErrorIs(t, err, ErrFailedToDecode)

	// missing output count
	_, _, err = TransactionFromBytes([]byte{0, 0, 0})
	require.ErrorIs(t, err, ErrFailedToDecode)

	bz := sampleTransaction().Bytes()
	for _, l := range []int{1, 2, 30, len(bz) / 2, len(bz) - 1} {
		_, _, err = TransactionFromBytes(bz[:l])
		require.ErrorIs(t, err, ErrFailedToDecode)
	}
}

func TestTransactionFromBytes_ElementError(t *testing.T) {
	// bad nullifier tag surfaces unchanged
	bz := []byte{0, 1, 9}
	bz = append(bz, make([]byte, 40)...)
	tx, _, err := TransactionFromBytes(bz)
	require.Nil(t, tx)
	require.ErrorIs(t, err, ErrUnsupportedNullifierType)

	// bad commitment tag after a valid input
	bz = []byte{0, 1}
	bz = append(bz, PrivateNullifier(randHash()).Bytes()...)
	bz = append(bz, 0, 1, 7)
	bz = append(bz, make([]byte, 90)...)
	tx, _, err = TransactionFromBytes(bz)
	require.Nil(t, tx)
	require.ErrorIs(t, err, ErrUnsupportedCommitmentType)
}

func TestTransactionTooManyElements(t *testing.T) {
	inputs := make([]Nullifier, MaxListElements+1)
	for i := range inputs {
		inputs[i] = PrivateNullifier{}
	}
	tx := NewTransaction(inputs, nil)

	_, err := tx.Encode()
	require.ErrorIs(t, err, ErrTooManyElements)
	require.Panics(t, func() { tx.Bytes() })

	tx.Inputs = tx.Inputs[:MaxListElements]
	bz, err := tx.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff}, bz[:2])
}

func TestTransactionValidate_InvalidElement(t *testing.T) {
	for _, tx := range []*Transaction{
		NewTransaction([]Nullifier{PrivateNullifier(randHash()), nil}, nil),
		NewTransaction([]Nullifier{(*PublicNullifier)(nil)}, nil),
		NewTransaction(nil, []Commitment{nil}),
		NewTransaction(nil, []Commitment{&PublicCommitment{}}),
		NewTransaction(nil, []Commitment{(*PublicCommitment)(nil)}),
	} {
		require.ErrorIs(t, tx.Validate(), ErrInvalidElement)

		_, err := tx.Encode()
		require.ErrorIs(t, err, ErrInvalidElement)
		require.Panics(t, func() { tx.Bytes() })
	}

	require.NoError(t, sampleTransaction().Validate())
}

func TestTransactionHash(t *testing.T) {
	tx := sampleTransaction()

	h := tx.Hash(utils.DefaultDigest)
	require.Equal(t, h, tx.Hash(utils.DefaultDigest))
	require.Equal(t, utils.DefaultDigest.Sum(tx.Bytes()), h)

	id, err := tx.OutputID(utils.DefaultDigest, 1)
	require.NoError(t, err)
	require.Equal(t, NewOutputID(h, 1), id)

	_, err = tx.OutputID(utils.DefaultDigest, 2)
	require.Error(t, err)
}

func TestTransactionHex(t *testing.T) {
	tx := sampleTransaction()

	parsed, err := TransactionFromHex(tx.Hex())
	require.NoError(t, err)
	require.True(t, tx.Equal(parsed))

	_, err = TransactionFromHex(tx.Hex() + "00")
	require.Error(t, err)

	_, err = TransactionFromHex("0x0001ff")
	require.ErrorIs(t, err, ErrUnsupportedNullifierType)
}
