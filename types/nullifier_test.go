package types

import (
	"testing"

	"github.com/kysee/ztx/utils"
	"github.com/stretchr/testify/require"
)

func TestOutputIDCodec(t *testing.T) {
	id := NewOutputID(randHash(), 0xdeadbeef)
	bz := id.Bytes()
	require.Len(t, bz, OutputIDLength)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, bz[32:])

	decoded, n, err := OutputIDFromBytes(append(bz, 0x01, 0x02))
	require.NoError(t, err)
	require.Equal(t, OutputIDLength, n)
	require.Equal(t, id, decoded)

	_, _, err = OutputIDFromBytes(bz[:OutputIDLength-1])
	require.ErrorIs(t, err, ErrFailedToDecode)
}

func TestOutputIDBase58(t *testing.T) {
	id := NewOutputID(randHash(), 7)

	parsed, err := OutputIDFromBase58(id.Base58())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = OutputIDFromBase58("abc")
	require.ErrorIs(t, err, ErrFailedToDecode)
}

func TestNullifierCodec(t *testing.T) {
	// private
	private := PrivateNullifier(randHash())
	bz := private.Bytes()
	require.Len(t, bz, private.ByteLength())

	decoded, n, err := NullifierFromBytes(bz)
	require.NoError(t, err)
	require.Equal(t, PrivateNullifierLength, n)
	require.Equal(t, private, decoded)

	// public
	public := PublicNullifier{OutputID: NewOutputID(randHash(), 0)}
	bz = public.Bytes()
	require.Len(t, bz, public.ByteLength())
	require.Equal(t, PublicNullifierLength, len(bz))

	decoded, n, err = NullifierFromBytes(bz)
	require.NoError(t, err)
	require.Equal(t, PublicNullifierLength, n)
	require.Equal(t, public, decoded)
	require.Equal(t, PublicNullifierType, decoded.Type())
}

func TestNullifierFromBytes_Trailing(t *testing.T) {
	for _, nf := range []Nullifier{
		PrivateNullifier(randHash()),
		PublicNullifier{OutputID: NewOutputID(randHash(), 3)},
	} {
		decoded, n, err := NullifierFromBytes(append(nf.Bytes(), utils.RandBytes(50)...))
		require.NoError(t, err)
		require.Equal(t, nf.ByteLength(), n)
		require.Equal(t, nf.Bytes(), decoded.Bytes())
	}
}

func TestNullifierFromBytes_UnsupportedType(t *testing.T) {
	bz := make([]byte, 33)
	for i := range bz {
		bz[i] = 3
	}
	_, _, err := NullifierFromBytes(bz)
	require.ErrorIs(t, err, ErrUnsupportedNullifierType)

	_, _, err = NullifierFromBytes([]byte{0})
	require.ErrorIs(t, err, ErrUnsupportedNullifierType)
	require.NotErrorIs(t, err, ErrUnsupportedCommitmentType)
}

func TestNullifierFromBytes_Short(t *testing.T) {
	_, _, err := NullifierFromBytes([]byte{})
	require.ErrorIs(t, err, ErrFailedToDecode)

	_, _, err = NullifierFromBytes(PrivateNullifier(randHash()).Bytes()[:20])
	require.ErrorIs(t, err, ErrFailedToDecode)

	public := PublicNullifier{OutputID: NewOutputID(randHash(), 1)}.Bytes()
	_, _, err = NullifierFromBytes(public[:PublicNullifierLength-1])
	require.ErrorIs(t, err, ErrFailedToDecode)
}
