package crypto

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJubjubKeyGeneration(t *testing.T) {
	priv, err := NewKey()
	require.NoError(t, err)

	pubk := priv.PublicKey
	require.True(t, pubk.A.IsOnCurve(), "Generated public key is not on curve")

	pub, err := PubKeyFromBytes(pubk.Bytes())
	require.NoError(t, err)
	require.True(t, pub.A.Equal(&pubk.A))
}

func TestECDHESharedSecret(t *testing.T) {
	alicePriv, err := NewKey()
	require.NoError(t, err)
	alicePub := &alicePriv.PublicKey

	bobPriv, err := NewKey()
	require.NoError(t, err)
	bobPub := &bobPriv.PublicKey

	// alicePriv * bobPub
	sharedSecretAlice, err := ECDHEComputeSharedSecret(alicePriv, bobPub)
	require.NoError(t, err)

	// bobPriv * alicePub
	sharedSecretBob, err := ECDHEComputeSharedSecret(bobPriv, alicePub)
	require.NoError(t, err)

	require.Equal(t, sharedSecretAlice, sharedSecretBob, "Shared secrets do not match")

	saplingKeyAlice, err := SaplingKDF(sharedSecretAlice, 44)
	require.NoError(t, err)
	saplingKeyBob, err := SaplingKDF(sharedSecretBob, 44)
	require.NoError(t, err)
	require.Equal(t, saplingKeyAlice, saplingKeyBob, "sapling key do not match")

	fmt.Printf("Shared Secret: %x\n", sharedSecretAlice)
}

func TestSaplingKDF(t *testing.T) {
	_, err := SaplingKDF(make([]byte, 16), 44)
	require.Error(t, err)

	ks, err := SaplingKDF(make([]byte, 32), 100)
	require.NoError(t, err)
	require.Len(t, ks, 100)

	prefix, err := SaplingKDF(make([]byte, 32), 44)
	require.NoError(t, err)
	require.Equal(t, ks[:44], prefix)
}

func TestOwnerAddress(t *testing.T) {
	priv0, err := NewKey()
	require.NoError(t, err)
	priv1, err := NewKey()
	require.NoError(t, err)

	owner0 := OwnerAddress(&priv0.PublicKey)
	require.Equal(t, owner0, OwnerAddress(&priv0.PublicKey))
	require.NotEqual(t, owner0, OwnerAddress(&priv1.PublicKey))
}

func BenchmarkECDHESharedSecret(b *testing.B) {
	alicePriv, err := NewKey()
	require.NoError(b, err)
	bobPriv, err := NewKey()
	require.NoError(b, err)
	bobPub := &bobPriv.PublicKey

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ECDHEComputeSharedSecret(alicePriv, bobPub)
		require.NoError(b, err)
	}
}

func TestPubKeyFromBytes_Invalid(t *testing.T) {
	_, err := PubKeyFromBytes(make([]byte, 5))
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}
