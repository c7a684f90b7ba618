package crypto

import (
	crand "crypto/rand"
	"math/big"

	"github.com/cockroachdb/errors"
	tedwards "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	jubjub "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2s"
)

// PubKeySize is the compressed size of a jubjub public key.
const PubKeySize = 32

func NewKey() (*jubjub.PrivateKey, error) {
	return jubjub.GenerateKey(crand.Reader)
}

func PubKeyFromBytes(bz []byte) (*jubjub.PublicKey, error) {
	pub := new(jubjub.PublicKey)
	if _, err := pub.SetBytes(bz); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid public key"), ErrInvalidPublicKey)
	}
	return pub, nil
}

// OwnerAddress derives the 20-byte owner of an Output from a public key:
// the last 20 bytes of keccak256(compressed public key).
func OwnerAddress(pub *jubjub.PublicKey) common.Address {
	return common.BytesToAddress(ethcrypto.Keccak256(pub.Bytes())[12:])
}

// ECDHEComputeSharedSecret computes the ECDHE shared secret
// sharedSecret = blake2s(x(privateKey * otherPublicKey))
func ECDHEComputeSharedSecret(privateKey *jubjub.PrivateKey, otherPublicKey *jubjub.PublicKey) ([]byte, error) {
	if !otherPublicKey.A.IsOnCurve() {
		return nil, errors.Wrap(ErrInvalidPublicKey, "other public key is not on curve")
	}

	var sharedSecret tedwards.PointAffine

	// PrivateKey.Bytes() = pub(32) | scalar(32) | randSrc(32)
	scalarBytes := privateKey.Bytes()
	scalarBigInt := new(big.Int).SetBytes(scalarBytes[32:64])
	sharedSecret.ScalarMultiplication(&otherPublicKey.A, scalarBigInt)

	if !sharedSecret.IsOnCurve() {
		return nil, errors.New("computed shared secret is not on curve")
	}

	hasher, err := blake2s.New256(nil)
	if err != nil {
		return nil, err
	}
	ax := sharedSecret.X.Bytes()
	hasher.Write(ax[:])
	return hasher.Sum(nil), nil
}

// SaplingKDF derives a key stream of outputLen bytes from a shared secret using BLAKE2s,
// following the PRF^expand construction of Zcash Sapling.
func SaplingKDF(sharedSecret []byte, outputLen int) ([]byte, error) {
	if len(sharedSecret) != 32 {
		return nil, errors.Newf("sharedSecret must be 32 bytes, got(%d)", len(sharedSecret))
	}

	personalization := []byte("Zcash_ExpandSeed")

	var keyStream []byte
	var counter byte = 1
	for len(keyStream) < outputLen {
		h, err := blake2s.New256(personalization)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create blake2s hash")
		}
		h.Write(sharedSecret)
		h.Write([]byte{counter})

		keyStream = append(keyStream, h.Sum(nil)...)

		counter++
		if counter == 0 {
			return nil, errors.New("KDF counter overflow")
		}
	}

	return keyStream[:outputLen], nil
}
