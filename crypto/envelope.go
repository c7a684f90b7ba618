package crypto

import (
	"github.com/cockroachdb/errors"
	jubjub "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/kysee/ztx/types"
	"golang.org/x/crypto/chacha20poly1305"
)

const kdfLen = chacha20poly1305.KeySize + chacha20poly1305.NonceSize

// NoteEnvelope carries an encrypted UnencryptedOutput to the owner of a public key.
// The sender's ephemeral public key lets the owner recompute the ECDHE shared secret.
type NoteEnvelope struct {
	EphemeralPubKey []byte
	Ciphertext      []byte
}

// SealOutput encrypts uo so that only the holder of the private key of `to` can open it.
func SealOutput(uo *types.UnencryptedOutput, to *jubjub.PublicKey, additionalData []byte) (*NoteEnvelope, error) {
	ephemeral, err := NewKey()
	if err != nil {
		return nil, err
	}

	cipher, err := noteCipher(ephemeral, to, additionalData)
	if err != nil {
		return nil, err
	}

	ct, err := uo.Encrypt(cipher)
	if err != nil {
		return nil, err
	}

	ephPub := ephemeral.PublicKey.Bytes()
	return &NoteEnvelope{
		EphemeralPubKey: ephPub[:],
		Ciphertext:      ct,
	}, nil
}

// OpenOutput decrypts an envelope sealed to the public key of prv.
func OpenOutput(env *NoteEnvelope, prv *jubjub.PrivateKey, additionalData []byte) (*types.UnencryptedOutput, error) {
	ephPub, err := PubKeyFromBytes(env.EphemeralPubKey)
	if err != nil {
		return nil, err
	}

	cipher, err := noteCipher(prv, ephPub, additionalData)
	if err != nil {
		return nil, err
	}

	return types.DecryptUnencryptedOutput(env.Ciphertext, cipher)
}

func noteCipher(prv *jubjub.PrivateKey, pub *jubjub.PublicKey, additionalData []byte) (*ChaCha20Poly1305, error) {
	sharedSecret, err := ECDHEComputeSharedSecret(prv, pub)
	if err != nil {
		return nil, err
	}
	ks, err := SaplingKDF(sharedSecret, kdfLen)
	if err != nil {
		return nil, err
	}
	return NewChaCha20Poly1305(ks[:chacha20poly1305.KeySize], ks[chacha20poly1305.KeySize:], additionalData)
}

// Bytes returns the RLP encoding of the envelope.
func (e *NoteEnvelope) Bytes() []byte {
	bz, err := rlp.EncodeToBytes(e)
	if err != nil {
		// only byte slices inside; encoding cannot fail
		panic(errors.Wrap(err, "failed to RLP encode NoteEnvelope"))
	}
	return bz
}

func NoteEnvelopeFromBytes(bz []byte) (*NoteEnvelope, error) {
	env := new(NoteEnvelope)
	if err := rlp.DecodeBytes(bz, env); err != nil {
		return nil, errors.Wrap(err, "failed to RLP decode NoteEnvelope")
	}
	if len(env.EphemeralPubKey) != PubKeySize {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "invalid ephemeral public key size: expected(%d), got(%d)", PubKeySize, len(env.EphemeralPubKey))
	}
	return env, nil
}
