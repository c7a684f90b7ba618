package crypto

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// ChaCha20Poly1305 is an Encryptor and Decryptor bound to one key, nonce and
// associated data. A key/nonce pair must never seal two different plaintexts.
type ChaCha20Poly1305 struct {
	key            []byte
	nonce          []byte
	additionalData []byte
}

func NewChaCha20Poly1305(key, nonce, additionalData []byte) (*ChaCha20Poly1305, error) {
	if err := checkKeyNonce(key, nonce); err != nil {
		return nil, err
	}
	return &ChaCha20Poly1305{
		key:            key,
		nonce:          nonce,
		additionalData: additionalData,
	}, nil
}

func (c *ChaCha20Poly1305) Encrypt(plaintext []byte) ([]byte, error) {
	return Encrypt(c.key, c.nonce, plaintext, c.additionalData)
}

func (c *ChaCha20Poly1305) Decrypt(ciphertext []byte) ([]byte, error) {
	return Decrypt(c.key, c.nonce, ciphertext, c.additionalData)
}

// Encrypt seals plaintext with ChaCha20-Poly1305.
//
// Parameters:
//   - key: A 32-byte symmetric encryption key.
//   - nonce: A 12-byte nonce, unique for each encryption with the same key.
//   - plaintext: The data to be encrypted (e.g., an encoded UnencryptedOutput).
//   - additionalData: Data authenticated but not encrypted.
//
// Returns the ciphertext, which includes the authentication tag.
func Encrypt(key, nonce, plaintext, additionalData []byte) ([]byte, error) {
	if err := checkKeyNonce(key, nonce); err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ChaCha20-Poly1305 AEAD")
	}

	return aead.Seal(nil, nonce, plaintext, additionalData), nil
}

// Decrypt opens a ciphertext produced by Encrypt with the same key, nonce and additional data.
func Decrypt(key, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if err := checkKeyNonce(key, nonce); err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ChaCha20-Poly1305 AEAD")
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		// wrong key/nonce, or tampered ciphertext/additionalData
		return nil, errors.Mark(errors.Wrap(err, "failed to decrypt"), ErrDecrypt)
	}
	return plaintext, nil
}

func checkKeyNonce(key, nonce []byte) error {
	if len(key) != chacha20poly1305.KeySize {
		return errors.Wrapf(ErrInvalidKeySize, "must be %d bytes, got(%d)", chacha20poly1305.KeySize, len(key))
	}
	if len(nonce) != chacha20poly1305.NonceSize {
		return errors.Wrapf(ErrInvalidNonceSize, "must be %d bytes, got(%d)", chacha20poly1305.NonceSize, len(nonce))
	}
	return nil
}
