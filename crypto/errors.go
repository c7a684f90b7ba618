package crypto

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidPublicKey is returned for keys that do not decode to a point on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrDecrypt is returned when a ciphertext does not authenticate under the key, nonce and additional data.
	ErrDecrypt = errors.New("failed to decrypt")
)
