package utils

import (
	crand "crypto/rand"
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	_ "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	_ "github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"
	gnark_hash "github.com/consensys/gnark-crypto/hash"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// DefaultHasher is byte oriented; field hashers are opt-in.
func DefaultHasher() hash.Hash {
	return Keccak256Hasher()
}

func DefaultHashSum(ins ...[]byte) []byte {
	return HashSum(DefaultHasher(), ins...)
}

// MiMCHasher returns a BN254 MiMC hasher that accepts arbitrary input.
// See fieldHasher for how bytes are mapped to field elements.
func MiMCHasher() hash.Hash {
	return &fieldHasher{inner: gnark_hash.MIMC_BN254.New()}
}

func Poseidon2Hasher() hash.Hash {
	return &fieldHasher{inner: gnark_hash.POSEIDON2_BN254.New()}
}

func Keccak256Hasher() hash.Hash {
	return crypto.NewKeccakState()
}

func Blake2sHasher() hash.Hash {
	h, _ := blake2s.New256(nil) // only fails for keys longer than 32 bytes
	return h
}

func Blake2bHasher() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

func SHA3Hasher() hash.Hash {
	return sha3.New256()
}

func HashSum(hasher hash.Hash, ins ...[]byte) []byte {
	hasher.Reset()
	for _, in := range ins {
		_, _ = hasher.Write(in)
	}
	return hasher.Sum(nil)
}

func RandBytes(n int) []byte {
	rbz := make([]byte, n)
	_, _ = crand.Read(rbz)
	return rbz
}

// fieldHasher buffers everything written and, on Sum, feeds the inner hasher
// the buffer packed into 31-byte big-endian chunks followed by the buffer length.
// A 31-byte chunk is always below the BN254 modulus, so no input is reduced,
// and the trailing length keeps the packing injective.
type fieldHasher struct {
	inner hash.Hash
	buf   []byte
}

// packChunkSize is the largest byte count that always fits below the modulus.
const packChunkSize = fr.Bytes - 1

func (w *fieldHasher) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *fieldHasher) Sum(b []byte) []byte {
	w.inner.Reset()
	for i := 0; i < len(w.buf); i += packChunkSize {
		end := min(i+packChunkSize, len(w.buf))

		var elem fr.Element
		elem.SetBytes(w.buf[i:end])
		chunk := elem.Marshal()
		// canonical by construction
		_, _ = w.inner.Write(chunk)
	}

	var length fr.Element
	length.SetUint64(uint64(len(w.buf)))
	lengthBytes := length.Marshal()
	_, _ = w.inner.Write(lengthBytes)

	return w.inner.Sum(b)
}

func (w *fieldHasher) Reset() {
	w.buf = w.buf[:0]
	w.inner.Reset()
}

func (w *fieldHasher) Size() int {
	return w.inner.Size()
}

func (w *fieldHasher) BlockSize() int {
	return packChunkSize
}
