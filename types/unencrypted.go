package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/kysee/ztx/utils"
)

// UnencryptedOutputLength is the encoded size of an UnencryptedOutput: output(84) | salt(32).
const UnencryptedOutputLength = OutputLength + common.HashLength

// Encryptor is the symmetric encryption capability used to ship output data to its owner.
type Encryptor interface {
	Encrypt(plaintext []byte) ([]byte, error)
}

// Decryptor reverses Encryptor given matching keys.
type Decryptor interface {
	Decrypt(ciphertext []byte) ([]byte, error)
}

// UnencryptedOutput pairs an Output with the salt used to commit it.
// The salt must be unpredictable, otherwise the private commitment can be guessed.
type UnencryptedOutput struct {
	Output *Output
	Salt   common.Hash
}

// NewUnencryptedOutput pairs output with a fresh random salt.
func NewUnencryptedOutput(output *Output) *UnencryptedOutput {
	return &UnencryptedOutput{
		Output: output,
		Salt:   common.BytesToHash(utils.RandBytes(common.HashLength)),
	}
}

func (uo *UnencryptedOutput) Commitment(digest utils.Digest) PrivateCommitment {
	return uo.Output.Commitment(uo.Salt, digest)
}

func (uo *UnencryptedOutput) ByteLength() int {
	return uo.Output.ByteLength() + common.HashLength
}

func (uo *UnencryptedOutput) Bytes() []byte {
	bz := make([]byte, 0, UnencryptedOutputLength)
	bz = append(bz, uo.Output.Bytes()...)
	return append(bz, uo.Salt[:]...)
}

func UnencryptedOutputFromBytes(bz []byte) (*UnencryptedOutput, int, error) {
	output, n, err := OutputFromBytes(bz)
	if err != nil {
		return nil, 0, err
	}
	if len(bz) < n+common.HashLength {
		return nil, 0, shortBuffer("unencrypted output salt", n+common.HashLength, len(bz))
	}
	return &UnencryptedOutput{
		Output: output,
		Salt:   common.BytesToHash(bz[n : n+common.HashLength]),
	}, n + common.HashLength, nil
}

func (uo *UnencryptedOutput) Encrypt(encryptor Encryptor) ([]byte, error) {
	return encryptor.Encrypt(uo.Bytes())
}

// Decrypt runs decryptor over the encoding of uo itself and decodes the result.
// To decrypt received ciphertext use DecryptUnencryptedOutput.
func (uo *UnencryptedOutput) Decrypt(decryptor Decryptor) (*UnencryptedOutput, error) {
	return DecryptUnencryptedOutput(uo.Bytes(), decryptor)
}

// DecryptUnencryptedOutput decrypts ciphertext and decodes the plaintext.
func DecryptUnencryptedOutput(ciphertext []byte, decryptor Decryptor) (*UnencryptedOutput, error) {
	plaintext, err := decryptor.Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}
	uo, _, err := UnencryptedOutputFromBytes(plaintext)
	return uo, err
}
