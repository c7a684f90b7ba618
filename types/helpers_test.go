package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/kysee/ztx/utils"
)

func randHash() common.Hash {
	return common.BytesToHash(utils.RandBytes(common.HashLength))
}

func randAddress() common.Address {
	return common.BytesToAddress(utils.RandBytes(common.AddressLength))
}

func randOutput() *Output {
	return NewOutput(new(uint256.Int).SetBytes(utils.RandBytes(32)), randHash(), randAddress())
}

// xorCipher stands in for a real Encryptor/Decryptor.
type xorCipher byte

func (x xorCipher) Encrypt(plaintext []byte) ([]byte, error) {
	return x.apply(plaintext), nil
}

func (x xorCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	return x.apply(ciphertext), nil
}

func (x xorCipher) apply(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[i] = b ^ byte(x)
	}
	return out
}
