package types

import (
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
)

const (
	addrPrefix = "bz"
	addrVer    = 0x01
)

// EncodeOwner renders an owner address as "bz" + base58check.
func EncodeOwner(owner common.Address) string {
	return addrPrefix + base58.CheckEncode(owner.Bytes(), addrVer)
}

func DecodeOwner(addr string) (common.Address, error) {
	if !strings.HasPrefix(addr, addrPrefix) {
		return common.Address{}, errors.Wrapf(ErrInvalidAddress, "wrong prefix: got(%q)", addr)
	}
	bz, ver, err := base58.CheckDecode(addr[len(addrPrefix):])
	if err != nil {
		return common.Address{}, errors.Wrap(ErrInvalidAddress, err.Error())
	}
	if ver != addrVer {
		return common.Address{}, errors.Wrapf(ErrInvalidAddress, "wrong version: expected(%d), got(%d)", addrVer, ver)
	}
	if len(bz) != common.AddressLength {
		return common.Address{}, errors.Wrapf(ErrInvalidAddress, "wrong length: expected(%d), got(%d)", common.AddressLength, len(bz))
	}
	return common.BytesToAddress(bz), nil
}
