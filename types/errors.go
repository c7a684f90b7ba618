package types

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrFailedToDecode is returned when a buffer is shorter than the shape being parsed requires.
	ErrFailedToDecode = errors.New("failed to decode")

	// ErrUnsupportedCommitmentType is returned when a commitment tag is neither private nor public.
	ErrUnsupportedCommitmentType = errors.New("unsupported commitment type")

	// ErrUnsupportedNullifierType is returned when a nullifier tag is neither private nor public.
	ErrUnsupportedNullifierType = errors.New("unsupported nullifier type")

	// ErrTooManyElements is returned when a transaction list cannot be counted in 16 bits.
	ErrTooManyElements = errors.New("too many elements")

	// ErrInvalidElement is returned when a transaction carries a nil input or output.
	ErrInvalidElement = errors.New("invalid element")

	ErrInvalidAddress = errors.New("invalid address")
)

func shortBuffer(what string, need, got int) error {
	return errors.Wrapf(ErrFailedToDecode, "%s: need(%d), got(%d)", what, need, got)
}
