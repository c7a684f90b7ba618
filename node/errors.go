package node

import "github.com/cockroachdb/errors"

var (
	ErrNullifierSpent     = errors.New("nullifier already exists")
	ErrOutputNotFound     = errors.New("output not found")
	ErrCommitmentNotFound = errors.New("commitment not found")
	ErrTreeFull           = errors.New("commitment tree is full")
)
