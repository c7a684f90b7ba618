// Package types defines the wire format of ledger transactions: outputs,
// commitments, nullifiers and the transactions carrying them.
package types

// ByteLengther reports the exact number of bytes Bytes produces,
// without performing the encoding.
type ByteLengther interface {
	ByteLength() int
}

// Encodable is implemented by every value with a canonical wire form.
type Encodable interface {
	ByteLengther
	Bytes() []byte
}

// DecodeFunc parses a value from the prefix of bz and reports how many bytes it consumed.
// Bytes after the consumed prefix are left for the caller.
type DecodeFunc[T any] func(bz []byte) (T, int, error)
