package node

import (
	"bytes"
	"hash"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark-crypto/accumulator/merkletree"
	"github.com/kysee/ztx/types"
	"github.com/kysee/ztx/utils"
	"github.com/rs/zerolog"
)

// Ledger keeps, in memory, the private commitments in a merkle tree, the
// unspent public outputs, and the set of nullifiers already revealed.
// It does not verify proofs or balances.
type Ledger struct {
	mu sync.RWMutex

	newTreeHasher func() hash.Hash
	digest        utils.Digest
	depth         int
	logger        zerolog.Logger

	commitmentsTree *merkletree.Tree
	commitmentsRoot []byte
	commitments     []types.PrivateCommitment
	commitmentIdx   map[types.PrivateCommitment]uint64

	publicOutputs map[types.OutputID]*types.Output
	nullifiers    map[types.PrivateNullifier]struct{}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		newTreeHasher: utils.DefaultHasher,
		digest:        utils.DefaultDigest,
		depth:         DefaultMerkleDepth,
		logger:        utils.NewLogger(zerolog.InfoLevel),
		commitmentIdx: make(map[types.PrivateCommitment]uint64),
		publicOutputs: make(map[types.OutputID]*types.Output),
		nullifiers:    make(map[types.PrivateNullifier]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.depth < 0 || l.depth > maxMerkleDepth {
		l.logger.Warn().Int("depth", l.depth).Int("default", DefaultMerkleDepth).Msg("merkle depth out of range, using default")
		l.depth = DefaultMerkleDepth
	}
	l.commitmentsTree = merkletree.New(l.newTreeHasher())
	return l
}

// AddCommitment appends a private commitment to the tree and returns its leaf index.
func (l *Ledger) AddCommitment(commitment types.PrivateCommitment) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkCapacity(1); err != nil {
		return 0, err
	}
	return l.addCommitment(commitment), nil
}

func (l *Ledger) addCommitment(commitment types.PrivateCommitment) uint64 {
	idx := uint64(len(l.commitments))
	l.commitments = append(l.commitments, commitment)
	if _, ok := l.commitmentIdx[commitment]; !ok {
		l.commitmentIdx[commitment] = idx
	}
	l.commitmentsTree.Push(commitment[:])
	l.commitmentsRoot = l.commitmentsTree.Root()
	return idx
}

func (l *Ledger) checkCapacity(n int) error {
	if l.depth < maxMerkleDepth && uint64(len(l.commitments)+n) > uint64(1)<<l.depth {
		return errors.Wrapf(ErrTreeFull, "depth(%d)", l.depth)
	}
	return nil
}

// ApplyTransaction records the spends and creations of tx. Either all of tx is
// applied or none of it: a nullifier revealed before, or twice within tx, rejects it.
func (l *Ledger) ApplyTransaction(tx *types.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := tx.Validate(); err != nil {
		return err
	}

	seenPrivate := make(map[types.PrivateNullifier]struct{})
	seenPublic := make(map[types.OutputID]struct{})
	for _, in := range tx.Inputs {
		switch nf := in.(type) {
		case types.PrivateNullifier:
			if _, ok := l.nullifiers[nf]; ok {
				return errors.Wrapf(ErrNullifierSpent, "%s", nf)
			}
			if _, ok := seenPrivate[nf]; ok {
				return errors.Wrapf(ErrNullifierSpent, "%s repeated in transaction", nf)
			}
			seenPrivate[nf] = struct{}{}
		case types.PublicNullifier:
			if _, ok := l.publicOutputs[nf.OutputID]; !ok {
				return errors.Wrapf(ErrOutputNotFound, "%s", nf.OutputID)
			}
			if _, ok := seenPublic[nf.OutputID]; ok {
				return errors.Wrapf(ErrNullifierSpent, "%s repeated in transaction", nf.OutputID)
			}
			seenPublic[nf.OutputID] = struct{}{}
		default:
			return errors.Wrapf(types.ErrUnsupportedNullifierType, "%T", in)
		}
	}

	private := 0
	for _, out := range tx.Outputs {
		switch out.(type) {
		case types.PrivateCommitment:
			private++
		case *types.PublicCommitment:
		default:
			return errors.Wrapf(types.ErrUnsupportedCommitmentType, "%T", out)
		}
	}
	if err := l.checkCapacity(private); err != nil {
		return err
	}

	// elements are known to encode from here on
	txHash := tx.Hash(l.digest)

	for nf := range seenPrivate {
		l.nullifiers[nf] = struct{}{}
	}
	for id := range seenPublic {
		delete(l.publicOutputs, id)
	}
	for i, out := range tx.Outputs {
		switch c := out.(type) {
		case types.PrivateCommitment:
			l.addCommitment(c)
		case *types.PublicCommitment:
			l.publicOutputs[types.NewOutputID(txHash, uint32(i))] = c.Output
		}
	}

	l.logger.Debug().
		Str("txhash", txHash.Hex()).
		Int("inputs", len(tx.Inputs)).
		Int("outputs", len(tx.Outputs)).
		Int("commitments", len(l.commitments)).
		Msg("applied transaction")
	return nil
}

// ApplyTransactionBytes decodes an encoded transaction and applies it.
func (l *Ledger) ApplyTransactionBytes(bz []byte) (*types.Transaction, error) {
	tx, n, err := types.TransactionFromBytes(bz)
	if err != nil {
		return nil, err
	}
	if n != len(bz) {
		return nil, errors.Wrapf(types.ErrFailedToDecode, "%d trailing bytes", len(bz)-n)
	}
	if err := l.ApplyTransaction(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (l *Ledger) HasNullifier(nullifier types.PrivateNullifier) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.nullifiers[nullifier]
	return ok
}

// PublicOutput returns the unspent public output named by id.
func (l *Ledger) PublicOutput(id types.OutputID) (*types.Output, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	o, ok := l.publicOutputs[id]
	return o, ok
}

func (l *Ledger) GetCommitment(idx uint64) (types.PrivateCommitment, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if idx >= uint64(len(l.commitments)) {
		return types.PrivateCommitment{}, false
	}
	return l.commitments[idx], true
}

func (l *Ledger) NumCommitments() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.commitments)
}

func (l *Ledger) Root() []byte {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return bytes.Clone(l.commitmentsRoot)
}

func (l *Ledger) Depth() int {
	return l.depth
}
