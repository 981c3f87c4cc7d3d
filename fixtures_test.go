package xcproof

import (
	"context"
	"fmt"

	"github.com/notary-mesh/xcproof/merkle"
)

// fakeTx is the minimal Transaction implementation used by fixtures.
type fakeTx struct {
	hash merkle.H256
}

func (t fakeTx) Hash() merkle.H256 { return t.hash }

// fakeBlockIndex is the minimal BlockIndex implementation used by fixtures.
type fakeBlockIndex struct {
	height int64
}

func (b fakeBlockIndex) Height() int64 { return b.height }

// fakeBlock is a real (small) bitcoin-style block: it builds its own tx
// Merkle tree from the supplied txids, so MerkleBranch/MerkleRoot are
// genuinely exercised rather than stubbed.
type fakeBlock struct {
	height int64
	txids  []merkle.H256
	tree   *merkle.Tree
}

func newFakeBlock(height int64, txids []merkle.H256) *fakeBlock {
	tree, err := merkle.BuildTree(txids)
	if err != nil {
		panic(err)
	}
	return &fakeBlock{height: height, txids: txids, tree: tree}
}

func (b *fakeBlock) Height() int64           { return b.height }
func (b *fakeBlock) MerkleRoot() merkle.H256 { return b.tree.Root() }
func (b *fakeBlock) TxIndex(txid merkle.H256) (int, bool) {
	for i, t := range b.txids {
		if t == txid {
			return i, true
		}
	}
	return 0, false
}
func (b *fakeBlock) MerkleBranch(txIndex int) (merkle.MerkleBranch, error) {
	return b.tree.Branch(uint32(txIndex))
}

// fakeChain is an in-memory ChainContext used by the tests in this
// package. It models a single logical chain used both as "hub" and as
// "self" (tests that need genuinely separate hub/assetchain state build two
// fakeChain values and route operations explicitly).
type fakeChain struct {
	self       string
	authority  map[string]uint32
	tip        int64
	blockHash  map[int64]merkle.H256 // hub height -> block hash
	notas      map[merkle.H256]NotarisationsInBlock
	backNotas  map[merkle.H256]Notarisation
	confirmed  map[merkle.H256]fakeBlockIndex // txid -> block index (used by GetTxConfirmed)
	txByID     map[merkle.H256]fakeTx
	mempool    map[merkle.H256]bool
	blocks     map[int64]*fakeBlock // local chain blocks, by height
	assetRoots map[int64]merkle.H256
}

func newFakeChain(self string) *fakeChain {
	return &fakeChain{
		self:       self,
		authority:  map[string]uint32{},
		blockHash:  map[int64]merkle.H256{},
		notas:      map[merkle.H256]NotarisationsInBlock{},
		backNotas:  map[merkle.H256]Notarisation{},
		confirmed:  map[merkle.H256]fakeBlockIndex{},
		txByID:     map[merkle.H256]fakeTx{},
		mempool:    map[merkle.H256]bool{},
		blocks:     map[int64]*fakeBlock{},
		assetRoots: map[int64]merkle.H256{},
	}
}

func (c *fakeChain) Self() string { return c.self }

func (c *fakeChain) SymbolAuthority(symbol string) uint32 {
	return c.authority[symbol]
}

func (c *fakeChain) HubTipHeight(ctx context.Context) (int64, error) {
	return c.tip, nil
}

func (c *fakeChain) HubBlockHash(ctx context.Context, height int64) (merkle.H256, error) {
	h, ok := c.blockHash[height]
	if !ok {
		return merkle.H256{}, fmt.Errorf("no block at height %d", height)
	}
	return h, nil
}

func (c *fakeChain) GetBlockNotarisations(ctx context.Context, hubBlockHash merkle.H256) (NotarisationsInBlock, error) {
	return c.notas[hubBlockHash], nil
}

func (c *fakeChain) GetBackNotarisation(ctx context.Context, kmdNotarisationTxid merkle.H256) (Notarisation, error) {
	bn, ok := c.backNotas[kmdNotarisationTxid]
	if !ok {
		return Notarisation{}, ErrNotFound
	}
	return bn, nil
}

func (c *fakeChain) GetTxConfirmed(ctx context.Context, txid merkle.H256) (Transaction, BlockIndex, error) {
	idx, ok := c.confirmed[txid]
	if !ok {
		return nil, nil, ErrNotFound
	}
	return c.txByID[txid], idx, nil
}

func (c *fakeChain) GetTransaction(ctx context.Context, txid merkle.H256) (Transaction, *merkle.H256, error) {
	if idx, ok := c.confirmed[txid]; ok {
		blk := c.blocks[idx.height]
		root := blk.MerkleRoot()
		return c.txByID[txid], &root, nil
	}
	if c.mempool[txid] {
		return c.txByID[txid], nil, nil
	}
	return nil, nil, ErrNotFound
}

func (c *fakeChain) ReadBlock(ctx context.Context, idx BlockIndex) (Block, error) {
	blk, ok := c.blocks[idx.Height()]
	if !ok {
		return nil, ErrPruned
	}
	return blk, nil
}

func (c *fakeChain) BlockMerkleRootAt(ctx context.Context, height int64) (merkle.H256, error) {
	root, ok := c.assetRoots[height]
	if !ok {
		return merkle.H256{}, fmt.Errorf("no asset root at height %d", height)
	}
	return root, nil
}

// helpers for building fixture hashes deterministically.
func h(tag string) merkle.H256 {
	var out merkle.H256
	copy(out[:], tag)
	return out
}

func hn(tag string, n int) merkle.H256 {
	return h(fmt.Sprintf("%s-%d", tag, n))
}
