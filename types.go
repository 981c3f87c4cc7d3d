package xcproof

import (
	"context"

	"github.com/notary-mesh/xcproof/merkle"
)

// ScanLimitBlocks bounds every scan performed by this package: at most this
// many hub blocks are inspected per ScanFrom or CalculateProofRoot
// invocation, so a pathological or stalled chain cannot cause unbounded
// work.
const ScanLimitBlocks = 1440

// NotarisationPayload is the committed, parsed body of a notarisation
// transaction.
type NotarisationPayload struct {
	// Symbol is the short ASCII chain identifier the notarisation is for.
	// Wire form is null-terminated, at most 64 bytes.
	Symbol string

	// MoM is the Merkle-of-Merkles committing to a contiguous range of
	// the named chain's block Merkle roots.
	MoM merkle.H256

	// MoMDepth is the number of block roots committed by MoM.
	MoMDepth uint32

	// Height is the highest block height included in MoM.
	Height uint32

	// CCId is the cross-chain routing tag. Values below 2 are reserved
	// and disable proof-root construction.
	CCId uint32

	// TxHash is the source-chain notarisation txid, used for
	// back-notarisations.
	TxHash merkle.H256
}

// Notarisation pairs a notarisation (or back-notarisation) transaction id
// with its parsed payload.
type Notarisation struct {
	Txid    merkle.H256
	Payload NotarisationPayload
}

// NotarisationsInBlock is the ordered sequence of notarisations appearing
// in a single hub block, in transaction order. A block with none is
// represented by a nil or empty slice.
type NotarisationsInBlock []Notarisation

// TxProof is a notarisation txid paired with the Merkle branch that proves
// some transaction reaches that notarisation's committed root (the MoM, for
// an assetchain-level proof, or the MoMoM, for a cross-chain proof).
type TxProof struct {
	NotarisationTxid merkle.H256
	Branch           merkle.MerkleBranch
}

// Transaction is the minimal view this package needs of a confirmed
// transaction: its own id. Marshalling, inputs, and outputs are entirely
// delegated to the caller's transaction model.
type Transaction interface {
	Hash() merkle.H256
}

// BlockIndex is an opaque handle identifying a block on whichever chain it
// was resolved against; it carries just enough information (its height) for
// ReadBlock and the scanners to do their job.
type BlockIndex interface {
	Height() int64
}

// Block is the minimal view this package needs of a full block: its
// height, its transaction Merkle root, the position of a given txid within
// it, and the ability to extract that transaction's Merkle branch. Building
// this branch is delegated to the caller's chain implementation; Block is
// the seam through which the core consumes it, and GetAssetchainProof checks
// the branch against MerkleRoot before using it.
type Block interface {
	Height() int64
	MerkleRoot() merkle.H256
	TxIndex(txid merkle.H256) (int, bool)
	MerkleBranch(txIndex int) (merkle.MerkleBranch, error)
}

// ChainContext is the capability bundle every core operation takes instead
// of reaching for ambient globals. A single ChainContext value serves both
// roles a naive implementation would otherwise split across global state:
//
//   - hub-side access (HubTipHeight, HubBlockHash, GetBlockNotarisations,
//     GetBackNotarisation) is used by operations that scan the hub chain:
//     CalculateProofRoot, GetCrossChainProof, CompleteImport, the forward
//     scan in GetAssetchainProof, and GetNextBackNotarisation, which also
//     resolves a hub notarisation txid to its back-notarisation.
//   - local-chain access (GetTxConfirmed, GetTransaction, ReadBlock,
//     BlockMerkleRootAt) is used against whichever chain the caller is
//     actually running on: an assetchain node resolves its own
//     transactions and block roots through these, while a hub node
//     resolves notarisation and back-notarisation transactions through the
//     same methods pointed at itself.
//
// Implementations are expected to provide a consistent, point-in-time
// snapshot of the relevant chain for the duration of a single operation; a
// reorg or block disconnection concurrent with a scan should surface as a
// clean error from one of these methods, never a torn read.
type ChainContext interface {
	// Self returns the local assetchain's symbol. On a hub-only node this
	// is typically the hub's own symbol.
	Self() string

	// SymbolAuthority maps a chain symbol to its signing-authority
	// identifier; only notarisations sharing authority may be aggregated
	// together. Pure and external.
	SymbolAuthority(symbol string) uint32

	// HubTipHeight returns the current height of the hub chain.
	HubTipHeight(ctx context.Context) (int64, error)

	// HubBlockHash returns the hash of the hub block at height.
	HubBlockHash(ctx context.Context, height int64) (merkle.H256, error)

	// GetBlockNotarisations returns the notarisations carried by the hub
	// block with the given hash, in block transaction order. Returns an
	// empty slice, not an error, when the block carries none.
	GetBlockNotarisations(ctx context.Context, hubBlockHash merkle.H256) (NotarisationsInBlock, error)

	// GetBackNotarisation resolves a hub notarisation's txid to the
	// assetchain back-notarisation that commits to its aggregate. Fails
	// with ErrNotFound if none exists (yet).
	GetBackNotarisation(ctx context.Context, kmdNotarisationTxid merkle.H256) (Notarisation, error)

	// GetTxConfirmed resolves txid to its transaction and confirming
	// block index. Fails if txid is unconfirmed or unknown (the caller
	// falls back to GetTransaction to distinguish the two).
	GetTxConfirmed(ctx context.Context, txid merkle.H256) (Transaction, BlockIndex, error)

	// GetTransaction resolves txid to its transaction and, if confirmed,
	// the hash of its containing block. A nil block hash with a nil
	// error means txid is known but still in the mempool. A non-nil
	// error means txid is entirely unknown.
	GetTransaction(ctx context.Context, txid merkle.H256) (Transaction, *merkle.H256, error)

	// ReadBlock loads the full block identified by idx. Fails with
	// ErrPruned if the block's transaction data is no longer retained
	// locally.
	ReadBlock(ctx context.Context, idx BlockIndex) (Block, error)

	// BlockMerkleRootAt returns the transaction Merkle root of the block
	// at the given height on whichever chain this ChainContext's local
	// methods resolve against.
	BlockMerkleRootAt(ctx context.Context, height int64) (merkle.H256, error)
}
