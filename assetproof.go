package xcproof

import (
	"context"
	"fmt"

	"github.com/notary-mesh/xcproof/merkle"
)

// GetAssetchainProof derives a proof from a confirmed local transaction up
// to the MoM of the notarisation that covers its block.
//
// It requires the transaction to be confirmed locally and a subsequent
// own-chain notarisation to have landed on the hub covering the
// transaction's block height.
func GetAssetchainProof(ctx context.Context, cc ChainContext, txid merkle.H256, opts ...ScanOption) (TxProof, error) {
	_, blockIdx, err := cc.GetTxConfirmed(ctx, txid)
	if err != nil {
		return TxProof{}, classifyUnconfirmed(ctx, cc, txid, err)
	}
	hTx := blockIdx.Height()

	_, nota, found, err := ScanFrom(ctx, cc, hTx, func(n Notarisation) bool {
		return n.Payload.Symbol == cc.Self() && int64(n.Payload.Height) >= hTx
	}, opts...)
	if err != nil {
		return TxProof{}, err
	}
	if !found {
		return TxProof{}, ErrNotYetConfirmed
	}

	// The scan above relies on a weak ordering assumption. Verify the
	// located notarisation actually covers hTx before trusting it
	// further.
	lowestCovered := int64(nota.Payload.Height) - int64(nota.Payload.MoMDepth) + 1
	if hTx < lowestCovered || hTx > int64(nota.Payload.Height) {
		return TxProof{}, ErrCoverageMismatch
	}

	iBlock := uint32(int64(nota.Payload.Height) - hTx)

	leaves := make([]merkle.H256, nota.Payload.MoMDepth)
	for i := uint32(0); i < nota.Payload.MoMDepth; i++ {
		h := int64(nota.Payload.Height) - int64(i)
		root, err := cc.BlockMerkleRootAt(ctx, h)
		if err != nil {
			return TxProof{}, fmt.Errorf("xcproof: asset block %d merkle root: %w", h, err)
		}
		leaves[i] = root
	}

	momTree, err := merkle.BuildTree(leaves)
	if err != nil {
		return TxProof{}, fmt.Errorf("xcproof: building MoM tree: %w", err)
	}
	momBranch, err := momTree.Branch(iBlock)
	if err != nil {
		return TxProof{}, fmt.Errorf("xcproof: extracting MoM branch: %w", err)
	}

	block, err := cc.ReadBlock(ctx, blockIdx)
	if err != nil {
		return TxProof{}, err
	}

	if momBranch.Exec(block.MerkleRoot()) != nota.Payload.MoM {
		return TxProof{}, ErrMoMMismatch
	}

	txIndex, ok := block.TxIndex(txid)
	if !ok {
		return TxProof{}, ErrTxNotInBlock
	}

	txBranch, err := block.MerkleBranch(txIndex)
	if err != nil {
		return TxProof{}, fmt.Errorf("xcproof: extracting tx branch: %w", err)
	}
	if txBranch.Exec(txid) != block.MerkleRoot() {
		return TxProof{}, ErrTxBranchMismatch
	}

	combined := txBranch.Concat(momBranch)
	if combined.Exec(txid) != nota.Payload.MoM {
		return TxProof{}, ErrProofCheckFailed
	}

	return TxProof{NotarisationTxid: nota.Payload.TxHash, Branch: combined}, nil
}

// classifyUnconfirmed turns a GetTxConfirmed failure into the right error
// kind by falling back to GetTransaction, which distinguishes an unknown
// txid from one still sitting in the mempool.
func classifyUnconfirmed(ctx context.Context, cc ChainContext, txid merkle.H256, confirmedErr error) error {
	_, blockHash, err := cc.GetTransaction(ctx, txid)
	if err != nil {
		return fmt.Errorf("xcproof: %w: %v", ErrNotFound, err)
	}
	if blockHash == nil {
		return ErrUnconfirmed
	}
	// Known, confirmed per GetTransaction, but GetTxConfirmed still
	// failed: the chain index is inconsistent.
	return fmt.Errorf("xcproof: %w: %v", ErrNotFound, confirmedErr)
}
