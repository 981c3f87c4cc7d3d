package xcproof

import (
	"context"
	"fmt"

	"github.com/notary-mesh/xcproof/merkle"
)

// GetCrossChainProof splices an assetchain-level sourceProof into the
// target chain's MoMoM, yielding a proof that verifies against the target's
// back-notarisation.
func GetCrossChainProof(ctx context.Context, cc ChainContext, sourceTxid merkle.H256, targetSymbol string, targetCCId uint32, sourceProof TxProof, opts ...ScanOption) (TxProof, error) {
	mom := sourceProof.Branch.Exec(sourceTxid)

	_, blockIdx, err := cc.GetTxConfirmed(ctx, sourceProof.NotarisationTxid)
	if err != nil {
		return TxProof{}, fmt.Errorf("xcproof: %w: %v", ErrSourceNotarisationMissing, err)
	}
	h0 := blockIdx.Height()

	h1, _, found, err := ScanFrom(ctx, cc, h0, symbolPredicate(targetSymbol), opts...)
	if err != nil {
		return TxProof{}, err
	}
	if !found {
		return TxProof{}, ErrNoTargetNotarisationCovering
	}

	momom, moms, targetNotarisationTxid, err := CalculateProofRoot(ctx, cc, targetSymbol, targetCCId, h1, opts...)
	if err != nil {
		return TxProof{}, err
	}

	nIndex := -1
	for i, m := range moms {
		if m == mom {
			nIndex = i
			break
		}
	}
	if nIndex < 0 {
		return TxProof{}, ErrMoMNotInMoMoM
	}

	momomTree, err := merkle.BuildTree(moms)
	if err != nil {
		return TxProof{}, fmt.Errorf("xcproof: building MoMoM tree: %w", err)
	}
	momBranch, err := momomTree.Branch(uint32(nIndex))
	if err != nil {
		return TxProof{}, fmt.Errorf("xcproof: extracting MoMoM branch: %w", err)
	}

	newBranch := sourceProof.Branch.Concat(momBranch)
	if newBranch.Exec(sourceTxid) != momom {
		return TxProof{}, ErrProofCheckFailed
	}

	return TxProof{NotarisationTxid: targetNotarisationTxid, Branch: newBranch}, nil
}
