package xcproof

import (
	"context"
	"fmt"

	"github.com/notary-mesh/xcproof/merkle"
)

// ImportCoin is the external collaborator that knows how to parse and
// rebuild import and burn transactions. All marshalling detail is
// delegated to it; CompleteImport is pure orchestration over ChainContext
// and ImportCoin.
type ImportCoin interface {
	// UnmarshalImportTx parses an import transaction into its carried
	// assetchain-level proof, its embedded burn transaction, and its
	// payouts.
	UnmarshalImportTx(importTx []byte) (proof TxProof, burnTx []byte, payouts []byte, err error)

	// UnmarshalBurnTx parses a burn transaction into the target chain
	// symbol, target cross-chain id, and the committed payouts hash.
	UnmarshalBurnTx(burnTx []byte) (targetSymbol string, targetCCId uint32, payoutsHash merkle.H256, err error)

	// BurnTxHash returns the txid of a burn transaction.
	BurnTxHash(burnTx []byte) merkle.H256

	// MakeImportCoinTransaction rebuilds an import transaction carrying
	// the given (now cross-chain) proof, burn transaction, and payouts.
	MakeImportCoinTransaction(proof TxProof, burnTx []byte, payouts []byte) ([]byte, error)
}

// CompleteImport extends an import transaction's assetchain-level proof
// into a cross-chain proof against the target chain's MoMoM, returning the
// rebuilt import transaction.
func CompleteImport(ctx context.Context, cc ChainContext, ic ImportCoin, importTx []byte, opts ...ScanOption) ([]byte, error) {
	proof, burnTx, payouts, err := ic.UnmarshalImportTx(importTx)
	if err != nil {
		return nil, fmt.Errorf("xcproof: %w: %v", ErrMalformed, err)
	}

	targetSymbol, targetCCId, _, err := ic.UnmarshalBurnTx(burnTx)
	if err != nil {
		return nil, fmt.Errorf("xcproof: %w: %v", ErrMalformed, err)
	}

	extended, err := GetCrossChainProof(ctx, cc, ic.BurnTxHash(burnTx), targetSymbol, targetCCId, proof, opts...)
	if err != nil {
		return nil, err
	}

	out, err := ic.MakeImportCoinTransaction(extended, burnTx, payouts)
	if err != nil {
		return nil, fmt.Errorf("xcproof: rebuilding import transaction: %w", err)
	}
	return out, nil
}
