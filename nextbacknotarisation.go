package xcproof

import (
	"context"
	"fmt"

	"github.com/notary-mesh/xcproof/merkle"
)

// GetNextBackNotarisation finds the back-notarisation succeeding the one
// committed at kmdNotarisationTxid.
//
// It resolves kmdNotarisationTxid's back-notarisation, finds that
// back-notarisation's own confirming height on the local assetchain, then
// scans forward for the next notarisation of the local chain's symbol.
func GetNextBackNotarisation(ctx context.Context, cc ChainContext, kmdNotarisationTxid merkle.H256, opts ...ScanOption) (Notarisation, error) {
	bn, err := cc.GetBackNotarisation(ctx, kmdNotarisationTxid)
	if err != nil {
		return Notarisation{}, fmt.Errorf("xcproof: %w: %v", ErrNotFound, err)
	}

	_, blockIdx, err := cc.GetTxConfirmed(ctx, bn.Txid)
	if err != nil {
		return Notarisation{}, fmt.Errorf("xcproof: %w: back-notarisation %s not confirmed locally: %v", ErrNotFound, bn.Txid.Hex(), err)
	}

	_, nota, found, err := ScanFrom(ctx, cc, blockIdx.Height()+1, symbolPredicate(cc.Self()), opts...)
	if err != nil {
		return Notarisation{}, err
	}
	if !found {
		return Notarisation{}, ErrNotFound
	}

	return nota, nil
}
