package xcproof

import (
	"context"

	"github.com/google/uuid"
)

// Predicate reports whether a notarisation is the one a scan is looking
// for.
type Predicate func(Notarisation) bool

// ScanFrom walks hub blocks at heights startHeight, startHeight+1, ... up to
// min(startHeight+ScanLimitBlocks-1, hub tip), so at most ScanLimitBlocks
// blocks, returning the first
// notarisation, in block-transaction order, for which predicate holds,
// together with the hub height at which it was found.
//
// found is false, with a nil error, when the window is exhausted without a
// match; this is an expected outcome, never treated as a failure.
func ScanFrom(ctx context.Context, cc ChainContext, startHeight int64, predicate Predicate, opts ...ScanOption) (height int64, nota Notarisation, found bool, err error) {
	o := resolveScanOptions(opts)
	scanID := uuid.New()

	tip, err := cc.HubTipHeight(ctx)
	if err != nil {
		return 0, Notarisation{}, false, err
	}

	limit := startHeight + ScanLimitBlocks
	if limit > tip+1 {
		limit = tip + 1
	}

	o.Logger.Debugw("xcproof: scan starting",
		"scan_id", scanID, "start_height", startHeight, "limit", limit, "tip", tip)

	for h := startHeight; h < limit; h++ {
		blockHash, err := cc.HubBlockHash(ctx, h)
		if err != nil {
			return 0, Notarisation{}, false, err
		}

		notas, err := cc.GetBlockNotarisations(ctx, blockHash)
		if err != nil {
			return 0, Notarisation{}, false, err
		}
		if len(notas) == 0 {
			continue
		}

		for _, n := range notas {
			if predicate(n) {
				o.Logger.Debugw("xcproof: scan matched",
					"scan_id", scanID, "height", h, "notarisation_txid", n.Txid.Hex())
				return h, n, true, nil
			}
		}
	}

	o.Logger.Debugw("xcproof: scan exhausted without match", "scan_id", scanID)
	return 0, Notarisation{}, false, nil
}

// symbolPredicate builds a Predicate matching notarisations of a single
// chain symbol. Shared by the several callers in this package that only
// need to filter on symbol.
func symbolPredicate(symbol string) Predicate {
	return func(n Notarisation) bool {
		return n.Payload.Symbol == symbol
	}
}
