package xcproof

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/notary-mesh/xcproof/merkle"
)

// CalculateProofRoot walks the hub chain backwards from kmdHeight,
// inspecting up to ScanLimitBlocks blocks, to derive the MoMoM root for
// symbol's next back-notarisation interval, the MoMs that compose it, and
// the txid of the symbol notarisation that closes the interval.
//
// It fails with ErrNoMoMs when targetCCId < 2, when kmdHeight is outside
// [0, hub tip], when fewer than two symbol notarisations are found
// within the scan window, or when two are found but no eligible foreign
// MoM lies between them. In every case there is no determinate MoMoM to
// return.
func CalculateProofRoot(ctx context.Context, cc ChainContext, symbol string, targetCCId uint32, kmdHeight int64, opts ...ScanOption) (momom merkle.H256, moms []merkle.H256, destTxid merkle.H256, err error) {
	o := resolveScanOptions(opts)
	scanID := uuid.New()

	if targetCCId < 2 {
		return merkle.H256{}, nil, merkle.H256{}, ErrNoMoMs
	}

	tip, err := cc.HubTipHeight(ctx)
	if err != nil {
		return merkle.H256{}, nil, merkle.H256{}, err
	}
	if kmdHeight < 0 || kmdHeight > tip {
		return merkle.H256{}, nil, merkle.H256{}, ErrNoMoMs
	}

	authority := cc.SymbolAuthority(symbol)

	ownSeen := 0
	var collected []merkle.H256

	for i := int64(0); i < ScanLimitBlocks; i++ {
		h := kmdHeight - i
		if h < 0 {
			break
		}

		blockHash, err := cc.HubBlockHash(ctx, h)
		if err != nil {
			return merkle.H256{}, nil, merkle.H256{}, err
		}
		notas, err := cc.GetBlockNotarisations(ctx, blockHash)
		if err != nil {
			return merkle.H256{}, nil, merkle.H256{}, err
		}
		if len(notas) == 0 {
			continue
		}

		// First pass: at most one own-symbol notarisation advances
		// ownSeen per block, counting only the first in transaction
		// order.
		for _, n := range notas {
			if n.Payload.Symbol != symbol {
				continue
			}
			ownSeen++
			if ownSeen == 1 {
				destTxid = n.Txid
			}
			o.Logger.Debugw("xcproof: own-symbol notarisation observed",
				"scan_id", scanID, "height", h, "own_seen", ownSeen)
			break
		}
		if ownSeen == 2 {
			break
		}

		// Second pass: only while the interval is open (own_seen==1,
		// inclusive of the block that opened it). Same-symbol
		// notarisations never contribute a MoM here, even if they'd
		// otherwise pass the authority/ccId filter.
		if ownSeen == 1 {
			for _, n := range notas {
				if n.Payload.Symbol == symbol {
					continue
				}
				if cc.SymbolAuthority(n.Payload.Symbol) != authority {
					continue
				}
				if n.Payload.CCId != targetCCId {
					continue
				}
				collected = append(collected, n.Payload.MoM)
				o.Logger.Debugw("xcproof: mom collected",
					"scan_id", scanID, "height", h, "mom", n.Payload.MoM.Hex())
			}
		}
	}

	if ownSeen != 2 {
		return merkle.H256{}, nil, merkle.H256{}, ErrNoMoMs
	}

	if len(collected) == 0 {
		// Two own-symbol notarisations were found but no foreign
		// notarisation landed in between: a determinate, empty
		// interval. There is no well-defined bitcoin-style root over
		// zero leaves, so this is reported the same way as
		// insufficient context.
		return merkle.H256{}, nil, merkle.H256{}, ErrNoMoMs
	}

	root, err := merkle.MerkleRoot(collected)
	if err != nil {
		return merkle.H256{}, nil, merkle.H256{}, fmt.Errorf("xcproof: bagging MoMoM: %w", err)
	}
	o.Logger.Debugw("xcproof: momom computed",
		"scan_id", scanID, "height", kmdHeight, "momom", root.Hex(), "moms", len(collected))

	return root, collected, destTxid, nil
}
