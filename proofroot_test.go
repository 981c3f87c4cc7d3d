package xcproof

import (
	"context"
	"testing"

	"github.com/notary-mesh/xcproof/merkle"
	"github.com/stretchr/testify/require"
)

// buildProofRootFixture lays out, on a single hub chain, descending from
// kmdHeight: nA1 (symbol A, own-notarisation opening the interval) at
// kmdHeight itself, then b1, b2, b3 (symbol B, cc_id 2) at the three heights
// below it, then nA0 (symbol A, closing the interval) below those, then an
// excluded b0 below that. A and B share authority 1.
func buildProofRootFixture(t *testing.T, kmdHeight int64) (cc *fakeChain, nA1Txid merkle.H256, b1, b2, b3 merkle.H256) {
	t.Helper()
	cc = newFakeChain("hub")
	cc.authority["A"] = 1
	cc.authority["B"] = 1
	cc.tip = kmdHeight + 10

	for height := int64(0); height <= cc.tip; height++ {
		cc.blockHash[height] = hn("blk", int(height))
	}

	nA1Txid = h("nA1")
	cc.notas[cc.blockHash[kmdHeight]] = NotarisationsInBlock{
		{Txid: nA1Txid, Payload: NotarisationPayload{Symbol: "A", Height: uint32(kmdHeight)}},
	}

	b1 = h("b1-mom")
	cc.notas[cc.blockHash[kmdHeight-1]] = NotarisationsInBlock{
		{Txid: h("b1"), Payload: NotarisationPayload{Symbol: "B", CCId: 2, MoM: b1}},
	}
	b2 = h("b2-mom")
	cc.notas[cc.blockHash[kmdHeight-2]] = NotarisationsInBlock{
		{Txid: h("b2"), Payload: NotarisationPayload{Symbol: "B", CCId: 2, MoM: b2}},
	}
	b3 = h("b3-mom")
	cc.notas[cc.blockHash[kmdHeight-3]] = NotarisationsInBlock{
		{Txid: h("b3"), Payload: NotarisationPayload{Symbol: "B", CCId: 2, MoM: b3}},
	}

	cc.notas[cc.blockHash[kmdHeight-4]] = NotarisationsInBlock{
		{Txid: h("nA0"), Payload: NotarisationPayload{Symbol: "A", Height: uint32(kmdHeight - 4)}},
	}

	// Excluded: below nA0, never visited by the backward scan.
	cc.notas[cc.blockHash[kmdHeight-5]] = NotarisationsInBlock{
		{Txid: h("b0"), Payload: NotarisationPayload{Symbol: "B", CCId: 2, MoM: h("b0-mom")}},
	}

	return cc, nA1Txid, b1, b2, b3
}

func TestCalculateProofRootHappyPath(t *testing.T) {
	cc, nA1Txid, b1, b2, b3 := buildProofRootFixture(t, 50)

	momom, moms, destTxid, err := CalculateProofRoot(context.Background(), cc, "A", 2, 50)
	require.NoError(t, err)
	require.Equal(t, []merkle.H256{b1, b2, b3}, moms)
	require.Equal(t, nA1Txid, destTxid)

	wantRoot, err := merkle.MerkleRoot([]merkle.H256{b1, b2, b3})
	require.NoError(t, err)
	require.Equal(t, wantRoot, momom)
}

func TestCalculateProofRootInsufficientContext(t *testing.T) {
	cc := newFakeChain("hub")
	cc.tip = 20
	for height := int64(0); height <= cc.tip; height++ {
		cc.blockHash[height] = hn("blk", int(height))
	}
	// Only one own-symbol notarisation within the window.
	cc.notas[cc.blockHash[10]] = NotarisationsInBlock{
		{Txid: h("nA1"), Payload: NotarisationPayload{Symbol: "A"}},
	}

	_, _, _, err := CalculateProofRoot(context.Background(), cc, "A", 2, 10)
	require.ErrorIs(t, err, ErrNoMoMs)
}

func TestCalculateProofRootRejectsLowCCId(t *testing.T) {
	cc, _, _, _, _ := buildProofRootFixture(t, 50)

	_, _, _, err := CalculateProofRoot(context.Background(), cc, "A", 1, 50)
	require.ErrorIs(t, err, ErrNoMoMs)

	_, _, _, err = CalculateProofRoot(context.Background(), cc, "A", 0, 50)
	require.ErrorIs(t, err, ErrNoMoMs)
}

func TestCalculateProofRootRejectsOutOfRangeHeight(t *testing.T) {
	cc, _, _, _, _ := buildProofRootFixture(t, 50)

	_, _, _, err := CalculateProofRoot(context.Background(), cc, "A", 2, -1)
	require.ErrorIs(t, err, ErrNoMoMs)

	_, _, _, err = CalculateProofRoot(context.Background(), cc, "A", 2, cc.tip+1)
	require.ErrorIs(t, err, ErrNoMoMs)
}

func TestCalculateProofRootEmptyIntervalIsNoMoMs(t *testing.T) {
	cc := newFakeChain("hub")
	cc.tip = 20
	for height := int64(0); height <= cc.tip; height++ {
		cc.blockHash[height] = hn("blk", int(height))
	}
	cc.notas[cc.blockHash[10]] = NotarisationsInBlock{
		{Txid: h("nA1"), Payload: NotarisationPayload{Symbol: "A"}},
	}
	cc.notas[cc.blockHash[9]] = NotarisationsInBlock{
		{Txid: h("nA0"), Payload: NotarisationPayload{Symbol: "A"}},
	}

	_, _, _, err := CalculateProofRoot(context.Background(), cc, "A", 2, 10)
	require.ErrorIs(t, err, ErrNoMoMs)
}

func TestCalculateProofRootExcludesForeignAuthorityMismatch(t *testing.T) {
	cc, _, b1, b2, b3 := buildProofRootFixture(t, 50)
	// A third-party chain "C" shares cc_id 2 but a different authority,
	// and lands in b1's block, ahead of b1; it must not be collected.
	cc.authority["C"] = 2
	existing := cc.notas[cc.blockHash[49]]
	cc.notas[cc.blockHash[49]] = append(NotarisationsInBlock{
		{Txid: h("c1"), Payload: NotarisationPayload{Symbol: "C", CCId: 2, MoM: h("c1-mom")}},
	}, existing...)

	_, moms, _, err := CalculateProofRoot(context.Background(), cc, "A", 2, 50)
	require.NoError(t, err)
	require.Equal(t, []merkle.H256{b1, b2, b3}, moms)
}
