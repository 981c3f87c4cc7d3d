package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/notary-mesh/xcproof"
	"github.com/notary-mesh/xcproof/merkle"
)

// errNotWired marks ChainContext methods this diagnostic backend does not
// implement. CalculateProofRoot only needs the hub-side scan surface; the
// local-chain methods exist on a full node integration, not here.
var errNotWired = errors.New("xcproof: operation not wired in the RPC diagnostic backend")

// rpcChainContext adapts a komodod-style JSON-RPC 1.0 endpoint to
// xcproof.ChainContext, wiring exactly the hub-side surface
// CalculateProofRoot scans with: tip height, height-to-hash resolution, and
// per-block notarisation lookup.
type rpcChainContext struct {
	url      string
	user     string
	password string
	client   *http.Client
}

func newRPCChainContext(url, user, password string, timeout time.Duration) *rpcChainContext {
	return &rpcChainContext{
		url:      url,
		user:     user,
		password: password,
		client:   &http.Client{Timeout: timeout},
	}
}

type rpcRequest struct {
	Jsonrpc string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *rpcChainContext) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	body, err := json.Marshal(rpcRequest{Jsonrpc: "1.0", ID: "xcproof", Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("marshalling %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if decoded.Error != nil {
		return fmt.Errorf("%s: %w", method, decoded.Error)
	}
	if result != nil {
		if err := json.Unmarshal(decoded.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}
	return nil
}

func (c *rpcChainContext) Self() string { return "KMD" }

// SymbolAuthority treats every symbol as a single shared authority, the
// common single-federation deployment. A node integration would map
// symbols through its notary-set configuration instead.
func (c *rpcChainContext) SymbolAuthority(symbol string) uint32 { return 0 }

func (c *rpcChainContext) HubTipHeight(ctx context.Context) (int64, error) {
	var height int64
	if err := c.call(ctx, "getblockcount", nil, &height); err != nil {
		return 0, err
	}
	return height, nil
}

func (c *rpcChainContext) HubBlockHash(ctx context.Context, height int64) (merkle.H256, error) {
	var hexHash string
	if err := c.call(ctx, "getblockhash", []interface{}{height}, &hexHash); err != nil {
		return merkle.H256{}, err
	}
	return merkle.HashFromHex(hexHash)
}

// rpcNotarisation is the JSON shape of one entry returned by
// getnotarisationsforblock.
type rpcNotarisation struct {
	Txid     string `json:"txid"`
	Symbol   string `json:"symbol"`
	MoM      string `json:"MoM"`
	MoMDepth uint32 `json:"MoMDepth"`
	Height   uint32 `json:"height"`
	CCId     uint32 `json:"ccid"`
	TxHash   string `json:"txhash"`
}

func (c *rpcChainContext) GetBlockNotarisations(ctx context.Context, hubBlockHash merkle.H256) (xcproof.NotarisationsInBlock, error) {
	var raw []rpcNotarisation
	if err := c.call(ctx, "getnotarisationsforblock", []interface{}{hubBlockHash.Hex()}, &raw); err != nil {
		return nil, err
	}

	notas := make(xcproof.NotarisationsInBlock, 0, len(raw))
	for _, r := range raw {
		txid, err := merkle.HashFromHex(r.Txid)
		if err != nil {
			return nil, fmt.Errorf("notarisation txid: %w", err)
		}
		mom, err := merkle.HashFromHex(r.MoM)
		if err != nil {
			return nil, fmt.Errorf("notarisation MoM: %w", err)
		}
		txHash, err := merkle.HashFromHex(r.TxHash)
		if err != nil {
			return nil, fmt.Errorf("notarisation txhash: %w", err)
		}
		notas = append(notas, xcproof.Notarisation{
			Txid: txid,
			Payload: xcproof.NotarisationPayload{
				Symbol:   r.Symbol,
				MoM:      mom,
				MoMDepth: r.MoMDepth,
				Height:   r.Height,
				CCId:     r.CCId,
				TxHash:   txHash,
			},
		})
	}
	return notas, nil
}

func (c *rpcChainContext) GetBackNotarisation(ctx context.Context, kmdNotarisationTxid merkle.H256) (xcproof.Notarisation, error) {
	return xcproof.Notarisation{}, errNotWired
}

func (c *rpcChainContext) GetTxConfirmed(ctx context.Context, txid merkle.H256) (xcproof.Transaction, xcproof.BlockIndex, error) {
	return nil, nil, errNotWired
}

func (c *rpcChainContext) GetTransaction(ctx context.Context, txid merkle.H256) (xcproof.Transaction, *merkle.H256, error) {
	return nil, nil, errNotWired
}

func (c *rpcChainContext) ReadBlock(ctx context.Context, idx xcproof.BlockIndex) (xcproof.Block, error) {
	return nil, errNotWired
}

func (c *rpcChainContext) BlockMerkleRootAt(ctx context.Context, height int64) (merkle.H256, error) {
	return merkle.H256{}, errNotWired
}
