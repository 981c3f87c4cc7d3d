// Command xcproof is a diagnostic CLI: given an RPC endpoint for a node
// implementing the xcproof.ChainContext primitives, it invokes
// CalculateProofRoot and prints the resulting MoMoM, its constituent MoMs,
// and the closing notarisation's txid.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/notary-mesh/xcproof"
	"github.com/notary-mesh/xcproof/logging"
)

type config struct {
	rpcURL      string
	rpcUser     string
	rpcPassword string
	symbol      string
	ccID        uint32
	kmdHeight   int64
	timeout     time.Duration
	verbose     bool
}

func parseConfig(args []string) (*config, error) {
	f := flag.NewFlagSet("xcproof", flag.ContinueOnError)
	rpcURL := f.String("rpc-url", "http://127.0.0.1:7771", "JSON-RPC endpoint of the hub node")
	rpcUser := f.String("rpc-user", "", "JSON-RPC username")
	rpcPassword := f.String("rpc-password", "", "JSON-RPC password")
	symbol := f.String("symbol", "", "target chain symbol")
	ccID := f.Uint32("cc-id", 0, "target cross-chain id")
	kmdHeight := f.Int64("kmd-height", -1, "hub height to scan backwards from")
	timeout := f.Duration("timeout", 30*time.Second, "RPC request timeout")
	verbose := f.BoolP("verbose", "v", false, "enable debug logging")

	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if *symbol == "" {
		return nil, fmt.Errorf("xcproof: --symbol is required")
	}
	if *kmdHeight < 0 {
		return nil, fmt.Errorf("xcproof: --kmd-height is required")
	}
	return &config{
		rpcURL:      *rpcURL,
		rpcUser:     *rpcUser,
		rpcPassword: *rpcPassword,
		symbol:      *symbol,
		ccID:        *ccID,
		kmdHeight:   *kmdHeight,
		timeout:     *timeout,
		verbose:     *verbose,
	}, nil
}

type proofRootReport struct {
	MoMoM             string   `json:"momom"`
	MoMs              []string `json:"moms"`
	NotarisationTxid  string   `json:"notarisation_txid"`
	TargetSymbol      string   `json:"target_symbol"`
	TargetCrossChain  uint32   `json:"target_cc_id"`
	ScanStartedHeight int64    `json:"scan_started_height"`
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	var opts []xcproof.ScanOption
	if cfg.verbose {
		logger, syncLog, err := logging.NewDevelopment()
		if err != nil {
			return fmt.Errorf("xcproof: building logger: %w", err)
		}
		defer syncLog() //nolint:errcheck
		opts = append(opts, xcproof.WithLogger(logger))
	}

	cc := newRPCChainContext(cfg.rpcURL, cfg.rpcUser, cfg.rpcPassword, cfg.timeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	momom, moms, destTxid, err := xcproof.CalculateProofRoot(ctx, cc, cfg.symbol, cfg.ccID, cfg.kmdHeight, opts...)
	if err != nil {
		return fmt.Errorf("xcproof: calculating proof root: %w", err)
	}

	momStrs := make([]string, len(moms))
	for i, m := range moms {
		momStrs[i] = m.Hex()
	}
	report := proofRootReport{
		MoMoM:             momom.Hex(),
		MoMs:              momStrs,
		NotarisationTxid:  destTxid.Hex(),
		TargetSymbol:      cfg.symbol,
		TargetCrossChain:  cfg.ccID,
		ScanStartedHeight: cfg.kmdHeight,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
