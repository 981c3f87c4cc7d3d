package xcproof

import "errors"

// Error kinds produced by the core. All are non-retriable: callers decide
// whether and how to react. None of them are returned wrapped in a way that
// defeats errors.Is: every call site that adds context uses fmt.Errorf
// with %w.
var (
	// ErrNotFound indicates a referenced transaction or notarisation is
	// not present in the chain index or notarisation database.
	ErrNotFound = errors.New("xcproof: not found")

	// ErrUnconfirmed indicates a referenced transaction exists only in
	// the mempool.
	ErrUnconfirmed = errors.New("xcproof: transaction unconfirmed")

	// ErrNotYetConfirmed indicates no notarisation yet covers the
	// referenced block height.
	ErrNotYetConfirmed = errors.New("xcproof: not yet confirmed by a notarisation")

	// ErrPruned indicates the requested block's data has been pruned
	// locally.
	ErrPruned = errors.New("xcproof: block data pruned")

	// ErrMalformed indicates import or burn transaction marshalling
	// failed.
	ErrMalformed = errors.New("xcproof: malformed transaction")

	// ErrNoTargetNotarisationCovering indicates the forward scan from a
	// source notarisation found no enclosing target-chain notarisation
	// within SCAN_LIMIT.
	ErrNoTargetNotarisationCovering = errors.New("xcproof: no covering target notarisation found")

	// ErrNoMoMs indicates CalculateProofRoot could not determine a
	// MoMoM range: either cc_id < 2, kmd_height out of range, fewer
	// than two own-symbol notarisations were found within the scan
	// window, or two were found with no eligible foreign MoM between
	// them.
	ErrNoMoMs = errors.New("xcproof: could not determine MoMoM range")

	// ErrMoMNotInMoMoM indicates the source MoM was not present among
	// the MoMs collected for the target notarisation interval.
	ErrMoMNotInMoMoM = errors.New("xcproof: source MoM not present in MoMoM set")

	// ErrSourceNotarisationMissing indicates the source proof's
	// notarisation txid does not resolve to a confirmed hub
	// transaction.
	ErrSourceNotarisationMissing = errors.New("xcproof: source notarisation transaction not found on hub")

	// ErrMoMMismatch indicates the block->MoM branch did not recompute
	// to the notarisation's committed MoM.
	ErrMoMMismatch = errors.New("xcproof: block merkle root does not reach MoM")

	// ErrTxNotInBlock indicates the transaction id was not found among
	// its claimed block's transactions.
	ErrTxNotInBlock = errors.New("xcproof: transaction not found in block")

	// ErrTxBranchMismatch indicates the tx->block branch did not
	// recompute to the block's Merkle root.
	ErrTxBranchMismatch = errors.New("xcproof: transaction merkle branch does not reach block root")

	// ErrProofCheckFailed indicates the fully concatenated branch did
	// not recompute to the expected commitment (MoM or MoMoM). This
	// always indicates data corruption or a violated ordering invariant;
	// it is never expected in normal operation.
	ErrProofCheckFailed = errors.New("xcproof: constructed proof failed verification")

	// ErrCoverageMismatch indicates the notarisation located by the
	// weak-ordering scan in GetAssetchainProof does not actually cover
	// the transaction's block height once checked.
	ErrCoverageMismatch = errors.New("xcproof: located notarisation does not cover the transaction's block height")
)
