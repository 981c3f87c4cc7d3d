// Package xcproof implements the cross-chain proof construction core of a
// federated notarisation system: assembling a Merkle proof for a
// transaction on a source assetchain, and extending it through the hub's
// aggregated MoMoM commitment so it verifies against a back-notarisation on
// a target assetchain.
//
// The package exposes six operations:
//
//	ScanFrom                - forward notarisation scanner
//	CalculateProofRoot      - backward MoMoM/proof-root builder
//	GetAssetchainProof      - assetchain transaction-to-MoM proof builder
//	GetCrossChainProof      - splices an assetchain proof into a target MoMoM
//	CompleteImport          - rebuilds an import transaction with an extended proof
//	GetNextBackNotarisation - finds the back-notarisation succeeding a given one
//
// All six take a ChainContext, a capability bundle standing in for the
// active chain index and the notarisation database; none of them hold any
// state of their own. See ChainContext for the collaborator contract.
package xcproof
