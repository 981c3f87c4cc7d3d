// Package merkle implements the bitcoin-style double-SHA-256 Merkle tree
// and the authentication-path ("branch") algebra used throughout xcproof to
// build and splice proofs across the notarisation, MoM, and MoMoM levels.
//
// It intentionally does not implement an append-only Merkle Mountain Range;
// the trees built here are always rebuilt in full from a known, small leaf
// set (a MoM's block roots, or a MoMoM's collected MoMs), matching the
// fixed-range commitments described by the notarisation payload.
package merkle
