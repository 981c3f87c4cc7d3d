package merkle

import "errors"

var (
	// ErrEmptyLeaves is returned by BuildTree and MerkleRoot when asked to
	// build a tree over zero leaves; there is no bitcoin-style convention
	// for an empty tree's root.
	ErrEmptyLeaves = errors.New("merkle: no leaves")

	// ErrIndexOutOfRange is returned when a branch is requested for a leaf
	// index beyond the tree's leaf count.
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
)
