package merkle

// MerkleBranch is an authentication path: the index of the leaf within its
// tree (as a bitfield, LSB first, one bit per level) and the sibling hash
// at each level needed to recompute the root from the leaf.
type MerkleBranch struct {
	Index    uint32
	Siblings []H256
}

// Exec recomputes the root that leaf authenticates against under this
// branch. Bit i of Index (LSB first) tells us whether Siblings[i] sits to
// the left (bit=1) or right (bit=0) of the running hash at level i.
func (b MerkleBranch) Exec(leaf H256) H256 {
	cur := leaf
	for i, sib := range b.Siblings {
		if (b.Index>>uint(i))&1 == 1 {
			cur = combine(sib, cur)
		} else {
			cur = combine(cur, sib)
		}
	}
	return cur
}

// Concat splices two branches end to end: a.Concat(b) produces a branch
// whose Exec(leaf) == b.Exec(a.Exec(leaf)). That is, a authenticates a leaf
// up to some intermediate root, and b continues authenticating that
// intermediate root (as a leaf of a further tree) up to the final root.
//
// The combined index packs b's bits above a's: (b.Index << len(a.Siblings)) | a.Index.
// This is the concatenation law used to splice a transaction's block branch
// into a MoM tree and a MoM branch into a MoMoM tree.
func (a MerkleBranch) Concat(b MerkleBranch) MerkleBranch {
	siblings := make([]H256, 0, len(a.Siblings)+len(b.Siblings))
	siblings = append(siblings, a.Siblings...)
	siblings = append(siblings, b.Siblings...)
	return MerkleBranch{
		Index:    (b.Index << uint(len(a.Siblings))) | a.Index,
		Siblings: siblings,
	}
}
