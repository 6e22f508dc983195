package aabbtree

import "fmt"

// Update moves particle id to the new tight bounds [lower, upper]. If
// alwaysReinsert is false and the particle's existing fattened box
// already contains the new tight box, the motion is absorbed by the
// skin: the call is a no-op and returns false. Otherwise the leaf is
// spliced out, its box replaced by the fattened new bounds, and it is
// re-inserted via the same SAH descent used by Insert; the call returns
// true. The leaf's node is reused, so it keeps its place in the leaf
// index.
func (t *Tree[F]) Update(id uint64, lower, upper []F, alwaysReinsert bool) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaf, ok := t.leaves.get(id)
	if !ok {
		return false, fmt.Errorf("%w: id=%d", ErrUnknownParticle, id)
	}
	if len(lower) != t.dims || len(upper) != t.dims {
		return false, fmt.Errorf("%w: want dims=%d got lower=%d upper=%d", ErrDimensionMismatch, t.dims, len(lower), len(upper))
	}
	tight, err := NewBox(lower, upper)
	if err != nil {
		return false, err
	}

	n := t.arena.get(leaf)
	if !alwaysReinsert && n.box.Contains(tight) {
		return false, nil
	}

	t.detachLeaf(leaf)

	n = t.arena.get(leaf)
	n.box = tight.fatten(t.skin)
	n.parent = nilNode

	t.insertLeaf(leaf)
	return true, nil
}
