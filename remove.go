package aabbtree

import "fmt"

// Remove deletes particle id from the tree. It fails with
// ErrUnknownParticle if id is not currently indexed.
func (t *Tree[F]) Remove(id uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaf, ok := t.leaves.get(id)
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrUnknownParticle, id)
	}
	if err := t.leaves.remove(id); err != nil {
		return err
	}
	t.removeLeaf(leaf)
	return nil
}

// removeLeaf detaches leaf from the tree and frees both it and its
// former parent.
func (t *Tree[F]) removeLeaf(leaf nodeIndex) {
	t.detachLeaf(leaf)
	t.arena.free(leaf)
}

// detachLeaf splices leaf out of the tree, promoting its sibling into
// its parent's former slot and re-running the refit walk from the
// grandparent, but leaves leaf itself allocated so the caller can reuse
// its node (see update.go). Its former parent is always freed. Neither
// detachLeaf nor anything it calls invokes arena.allocate, so no pointer
// obtained from the arena here can be stranded by a grow.
func (t *Tree[F]) detachLeaf(leaf nodeIndex) {
	if leaf == t.root {
		t.root = nilNode
		return
	}

	parent := t.arena.get(leaf).parent
	p := t.arena.get(parent)
	var sibling nodeIndex
	if p.left == leaf {
		sibling = p.right
	} else {
		sibling = p.left
	}
	grandparent := p.parent

	if grandparent != nilNode {
		g := t.arena.get(grandparent)
		if g.left == parent {
			g.left = sibling
		} else {
			g.right = sibling
		}
		t.arena.get(sibling).parent = grandparent
		t.arena.free(parent)
		t.refitWalk(grandparent)
	} else {
		t.root = sibling
		t.arena.get(sibling).parent = nilNode
		t.arena.free(parent)
	}
}

// RemoveAll empties the tree, discarding every particle. The arena is
// rebuilt at its original initial capacity so that a subsequent sequence
// of insertions allocates nodes in exactly the order a fresh tree would.
func (t *Tree[F]) RemoveAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.arena = newArena[F](t.dims, t.initialCapacity)
	t.leaves.reset()
	t.root = nilNode
}
