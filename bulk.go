package aabbtree

// Rebuild reconstructs the tree from its current leaf set using a greedy
// agglomerative pairing: repeatedly merge the two nodes whose combined
// box has the smallest surface area, until a single root remains. It is
// O(n^3) in the number of leaves and intended for offline cleanup after
// many incremental mutations, not per-frame use. Rebuild calls Validate
// before returning.
func (t *Tree[F]) Rebuild() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	working := make([]nodeIndex, 0, t.leaves.size())
	for i := range t.arena.nodes {
		idx := nodeIndex(i)
		n := &t.arena.nodes[idx]
		if n.isFree() {
			continue
		}
		if n.isLeaf() {
			n.parent = nilNode
			working = append(working, idx)
		} else {
			t.arena.free(idx)
		}
	}

	if len(working) == 0 {
		t.root = nilNode
		return t.validateLocked()
	}

	for len(working) > 1 {
		bestI, bestJ := 0, 1
		bestArea := merge(t.arena.get(working[0]).box, t.arena.get(working[1]).box).SurfaceArea()
		for i := 0; i < len(working); i++ {
			for j := i + 1; j < len(working); j++ {
				area := merge(t.arena.get(working[i]).box, t.arena.get(working[j]).box).SurfaceArea()
				if area < bestArea {
					bestArea = area
					bestI, bestJ = i, j
				}
			}
		}

		left, right := working[bestI], working[bestJ]
		leftBox, leftHeight := t.arena.get(left).box, t.arena.get(left).height
		rightBox, rightHeight := t.arena.get(right).box, t.arena.get(right).height

		parent := t.arena.allocate()
		p := t.arena.get(parent)
		p.left = left
		p.right = right
		p.box = merge(leftBox, rightBox)
		p.height = 1 + maxHeight(leftHeight, rightHeight)
		p.parent = nilNode
		t.arena.get(left).parent = parent
		t.arena.get(right).parent = parent

		last := len(working) - 1
		working[bestJ] = working[last]
		working[bestI] = parent
		working = working[:last]
	}

	t.root = working[0]
	return t.validateLocked()
}
