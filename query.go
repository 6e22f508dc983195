package aabbtree

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Query returns every indexed particle whose fattened box overlaps the
// probe box, honoring the tree's touchIsOverlap policy. An empty tree
// returns an empty, non-nil slice without inspecting the root.
func (t *Tree[F]) Query(box Box[F]) []uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.queryLocked(box, 0, false)
}

// QueryParticle returns every other indexed particle whose fattened box
// overlaps id's own fattened box; id itself is never included.
func (t *Tree[F]) QueryParticle(id uint64) ([]uint64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	leaf, ok := t.leaves.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrUnknownParticle, id)
	}
	box := t.arena.get(leaf).box
	return t.queryLocked(box, id, true), nil
}

// queryLocked runs the iterative stack-based overlap traversal. When
// excludeSelf is true, the particle self is left out of the result. The
// caller must hold at least the read lock.
func (t *Tree[F]) queryLocked(box Box[F], self uint64, excludeSelf bool) []uint64 {
	result := make([]uint64, 0)
	if t.root == nilNode {
		return result
	}

	stack := arraystack.New()
	stack.Push(t.root)

	for !stack.Empty() {
		v, _ := stack.Pop()
		i := v.(nodeIndex)
		if i == nilNode {
			continue
		}

		n := t.arena.get(i)
		if !n.box.Overlaps(box, t.touchIsOverlap) {
			continue
		}

		if n.isLeaf() {
			if !excludeSelf || n.particle != self {
				result = append(result, n.particle)
			}
			continue
		}

		stack.Push(n.left)
		stack.Push(n.right)
	}

	return result
}
