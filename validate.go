package aabbtree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate asserts every invariant from the data model: structural
// linkage, bit-identical box/height agreement between internal nodes and
// their children, free-list accounting, and leaf-index/arena agreement.
// It is a debug-mode check, not part of steady-state operation.
func (t *Tree[F]) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.validateLocked()
}

func (t *Tree[F]) validateLocked() error {
	leafCount := 0
	if err := t.validateStructure(t.root, nilNode, &leafCount); err != nil {
		return t.logValidationFailure(err)
	}
	if _, err := t.validateMetrics(t.root); err != nil {
		return t.logValidationFailure(err)
	}

	if leafCount != t.leaves.size() {
		err := fmt.Errorf("%w: leaf index has %d entries but arena reaches %d leaves", ErrInvariantViolation, t.leaves.size(), leafCount)
		return t.logValidationFailure(err)
	}

	freeCount := t.arena.freeCount()
	if int(t.arena.count)+freeCount != t.arena.capacity() {
		err := fmt.Errorf("%w: count=%d freeCount=%d capacity=%d", ErrInvariantViolation, t.arena.count, freeCount, t.arena.capacity())
		return t.logValidationFailure(err)
	}

	if t.getHeightLocked() != t.computeHeight(t.root) {
		err := fmt.Errorf("%w: stored height %d disagrees with computed height %d", ErrInvariantViolation, t.getHeightLocked(), t.computeHeight(t.root))
		return t.logValidationFailure(err)
	}

	return nil
}

// logValidationFailure logs an invariant violation at Error level before
// it is returned to the caller: assertion failures indicate an
// implementation bug, not a caller mistake, and are worth surfacing in
// logs even when the caller goes on to handle the error.
func (t *Tree[F]) logValidationFailure(err error) error {
	logrus.WithError(err).WithFields(logrus.Fields{
		"nodes":  t.arena.count,
		"leaves": t.leaves.size(),
	}).Error("aabbtree: validation failed")
	return err
}

// validateStructure recurses from i asserting parent linkage and
// leaf-sentinel consistency, and counts leaves into *leafCount.
func (t *Tree[F]) validateStructure(i, wantParent nodeIndex, leafCount *int) error {
	if i == nilNode {
		return nil
	}
	n := t.arena.get(i)
	if n.isFree() {
		return fmt.Errorf("%w: node %d reachable from tree but marked free", ErrInvariantViolation, i)
	}
	if n.parent != wantParent {
		return fmt.Errorf("%w: node %d has parent %d, want %d", ErrInvariantViolation, i, n.parent, wantParent)
	}

	if n.isLeaf() {
		if n.right != nilNode {
			return fmt.Errorf("%w: leaf %d has non-nil right child", ErrInvariantViolation, i)
		}
		if n.height != 0 {
			return fmt.Errorf("%w: leaf %d has height %d, want 0", ErrInvariantViolation, i, n.height)
		}
		if idx, ok := t.leaves.get(n.particle); !ok || idx != i {
			return fmt.Errorf("%w: leaf %d for particle %d not indexed consistently", ErrInvariantViolation, i, n.particle)
		}
		*leafCount++
		return nil
	}

	if n.left == nilNode || n.right == nilNode {
		return fmt.Errorf("%w: internal node %d missing a child", ErrInvariantViolation, i)
	}
	if err := t.validateStructure(n.left, i, leafCount); err != nil {
		return err
	}
	return t.validateStructure(n.right, i, leafCount)
}

// validateMetrics recurses from i, asserting that every internal node's
// box equals the bit-identical merge of its children's boxes and that
// its height equals 1 + max(child heights). It returns i's height for
// the caller's own check.
func (t *Tree[F]) validateMetrics(i nodeIndex) (int32, error) {
	if i == nilNode {
		return -1, nil
	}
	n := t.arena.get(i)
	if n.isLeaf() {
		return 0, nil
	}

	lh, err := t.validateMetrics(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := t.validateMetrics(n.right)
	if err != nil {
		return 0, err
	}

	wantHeight := 1 + maxHeight(lh, rh)
	if n.height != wantHeight {
		return 0, fmt.Errorf("%w: node %d has height %d, want %d", ErrInvariantViolation, i, n.height, wantHeight)
	}

	wantBox := merge(t.arena.get(n.left).box, t.arena.get(n.right).box)
	if !equalBits(n.box, wantBox) {
		return 0, fmt.Errorf("%w: node %d box does not bit-match merge of children", ErrInvariantViolation, i)
	}

	if balance := rh - lh; balance > 1 || balance < -1 {
		return 0, fmt.Errorf("%w: node %d unbalanced by %d", ErrInvariantViolation, i, balance)
	}

	return n.height, nil
}

// computeHeight recomputes i's height from scratch by walking its
// children, independent of the cached height field; used only to
// cross-check getHeight().
func (t *Tree[F]) computeHeight(i nodeIndex) int {
	if i == nilNode {
		return 0
	}
	n := t.arena.get(i)
	if n.isLeaf() {
		return 0
	}
	lh := t.computeHeight(n.left)
	rh := t.computeHeight(n.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}
