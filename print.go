package aabbtree

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Print renders the tree to w as an ASCII directory-tree listing, with
// internal nodes shown by their merged box and leaves by their particle
// id. The output is informational only and not part of the compatibility
// surface: its exact formatting may change between versions.
func (t *Tree[F]) Print(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	logrus.WithFields(logrus.Fields{
		"nodes":  t.arena.count,
		"leaves": t.leaves.size(),
		"height": t.getHeightLocked(),
	}).Info("aabbtree: printing tree")

	if t.root == nilNode {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return t.printNode(w, t.root, "", true)
}

func (t *Tree[F]) printNode(w io.Writer, i nodeIndex, prefix string, last bool) error {
	connector := "├── "
	if last {
		connector = "└── "
	}

	n := t.arena.get(i)
	if n.isLeaf() {
		if _, err := fmt.Fprintf(w, "%s%sparticle %d %v\n", prefix, connector, n.particle, boxBounds(n.box)); err != nil {
			return err
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s%snode h=%d %v\n", prefix, connector, n.height, boxBounds(n.box)); err != nil {
		return err
	}

	childPrefix := prefix + "│   "
	if last {
		childPrefix = prefix + "    "
	}
	if err := t.printNode(w, n.left, childPrefix, false); err != nil {
		return err
	}
	return t.printNode(w, n.right, childPrefix, true)
}

func boxBounds[F constraints.Float](b Box[F]) string {
	return fmt.Sprintf("%v..%v", b.Lower, b.Upper)
}
