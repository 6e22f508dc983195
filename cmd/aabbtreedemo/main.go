// Command aabbtreedemo builds a small dynamic AABB tree, exercises
// insert/update/query against it, and prints the resulting structure.
// It is demonstration scaffolding, not a compatibility surface.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/arborist/aabbtree"
)

func main() {
	tree, err := aabbtree.New[float64](2, 0.1, 16, true)
	if err != nil {
		logrus.WithError(err).Fatal("aabbtreedemo: failed to construct tree")
	}

	particles := []struct {
		id           uint64
		lower, upper [2]float64
	}{
		{1, [2]float64{0, 0}, [2]float64{1, 1}},
		{2, [2]float64{0.5, 0.5}, [2]float64{1.5, 1.5}},
		{3, [2]float64{5, 5}, [2]float64{6, 6}},
		{4, [2]float64{5.5, 5}, [2]float64{6.5, 6}},
	}

	for _, p := range particles {
		if err := tree.Insert(p.id, p.lower[:], p.upper[:]); err != nil {
			logrus.WithError(err).WithField("id", p.id).Fatal("aabbtreedemo: insert failed")
		}
	}

	moved, err := tree.Update(1, []float64{0.2, 0.2}, []float64{1.2, 1.2}, false)
	if err != nil {
		logrus.WithError(err).Fatal("aabbtreedemo: update failed")
	}
	logrus.WithField("structurally_modified", moved).Info("aabbtreedemo: updated particle 1")

	hits, err := tree.QueryParticle(1)
	if err != nil {
		logrus.WithError(err).Fatal("aabbtreedemo: query failed")
	}
	fmt.Printf("particles overlapping 1: %v\n", hits)

	if err := tree.Validate(); err != nil {
		logrus.WithError(err).Fatal("aabbtreedemo: validation failed")
	}

	if err := tree.Print(os.Stdout); err != nil {
		logrus.WithError(err).Fatal("aabbtreedemo: print failed")
	}
}
