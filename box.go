package aabbtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Box is an axis-aligned box in d-dimensional space, d >= 2. Lower and
// Upper hold one bound per axis, with the invariant Lower[i] <= Upper[i].
// SurfaceArea and Centre are cached on construction and on every mutation
// (Merge) so that repeated SAH cost evaluations don't recompute them.
type Box[F constraints.Float] struct {
	Lower, Upper []F

	area   F
	centre []F
}

// newBox returns an all-zero box of dimension d.
func newBox[F constraints.Float](d int) Box[F] {
	b := Box[F]{
		Lower:  make([]F, d),
		Upper:  make([]F, d),
		centre: make([]F, d),
	}
	return b
}

// NewBox constructs a box from explicit bounds. It fails with
// ErrDimensionMismatch if lower and upper disagree in length or have fewer
// than two axes, and with ErrInvertedBounds if any axis has
// lower[i] > upper[i].
//
// The dimension check compares the lengths of the two arguments directly
// (not against a freshly constructed, still-empty receiver) — the source
// this tree is descended from checked the wrong operand here, making the
// check vacuous; that bug is not reproduced.
func NewBox[F constraints.Float](lower, upper []F) (Box[F], error) {
	if len(lower) != len(upper) || len(lower) < 2 {
		return Box[F]{}, fmt.Errorf("%w: len(lower)=%d len(upper)=%d", ErrDimensionMismatch, len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return Box[F]{}, fmt.Errorf("%w: axis %d lower=%v upper=%v", ErrInvertedBounds, i, lower[i], upper[i])
		}
	}
	b := Box[F]{
		Lower: append([]F(nil), lower...),
		Upper: append([]F(nil), upper...),
	}
	b.refresh()
	return b, nil
}

// dims reports the number of axes of the box.
func (b Box[F]) dims() int {
	return len(b.Lower)
}

// refresh recomputes the cached surface area and centre from Lower/Upper.
func (b *Box[F]) refresh() {
	b.area = b.computeSurfaceArea()
	b.centre = make([]F, b.dims())
	for i := range b.Lower {
		b.centre[i] = (b.Lower[i] + b.Upper[i]) / 2
	}
}

// computeSurfaceArea is the "perimeter" generalization used as the SAH
// cost function: 2 * sum over axes d1 of the product, over every other
// axis d2, of the box's extent along d2. In 2D this reduces to 2*(w+h);
// in 3D to the surface area of the prism.
func (b Box[F]) computeSurfaceArea() F {
	d := b.dims()
	var total F
	for d1 := 0; d1 < d; d1++ {
		prod := F(1)
		for d2 := 0; d2 < d; d2++ {
			if d2 == d1 {
				continue
			}
			prod *= b.Upper[d2] - b.Lower[d2]
		}
		total += prod
	}
	return 2 * total
}

// SurfaceArea returns the cached surface area.
func (b Box[F]) SurfaceArea() F {
	return b.area
}

// Centre returns the cached per-axis centre point.
func (b Box[F]) Centre() []F {
	return b.centre
}

// merge sets dst to the component-wise union of a and b, refreshing its
// cached area and centre. The componentwise min/max is computed in
// ascending axis order with no reassociation, so that repeated merges of
// the same two boxes are bit-identical — the validator depends on this.
func merge[F constraints.Float](a, b Box[F]) Box[F] {
	d := a.dims()
	dst := Box[F]{Lower: make([]F, d), Upper: make([]F, d)}
	for i := 0; i < d; i++ {
		dst.Lower[i] = min(a.Lower[i], b.Lower[i])
		dst.Upper[i] = max(a.Upper[i], b.Upper[i])
	}
	dst.refresh()
	return dst
}

// equalBits reports whether a and b have bit-identical bounds; used only
// by the validator, which must compare merged boxes exactly rather than
// with a tolerance.
func equalBits[F constraints.Float](a, b Box[F]) bool {
	if a.dims() != b.dims() {
		return false
	}
	for i := range a.Lower {
		if a.Lower[i] != b.Lower[i] || a.Upper[i] != b.Upper[i] {
			return false
		}
	}
	return true
}

// Contains reports whether inner lies entirely within b on every axis.
func (b Box[F]) Contains(inner Box[F]) bool {
	for i := range b.Lower {
		if inner.Lower[i] < b.Lower[i] || inner.Upper[i] > b.Upper[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and other intersect on every axis. When
// touchIsOverlap is false the intervals must intersect strictly; when
// true, touching intervals also count as overlapping.
func (b Box[F]) Overlaps(other Box[F], touchIsOverlap bool) bool {
	for i := range b.Lower {
		if touchIsOverlap {
			if !(other.Upper[i] >= b.Lower[i] && other.Lower[i] <= b.Upper[i]) {
				return false
			}
		} else {
			if !(other.Upper[i] > b.Lower[i] && other.Lower[i] < b.Upper[i]) {
				return false
			}
		}
	}
	return true
}

// fatten returns a copy of b expanded symmetrically on every axis by
// skin * size[i], where size[i] is measured on b before fattening.
func (b Box[F]) fatten(skin F) Box[F] {
	d := b.dims()
	out := Box[F]{Lower: make([]F, d), Upper: make([]F, d)}
	for i := 0; i < d; i++ {
		size := b.Upper[i] - b.Lower[i]
		out.Lower[i] = b.Lower[i] - skin*size
		out.Upper[i] = b.Upper[i] + skin*size
	}
	out.refresh()
	return out
}
