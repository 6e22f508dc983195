package aabbtree

import (
	"golang.org/x/exp/constraints"
)

// nodeIndex addresses a slot in the arena. nilNode is the reserved
// sentinel "no node" value: the all-ones bit pattern of the index type,
// which for a signed int32 is -1. It is never dereferenced.
type nodeIndex int32

const nilNode nodeIndex = -1

// node is a single arena slot. A slot is a leaf iff left == nilNode; it
// is free iff height < 0. Free slots reuse the next field to chain onto
// the arena's free list.
type node[F constraints.Float] struct {
	box                 Box[F]
	parent, left, right nodeIndex
	next                nodeIndex
	height              int32
	particle            uint64
}

func (n *node[F]) isLeaf() bool {
	return n.left == nilNode
}

func (n *node[F]) isFree() bool {
	return n.height < 0
}

// arena is a fixed-capacity, doubling vector of node records plus a
// singly-linked free list threaded through node.next.
type arena[F constraints.Float] struct {
	dims     int
	nodes    []node[F]
	freeList nodeIndex
	count    int32
}

// newArena builds an arena with initialCapacity slots, all free and
// chained 0 -> 1 -> ... -> initialCapacity-1 -> nilNode.
func newArena[F constraints.Float](dims, initialCapacity int) *arena[F] {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	a := &arena[F]{
		dims:  dims,
		nodes: make([]node[F], initialCapacity),
	}
	a.chain(0, initialCapacity)
	a.freeList = 0
	return a
}

// chain marks nodes[from:to] as free and links them into a chain ending
// in nilNode.
func (a *arena[F]) chain(from, to int) {
	for i := from; i < to; i++ {
		a.nodes[i].height = -1
		if i == to-1 {
			a.nodes[i].next = nilNode
		} else {
			a.nodes[i].next = nodeIndex(i + 1)
		}
	}
}

// capacity reports the current number of slots (live + free).
func (a *arena[F]) capacity() int {
	return len(a.nodes)
}

// grow doubles the arena's capacity, appending the new tail to the free
// chain. The new free list head is the old capacity (== old count, since
// grow is only called when the free list is exhausted).
func (a *arena[F]) grow() {
	oldCap := len(a.nodes)
	newCap := oldCap * 2
	grown := make([]node[F], newCap)
	copy(grown, a.nodes)
	a.nodes = grown
	a.chain(oldCap, newCap)
	a.freeList = nodeIndex(oldCap)
}

// allocate pulls a node index from the free list (growing the arena
// first if necessary), resets its record, and returns it.
func (a *arena[F]) allocate() nodeIndex {
	if a.freeList == nilNode {
		a.grow()
	}
	i := a.freeList
	a.freeList = a.nodes[i].next
	a.nodes[i] = node[F]{
		box:    newBox[F](a.dims),
		parent: nilNode,
		left:   nilNode,
		right:  nilNode,
		next:   nilNode,
		height: 0,
	}
	a.count++
	return i
}

// free returns a node index to the free list.
func (a *arena[F]) free(i nodeIndex) {
	if a.nodes[i].height < 0 {
		panic("aabbtree: double free of arena node")
	}
	a.nodes[i].height = -1
	a.nodes[i].next = a.freeList
	a.freeList = i
	a.count--
}

// freeCount walks the free chain and counts it; used only by the
// validator.
func (a *arena[F]) freeCount() int {
	n := 0
	for i := a.freeList; i != nilNode; i = a.nodes[i].next {
		n++
	}
	return n
}

func (a *arena[F]) get(i nodeIndex) *node[F] {
	return &a.nodes[i]
}
