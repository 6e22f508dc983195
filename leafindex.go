package aabbtree

import (
	"fmt"

	"github.com/cornelk/hashmap"
)

// leafIndex is the partial function from external particle id to the
// arena index of its leaf node. Its domain is exactly the current set of
// leaves. Backed by cornelk/hashmap rather than a built-in map so that
// the index can safely be read by a future concurrent reader while the
// tree-wide RWMutex (see tree.go) serializes writers.
type leafIndex struct {
	m     *hashmap.Map[uint64, nodeIndex]
	count int
}

func newLeafIndex() *leafIndex {
	return &leafIndex{m: hashmap.New[uint64, nodeIndex]()}
}

func (l *leafIndex) get(id uint64) (nodeIndex, bool) {
	return l.m.Get(id)
}

func (l *leafIndex) insert(id uint64, idx nodeIndex) error {
	if _, ok := l.m.Get(id); ok {
		return fmt.Errorf("%w: id=%d", ErrDuplicateParticle, id)
	}
	l.m.Set(id, idx)
	l.count++
	return nil
}

func (l *leafIndex) remove(id uint64) error {
	if _, ok := l.m.Get(id); !ok {
		return fmt.Errorf("%w: id=%d", ErrUnknownParticle, id)
	}
	l.m.Del(id)
	l.count--
	return nil
}

func (l *leafIndex) size() int {
	return l.count
}

// each calls f once for every (particle, nodeIndex) pair currently
// indexed. f must not mutate the index while iterating.
func (l *leafIndex) each(f func(id uint64, idx nodeIndex)) {
	l.m.Range(func(id uint64, idx nodeIndex) bool {
		f(id, idx)
		return true
	})
}

func (l *leafIndex) reset() {
	l.m = hashmap.New[uint64, nodeIndex]()
	l.count = 0
}
