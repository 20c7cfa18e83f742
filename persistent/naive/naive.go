// Package naive is the copy-on-write baseline: every update batch
// deep-clones the previous snapshot and mutates the clone.  Updates
// cost O(n) time and space, which is exactly why it exists: it is
// the yardstick the fat-node and node-copying engines are measured
// against, and a convenient oracle in their tests.
package naive

import (
	"github.com/verstree/verstree/bst"
	"github.com/verstree/verstree/iterator"
	"github.com/verstree/verstree/persistent"
)

type Tree[K any] struct {
	compare func(K, K) int
	roots   []*bst.Tree[K]
}

func New[K any](compare func(K, K) int) *Tree[K] {
	return &Tree[K]{compare: compare}
}

func (t *Tree[K]) LatestVersion() persistent.Version {
	return persistent.Version(len(t.roots) - 1)
}

// clamp resolves an addressed version to a snapshot index, or -1 when
// the version addresses nothing.
func (t *Tree[K]) clamp(version persistent.Version) int {
	if version < 0 || len(t.roots) == 0 {
		return -1
	}
	if v := int(version); v < len(t.roots) {
		return v
	}
	return len(t.roots) - 1
}

// Insert adds all keys in a single new version and returns it.
// Inserting nothing creates no version.
func (t *Tree[K]) Insert(keys ...K) persistent.Version {
	if len(keys) == 0 {
		return t.LatestVersion()
	}

	var root *bst.Tree[K]
	if len(t.roots) == 0 {
		root = bst.New(t.compare)
	} else {
		root = t.roots[len(t.roots)-1].Clone()
	}
	t.roots = append(t.roots, root)

	for _, k := range keys {
		root.Insert(k)
	}
	return t.LatestVersion()
}

// Delete removes all keys in a single new version and returns it.
// Deleting from an engine that has no version yet creates none.
func (t *Tree[K]) Delete(keys ...K) persistent.Version {
	if len(t.roots) == 0 || len(keys) == 0 {
		return t.LatestVersion()
	}

	root := t.roots[len(t.roots)-1].Clone()
	t.roots = append(t.roots, root)

	for _, k := range keys {
		root.Delete(k)
	}
	return t.LatestVersion()
}

func (t *Tree[K]) Search(key K, version persistent.Version) (K, bool) {
	v := t.clamp(version)
	if v < 0 {
		var zero K
		return zero, false
	}
	return t.roots[v].Search(key)
}

func (t *Tree[K]) SearchLE(key K, version persistent.Version) (K, bool) {
	v := t.clamp(version)
	if v < 0 {
		var zero K
		return zero, false
	}
	return t.roots[v].SearchLE(key)
}

func (t *Tree[K]) SearchGT(key K, version persistent.Version) (K, bool) {
	v := t.clamp(version)
	if v < 0 {
		var zero K
		return zero, false
	}
	return t.roots[v].SearchGT(key)
}

func (t *Tree[K]) InOrder(version persistent.Version) []K {
	v := t.clamp(version)
	if v < 0 {
		return nil
	}
	return t.roots[v].Keys()
}

// Scan returns an iterator over the keys of the addressed version in
// ascending order.
func (t *Tree[K]) Scan(version persistent.Version) iterator.Iterator[K, struct{}] {
	v := t.clamp(version)
	if v < 0 {
		return iterator.FromSlice[K, struct{}](nil, nil)
	}
	return t.roots[v].InOrder()
}
