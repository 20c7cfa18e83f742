package full

import (
	"github.com/verstree/verstree/bst"
	"github.com/verstree/verstree/iterator"
	"github.com/verstree/verstree/orderlist"
)

// rootRecord states that from version onward the root is node; a nil
// node marks an empty tree.
type rootRecord[K any] struct {
	node    *fatNode[K]
	version *Version
}

// Tree is the fat-node full-persistent engine.  Because versions form
// a tree, the root access structure is itself a search tree over the
// version order rather than a flat array.
type Tree[K any] struct {
	compare  func(K, K) int
	roots    *bst.Tree[rootRecord[K]]
	versions *orderlist.List
	latest   int
}

func New[K any](compare func(K, K) int) *Tree[K] {
	return &Tree[K]{
		compare: compare,
		roots: bst.New(func(a, b rootRecord[K]) int {
			return compareVersions(a.version, b.version)
		}, bst.WithOverwrite[rootRecord[K]]()),
		versions: orderlist.New(),
		latest:   -1,
	}
}

// createRoot records that from version i onward the root is n.  Root
// records obey the same rule as field writes: unless a record already
// covers i's successor, the previous root is re-recorded there, so
// forks spliced after i keep observing the root they forked from.
func (t *Tree[K]) createRoot(n *fatNode[K], i *Version) {
	v1, haveV1 := t.roots.SearchLE(rootRecord[K]{version: i})
	t.roots.Insert(rootRecord[K]{node: n, version: i})

	if haveV1 && compareVersions(v1.version, i) == 0 {
		// overwrote an existing record at i, nothing else moves
		return
	}

	iPlus := i.next()
	v2, haveV2 := t.roots.SearchGT(rootRecord[K]{version: i})
	if iPlus != nil && (!haveV2 || compareVersions(iPlus, v2.version) < 0) {
		var prev *fatNode[K]
		if haveV1 {
			prev = v1.node
		}
		t.roots.Insert(rootRecord[K]{node: prev, version: iPlus})
	}
}

// NumVersions reports how many versions have been created.
func (t *Tree[K]) NumVersions() int {
	return t.latest + 1
}

// Last returns the final version in version order, the default parent
// for updates that do not name one.
func (t *Tree[K]) Last() *Version {
	n := t.versions.Last()
	if n == nil {
		return nil
	}
	return n.Value.(*Version)
}

// Versions returns all version handles in version-list order.
func (t *Tree[K]) Versions() []*Version {
	out := make([]*Version, 0, t.versions.Len())
	for it := t.versions.All(); it.Next(); {
		_, v := it.Current()
		out = append(out, v.(*Version))
	}
	return out
}

func (t *Tree[K]) newVersion(parent *orderlist.Node) *Version {
	t.latest++
	v := &Version{seq: t.latest}
	if parent == nil {
		v.node = t.versions.InsertFirst(v)
	} else {
		v.node = t.versions.InsertAfter(parent, v)
	}
	return v
}

// Insert adds key in a new version forked off parent (the last
// version when parent is nil) and returns the new version's handle.
// A duplicate key still mints a version, with unchanged content.
func (t *Tree[K]) Insert(key K, parent *Version) *Version {
	if t.latest == -1 {
		v := t.newVersion(nil)
		t.createRoot(newFatNode(key, v), v)
		return v
	}

	last := parent
	if last == nil {
		last = t.Last()
	}
	v := t.newVersion(last.node)
	t.insert(newFatNode(key, v), v)
	return v
}

func (t *Tree[K]) insert(n *fatNode[K], version *Version) {
	rec, ok := t.roots.SearchLE(rootRecord[K]{version: version})
	if !ok || rec.node == nil {
		// no root yet, or the governing record marks emptiness
		t.createRoot(n, version)
		return
	}

	root := rec.node
	var parent *fatNode[K]
	for root != nil {
		parent = root
		switch c := t.compare(n.key, root.key); {
		case c < 0:
			root = root.get(fieldLeft, version).value
		case c > 0:
			root = root.get(fieldRight, version).value
		default:
			return
		}
	}

	n.parent = parent
	if t.compare(n.key, parent.key) < 0 {
		parent.set(fieldLeft, n, version)
	} else {
		parent.set(fieldRight, n, version)
	}
}

// Delete removes key in a new version forked off parent (the last
// version when parent is nil).  It returns the new version's handle,
// or nil when the key was absent and no version was created.
func (t *Tree[K]) Delete(key K, parent *Version) *Version {
	if t.latest == -1 {
		return nil
	}

	last := parent
	if last == nil {
		last = t.Last()
	}
	n := t.searchNode(key, last)
	if n == nil {
		return nil
	}

	v := t.newVersion(last.node)
	t.delete(n, v)
	return v
}

func (t *Tree[K]) delete(n *fatNode[K], version *Version) {
	left := n.get(fieldLeft, version).value
	right := n.get(fieldRight, version).value

	switch {
	case left == nil:
		t.transplant(n, right, version)
	case right == nil:
		t.transplant(n, left, version)
	default:
		// the successor has at most one child, on its right
		tmp := t.successor(n, version)
		if tmp == nil {
			panic("full: missing successor for a node with two children")
		}
		if tmp != right {
			t.transplant(tmp, tmp.get(fieldRight, version).value, version)
			tmp.set(fieldRight, right, version)
			tmp.get(fieldRight, version).value.set(fieldParent, tmp, version)
		}
		t.transplant(n, tmp, version)
		tmp.set(fieldLeft, left, version)
		tmp.get(fieldLeft, version).value.set(fieldParent, tmp, version)
	}
}

func (t *Tree[K]) findMin(n *fatNode[K], version *Version) *fatNode[K] {
	for {
		left := n.get(fieldLeft, version).value
		if left == nil {
			return n
		}
		n = left
	}
}

func (t *Tree[K]) successor(n *fatNode[K], version *Version) *fatNode[K] {
	if right := n.get(fieldRight, version).value; right != nil {
		return t.findMin(right, version)
	}

	parent := n.get(fieldParent, version).value
	for parent != nil && parent.get(fieldRight, version).value == n {
		n = parent
		parent = n.get(fieldParent, version).value
	}
	return parent
}

func (t *Tree[K]) transplant(old, n *fatNode[K], version *Version) {
	oldParent := old.get(fieldParent, version).value
	switch {
	case oldParent == nil:
		// replacing the root; a nil n records emptiness
		t.createRoot(n, version)
	case old == oldParent.get(fieldLeft, version).value:
		oldParent.set(fieldLeft, n, version)
	default:
		oldParent.set(fieldRight, n, version)
	}
	if n != nil {
		n.set(fieldParent, oldParent, version)
	}
}

func (t *Tree[K]) root(version *Version) *fatNode[K] {
	rec, ok := t.roots.SearchLE(rootRecord[K]{version: version})
	if !ok {
		return nil
	}
	return rec.node
}

func (t *Tree[K]) searchNode(key K, version *Version) *fatNode[K] {
	root := t.root(version)
	for root != nil {
		switch c := t.compare(key, root.key); {
		case c < 0:
			root = root.get(fieldLeft, version).value
		case c > 0:
			root = root.get(fieldRight, version).value
		default:
			return root
		}
	}
	return nil
}

// Search returns the key as stored at the addressed version (the last
// version when version is nil).
func (t *Tree[K]) Search(key K, version *Version) (K, bool) {
	if t.latest == -1 {
		var zero K
		return zero, false
	}
	if version == nil {
		version = t.Last()
	}
	if n := t.searchNode(key, version); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

func (t *Tree[K]) InOrder(version *Version) []K {
	if t.latest == -1 {
		return nil
	}
	if version == nil {
		version = t.Last()
	}

	var keys []K
	var walk func(n *fatNode[K])
	walk = func(n *fatNode[K]) {
		if n == nil {
			return
		}
		walk(n.get(fieldLeft, version).value)
		keys = append(keys, n.key)
		walk(n.get(fieldRight, version).value)
	}
	walk(t.root(version))
	return keys
}

// Scan returns an iterator over the keys of the addressed version in
// ascending order.
func (t *Tree[K]) Scan(version *Version) iterator.Iterator[K, struct{}] {
	return iterator.FromSlice[K, struct{}](t.InOrder(version), nil)
}
