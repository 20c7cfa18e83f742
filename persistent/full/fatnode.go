// Package full implements fat-node full persistence: any version may
// be both queried and updated, so the history forms a tree.  Versions
// are nodes of an order-maintenance list rather than integers: a new
// version is spliced immediately after its parent, which linearizes
// the version tree while keeping O(1) precedence queries.  Field
// histories and the root access structure are binary search trees
// ordered by that precedence.
package full

import (
	"github.com/verstree/verstree/bst"
	"github.com/verstree/verstree/orderlist"
)

// Version is a handle to one version of the tree.  The sequence
// number records creation order and only serves identification; the
// authoritative order is the position in the version list.
type Version struct {
	node *orderlist.Node
	seq  int
}

// Seq returns the creation sequence number of the version.
func (v *Version) Seq() int {
	return v.seq
}

// next returns the successor in the version list, or nil at the end.
func (v *Version) next() *Version {
	n := v.node.Next()
	if n == nil {
		return nil
	}
	return n.Value.(*Version)
}

func compareVersions(a, b *Version) int {
	switch {
	case a.node.Label() < b.node.Label():
		return -1
	case a.node.Label() > b.node.Label():
		return +1
	default:
		return 0
	}
}

type field uint8

const (
	fieldLeft field = iota
	fieldRight
	fieldParent
)

// record states that a field equals value from version onward, in
// version-list order.
type record[K any] struct {
	field   field
	value   *fatNode[K]
	version *Version
}

func compareRecords[K any](a, b record[K]) int {
	return compareVersions(a.version, b.version)
}

type fatNode[K any] struct {
	key     K
	version *Version

	left   *fatNode[K]
	right  *fatNode[K]
	parent *fatNode[K]

	hist [3]*bst.Tree[record[K]]
}

func newFatNode[K any](key K, version *Version) *fatNode[K] {
	n := &fatNode[K]{key: key, version: version}
	for i := range n.hist {
		n.hist[i] = bst.New(compareRecords[K], bst.WithOverwrite[record[K]]())
	}
	return n
}

func (n *fatNode[K]) raw(f field) *fatNode[K] {
	switch f {
	case fieldLeft:
		return n.left
	case fieldRight:
		return n.right
	default:
		return n.parent
	}
}

func (n *fatNode[K]) setRaw(f field, val *fatNode[K]) {
	switch f {
	case fieldLeft:
		n.left = val
	case fieldRight:
		n.right = val
	default:
		n.parent = val
	}
}

// get resolves a field at a version and returns the governing record;
// its value is nil when the node does not exist there.
func (n *fatNode[K]) get(f field, version *Version) record[K] {
	switch c := compareVersions(version, n.version); {
	case c == 0:
		return record[K]{field: f, value: n.raw(f), version: version}
	case c < 0:
		return record[K]{field: f, version: version}
	}

	rec, ok := n.hist[f].SearchLE(record[K]{version: version})
	if !ok {
		// no record at or before the version: the creation-time
		// field still governs
		return n.get(f, n.version)
	}
	return rec
}

func (n *fatNode[K]) update(f field, val *fatNode[K], version *Version) {
	n.hist[f].Insert(record[K]{field: f, value: val, version: version})
}

// set writes a field at version i under the full-persistence rule:
// besides recording the new value at i, the previous value may have
// to be re-recorded at i's successor i⁺, so that versions that do not
// descend from i keep observing what they observed before.
func (n *fatNode[K]) set(f field, val *fatNode[K], i *Version) {
	if compareVersions(i, n.version) < 0 {
		return
	}

	iPlus := i.next()
	v1 := n.get(f, i)
	v2, haveV2 := n.hist[f].SearchGT(record[K]{version: i})

	if compareVersions(v1.version, i) == 0 {
		if compareVersions(i, n.version) == 0 {
			n.setRaw(f, val)
			if v1.value == nil && iPlus != nil {
				n.update(f, nil, iPlus)
			}
		} else {
			n.update(f, val, i)
		}
		return
	}

	// v1 precedes i strictly
	n.update(f, val, i)
	if iPlus != nil && (!haveV2 || compareVersions(iPlus, v2.version) < 0) {
		n.update(f, v1.value, iPlus)
	}
}
