// Package persistent holds what the partial-persistence engines share:
// the integer version space and the query contract.  Version v is the
// state of the structure after the v-th update batch; updates always
// apply to the latest version, while reads may address any version.
//
// The full-persistence engine does not fit this contract (its
// versions are order-list nodes, not integers) and defines its own
// handle type.
package persistent

type Version int

// None is the version of an engine that has not seen any update yet.
// Reads addressed to it (or to any negative version) find nothing.
const None Version = -1

// Engine is the query and update surface shared by the
// partial-persistence engines.  Updates are batched: all keys of one
// call land in a single new version.
type Engine[K any] interface {
	Insert(keys ...K) Version
	Delete(keys ...K) Version
	Search(key K, version Version) (K, bool)
	InOrder(version Version) []K
	LatestVersion() Version
}
