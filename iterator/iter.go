package iterator

type Iterator[K, V any] interface {
	Next() bool
	Current() (K, V)
	Err() error
}

type sliceIter[K, V any] struct {
	keys []K
	vals []V
	idx  int
}

func (s *sliceIter[K, V]) Next() bool {
	s.idx++
	return s.idx < len(s.keys)
}

func (s *sliceIter[K, V]) Current() (K, V) {
	var v V
	if s.vals != nil {
		v = s.vals[s.idx]
	}
	return s.keys[s.idx], v
}

func (s *sliceIter[K, V]) Err() error {
	return nil
}

// FromSlice wraps a pre-computed sequence of keys.  vals may be nil,
// in which case Current yields the zero value.
func FromSlice[K, V any](keys []K, vals []V) Iterator[K, V] {
	return &sliceIter[K, V]{keys: keys, vals: vals, idx: -1}
}

// Keys drains it and returns the keys in traversal order.
func Keys[K, V any](it Iterator[K, V]) ([]K, error) {
	var keys []K
	for it.Next() {
		k, _ := it.Current()
		keys = append(keys, k)
	}
	return keys, it.Err()
}
