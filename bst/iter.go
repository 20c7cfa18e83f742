package bst

import "github.com/verstree/verstree/iterator"

type inorderIter[K any] struct {
	stack []*Node[K]
	cur   *Node[K]
}

func (it *inorderIter[K]) push(n *Node[K]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

func (it *inorderIter[K]) Next() bool {
	if len(it.stack) == 0 {
		it.cur = nil
		return false
	}
	it.cur = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.push(it.cur.right)
	return true
}

func (it *inorderIter[K]) Current() (K, struct{}) {
	return it.cur.key, struct{}{}
}

func (it *inorderIter[K]) Err() error {
	return nil
}

// InOrder returns an iterator that visits the keys in ascending
// order.  Mutating the tree invalidates the iterator.
func (t *Tree[K]) InOrder() iterator.Iterator[K, struct{}] {
	it := &inorderIter[K]{}
	it.push(t.root)
	return it
}
