package orderlist

import "github.com/verstree/verstree/iterator"

type listIter struct {
	end  *Node
	curr *Node
}

func (it *listIter) Next() bool {
	it.curr = it.curr.next
	return it.curr != it.end
}

func (it *listIter) Current() (uint64, any) {
	return it.curr.label, it.curr.Value
}

func (it *listIter) Err() error {
	return nil
}

// All returns an iterator over the elements in list order, yielding
// each node's label and value.
func (l *List) All() iterator.Iterator[uint64, any] {
	return &listIter{end: l.end, curr: l.base}
}
