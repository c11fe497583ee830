package list

type NodeElement[T comparable] struct {
	prev, next *NodeElement[T] // Non-owning links, nil at the boundaries.
	listRef    *DoublyLinkedSequence[T] // nil once the node is detached.
	Value      T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func newNodeElement[T comparable](v T, list *DoublyLinkedSequence[T]) *NodeElement[T] {
	return &NodeElement[T]{
		Value:   v,
		listRef: list,
	}
}

func (e *NodeElement[T]) HasNext() bool {
	if e == nil {
		return false
	}
	return e.next != nil
}

func (e *NodeElement[T]) HasPrev() bool {
	if e == nil {
		return false
	}
	return e.prev != nil
}

func (e *NodeElement[T]) Next() *NodeElement[T] {
	if e == nil {
		return nil
	}
	return e.next
}

func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if e == nil {
		return nil
	}
	return e.prev
}

// release severs both links and the owner, so a detached node keeps
// nothing of the list alive.
func (e *NodeElement[T]) release() {
	e.prev, e.next, e.listRef = nil, nil, nil
}
