package list

// Note that the doubly linked sequence is not thread safe.
// And the singly linked list could be implemented by using the doubly linked list.
// So it is a meaningless exercise to implement the singly linked list.

// LinkedSequence is the index based doubly linked list interface.
type LinkedSequence[T comparable] interface {
	Len() int64
	IsEmpty() bool
	// AddFirst inserts a value v as a new element at the front of list l.
	AddFirst(v T)
	// AddLast inserts a value v as a new element at the back of list l.
	AddLast(v T)
	// InsertAt inserts a value v so that it ends up at index.
	// The index one past the last element is valid and appends.
	InsertAt(index int64, v T) error
	// RemoveFirst returns false if the list is empty.
	RemoveFirst() bool
	// RemoveLast returns false if the list is empty.
	RemoveLast() bool
	// RemoveAt returns false without mutation if index is out of bounds.
	RemoveAt(index int64) bool
	// Remove removes the first element whose value equals v.
	Remove(v T) bool
	IndexOf(v T) int64
	LastIndexOf(v T) int64
	Contains(v T) bool
	// PeekFirst returns ErrLinkedListEmpty if the list is empty.
	PeekFirst() (T, error)
	// PeekLast returns ErrLinkedListEmpty if the list is empty.
	PeekLast() (T, error)
	// At returns the value at index or ErrLinkedListOutOfRange.
	At(index int64) (T, error)
	// Set overwrites the value at index in place.
	Set(index int64, v T) error
	// Ref returns the address of the value held by the node at index.
	Ref(index int64) (*T, error)
	Clear()
	// Front returns the first element of list l or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of list l or nil if the list is empty.
	Back() *NodeElement[T]
	// Foreach traverses the list l and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	// fn may remove e, any other link change stops the traversal with
	// ErrLinkedListModified.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
	// ReverseForeach iterates the list in reverse order, calling fn for each element.
	// It follows the same rules as Foreach.
	ReverseForeach(fn func(idx int64, e *NodeElement[T]) error) error
	// Verify walks the links in both directions and reports every broken invariant.
	Verify() error
}
