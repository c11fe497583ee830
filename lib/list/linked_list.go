package list

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xseq/lib/infra"
	"github.com/benz9527/xseq/lib/xlog"
)

// The list is nil terminated on both sides, no sentinel root node.
//
//            head                                tail
//           +----+  next  +----+  next  +----+
//  nil <----|  a |------->|  b |------->|  c |----> nil
//      prev +----+<-------+----+<-------+----+
//                   prev          prev
//
// For every adjacent pair (a, b), a.next == b implies b.prev == a.

var (
	ErrLinkedListOutOfRange = errors.New("[doubly-linked-list] index out of range")
	ErrLinkedListEmpty      = errors.New("[doubly-linked-list] empty")
	ErrLinkedListModified   = errors.New("[doubly-linked-list] modified while iterating")
)

var _ LinkedSequence[struct{}] = (*DoublyLinkedSequence[struct{}])(nil) // Type check assertion

// DoublyLinkedSequence is usable as a zero value, it is an empty list
// without logger.
type DoublyLinkedSequence[T comparable] struct {
	head, tail *NodeElement[T]
	len        int64
	mods       uint64 // Bumped by every link change, traversals compare it.
	logger     xlog.XLogger
}

type linkedListOptions struct {
	logger xlog.XLogger
}

type LinkedListOption func(*linkedListOptions) error

func WithLinkedListLogger(logger xlog.XLogger) LinkedListOption {
	return func(opts *linkedListOptions) error {
		if logger == nil {
			return infra.NewErrorStack("[doubly-linked-list] nil logger")
		}
		opts.logger = logger
		return nil
	}
}

func NewDoublyLinkedSequence[T comparable](opts ...LinkedListOption) (*DoublyLinkedSequence[T], error) {
	o := &linkedListOptions{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.logger == nil {
		o.logger = xlog.NewNopXLogger()
	}
	return &DoublyLinkedSequence[T]{
		logger: o.logger,
	}, nil
}

func (l *DoublyLinkedSequence[T]) log() xlog.XLogger {
	if l.logger == nil {
		l.logger = xlog.NewNopXLogger()
	}
	return l.logger
}

func (l *DoublyLinkedSequence[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *DoublyLinkedSequence[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *DoublyLinkedSequence[T]) AddFirst(v T) {
	e := newNodeElement(v, l)
	if l.len == 0 {
		// empty list, the new element is the first one and the last one
		l.head, l.tail = e, e
	} else {
		e.next = l.head
		l.head.prev = e
		l.head = e
	}
	l.len++
	l.mods++
}

func (l *DoublyLinkedSequence[T]) AddLast(v T) {
	e := newNodeElement(v, l)
	if l.len == 0 {
		l.head, l.tail = e, e
	} else {
		e.prev = l.tail
		l.tail.next = e
		l.tail = e
	}
	l.len++
	l.mods++
}

// nodeAt walks from the nearer end. The index must be in [0, len).
func (l *DoublyLinkedSequence[T]) nodeAt(index int64) *NodeElement[T] {
	if index < l.len>>1 {
		iterator := l.head
		for i := int64(0); i < index; i++ {
			iterator = iterator.next
		}
		return iterator
	}
	iterator := l.tail
	for i := l.len - 1; i > index; i-- {
		iterator = iterator.prev
	}
	return iterator
}

func (l *DoublyLinkedSequence[T]) outOfRange(index, upper int64, closed bool) error {
	bracket := ")"
	if closed {
		bracket = "]"
	}
	return infra.WrapErrorStackWithMessage(
		ErrLinkedListOutOfRange,
		fmt.Sprintf("index %d not in [0, %d%s", index, upper, bracket),
	)
}

func (l *DoublyLinkedSequence[T]) InsertAt(index int64, v T) error {
	if index < 0 || index > l.len {
		return l.outOfRange(index, l.len, true)
	}

	switch index {
	case 0:
		l.AddFirst(v)
	case l.len:
		l.AddLast(v)
	default:
		// splice in before the node currently at index
		at := l.nodeAt(index)
		e := newNodeElement(v, l)
		e.prev, e.next = at.prev, at
		at.prev.next = e
		at.prev = e
		l.len++
		l.mods++
	}
	return nil
}

func (l *DoublyLinkedSequence[T]) RemoveFirst() bool {
	if l.len == 0 {
		return false
	}

	e := l.head
	if l.len == 1 {
		l.head, l.tail = nil, nil
	} else {
		l.head = e.next
		l.head.prev = nil
	}
	e.release()
	l.len--
	l.mods++
	return true
}

func (l *DoublyLinkedSequence[T]) RemoveLast() bool {
	if l.len == 0 {
		return false
	}

	e := l.tail
	if l.len == 1 {
		l.head, l.tail = nil, nil
	} else {
		l.tail = e.prev
		l.tail.next = nil
	}
	e.release()
	l.len--
	l.mods++
	return true
}

func (l *DoublyLinkedSequence[T]) RemoveAt(index int64) bool {
	if index < 0 || index >= l.len {
		return false
	}

	switch index {
	case 0:
		return l.RemoveFirst()
	case l.len - 1:
		return l.RemoveLast()
	default:
	}

	at := l.nodeAt(index)
	at.prev.next = at.next
	at.next.prev = at.prev
	at.release()
	l.len--
	l.mods++
	return true
}

// Remove reports false only when v is absent. The index comes from a
// successful scan, so RemoveAt cannot fail afterwards.
func (l *DoublyLinkedSequence[T]) Remove(v T) bool {
	idx := l.IndexOf(v)
	if idx < 0 {
		return false
	}
	return l.RemoveAt(idx)
}

func (l *DoublyLinkedSequence[T]) IndexOf(v T) int64 {
	idx := int64(0)
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if iterator.Value == v {
			return idx
		}
		idx++
	}
	return -1
}

func (l *DoublyLinkedSequence[T]) LastIndexOf(v T) int64 {
	idx := l.len - 1
	for iterator := l.tail; iterator != nil; iterator = iterator.prev {
		if iterator.Value == v {
			return idx
		}
		idx--
	}
	return -1
}

func (l *DoublyLinkedSequence[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

func (l *DoublyLinkedSequence[T]) PeekFirst() (v T, err error) {
	if l.len == 0 {
		return v, infra.WrapErrorStack(ErrLinkedListEmpty)
	}
	return l.head.Value, nil
}

func (l *DoublyLinkedSequence[T]) PeekLast() (v T, err error) {
	if l.len == 0 {
		return v, infra.WrapErrorStack(ErrLinkedListEmpty)
	}
	return l.tail.Value, nil
}

func (l *DoublyLinkedSequence[T]) At(index int64) (v T, err error) {
	ref, err := l.Ref(index)
	if err != nil {
		return v, err
	}
	return *ref, nil
}

func (l *DoublyLinkedSequence[T]) Set(index int64, v T) error {
	ref, err := l.Ref(index)
	if err != nil {
		return err
	}
	*ref = v
	return nil
}

func (l *DoublyLinkedSequence[T]) Ref(index int64) (*T, error) {
	if index < 0 || index >= l.len {
		return nil, l.outOfRange(index, l.len, false)
	}
	return &l.nodeAt(index).Value, nil
}

// Clear detaches the nodes one at a time from the tail.
func (l *DoublyLinkedSequence[T]) Clear() {
	released := l.len
	for l.RemoveLast() {
	}
	l.log().Debug("[doubly-linked-list] cleared", zap.Int64("released", released))
}

func (l *DoublyLinkedSequence[T]) Front() *NodeElement[T] {
	return l.head
}

func (l *DoublyLinkedSequence[T]) Back() *NodeElement[T] {
	return l.tail
}

// advance decides where a traversal resumes after fn has seen e.
// fn may remove e itself, then the neighbour saved before the call takes
// over the index of e. Any other link change aborts the traversal.
func (l *DoublyLinkedSequence[T]) advance(e, saved *NodeElement[T], mods uint64, idx int64) (*NodeElement[T], int64, error) {
	switch {
	case e.listRef == l && l.mods == mods:
		return saved, idx + 1, nil
	case e.listRef == nil && l.mods == mods+1:
		return saved, idx, nil
	default:
	}
	return nil, idx, infra.WrapErrorStackWithMessage(
		ErrLinkedListModified,
		fmt.Sprintf("%d link changes at index %d, only the current element may be removed", l.mods-mods, idx),
	)
}

// Foreach allows removing the current element while iterating.
// The index passed to fn is always the current position of e, as At sees it.
func (l *DoublyLinkedSequence[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if fn == nil {
		return nil
	}

	var (
		iterator       = l.head
		idx      int64 = 0
		err      error
	)
	for iterator != nil {
		n, mods := iterator.next, l.mods
		if err = fn(idx, iterator); err != nil {
			return err
		}
		if iterator, idx, err = l.advance(iterator, n, mods, idx); err != nil {
			return err
		}
	}
	return nil
}

// ReverseForeach allows removing the current element while iterating.
// The index counts the elements from the tail.
func (l *DoublyLinkedSequence[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T]) error) error {
	if fn == nil {
		return nil
	}

	var (
		iterator       = l.tail
		idx      int64 = 0
		err      error
	)
	for iterator != nil {
		p, mods := iterator.prev, l.mods
		if err = fn(idx, iterator); err != nil {
			return err
		}
		if iterator, idx, err = l.advance(iterator, p, mods, idx); err != nil {
			return err
		}
	}
	return nil
}

func (l *DoublyLinkedSequence[T]) Verify() error {
	var merr error
	violate := func(format string, args ...any) {
		merr = multierr.Append(merr, fmt.Errorf("[doubly-linked-list] "+format, args...))
	}

	switch {
	case l.len < 0:
		violate("negative length %d", l.len)
	case l.len == 0:
		if l.head != nil || l.tail != nil {
			violate("empty list keeps a boundary node")
		}
	case l.head == nil || l.tail == nil:
		violate("list of length %d lost a boundary node", l.len)
	default:
		if l.head.prev != nil {
			violate("head has a backward link")
		}
		if l.tail.next != nil {
			violate("tail has a forward link")
		}
		if l.len == 1 && l.head != l.tail {
			violate("single element list with head != tail")
		}

		forward := make([]*NodeElement[T], 0, l.len)
		for iterator := l.head; iterator != nil; iterator = iterator.next {
			if int64(len(forward)) >= l.len {
				violate("forward walk exceeds length %d", l.len)
				break
			}
			if iterator.listRef != l {
				violate("node %d belongs to another list", len(forward))
			}
			if iterator.next != nil && iterator.next.prev != iterator {
				violate("node %d is not the backward link of its successor", len(forward))
			}
			forward = append(forward, iterator)
		}
		if int64(len(forward)) != l.len {
			violate("forward walk visits %d nodes, length is %d", len(forward), l.len)
		} else if forward[len(forward)-1] != l.tail {
			violate("forward walk does not end at tail")
		}

		idx, steps := len(forward)-1, int64(0)
		for iterator := l.tail; iterator != nil; iterator = iterator.prev {
			if steps >= l.len {
				violate("backward walk exceeds length %d", l.len)
				break
			}
			if idx < 0 || forward[idx] != iterator {
				violate("backward walk diverges from forward walk at step %d", steps)
				break
			}
			idx--
			steps++
		}
		if idx >= 0 && steps < l.len {
			violate("backward walk visits %d nodes, length is %d", steps, l.len)
		}
	}

	if merr != nil {
		l.log().Error(merr, "[doubly-linked-list] integrity violated", zap.Int64("len", l.len))
	}
	return merr
}
