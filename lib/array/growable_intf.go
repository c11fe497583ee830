package array

// Note that the growable sequence is not thread safe.
// Callers sharing one sequence across goroutines have to guard it
// with their own lock.

// Sequence is the indexed, contiguous sequence interface.
type Sequence[T comparable] interface {
	Len() int64
	IsEmpty() bool
	// Cap returns the number of allocated slots.
	Cap() int64
	// Get returns the element at index or ErrGrowableOutOfRange.
	Get(index int64) (T, error)
	// Set overwrites the element at index in place.
	Set(index int64, v T) error
	// Ref returns the address of the live slot at index. The address
	// is invalidated by the next growth, removal or clear.
	Ref(index int64) (*T, error)
	// Append stores values at the end in order, doubling the capacity
	// whenever the next value does not fit.
	Append(values ...T)
	Clear()
	// RemoveAt returns false without mutation if index is out of bounds.
	RemoveAt(index int64) bool
	// Remove removes the first element equal to v.
	Remove(v T) bool
	IndexOf(v T) int64
	LastIndexOf(v T) int64
	Contains(v T) bool
	// Foreach stops as soon as fn returns false.
	Foreach(fn func(idx int64, v T) bool)
	Values() []T
}
