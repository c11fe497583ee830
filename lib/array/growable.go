package array

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/benz9527/xseq/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/Dynamic_array#Geometric_expansion_and_amortized_cost
//
// The block is always a slice whose length equals the capacity. The builtin
// append is never used to grow it, the doubling below is the growth policy.
//
//  storage  [0, length)       [length, capacity)
//          +---+---+---+---+ +---+---+---+---+
//          | a | b | c | d | | 0 | 0 | 0 | 0 |
//          +---+---+---+---+ +---+---+---+---+
//                live              zeroed

var ErrGrowableOutOfRange = errors.New("[growable-seq] index out of range")

var _ Sequence[struct{}] = (*GrowableSequence[struct{}])(nil) // Type check assertion

// GrowableSequence is usable as a zero value, it starts with an empty block
// and the default options.
type GrowableSequence[T comparable] struct {
	storage []T
	length  int64
	opts    *growableOptions
	stats   *growableStats
}

func NewGrowableSequence[T comparable](opts ...GrowableOption) (*GrowableSequence[T], error) {
	o := &growableOptions{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	o.apply()

	s := &GrowableSequence[T]{
		storage: make([]T, o.initialCapacity),
		opts:    o,
	}
	if o.isStatsEnabled {
		s.stats = newGrowableStats(o.statsName, o.meterProvider)
	}
	return s, nil
}

func (s *GrowableSequence[T]) options() *growableOptions {
	if s.opts == nil {
		s.opts = &growableOptions{}
		s.opts.apply()
	}
	return s.opts
}

func (s *GrowableSequence[T]) Len() int64 {
	if s == nil {
		return 0
	}
	return s.length
}

func (s *GrowableSequence[T]) IsEmpty() bool {
	return s.Len() == 0
}

func (s *GrowableSequence[T]) Cap() int64 {
	if s == nil {
		return 0
	}
	return int64(len(s.storage))
}

func (s *GrowableSequence[T]) checkIndex(index int64) error {
	if index < 0 || index >= s.length {
		return infra.WrapErrorStackWithMessage(
			ErrGrowableOutOfRange,
			fmt.Sprintf("index %d not in [0, %d)", index, s.length),
		)
	}
	return nil
}

func (s *GrowableSequence[T]) Get(index int64) (v T, err error) {
	if err = s.checkIndex(index); err != nil {
		return v, err
	}
	return s.storage[index], nil
}

func (s *GrowableSequence[T]) Set(index int64, v T) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.storage[index] = v
	return nil
}

func (s *GrowableSequence[T]) Ref(index int64) (*T, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return &s.storage[index], nil
}

// grow moves the live elements into a block twice as large.
// The old block becomes unreachable once storage is swapped.
func (s *GrowableSequence[T]) grow() {
	oldCap := s.Cap()
	newCap := max(oldCap<<1, growableMinCapacity)
	storage := make([]T, newCap)
	copy(storage, s.storage[:s.length])
	s.storage = storage

	s.options().logger.Debug("[growable-seq] capacity doubled",
		zap.Int64("oldCap", oldCap),
		zap.Int64("newCap", newCap),
		zap.Int64("len", s.length),
	)
	s.stats.RecordGrowth(newCap)
}

func (s *GrowableSequence[T]) Append(values ...T) {
	for _, v := range values {
		if s.length+1 > s.Cap() {
			s.grow()
		}
		s.storage[s.length] = v
		s.length++
	}
	s.stats.RecordLengthDelta(int64(len(values)))
}

func (s *GrowableSequence[T]) Clear() {
	released := s.length
	opts := s.options()
	switch opts.clearPolicy {
	case ClearResetCapacity:
		s.storage = make([]T, opts.initialCapacity)
	default:
		clear(s.storage[:s.length])
	}
	s.length = 0

	opts.logger.Debug("[growable-seq] cleared",
		zap.Int64("released", released),
		zap.Int64("cap", s.Cap()),
	)
	s.stats.RecordLengthDelta(-released)
}

func (s *GrowableSequence[T]) RemoveAt(index int64) bool {
	if index < 0 || index >= s.length {
		return false
	}
	copy(s.storage[index:s.length-1], s.storage[index+1:s.length])
	var zero T
	s.storage[s.length-1] = zero // avoid memory leaks
	s.length--
	s.stats.RecordLengthDelta(-1)
	return true
}

func (s *GrowableSequence[T]) Remove(v T) bool {
	idx := s.IndexOf(v)
	if idx < 0 {
		return false
	}
	return s.RemoveAt(idx)
}

func (s *GrowableSequence[T]) IndexOf(v T) int64 {
	for i := int64(0); i < s.length; i++ {
		if s.storage[i] == v {
			return i
		}
	}
	return -1
}

func (s *GrowableSequence[T]) LastIndexOf(v T) int64 {
	for i := s.length - 1; i >= 0; i-- {
		if s.storage[i] == v {
			return i
		}
	}
	return -1
}

func (s *GrowableSequence[T]) Contains(v T) bool {
	return s.IndexOf(v) != -1
}

func (s *GrowableSequence[T]) Foreach(fn func(idx int64, v T) bool) {
	if fn == nil {
		return
	}
	for i := int64(0); i < s.length; i++ {
		if !fn(i, s.storage[i]) {
			return
		}
	}
}

func (s *GrowableSequence[T]) Values() []T {
	values := make([]T, s.length)
	copy(values, s.storage[:s.length])
	return values
}

// Clone returns a deep copy owning its own block of the same capacity.
// Options, logger and stats are shared with s.
func (s *GrowableSequence[T]) Clone() *GrowableSequence[T] {
	c := &GrowableSequence[T]{
		storage: make([]T, s.Cap()),
		length:  s.length,
		opts:    s.options(),
		stats:   s.stats,
	}
	copy(c.storage, s.storage[:s.length])
	c.stats.RecordLengthDelta(c.length)
	return c
}

// CopyFrom replaces the content of s by a deep copy of src.
// The previous block of s is dropped before the new one is filled, and
// nothing of src's block is shared afterwards. Copying from itself or from
// nil leaves s unchanged.
func (s *GrowableSequence[T]) CopyFrom(src *GrowableSequence[T]) {
	if src == nil || src == s {
		return
	}
	delta := src.length - s.length
	s.storage = nil
	storage := make([]T, src.Cap())
	copy(storage, src.storage[:src.length])
	s.storage, s.length = storage, src.length
	s.stats.RecordLengthDelta(delta)
}
