// Package seq provides a reactive, ordered-sequence collection channel
// on top of the reactive core: a Source[T] holding a []T whose
// per-index mutations (SetItem, Push, Insert) emit fine-grained
// regions, and a Map that preserves that fine-grained-ness through a
// derived one-to-one transformation.
package seq

import (
	"github.com/rogpeppe/reactive/index"
	"github.com/rogpeppe/reactive/reactive"
	"github.com/rogpeppe/reactive/ring"
)

// Source is a reactive source channel holding an ordered sequence of
// T, backed by a ring.Buffer that SetItem, Push and Insert modify in
// place. Each mutation then publishes a fresh []T snapshot of the
// whole sequence to the underlying SourceChannel, so every call still
// copies all elements once.
type Source[T any] struct {
	*reactive.SourceChannel[[]T]
	buf *ring.Buffer[T]
}

// NewSource returns a new sequence source holding a copy of initial.
func NewSource[T any](initial []T, opts ...reactive.SourceOption[[]T]) *Source[T] {
	buf := ring.NewBuffer[T](len(initial))
	buf.PushSliceEnd(initial)
	s := &Source[T]{buf: buf}
	s.SourceChannel = reactive.NewSource(s.snapshot(), opts...)
	return s
}

func (s *Source[T]) snapshot() []T {
	out := make([]T, s.buf.Len())
	s.buf.Copy(out, 0)
	return out
}

// Len returns the number of elements currently in the sequence.
func (s *Source[T]) Len() int {
	return s.buf.Len()
}

// Write replaces the whole sequence, invalidating every downstream
// region (§4.3).
func (s *Source[T]) Write(v []T) {
	buf := ring.NewBuffer[T](len(v))
	buf.PushSliceEnd(v)
	s.buf = buf
	s.SourceChannel.Write(s.snapshot())
}

// SetItem overwrites the element at index i in place, invalidating
// only index i downstream. It panics if i is out of range.
func (s *Source[T]) SetItem(i int, v T) {
	s.buf.Set(i, v)
	region := index.Indices([]index.Key{i})
	s.Mutate(s.snapshot(), reactive.Clear{Region: region}, region)
}

// Push appends v to the end of the sequence, invalidating only the
// new last index downstream.
func (s *Source[T]) Push(v T) {
	oldLen := s.buf.Len()
	s.buf.PushEnd(v)
	region := index.Indices([]index.Key{oldLen})
	s.Mutate(s.snapshot(), reactive.Splice{Start: oldLen, DeleteCount: 0, InsertCount: 1}, region)
}

// Insert splices v into position i, shifting every element previously
// at i or beyond one slot towards the end. It panics if i is out of
// range (i may equal s.Len(), behaving like Push). Per §4.3, this
// invalidates index i through the new last index downstream, not just
// the inserted slot, since every shifted element now reads from a
// different source position.
func (s *Source[T]) Insert(i int, v T) {
	s.buf.InsertAt(i, v)
	newLen := s.buf.Len()
	keys := make([]index.Key, 0, newLen-i)
	for k := i; k < newLen; k++ {
		keys = append(keys, k)
	}
	region := index.Indices(keys)
	s.Mutate(s.snapshot(), reactive.Splice{Start: i, DeleteCount: 0, InsertCount: 1}, region)
}
