package reactive

import "github.com/rogpeppe/reactive/index"

// SourceChannel holds an authoritative value of type T: the root of a
// data flow. Its own dirty set is maintained purely to signal
// downstream channels; a source never recomputes itself, so reading it
// never consults dirty.
type SourceChannel[T any] struct {
	base[T]
	value T
}

// SourceOption configures a SourceChannel at construction time.
type SourceOption[T any] func(*SourceChannel[T])

// Eager marks a channel as eager: its value is forced to be read
// synchronously every time it (or, for a derived channel, one of its
// inputs) is marked dirty.
func Eager[T any]() SourceOption[T] {
	return func(s *SourceChannel[T]) {
		s.eager = true
	}
}

// Named assigns a diagnostic name to a channel, for use by the debug
// package. Channels without a name are omitted from debug graphs.
func Named[T any](name string) SourceOption[T] {
	return func(s *SourceChannel[T]) {
		s.name = name
	}
}

// NewSource returns a new SourceChannel holding initial.
func NewSource[T any](initial T, opts ...SourceOption[T]) *SourceChannel[T] {
	s := &SourceChannel[T]{value: initial}
	s.eagerRead = func() {} // a source never recomputes; forcing it is a no-op.
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the most recently written value.
func (s *SourceChannel[T]) Read() T {
	return s.value
}

func (s *SourceChannel[T]) readAny() any {
	return s.Read()
}

// Write replaces the stored value and, for each outgoing edge, invokes
// its connector with a Clear(All) operation before marking the
// downstream dirty with the region the connector returns.
func (s *SourceChannel[T]) Write(v T) {
	s.value = v
	s.propagate(Clear{Region: index.All}, index.All)
}

// Mutate replaces the stored value and propagates op/region downstream
// exactly like Write, but with a caller-supplied operation describing
// precisely what changed. It is the hook fine-grained collection
// sources (seq.Source, kv.Source) use to emit Clear(Indices(...)),
// Splice, Swap, and Move without needing access to SourceChannel's
// unexported fields.
func (s *SourceChannel[T]) Mutate(v T, op Operation, region index.Spec) {
	s.value = v
	s.propagate(op, region)
}
