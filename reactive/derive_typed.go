package reactive

// Readable is satisfied by both *SourceChannel[T] and *DerivedChannel[T]:
// anything that can be read as a T and wired as an edge target.
type Readable[T any] interface {
	Input
	Read() T
}

// Derive1..Derive4 are typed sugar over the opaque Derive core, modeled
// on the teacher's tuple/tuplefunc N-ary generated-wrapper idiom
// (hand-written here, since the small fixed set of arities needed
// doesn't warrant a code generator). Each wraps a typed compute
// function so callers never see the underlying []any snapshot or do
// their own type assertions. They use the default identity connector
// on every input; a derived channel that needs fine-grained connectors
// must go through Derive directly (as seq.Map and kv.Map do).

// Derive1 derives a channel from a single input.
func Derive1[A, T any](a Readable[A], compute func(A) T, opts ...DerivedOption[T]) *DerivedChannel[T] {
	return MustDerive([]Input{a}, func(vals []any) T {
		return compute(vals[0].(A))
	}, nil, opts...)
}

// Derive2 derives a channel from two inputs.
func Derive2[A, B, T any](a Readable[A], b Readable[B], compute func(A, B) T, opts ...DerivedOption[T]) *DerivedChannel[T] {
	return MustDerive([]Input{a, b}, func(vals []any) T {
		return compute(vals[0].(A), vals[1].(B))
	}, nil, opts...)
}

// Derive3 derives a channel from three inputs.
func Derive3[A, B, C, T any](a Readable[A], b Readable[B], c Readable[C], compute func(A, B, C) T, opts ...DerivedOption[T]) *DerivedChannel[T] {
	return MustDerive([]Input{a, b, c}, func(vals []any) T {
		return compute(vals[0].(A), vals[1].(B), vals[2].(C))
	}, nil, opts...)
}

// Derive4 derives a channel from four inputs.
func Derive4[A, B, C, D, T any](a Readable[A], b Readable[B], c Readable[C], d Readable[D], compute func(A, B, C, D) T, opts ...DerivedOption[T]) *DerivedChannel[T] {
	return MustDerive([]Input{a, b, c, d}, func(vals []any) T {
		return compute(vals[0].(A), vals[1].(B), vals[2].(C), vals[3].(D))
	}, nil, opts...)
}
