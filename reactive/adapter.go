package reactive

import "github.com/rogpeppe/reactive/index"

// Sink is the external tree-structured consumer contract for an eager
// derived channel acting as a DOM/UI adapter (§4.6). The reactive core
// never implements a concrete Sink itself — a DOM binder or similar
// renderer living outside this package does — but NewAdapter shows the
// exact shape the core expects: Render for whole-value replacement,
// Patch for a single-key mutation.
type Sink[T any] interface {
	// Render rebuilds the sink's entire subtree from value. It is
	// invoked as the adapter's whole-value Compute.
	Render(value T)
	// Patch applies a one-slot mutation for key within value. It is
	// invoked as the adapter's per-key ComputeAt.
	Patch(value T, key index.Key)
}

// NewAdapter constructs an eager derived channel that mirrors input
// into sink. It reads the channel once before returning, so sink.Render
// is called with input's current value at construction; after that,
// every whole-value change calls sink.Render, and every
// fine-grained change (when the upstream's dirty set is a finite
// Indices region) calls sink.Patch once per dirty key. Because the
// returned channel is eager, those calls happen synchronously, inside
// the Write/Mutate call that changed input, in the order sources are
// mutated (§4.6, §5).
func NewAdapter[T any](input Readable[T], sink Sink[T]) *DerivedChannel[T] {
	d := MustDerive([]Input{input}, func(vals []any) T {
		v := vals[0].(T)
		sink.Render(v)
		return v
	}, nil,
		EagerDerived[T](),
		WithComputeAt[T](func(vals []any, cache *T, key index.Key) {
			v := vals[0].(T)
			sink.Patch(v, key)
			*cache = v
		}),
	)
	d.Read()
	return d
}
