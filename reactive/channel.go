package reactive

import "github.com/rogpeppe/reactive/index"

// edge is one outgoing connection from a channel to a downstream
// derived channel: a connector that translates this channel's
// operations into the downstream's region, and mark, the downstream's
// own markDirty method bound at registration time. Binding mark as a
// func(index.Spec) rather than storing the downstream channel itself
// is what lets a single edge slice hold edges to downstream channels
// of differing concrete types: markDirty's signature doesn't depend on
// the downstream's cache type T.
type edge struct {
	connector Connector
	mark      func(index.Spec)
}

// Input is the wiring contract satisfied by both *SourceChannel[T] and
// *DerivedChannel[T]: it can be read in a type-erased fashion (used by
// a downstream derived channel to assemble its compute/computeAt
// argument list) and accepts new outgoing edges (used when a
// downstream derived channel is constructed with this channel as one
// of its inputs).
type Input interface {
	readAny() any
	addEdge(e edge)
}

// base is the shared header for both SourceChannel and DerivedChannel:
// a cached value, the region of that value currently considered
// stale, the outgoing edge list, and the eager-read hook. Go has no
// inheritance, so rather than a tagged Source|Derived variant dispatch
// happens through embedding: both channel kinds embed a base[T] and
// share its markDirty/propagate/addEdge machinery, while each supplies
// its own Read/eagerRead behavior.
type base[T any] struct {
	cachedData T
	dirty      index.Spec
	edges      []edge
	eager      bool
	eagerRead  func()
	name       string
}

func (b *base[T]) addEdge(e edge) {
	b.edges = append(b.edges, e)
}

// propagate merges region into this channel's own dirty set for
// bookkeeping, then feeds op to every outgoing connector in insertion
// order, applying any returned cache mutator before marking the
// downstream dirty. If this channel is eager, its own data is forced
// to be read only after every downstream edge has been walked, so a
// dependent eager channel always observes the dirty flag before it
// recomputes.
func (b *base[T]) propagate(op Operation, region index.Spec) {
	b.dirty = index.Merge(b.dirty, region)
	for _, e := range b.edges {
		mutate, downRegion := e.connector(op, region)
		if mutate != nil {
			mutate()
		}
		e.mark(downRegion)
	}
	if b.eager && b.eagerRead != nil {
		b.eagerRead()
	}
}

// markDirty is called by an upstream channel when region of this
// channel's own value is considered to have changed; it wraps region
// in a Dirty operation before propagating to this channel's own
// outgoing edges, per §4.2's connector(edgeIndex, Dirty(region))
// contract.
func (b *base[T]) markDirty(region index.Spec) {
	b.propagate(Dirty{Region: region}, region)
}

// Name returns the diagnostic name assigned via the Named option, or
// the empty string if none was given. Only named channels participate
// in debug.Graph.
func (b *base[T]) Name() string {
	return b.name
}
