package reactive

import "github.com/rogpeppe/reactive/index"

// Operation describes the change kind on the emitter's own value. The
// four structural variants (Clear, Splice, Swap, Move) are emitted by
// source channels; Dirty is the generic "values at region changed"
// operation propagated between derived channels.
type Operation interface {
	isOperation()
}

// Clear is invalidation only, with no structural change: the region's
// values changed but the collection's shape (length, key set) did not.
type Clear struct {
	Region index.Spec
}

// Splice is an ordered-sequence structural change: DeleteCount elements
// starting at Start are removed and InsertCount elements are inserted
// in their place, as in a single slice splice.
type Splice struct {
	Start, DeleteCount, InsertCount int
}

// Swap exchanges the elements at positions I and J.
type Swap struct {
	I, J index.Key
}

// Move relocates the element at From to position To.
type Move struct {
	From, To index.Key
}

// Dirty is the region-only operation propagated from one derived
// channel's markDirty to its own outgoing edges.
type Dirty struct {
	Region index.Spec
}

func (Clear) isOperation() {}
func (Splice) isOperation() {}
func (Swap) isOperation()  {}
func (Move) isOperation()  {}
func (Dirty) isOperation() {}
