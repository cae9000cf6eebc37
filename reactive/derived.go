package reactive

import (
	"errors"

	"github.com/rogpeppe/reactive/index"
)

// ErrNoIncomingChannels is returned by Derive when constructed with
// zero inputs; MustDerive panics with it instead. It is a distinct
// sentinel rather than a generic invalid-argument error, per §7.
var ErrNoIncomingChannels = errors.New("reactive: derived channel requires at least one input")

// ComputeAt patches cache in place at key k using the current snapshot
// of input values. It is invoked once per dirty key when a derived
// channel's dirty set is a finite Indices region and a ComputeAt
// function was supplied; it must agree with Compute under the
// assumption that Compute is pure and deterministic.
type ComputeAt[T any] func(inputs []any, cache *T, key index.Key)

// DerivedChannel is a read-only channel whose value is computed from
// one or more upstream Inputs. Because Go has no heterogeneous
// variadic generics, its inputs are held as a slice of the type-erased
// Input interface and Compute/ComputeAt receive a []any snapshot that
// they destructure by index; see Derive1..Derive4 for typed sugar over
// this opaque core.
type DerivedChannel[T any] struct {
	base[T]
	inputs    []Input
	compute   func(inputs []any) T
	computeAt ComputeAt[T]
}

// DerivedOption configures a DerivedChannel at construction time.
type DerivedOption[T any] func(*DerivedChannel[T])

// EagerDerived marks a derived channel as eager.
func EagerDerived[T any]() DerivedOption[T] {
	return func(d *DerivedChannel[T]) {
		d.eager = true
	}
}

// NamedDerived assigns a diagnostic name to a derived channel.
func NamedDerived[T any](name string) DerivedOption[T] {
	return func(d *DerivedChannel[T]) {
		d.name = name
	}
}

// WithComputeAt supplies the per-index recompute function; see
// DerivedChannel.Read for when it is used in preference to compute.
func WithComputeAt[T any](fn ComputeAt[T]) DerivedOption[T] {
	return func(d *DerivedChannel[T]) {
		d.computeAt = fn
	}
}

// Derive constructs a derived channel over inputs. connectors, if
// non-nil, supplies one connector per input position; a missing or nil
// entry defaults to IdentityConnector, which passes the upstream's
// region through unchanged with no cache mutation (it does not widen a
// finite Indices region to All). Derive returns ErrNoIncomingChannels
// if inputs is empty.
func Derive[T any](inputs []Input, compute func(inputs []any) T, connectors []Connector, opts ...DerivedOption[T]) (*DerivedChannel[T], error) {
	if len(inputs) == 0 {
		return nil, ErrNoIncomingChannels
	}
	d := &DerivedChannel[T]{
		inputs:  inputs,
		compute: compute,
	}
	d.dirty = index.All
	d.eagerRead = func() { d.Read() }
	for _, opt := range opts {
		opt(d)
	}
	for i, in := range inputs {
		c := IdentityConnector
		if i < len(connectors) && connectors[i] != nil {
			c = connectors[i]
		}
		in.addEdge(edge{connector: c, mark: d.markDirty})
	}
	return d, nil
}

// MustDerive is like Derive but panics instead of returning an error;
// it is convenient at call sites (such as the typed Derive1..4
// wrappers) where an empty input list is a programmer error the
// caller's own type signature already rules out.
func MustDerive[T any](inputs []Input, compute func(inputs []any) T, connectors []Connector, opts ...DerivedOption[T]) *DerivedChannel[T] {
	d, err := Derive(inputs, compute, connectors, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Read returns the channel's current value, recomputing it first if
// necessary. If the dirty set is empty, the cached value is returned
// unchanged. Otherwise every input is read (which may recursively
// trigger its own recomputation), and then either ComputeAt is applied
// once per dirty key (when the dirty set is a finite Indices region
// and a ComputeAt function was configured) or Compute is run over the
// whole input snapshot. dirty is only cleared after compute/computeAt
// return normally, so a panic from either leaves the channel dirty for
// a future retry, with no partial clearing.
func (d *DerivedChannel[T]) Read() T {
	if index.Empty(d.dirty) {
		return d.cachedData
	}
	vals := make([]any, len(d.inputs))
	for i, in := range d.inputs {
		vals[i] = in.readAny()
	}
	if keys, ok := index.Keys(d.dirty); ok && d.computeAt != nil {
		for _, k := range keys {
			d.computeAt(vals, &d.cachedData, k)
		}
	} else {
		d.cachedData = d.compute(vals)
	}
	d.dirty = index.None
	return d.cachedData
}

func (d *DerivedChannel[T]) readAny() any {
	return d.Read()
}

// Cache returns the channel's current cached value without forcing a
// recompute.
func (d *DerivedChannel[T]) Cache() T {
	return d.cachedData
}

// MutateCache applies fn to the channel's cached value in place. It is
// meant to be called only from within a Connector's mutate closure,
// before the channel has been marked dirty for the keys fn is
// realigning, so that a structural change (e.g. a Splice) can resize
// or reshape the cache ahead of the ComputeAt calls that will fill in
// the values at the newly dirtied keys.
func (d *DerivedChannel[T]) MutateCache(fn func(cache *T)) {
	fn(&d.cachedData)
}

// Deps returns the diagnostic names of this channel's inputs that have
// one (see Named/NamedDerived); it is used by the debug package to
// build a dependency graph and is not part of the core read/write
// contract.
func (d *DerivedChannel[T]) Deps() []string {
	var deps []string
	for _, in := range d.inputs {
		if n, ok := in.(named); ok {
			if name := n.Name(); name != "" {
				deps = append(deps, name)
			}
		}
	}
	return deps
}

type named interface {
	Name() string
}
