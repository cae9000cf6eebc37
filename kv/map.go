package kv

import (
	"github.com/rogpeppe/reactive/index"
	"github.com/rogpeppe/reactive/reactive"
)

// Map constructs a derived channel holding the value-wise application
// of fn to src's mapping. Unlike seq.Map, it needs no connector beyond
// the default identity: a keyed mapping has no positional shape to
// keep in sync when a key's value changes, so ComputeAt can write
// straight into the downstream map at the dirtied key without any
// preceding cache reshape (§4.5, "analogous to sequence map").
//
// Map primes its cache by reading once at construction, for the same
// reason seq.Map does: see its doc comment.
func Map[V, W any](src *Source[V], fn func(V) W) *reactive.DerivedChannel[map[index.Key]W] {
	compute := func(vals []any) map[index.Key]W {
		in := vals[0].(map[index.Key]V)
		out := make(map[index.Key]W, len(in))
		for k, v := range in {
			out[k] = fn(v)
		}
		return out
	}
	computeAt := func(vals []any, cache *map[index.Key]W, key index.Key) {
		in := vals[0].(map[index.Key]V)
		if *cache == nil {
			*cache = make(map[index.Key]W, len(in))
		}
		(*cache)[key] = fn(in[key])
	}
	d := reactive.MustDerive[map[index.Key]W](
		[]reactive.Input{src},
		compute,
		nil,
		reactive.WithComputeAt[map[index.Key]W](computeAt),
	)
	d.Read()
	return d
}
