package seq

import (
	"github.com/rogpeppe/reactive/index"
	"github.com/rogpeppe/reactive/reactive"
)

// Map constructs a derived channel holding the element-wise application
// of fn to src. Its connector is a one-to-one mapping over positions:
// a Clear or Dirty region on src becomes the identical downstream
// region (values changed, shape didn't); a Splice resizes the
// downstream cache to match src's new length before reporting every
// index from the splice point onward as dirty, since a shift changes
// which source element every later index reads from (§4.3, §4.5).
//
// Map primes its cache by reading once at construction, so the
// channel's dirty set starts at None rather than the generic All: a
// setItem/push/insert applied before the caller ever calls Read merges
// into an already-finite dirty region instead of being absorbed into
// All, which is what lets the first real Read use ComputeAt exclusively
// (§8, "Fine-grained map").
func Map[A, B any](src *Source[A], fn func(A) B) *reactive.DerivedChannel[[]B] {
	var d *reactive.DerivedChannel[[]B]

	connector := func(op reactive.Operation, region index.Spec) (func(), index.Spec) {
		sp, ok := op.(reactive.Splice)
		if !ok {
			// Clear/Dirty (and Swap/Move, unused by Source) carry no
			// shape change: the region the emitter already computed
			// passes straight through, per §4.5's "identity connector".
			return nil, region
		}
		return func() {
			d.MutateCache(func(cache *[]B) {
				*cache = spliceZero(*cache, sp.Start, sp.DeleteCount, sp.InsertCount)
			})
		}, region
	}

	compute := func(vals []any) []B {
		in := vals[0].([]A)
		out := make([]B, len(in))
		for i, a := range in {
			out[i] = fn(a)
		}
		return out
	}
	computeAt := func(vals []any, cache *[]B, key index.Key) {
		in := vals[0].([]A)
		i := key.(int)
		(*cache)[i] = fn(in[i])
	}

	d = reactive.MustDerive[[]B](
		[]reactive.Input{src},
		compute,
		[]reactive.Connector{connector},
		reactive.WithComputeAt[[]B](computeAt),
	)
	d.Read()
	return d
}

// spliceZero inserts insertCount zero-value B slots at start and
// removes deleteCount elements starting there, mirroring the shape
// change a Splice{Start, DeleteCount, InsertCount} describes on the
// upstream sequence. The inserted slots are placeholders: the caller
// is expected to immediately report them dirty so a subsequent Read
// fills them in via ComputeAt.
func spliceZero[B any](s []B, start, deleteCount, insertCount int) []B {
	tail := append([]B(nil), s[start+deleteCount:]...)
	out := append([]B(nil), s[:start]...)
	out = append(out, make([]B, insertCount)...)
	out = append(out, tail...)
	return out
}
