package reactive

import "github.com/rogpeppe/reactive/index"

// Connector maps an Operation (and the region the emitter already
// computed for it) observed on an upstream channel into a downstream
// index region. If mutate is non-nil, it is called before the
// downstream channel is marked dirty; it exists so a connector can
// patch the downstream's cached value in place to keep its structural
// shape consistent with the incoming region (for example, shifting a
// mapped slice's cache to match a Splice on its source).
//
// A Connector is constructed with full knowledge of both the upstream
// and downstream channels' concrete types (it is built inside the code
// that wires the edge, such as seq.Map), so mutate can safely
// close over a typed pointer into the downstream's cache even though
// Connector itself is written against the type-erased Operation/Spec
// pair.
type Connector func(op Operation, region index.Spec) (mutate func(), downRegion index.Spec)

// IdentityConnector is the default connector for an input that has no
// explicit connector configured: the upstream's region passes straight
// through to the downstream, with no cache mutation. This is also the
// right connector for a one-to-one transform (seq.Map, kv.Map) whose
// keys match the upstream's one for one; those only need to layer a
// cache-reshaping mutate closure on top for structural operations.
func IdentityConnector(_ Operation, region index.Spec) (func(), index.Spec) {
	return nil, region
}
