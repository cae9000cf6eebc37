// Package debug provides non-authoritative introspection over a
// channel graph: a dependency snapshot built from named channels'
// Deps(), and a cycle diagnostic over that snapshot.
//
// The graph and toposort here are a small adjacency-list graph and a
// depth-first topological sort modeled directly on the teacher's own
// graph.TopoSort (same visiting/done bookkeeping, same cycle-collection
// strategy of appending the repeated node as the stack unwinds); they
// are re-derived rather than imported because the teacher's graph
// package, as retrieved, carries two mutually incompatible Graph
// interface declarations (one in graph.go, a second, richer one in
// interface.go) plus a graph_test.go written against a third,
// still-different shape, so the package as a whole does not hang
// together as a unit worth importing wholesale — see DESIGN.md.
package debug

// Named is implemented by any channel carrying a diagnostic name, which
// reactive.SourceChannel and reactive.DerivedChannel expose via Name.
// Upstream dependency names come from DepsOf.
type Named interface {
	Name() string
}

// DepsOf is implemented by derived channels: it lists the diagnostic
// names of a channel's own inputs.
type DepsOf interface {
	Named
	Deps() []string
}

// Graph is a directed snapshot of named channels and their dependency
// edges: an edge from a to b means a depends on (reads from) b.
type Graph struct {
	adj map[string][]string
	// order preserves first-insertion order so a rendering or sort
	// over this graph is deterministic across runs, matching the
	// teacher's topo sort determinism guarantee.
	order []string
}

// NewGraph builds a dependency graph from channels, a set of named
// derived channels (and plain named channels with no recorded
// dependencies, such as sources). Channels with no name are ignored:
// only named channels participate in debug diagnostics.
func NewGraph(channels ...Named) *Graph {
	g := &Graph{adj: make(map[string][]string)}
	for _, c := range channels {
		name := c.Name()
		if name == "" {
			continue
		}
		g.addNode(name)
		if d, ok := c.(DepsOf); ok {
			for _, dep := range d.Deps() {
				g.addNode(dep)
				g.adj[name] = append(g.adj[name], dep)
			}
		}
	}
	return g
}

func (g *Graph) addNode(name string) {
	if _, ok := g.adj[name]; ok {
		return
	}
	g.adj[name] = nil
	g.order = append(g.order, name)
}

// Deps returns the direct dependency names of node, in edge-insertion
// order.
func (g *Graph) Deps(node string) []string {
	return g.adj[node]
}

// Nodes returns every node name in the graph, in first-insertion
// order.
func (g *Graph) Nodes() []string {
	return g.order
}

// TopoSort returns the graph's nodes sorted so that every node
// follows its dependencies, along with any cycles encountered. A
// well-formed channel graph is acyclic (§5: "the graph MUST be
// acyclic"); TopoSort is a diagnostic for catching a violation before
// it causes unbounded recursion in markDirty, not a runtime check the
// core itself performs.
func (g *Graph) TopoSort() (sorted []string, cycles [][]string) {
	v := &visitor{g: g, done: make(map[string]bool)}
	for _, n := range g.order {
		v.visiting = make(map[string]bool)
		cycles = append(cycles, v.visit(n)...)
	}
	return v.sorted, cycles
}

type visitor struct {
	g        *Graph
	done     map[string]bool
	visiting map[string]bool
	sorted   []string
}

func (v *visitor) visit(n string) (cycles [][]string) {
	if v.done[n] {
		return nil
	}
	if v.visiting[n] {
		return [][]string{{n}}
	}
	v.visiting[n] = true
	for _, dep := range v.g.adj[n] {
		cycles = append(cycles, v.visit(dep)...)
	}
	v.done[n] = true
	v.sorted = append(v.sorted, n)
	for cx := range cycles {
		c := cycles[cx]
		if len(c) == 1 || c[0] != c[len(c)-1] {
			cycles[cx] = append(cycles[cx], n)
		}
	}
	return cycles
}

// HasCycle reports whether the graph contains a cycle. It runs a full
// TopoSort and discards the sorted order.
func (g *Graph) HasCycle() bool {
	_, cycles := g.TopoSort()
	return len(cycles) > 0
}
