package debug_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/reactive/debug"
	"github.com/rogpeppe/reactive/reactive"
)

func TestGraphTopoSortAcyclic(t *testing.T) {
	c := qt.New(t)
	a := reactive.NewSource(1, reactive.Named[int]("a"))
	b := reactive.NewSource(1, reactive.Named[int]("b"))
	sum := reactive.Derive2[int, int, int](a, b, func(x, y int) int { return x + y },
		reactive.NamedDerived[int]("sum"))

	g := debug.NewGraph(a, b, sum)
	sorted, cycles := g.TopoSort()
	c.Assert(cycles, qt.HasLen, 0)
	c.Assert(sorted, qt.HasLen, 3)
	c.Assert(g.Deps("sum"), qt.DeepEquals, []string{"a", "b"})
}

func TestGraphRenderMermaid(t *testing.T) {
	c := qt.New(t)
	a := reactive.NewSource(1, reactive.Named[int]("a"))
	sum := reactive.Derive1[int, int](a, func(x int) int { return x + 1 },
		reactive.NamedDerived[int]("sum"))

	g := debug.NewGraph(a, sum)
	out := g.RenderMermaid()
	c.Assert(out, qt.Contains, "graph TD")
	c.Assert(out, qt.Contains, "sum-->a")
}

func TestGraphIgnoresUnnamedChannels(t *testing.T) {
	c := qt.New(t)
	a := reactive.NewSource(1)
	sum := reactive.Derive1[int, int](a, func(x int) int { return x + 1 })

	g := debug.NewGraph(a, sum)
	c.Assert(g.Nodes(), qt.HasLen, 0)
}
