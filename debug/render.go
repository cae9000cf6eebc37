package debug

import (
	"fmt"
	"strings"
)

// RenderMermaid renders the graph as a Mermaid flowchart (the "graph
// TD" / "A-->B" text format), in the same minimal layout the teacher's
// dropped mermaid package produced: one "graph TD" header, then one
// arrow line per dependency edge, in first-insertion node order for
// determinism.
func (g *Graph) RenderMermaid() string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	for _, n := range g.order {
		for _, dep := range g.adj[n] {
			fmt.Fprintf(&b, "  %s-->%s\n", mermaidID(n), mermaidID(dep))
		}
	}
	return b.String()
}

// mermaidID sanitizes a channel name for use as a Mermaid node
// identifier: spaces and dots, which are common in diagnostic names
// like "sum.a", aren't valid inside an unquoted Mermaid ID.
func mermaidID(name string) string {
	r := strings.NewReplacer(" ", "_", ".", "_")
	return r.Replace(name)
}
