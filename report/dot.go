package report

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/wihd/balance/engine"
)

// DOT renders e's state graph as a Graphviz DOT digraph, walked the same
// way as Text: states are deduplicated by id, and a state reached by more
// than one path is drawn once with multiple incoming edges
// (matzehuels-stacktower/pkg/core/dag/perm/dot.go's ToDOT is the model for
// this rendering style).
func DOT[S engine.State](e *engine.Engine[S]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Balance {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, fillcolor=white];\n\n")

	reg := newIDRegistry()
	writeDOTNode(&buf, e, reg, e.RootKey())
	writeDOTEdges(&buf, e, reg, e.RootKey(), make(map[string]bool))

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode[S engine.State](buf *bytes.Buffer, e *engine.Engine[S], reg *idRegistry, key string) {
	id, first := reg.assign(key)
	if !first {
		return
	}
	min, max := e.Bounds(key)
	shape := "ellipse"
	if min == max {
		shape = "box"
	}
	label := fmt.Sprintf("#%d\\n[%s,%s]", id, depthString(min), depthString(max))
	fmt.Fprintf(buf, "  n%d [label=%q, shape=%s];\n", id, label, shape)

	for _, child := range e.ChildrenOf(key) {
		for o := range child.Present {
			if child.Present[o] {
				writeDOTNode(buf, e, reg, child.Keys[o])
			}
		}
	}
}

func writeDOTEdges[S engine.State](buf *bytes.Buffer, e *engine.Engine[S], reg *idRegistry, key string, visited map[string]bool) {
	if visited[key] {
		return
	}
	visited[key] = true
	id, _ := reg.assign(key)

	for _, child := range e.ChildrenOf(key) {
		for o := range child.Present {
			if !child.Present[o] {
				continue
			}
			childID, _ := reg.assign(child.Keys[o])
			outcome := engine.Outcome(o)
			fmt.Fprintf(buf, "  n%d -> n%d [label=%q];\n", id, childID, outcome.String())
			writeDOTEdges(buf, e, reg, child.Keys[o], visited)
		}
	}
}

// RenderSVG renders e's state graph to SVG via Graphviz (grounded on
// matzehuels-stacktower/pkg/core/dag/perm/dot.go's RenderSVG).
func RenderSVG[S engine.State](e *engine.Engine[S]) ([]byte, error) {
	dot := DOT(e)

	gv := graphviz.New()
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("report: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("report: render SVG: %w", err)
	}
	return buf.Bytes(), nil
}
