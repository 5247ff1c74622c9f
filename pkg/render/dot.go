package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/metroroute/pkg/lines"
	"github.com/matzehuels/metroroute/pkg/network"
)

// DefaultEdgeColour is used for connections no single line serves.
const DefaultEdgeColour = "#888888"

// Options configures map generation.
type Options struct {
	// Title is drawn above the map when set.
	Title string

	// Route is a station sequence to highlight, source first.
	Route []string

	// Weights labels each edge with its weight.
	Weights bool
}

// ToDOT converts a network to Graphviz DOT. Output is deterministic for a
// given build order: nodes follow station insertion order and edges follow
// [network.Graph.Connections].
func ToDOT(g *network.Graph, t *lines.Table, opts Options) string {
	onRoute := make(map[string]bool, len(opts.Route))
	routeEdge := make(map[[2]string]bool, len(opts.Route))
	for i, s := range opts.Route {
		onRoute[s] = true
		if i > 0 {
			routeEdge[edgeKey(opts.Route[i-1], s)] = true
		}
	}
	interchange := make(map[string]bool)
	for _, s := range t.Interchanges() {
		interchange[s] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.3, fixedsize=false];\n")
	buf.WriteString("  edge [penwidth=3];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=18;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, id := range g.Stations() {
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(nodeAttrs(id, onRoute[id], interchange[id]), ", "))
	}

	buf.WriteString("\n")
	for _, c := range g.Connections() {
		attrs := []string{fmt.Sprintf("color=%q", edgeColour(t, c.From, c.To))}
		if opts.Weights {
			attrs = append(attrs, fmt.Sprintf("label=\"%d\"", c.Weight))
		}
		if routeEdge[edgeKey(c.From, c.To)] {
			attrs = append(attrs, "penwidth=6", "style=bold")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", c.From, c.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(id string, onRoute, interchange bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", id)}
	if interchange {
		attrs = append(attrs, "shape=doublecircle")
	}
	if onRoute {
		attrs = append(attrs, "fillcolor=\"#ffd54f\"", "penwidth=2")
	}
	return attrs
}

// edgeColour returns the colour of the first line serving both a and b.
func edgeColour(t *lines.Table, a, b string) string {
	for _, name := range t.LinesOf(a) {
		l, _ := t.Line(name)
		if l.Colour == "" {
			continue
		}
		for _, s := range l.Stations {
			if strings.EqualFold(s, b) {
				return l.Colour
			}
		}
	}
	return DefaultEdgeColour
}

func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
