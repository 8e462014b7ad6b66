package nodelink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/core/grid"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Harness selects whose cable tiers colour the edges. Empty draws the
	// bare chain without feeds.
	Harness cable.Harness

	// Detailed adds the panel id and grid position to each label.
	// When false, only the traversal order is shown.
	Detailed bool
}

var tierColors = map[cable.Tier]string{
	cable.Small:  "#1E88E5",
	cable.Medium: "#FB8C00",
	cable.Large:  "#E53935",
}

// sourceNode is the node feeds return to.
const sourceNode = "source"

// ToDOT converts a plan to Graphviz DOT format. The resulting DOT string can
// be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Links inside right-to-left rows are written head first with dir=back so
// that Graphviz keeps every row in column order.
func ToDOT(p *plan.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=\"#E3F2FD\", fontsize=18, width=0.6, height=1.0, fixedsize=true];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	for _, row := range grid.ByRow(p.Panels) {
		ids := make([]string, len(row))
		for i, panel := range row {
			fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(panel.ID), fmtLabel(panel, opts.Detailed))
			ids[i] = fmt.Sprintf("%q", nodeID(panel.ID))
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
	}

	harness, ok := p.Harness(opts.Harness)
	tiers := make(map[int]plan.Cable)
	if ok {
		for _, c := range harness.Cables {
			if !c.IsFeed() {
				tiers[c.Link] = c
			}
		}
	}

	buf.WriteString("\n")
	for i, l := range p.Connections {
		from, _ := p.PanelByID(l.From)
		to, _ := p.PanelByID(l.To)
		attrs := fmtEdgeAttrs(tiers, i+1, ok)
		if l.Axis == "horizontal" && from.Col > to.Col {
			attrs = append(attrs, "dir=back")
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID(l.To), nodeID(l.From), strings.Join(attrs, ", "))
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID(l.From), nodeID(l.To), strings.Join(attrs, ", "))
	}

	if ok {
		renderFeeds(&buf, harness)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id int) string {
	return fmt.Sprintf("p%d", id)
}

func fmtLabel(p grid.Panel, detailed bool) string {
	if !detailed {
		return fmt.Sprint(p.Order)
	}
	return fmt.Sprintf("%d\nid %d\nr%d c%d", p.Order, p.ID, p.Row, p.Col)
}

func fmtEdgeAttrs(tiers map[int]plan.Cable, link int, colored bool) []string {
	if !colored {
		return []string{"color=black"}
	}
	c := tiers[link]
	attrs := []string{
		fmt.Sprintf("color=%q", tierColors[c.Tier]),
		fmt.Sprintf("tooltip=%q", fmt.Sprintf("%s (%s)", c.Tier, c.Reason)),
		"penwidth=2",
	}
	if c.Reason == cable.ReasonRunBoundary {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

func renderFeeds(buf *bytes.Buffer, h plan.Harness) {
	first := true
	for _, c := range h.Cables {
		if !c.IsFeed() {
			continue
		}
		if first {
			fmt.Fprintf(buf, "  %q [shape=doublecircle, label=\"SRC\", fillcolor=white, width=0.5, height=0.5];\n", sourceNode)
			first = false
		}
		fmt.Fprintf(buf, "  %q -> %q [color=%q, penwidth=2, style=bold, constraint=false];\n",
			nodeID(c.Panel), sourceNode, tierColors[c.Tier])
	}
}
