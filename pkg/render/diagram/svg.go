package diagram

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/core/grid"
	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// Scale bounds and default.
const (
	DefaultScale = 1.0
	MinScale     = 0.5
	MaxScale     = 2.0
)

const (
	panelUnit   = 100.0 // panel height in px at scale 1
	panelAspect = 0.6   // width / height
	margin      = 20.0
	titleHeight = 34.0
	feedGutter  = 60.0
	legendRow   = 18.0
	legendWidth = 260.0
	figureGap   = 24.0
	panelFill   = "#E3F2FD"
)

var tierColors = map[cable.Tier]string{
	cable.Small:  "#1E88E5",
	cable.Medium: "#FB8C00",
	cable.Large:  "#E53935",
}

const diagramCSS = `
    .title { font: bold 16px sans-serif; fill: #212121; }
    .panel { fill: ` + panelFill + `; stroke: #000; stroke-width: 1; }
    .order { font-family: sans-serif; font-weight: bold; text-anchor: middle; dominant-baseline: central; fill: #0D47A1; }
    .link { fill: none; stroke-linecap: round; }
    .link.run_boundary { stroke-dasharray: 6 4; }
    .source { fill: #212121; }
    .legend { font: 12px sans-serif; fill: #212121; }`

// Option configures [RenderSVG].
type Option func(*renderer)

type renderer struct {
	numbers   bool
	scale     float64
	harnesses []cable.Harness
}

// WithNumbers toggles the traversal order printed inside each panel.
func WithNumbers(show bool) Option { return func(r *renderer) { r.numbers = show } }

// WithScale sets the drawing scale, between MinScale and MaxScale.
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// WithHarnesses limits and orders the figures. By default every harness in
// the plan is drawn in plan order.
func WithHarnesses(hs ...cable.Harness) Option {
	return func(r *renderer) { r.harnesses = hs }
}

// FontSize returns the order-number font size for a wall cols panels wide:
// 12 for narrow walls, shrinking by one every five columns, never below 6.
func FontSize(cols int) int {
	return max(6, 12-cols/5)
}

// ValidateScale rejects scales outside [MinScale, MaxScale] with INVALID_INPUT.
func ValidateScale(s float64) error {
	if s < MinScale || s > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between %.1f and %.1f, got %g", MinScale, MaxScale, s)
	}
	return nil
}

// figure is one harness drawing; a nil harness draws the bare wall.
type figure struct {
	title   string
	harness *plan.Harness
}

// geometry holds the pixel sizes of one figure.
type geometry struct {
	pw, ph       float64 // panel width and height
	gridW, gridH float64
	width        float64
	height       float64
}

// RenderSVG draws p as a stack of figures, one per harness.
func RenderSVG(p *plan.Plan, opts ...Option) ([]byte, error) {
	r := renderer{numbers: true, scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if err := ValidateScale(r.scale); err != nil {
		return nil, err
	}

	figures, err := r.figures(p)
	if err != nil {
		return nil, err
	}

	g := r.geometry(p)
	totalHeight := g.height * float64(len(figures))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		g.width, totalHeight, g.width, totalHeight)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", diagramCSS)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	for i, f := range figures {
		r.renderFigure(&buf, p, g, f, float64(i)*g.height)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func (r *renderer) figures(p *plan.Plan) ([]figure, error) {
	if len(r.harnesses) > 0 {
		out := make([]figure, 0, len(r.harnesses))
		for _, h := range r.harnesses {
			entry, ok := p.Harness(h)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidHarness, "plan has no %s harness", h)
			}
			out = append(out, figure{title: title(entry), harness: &entry})
		}
		return out, nil
	}

	if len(p.Harnesses) == 0 {
		return []figure{{title: fmt.Sprintf("Panel layout %dx%d", p.Cols, p.Rows)}}, nil
	}
	out := make([]figure, len(p.Harnesses))
	for i := range p.Harnesses {
		out[i] = figure{title: title(p.Harnesses[i]), harness: &p.Harnesses[i]}
	}
	return out, nil
}

func title(h plan.Harness) string {
	return fmt.Sprintf("%s wiring (%s)", h.Name.Title(), h.Policy)
}

func (r *renderer) geometry(p *plan.Plan) geometry {
	var g geometry
	g.ph = panelUnit * r.scale
	g.pw = g.ph * panelAspect
	g.gridW = float64(p.Cols) * g.pw
	g.gridH = float64(p.Rows) * g.ph
	g.width = max(2*margin+g.gridW+feedGutter, 2*margin+legendWidth)
	g.height = titleHeight + g.gridH + 3*legendRow + 2*margin + figureGap
	return g
}

// centre returns the panel centre in figure coordinates. Display rows count
// upwards from the bottom edge of the grid.
func (g geometry) centre(p grid.Panel, rows int) (x, y float64) {
	bottom := titleHeight + g.gridH
	x = margin + float64(p.Col)*g.pw + g.pw/2
	y = bottom - float64(p.DisplayRow(rows))*g.ph - g.ph/2
	return x, y
}

func (r *renderer) renderFigure(buf *bytes.Buffer, p *plan.Plan, g geometry, f figure, offsetY float64) {
	id := "wall"
	if f.harness != nil {
		id = "harness-" + string(f.harness.Name)
	}
	fmt.Fprintf(buf, `  <g id="%s" transform="translate(0, %.1f)">`+"\n", id, offsetY)
	fmt.Fprintf(buf, `    <text class="title" x="%.1f" y="%.1f">%s</text>`+"\n", margin, titleHeight-12, f.title)

	font := float64(FontSize(p.Cols)) * r.scale * 4 / 3
	for _, panel := range p.Panels {
		cx, cy := g.centre(panel, p.Rows)
		fmt.Fprintf(buf, `    <rect class="panel" data-id="%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
			panel.ID, cx-g.pw/2, cy-g.ph/2, g.pw, g.ph)
		if r.numbers {
			fmt.Fprintf(buf, `    <text class="order" x="%.1f" y="%.1f" font-size="%.1f">%d</text>`+"\n",
				cx, cy, font, panel.Order)
		}
	}

	if f.harness != nil {
		r.renderCables(buf, p, g, f.harness)
		renderLegend(buf, f.harness.Counts, titleHeight+g.gridH+margin)
	}

	buf.WriteString("  </g>\n")
}

func (r *renderer) renderCables(buf *bytes.Buffer, p *plan.Plan, g geometry, h *plan.Harness) {
	stroke := 3 * r.scale
	feeds := 0
	for _, c := range h.Cables {
		if c.IsFeed() {
			r.renderFeed(buf, p, g, c, feeds, stroke)
			feeds++
			continue
		}
		link := p.Connections[c.Link-1]
		from, okFrom := p.PanelByID(link.From)
		to, okTo := p.PanelByID(link.To)
		if !okFrom || !okTo {
			continue
		}
		x1, y1 := g.centre(from, p.Rows)
		x2, y2 := g.centre(to, p.Rows)
		fmt.Fprintf(buf, `    <line class="link %s" data-tier="%s" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
			c.Reason, c.Tier, x1, y1, x2, y2, tierColors[c.Tier], stroke)
	}
}

// renderFeed draws a trunk from its panel to the source marker right of the
// grid. Extra feeds are fanned out vertically so each stays visible.
func (r *renderer) renderFeed(buf *bytes.Buffer, p *plan.Plan, g geometry, c plan.Cable, n int, stroke float64) {
	panel, ok := p.PanelByID(c.Panel)
	if !ok {
		return
	}
	x1, y1 := g.centre(panel, p.Rows)
	x2 := margin + g.gridW + feedGutter/2
	y2 := y1 + float64(n)*2*stroke
	fmt.Fprintf(buf, `    <polyline class="link %s" data-tier="%s" points="%.1f,%.1f %.1f,%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		c.Reason, c.Tier, x1, y1, x2, y2, tierColors[c.Tier], stroke)
	fmt.Fprintf(buf, `    <circle class="source" cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", x2, y2, 2*stroke)
}

func renderLegend(buf *bytes.Buffer, counts cable.Counts, top float64) {
	for i, tier := range cable.Tiers {
		y := top + float64(i)*legendRow
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="12" height="12" fill="%s"/>`+"\n", margin, y, tierColors[tier])
		fmt.Fprintf(buf, `    <text class="legend" x="%.1f" y="%.1f">%s: %d</text>`+"\n", margin+18, y+10, tier, counts.Get(tier))
	}
}
