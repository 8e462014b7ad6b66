package diagram

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/plan"
)

func compute(t *testing.T, cols, rows int) *plan.Plan {
	t.Helper()
	p, err := plan.Compute(cols, rows, plan.DefaultPolicies())
	if err != nil {
		t.Fatalf("plan.Compute(%d, %d) error: %v", cols, rows, err)
	}
	return p
}

func wellFormed(t *testing.T, svg []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(svg))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("SVG is not well-formed XML: %v", err)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	p := compute(t, 10, 4)
	svg, err := RenderSVG(p)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	wellFormed(t, svg)
	out := string(svg)

	if got := strings.Count(out, `class="panel"`); got != 80 {
		t.Errorf("got %d panels, want 80 (40 per harness)", got)
	}
	for _, want := range []string{`id="harness-lan"`, `id="harness-power"`, "LAN wiring (run=11 feeds=1)", "Power wiring (run=5 feeds=1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	// LAN 33/3/4 plus Power 32/3/5.
	tests := []struct {
		tier cable.Tier
		want int
	}{
		{cable.Small, 65},
		{cable.Medium, 6},
		{cable.Large, 9},
	}
	for _, tt := range tests {
		if got := strings.Count(out, `data-tier="`+string(tt.tier)+`"`); got != tt.want {
			t.Errorf("%s cables drawn = %d, want %d", tt.tier, got, tt.want)
		}
	}
	if !strings.Contains(out, "large: 5") || !strings.Contains(out, "small: 33") {
		t.Error("legend should show tier counts")
	}
}

func TestRenderSVG_Numbers(t *testing.T) {
	p := compute(t, 3, 2)

	with, _ := RenderSVG(p, WithNumbers(true))
	without, _ := RenderSVG(p, WithNumbers(false))
	if got := strings.Count(string(with), `class="order"`); got != 12 {
		t.Errorf("numbered figure has %d labels, want 12", got)
	}
	if strings.Contains(string(without), `class="order"`) {
		t.Error("numbers should be hidden")
	}
	if !strings.Contains(string(with), `>6</text>`) {
		t.Error("last panel should be labelled 6")
	}
}

func TestRenderSVG_FirstRowOnTop(t *testing.T) {
	p := compute(t, 1, 2)
	g := (&renderer{scale: 1}).geometry(p)
	_, y1 := g.centre(p.Panels[0], p.Rows)
	_, y2 := g.centre(p.Panels[1], p.Rows)
	if y1 >= y2 {
		t.Errorf("row 0 centre y = %.1f, row 1 = %.1f; row 0 should be drawn above", y1, y2)
	}
}

func TestRenderSVG_Scale(t *testing.T) {
	p := compute(t, 2, 1)
	small, err := RenderSVG(p, WithScale(MinScale))
	if err != nil {
		t.Fatalf("RenderSVG(min scale) error: %v", err)
	}
	large, err := RenderSVG(p, WithScale(MaxScale))
	if err != nil {
		t.Fatalf("RenderSVG(max scale) error: %v", err)
	}
	if !strings.Contains(string(small), `width="30.0" height="50.0"`) {
		t.Error("half-scale panels should be 30x50")
	}
	if !strings.Contains(string(large), `width="120.0" height="200.0"`) {
		t.Error("double-scale panels should be 120x200")
	}

	for _, s := range []float64{0, 0.49, 2.01, -1} {
		if _, err := RenderSVG(p, WithScale(s)); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("RenderSVG(scale %g) error = %v, want INVALID_INPUT", s, err)
		}
	}
}

func TestRenderSVG_Harnesses(t *testing.T) {
	p := compute(t, 4, 2)

	svg, err := RenderSVG(p, WithHarnesses(cable.Power))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if strings.Contains(string(svg), "harness-lan") || !strings.Contains(string(svg), "harness-power") {
		t.Error("only the power figure should be drawn")
	}

	p.Harnesses = p.Harnesses[:1]
	if _, err := RenderSVG(p, WithHarnesses(cable.Power)); !errors.Is(err, errors.ErrCodeInvalidHarness) {
		t.Errorf("missing harness error = %v, want INVALID_HARNESS", err)
	}

	p.Harnesses = nil
	bare, err := RenderSVG(p)
	if err != nil {
		t.Fatalf("RenderSVG(no harnesses) error: %v", err)
	}
	wellFormed(t, bare)
	if !strings.Contains(string(bare), "Panel layout 4x2") || strings.Contains(string(bare), "<line") {
		t.Error("a plan without harnesses should draw the bare wall")
	}
}

func TestRenderSVG_SinglePanel(t *testing.T) {
	svg, err := RenderSVG(compute(t, 1, 1))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	wellFormed(t, svg)
	if got := strings.Count(string(svg), `class="source"`); got != 2 {
		t.Errorf("got %d feed sources, want one per harness", got)
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		cols, want int
	}{
		{1, 12},
		{4, 12},
		{5, 11},
		{10, 10},
		{29, 7},
		{30, 6},
		{50, 6},
		{200, 6},
	}
	for _, tt := range tests {
		if got := FontSize(tt.cols); got != tt.want {
			t.Errorf("FontSize(%d) = %d, want %d", tt.cols, got, tt.want)
		}
	}
}
