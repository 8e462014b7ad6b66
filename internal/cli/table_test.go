package cli

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/ledwire/pkg/plan"
	"github.com/matzehuels/ledwire/pkg/render/diagram"
)

func TestWriteMatrix(t *testing.T) {
	p, err := plan.Compute(3, 2, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writeMatrix(&buf, p)

	want := "  1 2 3\n  6 5 4\n"
	if buf.String() != want {
		t.Errorf("writeMatrix() =\n%s\nwant\n%s", buf.String(), want)
	}
}

// The terminal matrix and the wiring diagram must agree on which edge of the
// wall the chain starts.
func TestWriteMatrix_MatchesDiagram(t *testing.T) {
	p, err := plan.Compute(2, 2, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writeMatrix(&buf, p)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 || strings.TrimSpace(lines[0]) != "1 2" {
		t.Fatalf("first matrix line = %q, want orders 1 2", lines[0])
	}

	svg, err := diagram.RenderSVG(p, diagram.WithNumbers(true))
	if err != nil {
		t.Fatal(err)
	}
	ys := map[string]float64{}
	for _, m := range orderLabel.FindAllStringSubmatch(string(svg), -1) {
		y, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			t.Fatal(err)
		}
		if _, seen := ys[m[2]]; !seen {
			ys[m[2]] = y
		}
	}
	if ys["1"] >= ys["3"] {
		t.Errorf("diagram draws order 1 at y=%.1f and order 3 at y=%.1f; first row should be on top", ys["1"], ys["3"])
	}
}

var orderLabel = regexp.MustCompile(`<text class="order" x="[0-9.]+" y="([0-9.]+)"[^>]*>(\d+)</text>`)

func TestWriteMatrix_Padding(t *testing.T) {
	p, err := plan.Compute(10, 1, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writeMatrix(&buf, p)

	if got := buf.String(); !strings.HasPrefix(got, "   1  2") || !strings.HasSuffix(got, " 10\n") {
		t.Errorf("writeMatrix() = %q, want two-digit cells", got)
	}
}

func TestWriteTierTable(t *testing.T) {
	p, err := plan.Compute(10, 4, plan.DefaultPolicies())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writeTierTable(&buf, p)
	out := buf.String()

	for _, want := range []string{"Harness", "LAN", "Power", "run=11 feeds=1", "run=5 feeds=1", "33", "32"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
