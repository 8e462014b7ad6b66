package grid

import (
	"slices"
	"testing"

	"github.com/matzehuels/ledwire/pkg/errors"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		row  int
		want Heading
	}{
		{0, LeftToRight},
		{1, RightToLeft},
		{2, LeftToRight},
		{3, RightToLeft},
	}

	for _, tt := range tests {
		if got := Direction(tt.row); got != tt.want {
			t.Errorf("Direction(%d) = %v, want %v", tt.row, got, tt.want)
		}
	}
}

func TestBuild_Serpentine(t *testing.T) {
	panels, err := Build(3, 3)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Row 0 left to right, row 1 right to left, row 2 left to right.
	want := [][]int{
		{1, 2, 3},
		{6, 5, 4},
		{7, 8, 9},
	}
	got := Matrix(panels, 3, 3)
	for r := range want {
		if !slices.Equal(got[r], want[r]) {
			t.Errorf("row %d orders = %v, want %v", r, got[r], want[r])
		}
	}
}

func TestBuild_IDsAreRowMajor(t *testing.T) {
	panels, err := Build(4, 2)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	for _, p := range panels {
		if want := p.Row*4 + p.Col + 1; p.ID != want {
			t.Errorf("panel (%d,%d) ID = %d, want %d", p.Row, p.Col, p.ID, want)
		}
	}
	// The fifth panel visited is the rightmost panel of row 1.
	if p := panels[4]; p.Row != 1 || p.Col != 3 || p.ID != 8 {
		t.Errorf("panels[4] = %+v, want row 1 col 3 id 8", p)
	}
}

func TestBuild_TraversalOrder(t *testing.T) {
	panels, err := Build(5, 4)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for i, p := range panels {
		if p.Order != i+1 {
			t.Fatalf("panels[%d].Order = %d, want %d", i, p.Order, i+1)
		}
	}
}

func TestBuild_Degenerate(t *testing.T) {
	t.Run("single column", func(t *testing.T) {
		panels, err := Build(1, 4)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		for i, p := range panels {
			if p.Col != 0 || p.Row != i || p.Order != i+1 {
				t.Errorf("panels[%d] = %+v", i, p)
			}
		}
	})

	t.Run("single row", func(t *testing.T) {
		panels, err := Build(6, 1)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		for i, p := range panels {
			if p.Row != 0 || p.Col != i || p.Order != i+1 {
				t.Errorf("panels[%d] = %+v", i, p)
			}
		}
	})

	t.Run("single panel", func(t *testing.T) {
		panels, err := Build(1, 1)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		if len(panels) != 1 || panels[0] != (Panel{ID: 1, Row: 0, Col: 0, Order: 1}) {
			t.Errorf("Build(1,1) = %+v", panels)
		}
	})
}

func TestBuild_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
	}{
		{"zero cols", 0, 2},
		{"negative cols", -1, 2},
		{"zero rows", 4, 0},
		{"five rows", 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panels, err := Build(tt.cols, tt.rows)
			if !errors.Is(err, errors.ErrCodeInvalidDimensions) {
				t.Errorf("Build(%d, %d) error = %v, want INVALID_DIMENSIONS", tt.cols, tt.rows, err)
			}
			if panels != nil {
				t.Errorf("Build(%d, %d) returned partial result %v", tt.cols, tt.rows, panels)
			}
		})
	}
}

func TestBuild_Idempotent(t *testing.T) {
	a, _ := Build(7, 3)
	b, _ := Build(7, 3)
	if !slices.Equal(a, b) {
		t.Error("Build should return identical panels for identical input")
	}
}

func TestDisplayRow(t *testing.T) {
	p := Panel{Row: 0}
	if got := p.DisplayRow(4); got != 3 {
		t.Errorf("DisplayRow(4) for row 0 = %d, want 3", got)
	}
	p = Panel{Row: 3}
	if got := p.DisplayRow(4); got != 0 {
		t.Errorf("DisplayRow(4) for row 3 = %d, want 0", got)
	}
}

func TestByRow(t *testing.T) {
	panels, _ := Build(3, 2)

	// Feed the panels in reverse to make sure grouping sorts by order.
	reversed := slices.Clone(panels)
	slices.Reverse(reversed)

	rows := ByRow(reversed)
	if len(rows) != 2 {
		t.Fatalf("ByRow() returned %d rows, want 2", len(rows))
	}

	var cols []int
	for _, p := range rows[1] {
		cols = append(cols, p.Col)
	}
	if !slices.Equal(cols, []int{2, 1, 0}) {
		t.Errorf("row 1 visitation cols = %v, want [2 1 0]", cols)
	}
	if reversed[0].Order != 6 {
		t.Error("ByRow should not modify its input")
	}
}

func TestAt(t *testing.T) {
	panels, _ := Build(2, 2)
	p, ok := At(panels, 1, 1)
	if !ok || p.Order != 3 {
		t.Errorf("At(1,1) = %+v, %v; want order 3", p, ok)
	}
	if _, ok := At(panels, 2, 0); ok {
		t.Error("At() should report missing panels")
	}
}
