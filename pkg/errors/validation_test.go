package errors

import (
	"strings"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantErr    bool
	}{
		{"single panel", 1, 1, false},
		{"typical wall", 10, 4, false},
		{"wide wall", 200, 2, false},
		{"max rows", 3, MaxRows, false},

		{"zero cols", 0, 1, true},
		{"negative cols", -3, 2, true},
		{"zero rows", 5, 0, true},
		{"too many rows", 5, MaxRows + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.cols, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.cols, tt.rows, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateRunLength(t *testing.T) {
	for _, n := range []int{1, 5, 11, 1000} {
		if err := ValidateRunLength(n); err != nil {
			t.Errorf("ValidateRunLength(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{0, -1, -11} {
		err := ValidateRunLength(n)
		if !Is(err, ErrCodeInvalidPolicy) {
			t.Errorf("ValidateRunLength(%d) = %v, want INVALID_POLICY", n, err)
		}
	}
}

func TestValidateFeedPoints(t *testing.T) {
	if err := ValidateFeedPoints(0); err != nil {
		t.Errorf("zero feed points should be accepted: %v", err)
	}
	if err := ValidateFeedPoints(2); err != nil {
		t.Errorf("positive feed points should be accepted: %v", err)
	}
	if !Is(ValidateFeedPoints(-1), ErrCodeInvalidPolicy) {
		t.Error("negative feed points should be INVALID_POLICY")
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "wall.svg", false},
		{"nested", "out/wall.pdf", false},
		{"absolute", "/tmp/wall.png", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "wall\x00.svg", true},
		{"newline", "wall\n.svg", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
