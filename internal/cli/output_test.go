package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, base, want string
	}{
		{"", "wall-10x4", "wall-10x4"},
		{"out/wall.svg", "x", "out/wall"},
		{"out/wall.pdf", "x", "out/wall"},
		{"out/wall", "x", "out/wall"},
		{"out/wall.v2", "x", "out/wall.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.base); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.base, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, base, format string
		single               bool
		want                 string
	}{
		{"diagram.svg", "w", "svg", true, "diagram.svg"},
		{"diagram.svg", "w", "png", false, "diagram.png"},
		{"", "wall-3x2", "dot", true, "wall-3x2.dot"},
		{"", "wall-3x2", "json", false, "wall-3x2.json"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.base, tt.format, tt.single); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q", tt.output, tt.base, tt.format, tt.single, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>"), "dot": []byte("digraph G {}")},
		formats:   []string{"svg", "dot"},
		output:    filepath.Join(dir, "nested", "wall.svg"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}

	for _, name := range []string{"wall.svg", "wall.dot"} {
		data, err := os.ReadFile(filepath.Join(dir, "nested", name))
		if err != nil {
			t.Errorf("read %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestWriteArtifacts_BadPath(t *testing.T) {
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": nil},
		formats:   []string{"svg"},
		output:    "bad\x00path",
	})
	if err == nil {
		t.Error("writeArtifacts() should reject control characters")
	}
}
