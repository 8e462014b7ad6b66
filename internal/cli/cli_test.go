package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// isolate points config and cache lookups at empty temp directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func execute(t *testing.T, args ...string) (*CLI, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return c, root.ExecuteContext(context.Background())
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"plan", "render", "visualize", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag missing")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg, PDF ,json", []string{"svg", "pdf", "json"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestWallFlagsApply(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := &cobra.Command{Use: "test"}
	var wall wallFlags
	wall.register(cmd)
	if err := cmd.ParseFlags([]string{"--cols", "7", "--no-lan-run", "--power-run", "3", "--feeds", "2"}); err != nil {
		t.Fatal(err)
	}

	opts := c.baseOptions()
	wall.apply(cmd, &opts)

	if opts.Cols != 7 {
		t.Errorf("Cols = %d, want 7", opts.Cols)
	}
	if opts.Rows != 4 {
		t.Errorf("Rows = %d, want the default 4", opts.Rows)
	}
	for _, hp := range opts.Policies {
		switch hp.Harness {
		case cable.LAN:
			if hp.Policy.Bounded() {
				t.Error("--no-lan-run should remove the LAN run length")
			}
		case cable.Power:
			if !hp.Policy.Bounded() || *hp.Policy.MaxRunLength != 3 {
				t.Errorf("power policy = %s, want run=3", hp.Policy)
			}
		}
		if hp.Policy.Feeds() != 2 {
			t.Errorf("%s feeds = %d, want 2", hp.Harness, hp.Policy.Feeds())
		}
	}
}

func TestRenderFlagsApply(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := &cobra.Command{Use: "test"}
	var out renderFlags
	out.register(cmd)
	if err := cmd.ParseFlags([]string{"-f", "png,dot", "--numbers=false"}); err != nil {
		t.Fatal(err)
	}

	opts := c.baseOptions()
	out.apply(cmd, &opts)

	if len(opts.Formats) != 2 || opts.Formats[1] != "dot" {
		t.Errorf("Formats = %v, want [png dot]", opts.Formats)
	}
	if !opts.HideNumbers {
		t.Error("--numbers=false should hide order numbers")
	}
	if opts.Scale != 1.0 {
		t.Errorf("Scale = %v, want the config default", opts.Scale)
	}
}

func TestWallFlagsKeepConfig(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "ledwire.toml")
	if err := os.WriteFile(cfgPath, []byte("[grid]\ncols = 6\nrows = 2\n\n[harness.lan]\nmax_run_length = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "wall.json")
	if _, err := execute(t, "--config", cfgPath, "plan", "--no-cache", "-o", out); err != nil {
		t.Fatalf("plan: %v", err)
	}

	p, err := plan.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if p.Cols != 6 || p.Rows != 2 {
		t.Errorf("wall = %dx%d, want 6x2 from config", p.Cols, p.Rows)
	}
	lan, _ := p.Harness(cable.LAN)
	if lan.Policy.MaxRunLength == nil || *lan.Policy.MaxRunLength != 4 {
		t.Errorf("lan policy = %s, want run=4 from config", lan.Policy)
	}
}

func TestPlanCommand_Invalid(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "plan", "--rows", "5", "--no-cache"); err == nil {
		t.Error("plan --rows 5 should fail")
	}
	if _, err := execute(t, "plan", "--lan-run", "0", "--no-cache"); err == nil {
		t.Error("plan --lan-run 0 should fail")
	}
	if _, err := execute(t, "plan", "--lan-run", "4", "--no-lan-run"); err == nil {
		t.Error("--lan-run and --no-lan-run are mutually exclusive")
	}
	if _, err := execute(t, "plan", "-o", "wall.txt"); err == nil {
		t.Error("plan -o with an unknown extension should fail")
	}
}

func TestRenderCommand(t *testing.T) {
	isolate(t)
	base := filepath.Join(t.TempDir(), "out", "wall")

	if _, err := execute(t, "render", "-c", "3", "-r", "2", "-f", "svg,json,dot", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, ext := range []string{".svg", ".json", ".dot"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s: %v", base+ext, err)
		}
	}

	if _, err := execute(t, "render", "-f", "gif"); err == nil {
		t.Error("render -f gif should fail")
	}
}

func TestVisualizeCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	planPath := filepath.Join(dir, "wall.yaml")
	if _, err := execute(t, "plan", "-c", "4", "-r", "3", "-o", planPath); err != nil {
		t.Fatalf("plan: %v", err)
	}

	svgPath := filepath.Join(dir, "drawing.svg")
	if _, err := execute(t, "visualize", planPath, "-o", svgPath, "--scale", "0.5"); err != nil {
		t.Fatalf("visualize: %v", err)
	}
	if info, err := os.Stat(svgPath); err != nil || info.Size() == 0 {
		t.Errorf("visualize did not write %s", svgPath)
	}

	if _, err := execute(t, "visualize", filepath.Join(dir, "missing.json")); err == nil {
		t.Error("visualize of a missing file should fail")
	}
}

func TestCacheClear(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "render", "-c", "2", "-r", "1", "-f", "json", "-o", filepath.Join(t.TempDir(), "w.json")); err != nil {
		t.Fatal(err)
	}

	c, err := execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	dir, _ := c.cacheDir()
	entries, _ := filepath.Glob(filepath.Join(dir, "*", "*.sz"))
	if len(entries) != 0 {
		t.Errorf("cache still holds %d entries", len(entries))
	}
}

func TestConfigFlag_Missing(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "plan"); err == nil {
		t.Error("an explicit missing config file should fail")
	}
}
