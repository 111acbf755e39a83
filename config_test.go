package numint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numint.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(ConfigEnv, t.TempDir())
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	exp := Config{
		Function:  Poly1,
		Newton:    NewtonConfig{Left: -2, Right: 2, Tolerance: 0.001, MaxPanels: DefaultMaxPanels, Weighted: true},
		Gauss:     GaussConfig{Nodes: 3},
		Plot:      DefaultPlotConfig(),
		OutputDir: ".",
		LogLevel:  "info",
	}
	if c != exp {
		t.Fatalf("got %+v\nexpected %+v", c, exp)
	}
}

func TestLoadConfigFromEnvDirectory(t *testing.T) {
	path := writeConfig(t, "function = \"sinusoidal\"\n")
	t.Setenv(ConfigEnv, filepath.Dir(path))
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Function != Sinusoidal {
		t.Fatalf("expected sinusoidal, got %s", c.Function)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `function = "Mixed"

[newton]
left = 3.5
right = -1.0
tolerance = 1e-7
max_panels = 200
weighted = false

[gauss]
nodes = 5
proper_weight = true

[plot]
margin = 2.5
outer_samples = 10
inner_samples = 100

[general]
output_path = "/tmp/numint"
log_level = "DEBUG"
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	exp := Config{
		Function:  Mixed,
		Newton:    NewtonConfig{Left: 3.5, Right: -1, Tolerance: 1e-7, MaxPanels: 200},
		Gauss:     GaussConfig{Nodes: 5, ProperWeight: true},
		Plot:      PlotConfig{Margin: 2.5, OuterSamples: 10, InnerSamples: 100},
		OutputDir: "/tmp/numint",
		LogLevel:  "debug",
	}
	if c != exp {
		t.Fatalf("got %+v\nexpected %+v", c, exp)
	}
	if c.Newton.Weight()(1) != 1 {
		t.Fatal("unweighted configuration should not weight")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv(ConfigEnv, t.TempDir())
	t.Setenv("NUMINT_NEWTON_TOLERANCE", "1e-5")
	t.Setenv("NUMINT_GAUSS_NODES", "6")
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Newton.Tolerance != 1e-5 || c.Gauss.Nodes != 6 {
		t.Fatalf("environment not applied: %+v", c)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, content := range []string{
		"function = \"tan\"\n",
		"[newton]\ntolerance = 0.0\n",
		"[newton]\nmax_panels = 1\n",
		"[gauss]\nnodes = 7\n",
		"[plot]\ninner_samples = 0\n",
		"[plot]\nmargin = -1.0\n",
		"[general]\nlog_level = \"chatty\"\n",
	} {
		if _, err := LoadConfig(writeConfig(t, content)); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%q: expected ErrInvalidArgument, got %v", content, err)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing explicit file")
	}
}
