package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lpriccio/octofact/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Q != 5 || cfg.Radius != 3 {
		t.Fatalf("Default() = %+v; want {4,5} radius 3", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("q: 7\nradius: 2\nmax_tiles: 500\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Q != 7 || cfg.Radius != 2 || cfg.MaxTiles != 500 {
		t.Errorf("Parse = %+v", cfg)
	}
	// Partial documents keep the remaining defaults.
	cfg, err = config.Parse([]byte("q: 6\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Radius != 3 {
		t.Errorf("radius default lost: %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		yaml string
		want error
	}{
		{"q: 4\n", config.ErrVertexCount},
		{"q: 0\n", config.ErrVertexCount},
		{"radius: -1\n", config.ErrRadius},
		{"max_tiles: -5\n", config.ErrMaxTiles},
	}
	for _, c := range cases {
		if _, err := config.Parse([]byte(c.yaml)); !errors.Is(err, c.want) {
			t.Errorf("Parse(%q): got %v; want %v", c.yaml, err, c.want)
		}
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := config.Parse([]byte("q: [not a number\n")); err == nil {
		t.Error("malformed YAML must fail")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(strings.NewReader("q: 9\nradius: 1\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Q != 9 || cfg.Radius != 1 {
		t.Errorf("Load = %+v", cfg)
	}
}
