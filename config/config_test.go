package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/evolve2d/genetic"
	"github.com/lixenwraith/evolve2d/genetic/genome"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evolve2d.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.PopulationSize != 100 || cfg.Elitism != 2 || cfg.MutationRate != 0.1 {
		t.Errorf("unexpected population defaults: %+v", cfg)
	}
	if cfg.GenerationLimit != 1000 || cfg.ReportCount != 100 || cfg.GenomeLength != 32 {
		t.Errorf("unexpected run defaults: %+v", cfg)
	}
	if cfg.Domain != (Domain{XMin: -5, XMax: 5, YMin: -5, YMax: 5}) {
		t.Errorf("unexpected domain: %+v", cfg.Domain)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
population_size = 20
generation_limit = 10
seed = 7

[domain]
x_min = -2.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := Default()
	want.PopulationSize = 20
	want.GenerationLimit = 10
	want.Seed = 7
	want.Domain.XMin = -2.5

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, "population_size = 20\nelitsm = 3\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "elitsm") {
		t.Errorf("expected error to name the key, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "mutation_rate = 2.0\n")

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for mutation rate 2.0")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "population_size = \n")

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"odd genome", func(c *Config) { c.GenomeLength = 31 }, "genome length"},
		{"zero genome", func(c *Config) { c.GenomeLength = 0 }, "genome length"},
		{"negative reports", func(c *Config) { c.ReportCount = -1 }, "report count"},
		{"inverted x", func(c *Config) { c.Domain.XMin, c.Domain.XMax = 5, -5 }, "domain x"},
		{"empty y", func(c *Config) { c.Domain.YMax = c.Domain.YMin }, "domain y"},
		{"elite exceeds population", func(c *Config) { c.Elitism = 101 }, "elite count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := Default()
	cfg.GenomeLength = 3
	cfg.PopulationSize = 1
	cfg.Elitism = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "genome length") || !strings.Contains(err.Error(), "pool size") {
		t.Errorf("expected both failures reported, got %v", err)
	}
}

func TestProjections(t *testing.T) {
	cfg := Default()
	cfg.Parallelism = 4
	cfg.Domain.YMax = 10

	wantEngine := genetic.Config{
		PoolSize:        100,
		EliteCount:      2,
		MutationRate:    0.1,
		GenerationLimit: 1000,
		Parallelism:     4,
	}
	if diff := cmp.Diff(wantEngine, cfg.Engine()); diff != "" {
		t.Errorf("engine projection mismatch (-want +got):\n%s", diff)
	}

	wantCodec := genome.Codec{
		Length: 32,
		X:      genetic.ParameterBounds{Min: -5, Max: 5},
		Y:      genetic.ParameterBounds{Min: -5, Max: 10},
	}
	if diff := cmp.Diff(wantCodec, cfg.Codec()); diff != "" {
		t.Errorf("codec projection mismatch (-want +got):\n%s", diff)
	}
}
