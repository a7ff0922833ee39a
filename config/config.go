// Package config holds the run configuration and its TOML loading
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/evolve2d/genetic"
	"github.com/lixenwraith/evolve2d/genetic/genome"
	"github.com/lixenwraith/evolve2d/parameter"
)

// Config is the complete run configuration
type Config struct {
	MutationRate    float64 `toml:"mutation_rate"`
	Elitism         int     `toml:"elitism"`
	PopulationSize  int     `toml:"population_size"`
	GenerationLimit int     `toml:"generation_limit"`
	ReportCount     int     `toml:"report_count"`
	GenomeLength    int     `toml:"genome_length"`
	Parallelism     int     `toml:"parallelism"`
	// Seed 0 draws a random seed
	Seed   uint64 `toml:"seed"`
	Domain Domain `toml:"domain"`
}

// Domain bounds both decoded axes
type Domain struct {
	XMin float64 `toml:"x_min"`
	XMax float64 `toml:"x_max"`
	YMin float64 `toml:"y_min"`
	YMax float64 `toml:"y_max"`
}

// Default returns the standard configuration
func Default() Config {
	return Config{
		MutationRate:    parameter.GAMutationRate,
		Elitism:         parameter.GAEliteCount,
		PopulationSize:  parameter.GAPopulationSize,
		GenerationLimit: parameter.GAGenerationLimit,
		ReportCount:     parameter.GAReportCount,
		GenomeLength:    parameter.GAGenomeLength,
		Parallelism:     parameter.GAParallelism,
		Domain: Domain{
			XMin: parameter.GADomainMin,
			XMax: parameter.GADomainMax,
			YMin: parameter.GADomainMin,
			YMax: parameter.GADomainMax,
		},
	}
}

// Load reads a TOML file over the defaults
// Keys absent from the file keep their default; unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field
func (c Config) Validate() error {
	errs := []error{c.Engine().Validate()}

	if c.GenomeLength <= 0 || c.GenomeLength%2 != 0 {
		errs = append(errs, fmt.Errorf("genome length %d: must be positive and even", c.GenomeLength))
	}
	if c.ReportCount < 0 {
		errs = append(errs, fmt.Errorf("report count %d: must not be negative", c.ReportCount))
	}
	if !(c.Domain.XMin < c.Domain.XMax) {
		errs = append(errs, fmt.Errorf("domain x [%v, %v]: min must be below max", c.Domain.XMin, c.Domain.XMax))
	}
	if !(c.Domain.YMin < c.Domain.YMax) {
		errs = append(errs, fmt.Errorf("domain y [%v, %v]: min must be below max", c.Domain.YMin, c.Domain.YMax))
	}
	return errors.Join(errs...)
}

// Engine projects the engine parameters
func (c Config) Engine() genetic.Config {
	return genetic.Config{
		PoolSize:        c.PopulationSize,
		EliteCount:      c.Elitism,
		MutationRate:    c.MutationRate,
		GenerationLimit: c.GenerationLimit,
		Parallelism:     c.Parallelism,
	}
}

// Codec projects the genome codec
func (c Config) Codec() genome.Codec {
	return genome.Codec{
		Length: c.GenomeLength,
		X:      genetic.ParameterBounds{Min: c.Domain.XMin, Max: c.Domain.XMax},
		Y:      genetic.ParameterBounds{Min: c.Domain.YMin, Max: c.Domain.YMax},
	}
}
