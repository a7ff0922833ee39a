package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/evolve2d/config"
	"github.com/lixenwraith/evolve2d/genetic"
	"github.com/lixenwraith/evolve2d/genetic/fitness"
	"github.com/lixenwraith/evolve2d/genetic/genome"
	"github.com/lixenwraith/evolve2d/genetic/organism"
	"github.com/lixenwraith/evolve2d/report"
)

// options collects command-line flags shared by all commands
type options struct {
	configPath  string
	seed        uint64
	parallelism int
	tui         bool
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var genErr *genetic.GenerationError
		if errors.As(err, &genErr) {
			fmt.Fprintf(os.Stderr, "evolve2d: %s failure: %v\n", genetic.Kind(err), err)
		} else {
			fmt.Fprintf(os.Stderr, "evolve2d: %v\n", err)
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "evolve2d",
		Short: "Maximize ((cos x + sin y)^2) / (x^2 + y^2) with a genetic algorithm",
		Long: `evolve2d evolves a population of 32-bit genomes, each decoding to a point
in [-5, 5] x [-5, 5], and reports the best organism at evenly spaced
generations.

Defaults: population 100, elitism 2, mutation rate 0.1, 1000 generations,
100 reports. A TOML file given with --config overrides any of them.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvolution(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log per-generation statistics")
	root.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 picks one)")
	root.Flags().IntVar(&opts.parallelism, "parallelism", 0, "Concurrent fitness evaluations")
	root.Flags().BoolVar(&opts.tui, "tui", false, "Show reports on a full-screen terminal panel")

	root.AddCommand(newDecodeCmd(opts))
	return root
}

// newDecodeCmd prints the report block of a single genome, or of the genome
// nearest to a point given with --point
func newDecodeCmd(opts *options) *cobra.Command {
	var point string

	cmd := &cobra.Command{
		Use:   "decode [genome]",
		Short: "Decode a genome string and print its point and fitness",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			var g genome.Genome
			switch {
			case len(args) == 1 && point == "":
				if g, err = genome.Parse(args[0]); err != nil {
					return err
				}
				if len(g) != cfg.GenomeLength {
					return fmt.Errorf("%w: length %d, configured length %d", genetic.ErrInvalidGenome, len(g), cfg.GenomeLength)
				}
			case len(args) == 0 && point != "":
				p, err := parsePoint(point)
				if err != nil {
					return err
				}
				codec := cfg.Codec()
				if !codec.X.Contains(p.X) || !codec.Y.Contains(p.Y) {
					return fmt.Errorf("point (%v, %v) outside domain [%v, %v] x [%v, %v]",
						p.X, p.Y, codec.X.Min, codec.X.Max, codec.Y.Min, codec.Y.Max)
				}
				if g, err = codec.Encode(p); err != nil {
					return err
				}
			default:
				return errors.New("decode needs either a genome argument or --point")
			}

			factory := newFactory(cfg)
			return report.NewText(cmd.OutOrStdout()).Describe(factory.New(g))
		},
	}

	cmd.Flags().StringVar(&point, "point", "", "Encode the point x,y and decode the nearest genome")
	return cmd
}

// parsePoint reads "x,y"
func parsePoint(s string) (genome.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return genome.Point{}, fmt.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return genome.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return genome.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return genome.Point{X: x, Y: y}, nil
}

// loadConfig resolves defaults, the optional file and explicitly set flags
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("parallelism") {
		cfg.Parallelism = opts.parallelism
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newFactory(cfg config.Config) organism.Factory {
	return organism.Factory{
		Length:    cfg.GenomeLength,
		Codec:     cfg.Codec(),
		Objective: fitness.Wave,
	}
}
