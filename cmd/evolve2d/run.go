package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/evolve2d/genetic"
	"github.com/lixenwraith/evolve2d/genetic/organism"
	"github.com/lixenwraith/evolve2d/report"
)

// runEvolution executes one configured run and reports at scheduled generations
func runEvolution(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	// Logs would tear the full-screen panel
	logger := zap.NewNop()
	if !opts.tui {
		logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	engine, err := organism.NewEngine(newFactory(cfg), cfg.Engine(), genetic.NewRand(cfg.Seed))
	if err != nil {
		return err
	}
	engine.SetLogger(logger)

	var reporter report.Reporter
	var panel *report.Screen
	var screen tcell.Screen
	if opts.tui {
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		defer screen.Fini()
		panel = report.NewScreen(screen)
		reporter = panel
	} else {
		reporter = report.NewText(cmd.OutOrStdout())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Info("run started",
		zap.Uint64("seed", cfg.Seed),
		zap.Int("population_size", cfg.PopulationSize),
		zap.Int("elitism", cfg.Elitism),
		zap.Float64("mutation_rate", cfg.MutationRate),
		zap.Int("generation_limit", cfg.GenerationLimit))

	schedule := report.Schedule{Limit: cfg.GenerationLimit, Count: cfg.ReportCount}
	var reportErr error
	pool, err := engine.Run(ctx, func(pool *genetic.Pool[organism.Organism, float64]) {
		if reportErr != nil || !schedule.Due(pool.Generation) {
			return
		}
		if reportErr = reporter.Report(pool.Generation, pool.Members[0].Data); reportErr != nil {
			cancel()
		}
	})
	// A failed report cancels the run; the report error is the cause
	if reportErr != nil {
		logger.Error("report failed", zap.Int("generation", pool.Generation), zap.Error(reportErr))
		return fmt.Errorf("report: %w", reportErr)
	}
	if err != nil {
		logger.Error("run failed", zap.String("kind", genetic.Kind(err)), zap.Error(err))
		return err
	}

	logger.Info("run complete",
		zap.Int("generation", pool.Generation),
		zap.Float64("best", pool.Stats.BestScore),
		zap.Float64("diversity", pool.Stats.Diversity))

	if panel != nil {
		panel.Footer(fmt.Sprintf("finished, seed %d, press any key to exit", cfg.Seed))
		waitForKey(screen)
	}
	return nil
}

// waitForKey blocks until a key press or the screen closes
func waitForKey(screen tcell.Screen) {
	for {
		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
