package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"poolPricer/internal/batch"
	"poolPricer/internal/config"
	"poolPricer/internal/pricing"
	"poolPricer/internal/storage"
)

func runBatch(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadBatch(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	calc := pricing.NewCalculator(pricing.CalculatorConfig{IncludeCalldata: cfg.Calldata}, logger)
	runner := batch.NewRunner(batch.RunConfig{
		Input:             cfg.In,
		BatchSize:         cfg.BatchSize,
		CheckpointPath:    cfg.Checkpoint,
		CheckpointEnabled: cfg.CheckpointEnabled,
	}, calc, storage.NewJsonlStorage(cfg.Out, cfg.Errors), logger)

	logger.Info("batch start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.Int("batch_size", cfg.BatchSize),
		zap.Bool("checkpoint_enabled", cfg.CheckpointEnabled),
		zap.String("checkpoint", cfg.Checkpoint),
	)

	stats, err := runner.Run(ctx, inputFile)
	if err != nil {
		return err
	}

	logger.Info("batch complete",
		zap.Int("total", stats.Total),
		zap.Int("computed", stats.Computed),
		zap.Int("resumed", stats.Resumed),
		zap.Int("failed", stats.Failed),
	)

	return nil
}
