package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"poolPricer/internal/config"
	"poolPricer/internal/model"
	"poolPricer/internal/pricing"
)

func runCalc(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	calc := pricing.NewCalculator(pricing.CalculatorConfig{IncludeCalldata: cfg.Calldata}, logger)
	out, err := calc.Calculate(model.PairInput{
		TokenA:    cfg.TokenA,
		AmountA:   cfg.AmountA,
		DecimalsA: cfg.DecimalsA,
		TokenB:    cfg.TokenB,
		AmountB:   cfg.AmountB,
		DecimalsB: cfg.DecimalsB,
	})
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	logger.Info("sqrt price computed",
		zap.String("token0", out.Token0),
		zap.String("token1", out.Token1),
		zap.String("sqrt_price_x96", out.SqrtPriceX96),
		zap.Bool("in_range", out.InRange),
	)

	if cfg.Output == "json" {
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.SqrtPriceX96)
	return nil
}
