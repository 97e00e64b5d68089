package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"poolPricer/internal/config"
	"poolPricer/internal/dex"
	"poolPricer/internal/pricing"
)

func runDecode(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDecode(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Calldata == "" {
		return fmt.Errorf("calldata is required")
	}

	data, err := hexutil.Decode(cfg.Calldata)
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	sqrtPrice, err := dex.DecodeInitialize(data)
	if err != nil {
		return err
	}

	inverse, err := pricing.Reciprocal(sqrtPrice)
	if err != nil {
		return err
	}

	price := pricing.FormatPrice(pricing.Price(sqrtPrice, cfg.Decimals0, cfg.Decimals1))
	fields := []zap.Field{
		zap.String("sqrt_price_x96", sqrtPrice.String()),
		zap.String("inverse_sqrt_price_x96", inverse.String()),
		zap.String("price", price),
		zap.Bool("in_range", pricing.InRange(sqrtPrice)),
	}
	if tick, err := pricing.TickAtSqrtPrice(sqrtPrice); err == nil {
		fields = append(fields, zap.Int32("tick", tick))
	}
	logger.Info("initialize calldata decoded", fields...)

	fmt.Fprintln(cmd.OutOrStdout(), sqrtPrice.String(), price, inverse.String())
	return nil
}
