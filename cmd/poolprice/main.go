package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"poolPricer/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "poolprice",
		Short:        "Compute the initial sqrtPriceX96 for a two-token pool",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runCalc,
	}

	root.PersistentFlags().String("config", "", "config file path")

	root.Flags().String("token-a", config.DefaultTokenA, "first token address")
	root.Flags().String("amount-a", config.DefaultAmountA, "first token amount (base units unless --decimals-a is set)")
	root.Flags().Uint8("decimals-a", 0, "first token decimals; amount-a is scaled by 10^decimals")
	root.Flags().String("token-b", config.DefaultTokenB, "second token address")
	root.Flags().String("amount-b", config.DefaultAmountB, "second token amount (base units unless --decimals-b is set)")
	root.Flags().Uint8("decimals-b", 0, "second token decimals; amount-b is scaled by 10^decimals")
	root.Flags().String("output", "int", "output format (int, json)")
	root.Flags().Bool("calldata", false, "include initialize(uint160) calldata in json output")
	root.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute pool prices for every pair in a JSONL file",
		Args:  cobra.NoArgs,
		RunE:  runBatch,
	}

	batchCmd.Flags().String("in", "", "input pairs JSONL")
	batchCmd.Flags().String("out", "./data/pool_inits.jsonl", "output pool init JSONL (appended)")
	batchCmd.Flags().String("errors", "./data/calc_errors.jsonl", "calculation errors JSONL")
	batchCmd.Flags().Int("batch-size", 500, "records per write")
	batchCmd.Flags().String("checkpoint", "./data/batch_checkpoint.json", "checkpoint file path")
	batchCmd.Flags().Bool("checkpoint-enabled", false, "enable checkpointing")
	batchCmd.Flags().Bool("calldata", false, "include initialize(uint160) calldata")
	batchCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(batchCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode initialize(uint160) calldata into a price",
		Args:  cobra.NoArgs,
		RunE:  runDecode,
	}

	decodeCmd.Flags().String("calldata", "", "hex-encoded initialize calldata")
	decodeCmd.Flags().Uint8("decimals0", 0, "token0 decimals")
	decodeCmd.Flags().Uint8("decimals1", 0, "token1 decimals")
	decodeCmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(decodeCmd)

	return root
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
