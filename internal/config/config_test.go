package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calcFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("calc", pflag.ContinueOnError)
	flags.String("token-a", DefaultTokenA, "")
	flags.String("amount-a", DefaultAmountA, "")
	flags.Uint8("decimals-a", 0, "")
	flags.String("token-b", DefaultTokenB, "")
	flags.String("amount-b", DefaultAmountB, "")
	flags.Uint8("decimals-b", 0, "")
	flags.String("output", "int", "")
	flags.Bool("calldata", false, "")
	flags.String("log-level", "warn", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", calcFlags(t))
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenA, cfg.TokenA)
	assert.Equal(t, DefaultAmountA, cfg.AmountA)
	assert.Equal(t, DefaultTokenB, cfg.TokenB)
	assert.Equal(t, DefaultAmountB, cfg.AmountB)
	assert.Equal(t, "int", cfg.Output)
	assert.False(t, cfg.Calldata)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadPrecedence(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "poolprice.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("amount-a: \"2\"\namount-b: \"3\"\ntoken-b: \"0x05\"\n"), 0o644))

	t.Setenv("POOLPRICE_AMOUNT_B", "30")
	t.Setenv("POOLPRICE_TOKEN_B", "0x06")

	cfg, err := Load(cfgFile, calcFlags(t, "--token-b", "0x07", "--output", "JSON"))
	require.NoError(t, err)

	assert.Equal(t, "2", cfg.AmountA, "config file beats default")
	assert.Equal(t, "30", cfg.AmountB, "env beats config file")
	assert.Equal(t, "0x07", cfg.TokenB, "flag beats env")
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load("", calcFlags(t, "--output", "xml"))
	assert.Error(t, err)

	t.Setenv("POOLPRICE_DECIMALS_B", "300")
	_, err = Load("", calcFlags(t))
	assert.Error(t, err)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), calcFlags(t))
	assert.Error(t, err)
}

func TestLoadBatch(t *testing.T) {
	flags := pflag.NewFlagSet("batch", pflag.ContinueOnError)
	flags.String("in", "", "")
	flags.Int("batch-size", 500, "")
	flags.Bool("checkpoint-enabled", false, "")
	require.NoError(t, flags.Parse([]string{"--in", "pairs.jsonl", "--checkpoint-enabled"}))

	t.Setenv("POOLPRICE_BATCH_SIZE", "25")

	cfg, err := LoadBatch("", flags)
	require.NoError(t, err)

	assert.Equal(t, "pairs.jsonl", cfg.In)
	assert.Equal(t, 25, cfg.BatchSize)
	assert.True(t, cfg.CheckpointEnabled)
	assert.Equal(t, "./data/pool_inits.jsonl", cfg.Out)
	assert.Equal(t, "./data/calc_errors.jsonl", cfg.Errors)
}
