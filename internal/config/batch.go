package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BatchConfig holds configuration for the batch command.
type BatchConfig struct {
	In                string
	Out               string
	Errors            string
	BatchSize         int
	Checkpoint        string
	CheckpointEnabled bool
	Calldata          bool
	LogLevel          string
}

// LoadBatch merges .env, config file, environment variables, and flags into BatchConfig.
func LoadBatch(cfgFile string, flags *pflag.FlagSet) (BatchConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("out", "./data/pool_inits.jsonl")
		v.SetDefault("errors", "./data/calc_errors.jsonl")
		v.SetDefault("batch-size", 500)
		v.SetDefault("checkpoint", "./data/batch_checkpoint.json")
		v.SetDefault("checkpoint-enabled", false)
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return BatchConfig{}, err
	}

	cfg := BatchConfig{
		In:                v.GetString("in"),
		Out:               v.GetString("out"),
		Errors:            v.GetString("errors"),
		BatchSize:         v.GetInt("batch-size"),
		Checkpoint:        v.GetString("checkpoint"),
		CheckpointEnabled: v.GetBool("checkpoint-enabled"),
		Calldata:          v.GetBool("calldata"),
		LogLevel:          v.GetString("log-level"),
	}

	return cfg, nil
}
