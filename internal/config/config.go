package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "POOLPRICE"

// Seed pair of the USDC/ZSTRAT pool on Base.
const (
	DefaultTokenA  = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	DefaultAmountA = "1e6"
	DefaultTokenB  = "0x2Add1065570c3847716aA9C52DF81A5E56172055"
	DefaultAmountB = "1000e18"
)

// Config holds configuration for a single price calculation.
type Config struct {
	TokenA    string
	AmountA   string
	DecimalsA uint8
	TokenB    string
	AmountB   string
	DecimalsB uint8
	Output    string
	Calldata  bool
	LogLevel  string
}

// Load merges .env, config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("token-a", DefaultTokenA)
		v.SetDefault("amount-a", DefaultAmountA)
		v.SetDefault("token-b", DefaultTokenB)
		v.SetDefault("amount-b", DefaultAmountB)
		v.SetDefault("output", "int")
		v.SetDefault("log-level", "warn")
	})
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		TokenA:    v.GetString("token-a"),
		AmountA:   v.GetString("amount-a"),
		DecimalsA: uint8(v.GetUint("decimals-a")),
		TokenB:    v.GetString("token-b"),
		AmountB:   v.GetString("amount-b"),
		DecimalsB: uint8(v.GetUint("decimals-b")),
		Output:    strings.ToLower(v.GetString("output")),
		Calldata:  v.GetBool("calldata"),
		LogLevel:  v.GetString("log-level"),
	}

	if cfg.Output != "int" && cfg.Output != "json" {
		return Config{}, fmt.Errorf("unsupported output %q (int, json)", cfg.Output)
	}
	if err := checkDecimals(v, "decimals-a", "decimals-b"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, defaults func(v *viper.Viper)) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if defaults != nil {
		defaults(v)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func checkDecimals(v *viper.Viper, keys ...string) error {
	for _, key := range keys {
		if d := v.GetInt(key); d < 0 || d > 255 {
			return fmt.Errorf("%s out of range: %d", key, d)
		}
	}
	return nil
}
