package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DecodeConfig holds configuration for the decode command.
type DecodeConfig struct {
	Calldata  string
	Decimals0 uint8
	Decimals1 uint8
	LogLevel  string
}

// LoadDecode merges .env, config file, environment variables, and flags into DecodeConfig.
func LoadDecode(cfgFile string, flags *pflag.FlagSet) (DecodeConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("log-level", "warn")
	})
	if err != nil {
		return DecodeConfig{}, err
	}
	if err := checkDecimals(v, "decimals0", "decimals1"); err != nil {
		return DecodeConfig{}, err
	}

	return DecodeConfig{
		Calldata:  v.GetString("calldata"),
		Decimals0: uint8(v.GetUint("decimals0")),
		Decimals1: uint8(v.GetUint("decimals1")),
		LogLevel:  v.GetString("log-level"),
	}, nil
}
