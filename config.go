package qsym

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// InputPrefix names the designated inputs bound by Call: prefix + index.
	InputPrefix string `mapstructure:"input_prefix"`
	// Verbose logs one line per evolution, composition and readout.
	Verbose bool `mapstructure:"verbose"`
}

func NewConfig() *Config {
	return &Config{
		InputPrefix: "inputs_",
	}
}

/*
LoadConfig reads a YAML configuration file on top of the defaults.
Environment variables prefixed with QSYM override file values, for example
QSYM_VERBOSE=true. An empty path reads the environment only.
*/
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("QSYM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := NewConfig()
	v.SetDefault("input_prefix", defaults.InputPrefix)
	v.SetDefault("verbose", defaults.Verbose)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
