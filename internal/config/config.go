// Package config loads the solver configuration.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/solver"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. KEYPADSOLVER_DEPTH.
const EnvPrefix = "KEYPADSOLVER"

// Config holds the solver configuration.
type Config struct {
	Depth      int
	Workers    int
	Partitions int
	Debug      bool
}

// Load reads configuration from defaults, an optional config file, the
// environment and flags, in increasing order of precedence. An empty path
// skips the config file.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("depth", 2)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("partitions", solver.DefaultPartitions)
	v.SetDefault("debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for _, name := range []string{"depth", "workers", "partitions", "debug"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Depth < 0 {
		return Config{}, fmt.Errorf("depth %d: %w", c.Depth, solver.ErrInvalidDepth)
	}
	return c, nil
}

// Options returns the solver options of c.
func (c Config) Options() []solver.Option {
	return []solver.Option{solver.WithWorkers(c.Workers), solver.WithPartitions(c.Partitions)}
}
