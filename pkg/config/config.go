// Package config is the application wide settings, unmarshalled from viper
// (defaults, an optional YAML file, BIOFORGE_* environment, and the flags
// bound in cmd/bioforge).
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/liserjrqlxue/bioforge/pkg/cache"
	"github.com/liserjrqlxue/bioforge/pkg/simulate"
)

// EnvPrefix of the environment overrides, e.g. BIOFORGE_CACHE_BACKEND
const EnvPrefix = "BIOFORGE"

// LogConfig settings about logging
type LogConfig struct {
	// debug, info, warn or error
	Level string `mapstructure:"level"`
}

// SimulationConfig default parameters and noise of simulations
type SimulationConfig struct {
	TimePoints  int     `mapstructure:"time-points"`
	Environment string  `mapstructure:"environment"`
	Host        string  `mapstructure:"host"`
	Temperature float64 `mapstructure:"temperature"`
	// Seed of the noise source, 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`
	// Deterministic disables noise entirely
	Deterministic bool `mapstructure:"deterministic"`
}

// Config is the root-level settings struct
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Cache      cache.Config     `mapstructure:"cache"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("cache.backend", cache.BackendMemory)
	v.SetDefault("cache.path", "")
	v.SetDefault("cache.ttl", cache.DefaultTTL)
	v.SetDefault("simulation.time-points", simulate.DefaultTimePoints)
	v.SetDefault("simulation.environment", string(simulate.Standard))
	v.SetDefault("simulation.host", string(simulate.EColi))
	v.SetDefault("simulation.temperature", simulate.DefaultTemperature)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.deterministic", false)
}

// New viper with defaults and environment overrides; file is read when not empty
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the settings of v
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return c, err
	}
	if _, err := c.Parameters(); err != nil {
		return c, err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return c, err
	}
	return c, nil
}

// Parameters the simulation defaults as simulator input
func (c *Config) Parameters() (simulate.Parameters, error) {
	env, err := simulate.ParseEnvironment(c.Simulation.Environment)
	if err != nil {
		return simulate.Parameters{}, err
	}
	host, err := simulate.ParseHost(c.Simulation.Host)
	if err != nil {
		return simulate.Parameters{}, err
	}
	return simulate.Parameters{
		TimePoints:  c.Simulation.TimePoints,
		Environment: env,
		Host:        host,
		Temperature: c.Simulation.Temperature,
	}, nil
}

// Noise the configured noise source
func (c *Config) Noise() simulate.Noise {
	if c.Simulation.Deterministic {
		return simulate.NoNoise{}
	}
	return simulate.NewNoise(c.Simulation.Seed)
}

// SlogLevel parses Level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
