package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/bioforge/pkg/cache"
	"github.com/liserjrqlxue/bioforge/pkg/config"
	"github.com/liserjrqlxue/bioforge/pkg/engine"
	"github.com/liserjrqlxue/bioforge/pkg/metrics"
)

// app state shared by the commands of one invocation
type app struct {
	configFile   string
	printMetrics bool

	cfg    config.Config
	engine *engine.Engine
	start  time.Time
}

// flag name -> viper key
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"cache-backend": "cache.backend",
	"cache-path":    "cache.path",
	"seed":          "simulation.seed",
	"deterministic": "simulation.deterministic",
	"time-points":   "simulation.time-points",
	"environment":   "simulation.environment",
	"host":          "simulation.host",
	"temperature":   "simulation.temperature",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bioforge",
		Short: "Validate, score and simulate genetic circuit designs",
		Long: `bioforge scans DNA sequences for coding regions and risk motifs,
scores designs for function and biosafety, checks part order, and simulates
expression dynamics. Every result is written to stdout as JSON.`,
		Version:            "0.1.0",
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("cache-backend", cache.BackendMemory, "result cache: memory or badger")
	flags.String("cache-path", "", "badger directory, in memory when empty")
	flags.Int64("seed", 0, "noise seed, 0 seeds from the clock")
	flags.Bool("deterministic", false, "disable simulation noise")
	flags.BoolVar(&a.printMetrics, "metrics", false, "print a metrics summary to stderr on exit")

	root.AddCommand(
		a.validateCmd(),
		a.predictCmd(),
		a.toxicityCmd(),
		a.screenCmd(),
		a.foldCmd(),
		a.safetyCmd(),
		a.simulateCmd(),
		a.pathwayCmd(),
	)
	return root
}

// setup loads the config, installs the logger and builds the engine
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.start = time.Now()
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind %s: %w", name, err)
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	c, err := cache.New(cfg.Cache, logger.With("component", "badger"))
	if err != nil {
		return err
	}
	a.engine = engine.New(
		engine.WithCache(c),
		engine.WithNoise(cfg.Noise()),
		engine.WithLogger(logger),
	)
	slog.Debug("config", "cache", cfg.Cache.Backend, "deterministic", cfg.Simulation.Deterministic)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.engine != nil {
		if err := a.engine.Close(); err != nil {
			return fmt.Errorf("close cache: %w", err)
		}
	}
	if a.printMetrics {
		if err := metrics.WriteSummary(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	slog.Info("Done", "command", cmd.Name(), "elapsed", time.Since(a.start))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
