package main

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/logging"
)

const envPrefix = "ODELAB"

// options resolves settings in order: flags, ODELAB_* environment
// variables, preset, config file, built-in defaults.
type options struct {
	v   *viper.Viper
	log logr.Logger
}

func newOptions() *options {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &options{v: v, log: logr.Discard()}
}

func addPersistentFlags(fs *pflag.FlagSet) {
	fs.String("data", config.DefaultDataDir, "data directory")
	fs.String("config", "", "config file path (yaml)")
	fs.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.Int("workers", 0, "sweep workers (0 = one per CPU)")
}

func addProblemFlags(fs *pflag.FlagSet) {
	p := dynamo.DefaultProblem()
	fs.Float64("x0", p.X0, "initial x")
	fs.Float64("y0", p.Y0, "initial y")
	fs.Float64("xn", p.Xn, "end of the interval (X)")
	fs.Int("steps", p.Steps, "grid points of the single run")
	fs.Int("n0", p.N0, "first step count of the sweep")
	fs.Int("n", p.N, "last step count of the sweep")
	fs.String("methods", strings.Join(config.DefaultMethods, ","), "comma separated methods")
	fs.String("preset", "", "start from a named problem (see presets)")
}

// load binds the command's flags and applies the file and preset layers.
func (o *options) load(cmd *cobra.Command) error {
	if err := o.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if path := o.v.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if name := o.v.GetString("preset"); name != "" {
		p, ok := config.GetPreset(name)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		cfg.SetProblem(p)
	}
	o.setDefaults(cfg)

	log, err := logging.New(o.v.GetString("log-level"))
	if err != nil {
		return err
	}
	o.log = log
	return nil
}

func (o *options) setDefaults(cfg *config.Config) {
	o.v.SetDefault("x0", cfg.Problem.X0)
	o.v.SetDefault("y0", cfg.Problem.Y0)
	o.v.SetDefault("xn", cfg.Problem.Xn)
	o.v.SetDefault("steps", cfg.Problem.Steps)
	o.v.SetDefault("n0", cfg.Problem.N0)
	o.v.SetDefault("n", cfg.Problem.N)
	o.v.SetDefault("methods", strings.Join(cfg.Methods, ","))
	o.v.SetDefault("workers", cfg.Workers)
	o.v.SetDefault("data", cfg.DataDir)
	o.v.SetDefault("log-level", cfg.LogLevel)
}

// problem returns the resolved problem. It is not validated here.
func (o *options) problem() dynamo.Problem {
	return dynamo.Problem{
		X0:    o.v.GetFloat64("x0"),
		Y0:    o.v.GetFloat64("y0"),
		Xn:    o.v.GetFloat64("xn"),
		Steps: o.v.GetInt("steps"),
		N0:    o.v.GetInt("n0"),
		N:     o.v.GetInt("n"),
	}
}

func (o *options) methods() []string {
	return config.ParseMethods(o.v.GetString("methods"))
}

func (o *options) workers() int { return o.v.GetInt("workers") }

func (o *options) dataDir() string { return o.v.GetString("data") }
