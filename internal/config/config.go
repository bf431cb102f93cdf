package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/odelab/internal/dynamo"
)

const (
	DefaultDataDir  = ".odelab"
	DefaultLogLevel = "info"
)

// DefaultMethods lists the methods compared when none are configured.
var DefaultMethods = []string{"euler", "heun", "rk4"}

type Config struct {
	Problem  ProblemConfig `yaml:"problem"`
	Methods  []string      `yaml:"methods"`
	Workers  int           `yaml:"workers"`
	DataDir  string        `yaml:"data_dir"`
	LogLevel string        `yaml:"log_level"`
}

type ProblemConfig struct {
	X0    float64 `yaml:"x0"`
	Y0    float64 `yaml:"y0"`
	Xn    float64 `yaml:"xn"`
	Steps int     `yaml:"steps"`
	N0    int     `yaml:"n0"`
	N     int     `yaml:"n"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem:  problemConfig(dynamo.DefaultProblem()),
		Methods:  append([]string(nil), DefaultMethods...),
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetProblem returns the configured problem after checking its invariants.
func (c *Config) GetProblem() (dynamo.Problem, error) {
	p := dynamo.Problem{
		X0:    c.Problem.X0,
		Y0:    c.Problem.Y0,
		Xn:    c.Problem.Xn,
		Steps: c.Problem.Steps,
		N0:    c.Problem.N0,
		N:     c.Problem.N,
	}
	if err := p.Validate(); err != nil {
		return dynamo.Problem{}, err
	}
	return p, nil
}

// SetProblem replaces the problem section.
func (c *Config) SetProblem(p dynamo.Problem) {
	c.Problem = problemConfig(p)
}

// ParseMethods splits a comma separated method list, dropping blanks.
func ParseMethods(s string) []string {
	var methods []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			methods = append(methods, m)
		}
	}
	return methods
}

func problemConfig(p dynamo.Problem) ProblemConfig {
	return ProblemConfig{X0: p.X0, Y0: p.Y0, Xn: p.Xn, Steps: p.Steps, N0: p.N0, N: p.N}
}
