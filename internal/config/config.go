// Package config loads the YAML run configuration for the evolve runner.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Seed        int64 `yaml:"seed"`
	Generations int   `yaml:"generations"`

	Problem string   `yaml:"problem"` // knapsack|numeric|onemax
	GA      GAConfig `yaml:"ga"`

	Knapsack KnapsackConfig `yaml:"knapsack"`
	Numeric  NumericConfig  `yaml:"numeric"`
	OneMax   OneMaxConfig   `yaml:"onemax"`

	Report ReportConfig `yaml:"report"`
}

// GAConfig defines the engine parameters.
type GAConfig struct {
	Population int `yaml:"population"`
	Elites     int `yaml:"elites"`
}

// KnapsackConfig defines the random knapsack instance.
type KnapsackConfig struct {
	Items             int     `yaml:"items"`
	CapacityFrac      float64 `yaml:"capacity_frac"`
	MutationRate      float64 `yaml:"mutation_rate"`
	RecombinationRate float64 `yaml:"recombination_rate"`
	InitOnRate        float64 `yaml:"init_on_rate"`
}

// NumericConfig defines the continuous toy problem rates.
type NumericConfig struct {
	MutationRate float64 `yaml:"mutation_rate"`
	SwapRate     float64 `yaml:"swap_rate"`
}

// OneMaxConfig defines the sharing-penalized OneMax instance.
type OneMaxConfig struct {
	Bits           int     `yaml:"bits"`
	MutationRate   float64 `yaml:"mutation_rate"`
	SharingPenalty float64 `yaml:"sharing_penalty"`
	InitOnRate     float64 `yaml:"init_on_rate"`
	Workers        int     `yaml:"workers"`
}

// ReportConfig defines the run artifact paths.
type ReportConfig struct {
	CSVPath      string `yaml:"csv_path"`
	JSONPath     string `yaml:"json_path"`
	ChampionPath string `yaml:"champion_path"`
	Every        int    `yaml:"every"` // log every N generations
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 17
	}
	if cfg.Generations == 0 {
		cfg.Generations = 100
	}
	if cfg.Problem == "" {
		cfg.Problem = "knapsack"
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 100
	}
	if cfg.GA.Elites == 0 {
		cfg.GA.Elites = 5
	}
	if cfg.Knapsack.Items == 0 {
		cfg.Knapsack.Items = 50
	}
	if cfg.Knapsack.CapacityFrac == 0 {
		cfg.Knapsack.CapacityFrac = 0.3
	}
	if cfg.Knapsack.MutationRate == 0 {
		cfg.Knapsack.MutationRate = 1.0 / float64(cfg.Knapsack.Items)
	}
	if cfg.Knapsack.RecombinationRate == 0 {
		cfg.Knapsack.RecombinationRate = 0.4
	}
	if cfg.Knapsack.InitOnRate == 0 {
		cfg.Knapsack.InitOnRate = 0.1
	}
	if cfg.Numeric.MutationRate == 0 {
		cfg.Numeric.MutationRate = 0.1
	}
	if cfg.Numeric.SwapRate == 0 {
		cfg.Numeric.SwapRate = 0.4
	}
	if cfg.OneMax.Bits == 0 {
		cfg.OneMax.Bits = 64
	}
	if cfg.OneMax.MutationRate == 0 {
		cfg.OneMax.MutationRate = 1.0 / float64(cfg.OneMax.Bits)
	}
	if cfg.OneMax.SharingPenalty == 0 {
		cfg.OneMax.SharingPenalty = 4.0
	}
	if cfg.OneMax.InitOnRate == 0 {
		cfg.OneMax.InitOnRate = 0.5
	}
	if cfg.Report.CSVPath == "" {
		cfg.Report.CSVPath = "runs/run.csv"
	}
	if cfg.Report.JSONPath == "" {
		cfg.Report.JSONPath = "runs/run.jsonl"
	}
	if cfg.Report.ChampionPath == "" {
		cfg.Report.ChampionPath = "runs/champion.json"
	}
	if cfg.Report.Every == 0 {
		cfg.Report.Every = 10
	}
}

func (c *Config) validate() error {
	switch c.Problem {
	case "knapsack", "numeric", "onemax":
	default:
		return fmt.Errorf("config: unknown problem %q", c.Problem)
	}
	if c.GA.Elites < 0 || c.GA.Elites >= c.GA.Population {
		return fmt.Errorf("config: elites %d out of range for population %d", c.GA.Elites, c.GA.Population)
	}
	return nil
}
