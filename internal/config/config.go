package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mvikstrom/chromalife/internal/engine"
	"github.com/mvikstrom/chromalife/internal/rules"
	"github.com/mvikstrom/chromalife/internal/seed"
)

const (
	DefaultWidth       = 80
	DefaultHeight      = 60
	DefaultMaxWidth    = 800
	DefaultMaxHeight   = 600
	DefaultGenerations = 100
)

type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	MaxWidth    int    `yaml:"max_width"`
	MaxHeight   int    `yaml:"max_height"`
	Generations int    `yaml:"generations"`
	Seed        int64  `yaml:"seed"`
	ScanMode    string `yaml:"scan_mode"`

	Chaos   ChaosSettings `yaml:"chaos"`
	Pattern PatternConfig `yaml:"pattern"`
}

// ChaosSettings selects a named preset or spells out the probabilities.
// The preset wins when both are given.
type ChaosSettings struct {
	Preset            string  `yaml:"preset"`
	Enabled           bool    `yaml:"enabled"`
	CustomRuleProb    float64 `yaml:"custom_rule_prob"`
	RandomOutcomeProb float64 `yaml:"random_outcome_prob"`
}

// PatternConfig describes the initial seed pattern.
type PatternConfig struct {
	Kind    string  `yaml:"kind"`
	Color   string  `yaml:"color"`
	Density float64 `yaml:"density"`

	XMin      float64 `yaml:"x_min"`
	XMax      float64 `yaml:"x_max"`
	YMin      float64 `yaml:"y_min"`
	YMax      float64 `yaml:"y_max"`
	CReal     float64 `yaml:"c_real"`
	CImag     float64 `yaml:"c_imag"`
	MaxIter   int     `yaml:"max_iter"`
	Threshold int     `yaml:"threshold"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxWidth:    DefaultMaxWidth,
		MaxHeight:   DefaultMaxHeight,
		Generations: DefaultGenerations,
		ScanMode:    "active",
		Chaos:       ChaosSettings{Preset: "off"},
		Pattern: PatternConfig{
			Kind:      "random",
			Color:     "red",
			Density:   seed.DefaultDensity,
			XMin:      seed.DefaultMandelbrotXMin,
			XMax:      seed.DefaultMandelbrotXMax,
			YMin:      seed.DefaultMandelbrotYMin,
			YMax:      seed.DefaultMandelbrotYMax,
			CReal:     seed.DefaultJuliaCReal,
			CImag:     seed.DefaultJuliaCImag,
			MaxIter:   seed.DefaultMaxIter,
			Threshold: seed.DefaultThreshold,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// ChaosConfig resolves the chaos settings to an engine configuration, with
// the named preset taking precedence over explicit probabilities.
func (c *Config) ChaosConfig() (rules.ChaosConfig, error) {
	if c.Chaos.Preset != "" {
		cfg, ok := rules.GetPreset(c.Chaos.Preset)
		if !ok {
			return rules.ChaosConfig{}, fmt.Errorf("unknown chaos preset: %s (available: %v)", c.Chaos.Preset, rules.ListPresets())
		}
		return cfg, nil
	}
	cfg := rules.ChaosConfig{
		Enabled:           c.Chaos.Enabled,
		CustomRuleProb:    c.Chaos.CustomRuleProb,
		RandomOutcomeProb: c.Chaos.RandomOutcomeProb,
	}
	if cfg.Enabled && cfg.CustomRuleProb == 0 && cfg.RandomOutcomeProb == 0 {
		cfg.CustomRuleProb = rules.DefaultCustomRuleProb
		cfg.RandomOutcomeProb = rules.DefaultRandomOutcomeProb
	}
	return cfg, cfg.Validate()
}

// Scan resolves the scan-mode name.
func (c *Config) Scan() (engine.ScanMode, error) {
	switch c.ScanMode {
	case "", "active":
		return engine.ScanActive, nil
	case "full":
		return engine.ScanFull, nil
	}
	return engine.ScanActive, fmt.Errorf("unknown scan mode: %s (want active or full)", c.ScanMode)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxWidth < c.Width || c.MaxHeight < c.Height {
		return fmt.Errorf("max size %dx%d smaller than grid %dx%d", c.MaxWidth, c.MaxHeight, c.Width, c.Height)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", c.Generations)
	}
	if _, err := c.ChaosConfig(); err != nil {
		return err
	}
	if _, err := c.Scan(); err != nil {
		return err
	}
	return nil
}
