package batch

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Config mirrors the optional YAML batch configuration file. Absent
// fields keep their defaults.
type Config struct {
	Scheduler Scheduler     `yaml:"scheduler"`
	Matched   *ParamsConfig `yaml:"matched"`
	Orphan    *ParamsConfig `yaml:"orphan"`
}

// ParamsConfig overrides individual FitParams fields. Nil pointers keep
// the default value.
type ParamsConfig struct {
	NProcs         *int     `yaml:"nprocs"`
	SampType       *string  `yaml:"samptype"`
	NTemps         *int     `yaml:"ntemps"`
	NProd          *int     `yaml:"nprod"`
	NWalkers       *int     `yaml:"nwalkers"`
	NBurnin        *int     `yaml:"nburnin"`
	Thin           *int     `yaml:"thin"`
	PhotDispersion *float64 `yaml:"phot_dispersion"`
	OutRoot        *string  `yaml:"outroot"`
}

// LoadConfig reads and parses a YAML batch configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("batch: parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// Apply folds the config's overrides into the matched and orphan
// parameter sets.
func (c *Config) Apply(matched, orphan *FitParams) {
	c.Matched.apply(matched)
	c.Orphan.apply(orphan)
}

func (pc *ParamsConfig) apply(p *FitParams) {
	if pc == nil {
		return
	}
	if pc.NProcs != nil {
		p.NProcs = *pc.NProcs
	}
	if pc.SampType != nil {
		p.SampType = *pc.SampType
	}
	if pc.NTemps != nil {
		p.NTemps = *pc.NTemps
	}
	if pc.NProd != nil {
		p.NProd = *pc.NProd
	}
	if pc.NWalkers != nil {
		p.NWalkers = *pc.NWalkers
	}
	if pc.NBurnin != nil {
		p.NBurnin = *pc.NBurnin
	}
	if pc.Thin != nil {
		p.Thin = *pc.Thin
	}
	if pc.PhotDispersion != nil {
		p.PhotDispersion = *pc.PhotDispersion
	}
	if pc.OutRoot != nil {
		p.OutRoot = *pc.OutRoot
	}
}
