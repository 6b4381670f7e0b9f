package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// demoConfig collects the demo parameters. Resolution order, later
// entries win: built-in defaults, YAML config file, WEIGHTTAB_*
// environment variables, command-line flags.
type demoConfig struct {
	InputBits int     `yaml:"input_bits"`
	Weight    float64 `yaml:"weight"`
	Inputs    []int   `yaml:"inputs"`
	Preview   int     `yaml:"preview"`
	NumInputs int     `yaml:"num_inputs"`
	Op        string  `yaml:"op"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		InputBits: 4,
		Weight:    0.75,
		Inputs:    []int{0, 3, 7, 15, -1, 16},
		Preview:   5,
		NumInputs: 2,
		Op:        "multiply",
	}
}

func (cfg *demoConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays WEIGHTTAB_* variables. getenv is injected so tests
// need not touch the process environment.
func (cfg *demoConfig) applyEnv(getenv func(string) string) error {
	if v := getenv("WEIGHTTAB_INPUT_BITS"); v != "" {
		bits, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEIGHTTAB_INPUT_BITS: %w", err)
		}
		cfg.InputBits = bits
	}
	if v := getenv("WEIGHTTAB_WEIGHT"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("WEIGHTTAB_WEIGHT: %w", err)
		}
		cfg.Weight = weight
	}
	if v := getenv("WEIGHTTAB_INPUTS"); v != "" {
		inputs, err := parseInputs(v)
		if err != nil {
			return fmt.Errorf("WEIGHTTAB_INPUTS: %w", err)
		}
		cfg.Inputs = inputs
	}
	if v := getenv("WEIGHTTAB_PREVIEW"); v != "" {
		preview, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEIGHTTAB_PREVIEW: %w", err)
		}
		cfg.Preview = preview
	}
	if v := getenv("WEIGHTTAB_NUM_INPUTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEIGHTTAB_NUM_INPUTS: %w", err)
		}
		cfg.NumInputs = n
	}
	if v := getenv("WEIGHTTAB_OP"); v != "" {
		cfg.Op = v
	}
	return nil
}

// parseInputs parses a comma-separated list of integers, e.g. "0,3,15".
func parseInputs(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	inputs := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad input list entry %q: %w", p, err)
		}
		inputs = append(inputs, n)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("empty input list")
	}
	return inputs, nil
}

func (cfg demoConfig) validate() error {
	if cfg.InputBits <= 0 {
		return fmt.Errorf("input bit width must be positive: %d", cfg.InputBits)
	}
	if cfg.Preview < 0 {
		return fmt.Errorf("preview count must not be negative: %d", cfg.Preview)
	}
	if cfg.NumInputs <= 0 {
		return fmt.Errorf("number of inputs must be positive: %d", cfg.NumInputs)
	}
	if cfg.Op != "multiply" && cfg.Op != "add" {
		return fmt.Errorf("unsupported operation: %q", cfg.Op)
	}
	return nil
}
