package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/npillmayer/weighttab"
)

func main() {
	// Load env
	_ = godotenv.Load(".env")

	cfg, err := resolveConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := runDemo(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig layers flags over environment variables over an
// optional config file over defaults. Only flags that were explicitly
// set take part, so env/file values survive untouched flags.
func resolveConfig(args []string, getenv func(string) string) (demoConfig, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("weighttab-demo", flag.ContinueOnError)
	configFile := fs.String("config", "", "Optional YAML config file")
	bits := fs.Int("bits", cfg.InputBits, "Input bit width (domain size is 2^bits)")
	weight := fs.Float64("weight", cfg.Weight, "Scalar weight")
	inputs := fs.String("inputs", "", "Comma-separated demonstration inputs")
	preview := fs.Int("preview", cfg.Preview, "Number of table entries to print")
	numInputs := fs.Int("num-inputs", cfg.NumInputs, "Inputs per tuple for the combination demo")
	op := fs.String("op", cfg.Op, "Combination operation: multiply or add")
	if err := fs.Parse(args); err != nil {
		return demoConfig{}, err
	}
	if *configFile != "" {
		if err := cfg.loadFile(*configFile); err != nil {
			return demoConfig{}, err
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return demoConfig{}, err
	}
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bits":
			cfg.InputBits = *bits
		case "weight":
			cfg.Weight = *weight
		case "inputs":
			parsed, err := parseInputs(*inputs)
			if err != nil {
				parseErr = err
				return
			}
			cfg.Inputs = parsed
		case "preview":
			cfg.Preview = *preview
		case "num-inputs":
			cfg.NumInputs = *numInputs
		case "op":
			cfg.Op = *op
		}
	})
	if parseErr != nil {
		return demoConfig{}, parseErr
	}
	if err := cfg.validate(); err != nil {
		return demoConfig{}, err
	}
	return cfg, nil
}

// runDemo prints the demonstration transcript: parameters, the first
// table entries, lookups for the configured inputs, and a short
// combination-table exercise.
func runDemo(w io.Writer, cfg demoConfig) error {
	fmt.Fprintf(w, "Precomputed Weight Table Demo\n")
	fmt.Fprintf(w, "=============================\n\n")
	fmt.Fprintf(w, "Input bits: %d (domain size %d)\n", cfg.InputBits, 1<<cfg.InputBits)
	fmt.Fprintf(w, "Weight:     %g\n\n", cfg.Weight)

	table, err := weighttab.New(weighttab.Config{InputBits: cfg.InputBits, Weight: cfg.Weight})
	if err != nil {
		return err
	}

	preview := min(cfg.Preview, table.Len())
	fmt.Fprintf(w, "First %d table entries:\n", preview)
	for i := 0; i < preview; i++ {
		v, err := table.Lookup(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  table[%d] = %g\n", i, v)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Lookups:\n")
	for _, input := range cfg.Inputs {
		v, err := table.Lookup(input)
		if errors.Is(err, weighttab.ErrOutOfRange) {
			fmt.Fprintf(w, "  lookup(%d) -> %g (out of range [0,%d))\n", input, v, table.Len())
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  lookup(%d) -> %g\n", input, v)
	}
	fmt.Fprintln(w)

	combo, err := weighttab.BuildCombo(weighttab.ComboConfig{
		NumInputs: cfg.NumInputs,
		InputBits: cfg.InputBits,
		Op:        weighttab.Op(cfg.Op),
		Weight:    cfg.Weight,
	})
	if err != nil {
		return err
	}
	backend, entries, total, fill := combo.Stats()
	fmt.Fprintf(w, "Combination table (%s):\n", combo.Identifier)
	fmt.Fprintf(w, "  backend=%s entries=%d slots=%d fill=%.2f\n", backend, entries, total, fill)

	neuron := weighttab.NewNeuron(combo)
	low := make([]int, cfg.NumInputs) // all-zero tuple
	high := make([]int, cfg.NumInputs)
	for i := range high {
		high[i] = (1 << cfg.InputBits) - 1
	}
	for _, tuple := range [][]int{low, high} {
		out, err := neuron.Output(tuple...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  neuron%v -> %g\n", tuple, out)
	}
	return nil
}
