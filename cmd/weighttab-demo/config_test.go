package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(nil, noEnv)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestParseInputs(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{name: "plain list", in: "0,3,15", want: []int{0, 3, 15}},
		{name: "spaces and negatives", in: " -1, 16 ", want: []int{-1, 16}},
		{name: "trailing comma", in: "1,2,", want: []int{1, 2}},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage entry", in: "1,x,3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInputs(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConfigEnvOverrides(t *testing.T) {
	env := map[string]string{
		"WEIGHTTAB_INPUT_BITS": "3",
		"WEIGHTTAB_WEIGHT":     "1.5",
		"WEIGHTTAB_INPUTS":     "0,7",
		"WEIGHTTAB_OP":         "add",
	}
	cfg, err := resolveConfig(nil, func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.InputBits)
	assert.Equal(t, 1.5, cfg.Weight)
	assert.Equal(t, []int{0, 7}, cfg.Inputs)
	assert.Equal(t, "add", cfg.Op)
	// untouched fields keep their defaults
	assert.Equal(t, defaultConfig().Preview, cfg.Preview)
}

func TestResolveConfigFlagsBeatEnv(t *testing.T) {
	env := map[string]string{"WEIGHTTAB_INPUT_BITS": "3"}
	cfg, err := resolveConfig([]string{"-bits", "5", "-inputs", "1,2"},
		func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.InputBits)
	assert.Equal(t, []int{1, 2}, cfg.Inputs)
}

func TestResolveConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	file := strings.Join([]string{
		"input_bits: 2",
		"weight: 0.25",
		"inputs: [0, 1, 4]",
		"op: add",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(file), 0644))

	cfg, err := resolveConfig([]string{"-config", path}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.InputBits)
	assert.Equal(t, 0.25, cfg.Weight)
	assert.Equal(t, []int{0, 1, 4}, cfg.Inputs)
	assert.Equal(t, "add", cfg.Op)
}

func TestResolveConfigEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weight: 0.25\n"), 0644))

	env := map[string]string{"WEIGHTTAB_WEIGHT": "2"}
	cfg, err := resolveConfig([]string{"-config", path},
		func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Weight)
}

func TestResolveConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero bits", args: []string{"-bits", "0"}},
		{name: "negative preview", args: []string{"-preview", "-1"}},
		{name: "zero tuple inputs", args: []string{"-num-inputs", "0"}},
		{name: "unknown op", args: []string{"-op", "divide"}},
		{name: "bad input list", args: []string{"-inputs", "a,b"}},
		{name: "missing config file", args: []string{"-config", "nope.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveConfig(tt.args, noEnv)
			assert.Error(t, err)
		})
	}
}

func TestRunDemoTranscript(t *testing.T) {
	var buf bytes.Buffer
	err := runDemo(&buf, defaultConfig())
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "Input bits: 4 (domain size 16)")
	assert.Contains(t, out, "Weight:     0.75")
	assert.Contains(t, out, "table[3] = 2.25")
	assert.Contains(t, out, "lookup(15) -> 11.25")
	assert.Contains(t, out, "lookup(-1) -> 0 (out of range [0,16))")
	assert.Contains(t, out, "lookup(16) -> 0 (out of range [0,16))")
	assert.Contains(t, out, "backend=dense entries=256 slots=256 fill=1.00")
	assert.Contains(t, out, "neuron[15 15] -> 168.75")
}

func TestRunDemoRejectsOversizedCombo(t *testing.T) {
	cfg := defaultConfig()
	cfg.InputBits = 16
	cfg.NumInputs = 4
	var buf bytes.Buffer
	assert.Error(t, runDemo(&buf, cfg))
}
