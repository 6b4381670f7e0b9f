package weighttab

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrOutOfRange flags lookup inputs outside the table's input domain.
// Lookups return it wrapped together with the offending value; callers
// test for it with errors.Is.
var ErrOutOfRange = errors.New("input outside table domain")

// Config describes a scalar weight table before it is built.
//
// InputBits determines the input domain: inputs range over
// [0, 2^InputBits). Weight is the scalar every input is multiplied
// with during precomputation. A Config is immutable after the table
// has been built from it.
type Config struct {
	InputBits int
	Weight    float64
}

// NumValues returns the size of the input domain, 2^InputBits.
// It returns 0 for a non-positive bit width.
func (cfg Config) NumValues() int {
	if cfg.InputBits <= 0 {
		return 0
	}
	return 1 << cfg.InputBits
}

// Table is a precomputed scalar weight table.
//
// Entry i holds i * weight for every i in [0, numValues). A table is
// populated exactly once during Build and never mutated afterward,
// so it is safe to share between any number of concurrent readers.
type Table struct {
	Identifier string // Identifies the table, e.g. "scalar 16 x 0.75"
	buildID    string // unique per build, shows up in trace output
	weight     float64
	values     []float64
}

// New builds a scalar weight table from a configuration.
// The domain size is derived from cfg.InputBits.
func New(cfg Config) (*Table, error) {
	if cfg.InputBits <= 0 {
		return nil, fmt.Errorf("input bit width must be positive: %d", cfg.InputBits)
	}
	return Build(cfg.NumValues(), cfg.Weight)
}

// Build precomputes a scalar weight table of the given domain size.
//
// Entry i of the resulting table equals float64(i) * weight, computed
// once, in index order. Build rejects a non-positive domain size with
// an error rather than producing an empty table.
func Build(numValues int, weight float64) (*Table, error) {
	if numValues <= 0 {
		return nil, fmt.Errorf("table domain size must be positive: %d", numValues)
	}
	t := &Table{
		Identifier: fmt.Sprintf("scalar %d x %g", numValues, weight),
		buildID:    uuid.New().String(),
		weight:     weight,
		values:     make([]float64, numValues),
	}
	for i := range t.values {
		t.values[i] = float64(i) * weight
	}
	tracer().Infof("built weight table id=%s size=%d weight=%g", t.buildID, numValues, weight)
	return t, nil
}

// Lookup returns the precomputed product for input.
//
// For input in [0, Len()) it returns the stored table entry exactly,
// with no computation at lookup time. For any other input it returns
// 0 together with an error wrapping ErrOutOfRange; the error, not the
// zero value, is the signal (0 is also a legitimate entry).
func (t *Table) Lookup(input int) (float64, error) {
	if t == nil || input < 0 || input >= len(t.values) {
		return 0, fmt.Errorf("input %d: %w", input, ErrOutOfRange)
	}
	return t.values[input], nil
}

// Len returns the size of the input domain.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}

// Weight returns the scalar the table was built with.
func (t *Table) Weight() float64 {
	if t == nil {
		return 0
	}
	return t.weight
}

// BuildID returns the unique id assigned to this build of the table.
func (t *Table) BuildID() string {
	if t == nil {
		return ""
	}
	return t.buildID
}
