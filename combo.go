package weighttab

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
)

// Op names an operation precomputed over an input tuple.
type Op string

const (
	OpMultiply Op = "multiply" // product of the inputs, scaled by the weight
	OpAdd      Op = "add"      // sum of the inputs, scaled by the weight
)

// maxComboBits caps NumInputs * InputBits so the dense backend cannot
// be asked for more than 2^30 slots.
const maxComboBits = 30

// ComboConfig describes a combination table before it is built.
//
// The table covers every tuple of NumInputs inputs, each ranging over
// [0, 2^InputBits). Op is the operation precomputed per tuple and
// Weight the scalar its result is multiplied with. The zero Backend
// is the dense one.
type ComboConfig struct {
	NumInputs int
	InputBits int
	Op        Op
	Weight    float64
	Backend   Backend
}

// NumValues returns the per-input domain size, 2^InputBits.
// It returns 0 for a non-positive bit width.
func (cfg ComboConfig) NumValues() int {
	if cfg.InputBits <= 0 {
		return 0
	}
	return 1 << cfg.InputBits
}

// ComboTable is a precomputed table over all input combinations.
//
// It is built exactly once, in lexicographic tuple order, and is
// read-only afterward.
type ComboTable struct {
	Identifier string
	buildID    string
	cfg        ComboConfig
	store      comboStore
}

// BuildCombo precomputes the configured operation for every input
// combination.
//
// Example: NumInputs=2, InputBits=1, OpMultiply, Weight=1 yields
// {(0,0):0, (0,1):0, (1,0):0, (1,1):1}.
func BuildCombo(cfg ComboConfig) (*ComboTable, error) {
	if cfg.NumInputs <= 0 {
		return nil, fmt.Errorf("number of inputs must be positive: %d", cfg.NumInputs)
	}
	if cfg.InputBits <= 0 {
		return nil, fmt.Errorf("input bit width must be positive: %d", cfg.InputBits)
	}
	if cfg.NumInputs*cfg.InputBits > maxComboBits {
		return nil, fmt.Errorf("combination space too large: %d inputs x %d bits", cfg.NumInputs, cfg.InputBits)
	}
	if cfg.Op != OpMultiply && cfg.Op != OpAdd {
		return nil, fmt.Errorf("unsupported operation: %q", cfg.Op)
	}
	var store comboStore
	switch cfg.Backend {
	case DenseBackend:
		store = newDenseStore(cfg.NumInputs, cfg.NumValues())
	case SparseBackend:
		store = newTrieStore()
	default:
		return nil, fmt.Errorf("unknown combination store backend: %d", cfg.Backend)
	}
	ct := &ComboTable{
		Identifier: fmt.Sprintf("combo %s, %d inputs x %d bits", cfg.Op, cfg.NumInputs, cfg.InputBits),
		buildID:    uuid.New().String(),
		cfg:        cfg,
		store:      store,
	}
	inputs := make([]int, cfg.NumInputs)
	operands := make([]float64, cfg.NumInputs)
	for {
		for i, in := range inputs {
			operands[i] = float64(in)
		}
		store.put(inputs, applyOp(cfg.Op, cfg.Weight, operands))
		if !nextTuple(inputs, cfg.NumValues()) {
			break
		}
	}
	stats := store.stats()
	tracer().Infof("built combination table id=%s backend=%s entries=%d fill=%.2f",
		ct.buildID, stats.Backend, stats.Entries, stats.FillRatio())
	return ct, nil
}

func applyOp(op Op, weight float64, operands []float64) float64 {
	switch op {
	case OpAdd:
		return weight * floats.Sum(operands)
	default:
		return weight * floats.Prod(operands)
	}
}

// nextTuple advances inputs to the next combination in lexicographic
// order. It returns false after wrapping past the last tuple.
func nextTuple(inputs []int, radix int) bool {
	for i := len(inputs) - 1; i >= 0; i-- {
		inputs[i]++
		if inputs[i] < radix {
			return true
		}
		inputs[i] = 0
	}
	return false
}

// Query returns the precomputed result for an input tuple.
//
// An arity mismatch or an input outside [0, NumValues()) returns 0
// together with a distinguishable error; range violations wrap
// ErrOutOfRange. Hits return the stored value exactly, with no
// computation at query time.
func (ct *ComboTable) Query(inputs ...int) (float64, error) {
	if ct == nil || ct.store == nil {
		return 0, fmt.Errorf("combination table not built")
	}
	if len(inputs) != ct.cfg.NumInputs {
		return 0, fmt.Errorf("expected %d inputs, got %d", ct.cfg.NumInputs, len(inputs))
	}
	for _, in := range inputs {
		if in < 0 || in >= ct.cfg.NumValues() {
			return 0, fmt.Errorf("input %d: %w", in, ErrOutOfRange)
		}
	}
	value, ok := ct.store.get(inputs)
	if !ok {
		return 0, fmt.Errorf("combination %v not precomputed", inputs)
	}
	return value, nil
}

// Config returns the configuration the table was built from.
func (ct *ComboTable) Config() ComboConfig {
	if ct == nil {
		return ComboConfig{}
	}
	return ct.cfg
}

// BuildID returns the unique id assigned to this build of the table.
func (ct *ComboTable) BuildID() string {
	if ct == nil {
		return ""
	}
	return ct.buildID
}

// Stats reports density metrics for the underlying combination store.
func (ct *ComboTable) Stats() (backend string, entries, totalSlots int, fillRatio float64) {
	if ct == nil || ct.store == nil {
		return "", 0, 0, 0
	}
	stats := ct.store.stats()
	return stats.Backend, stats.Entries, stats.TotalSlots, stats.FillRatio()
}

// Neuron simulates a single neuron whose output is served from a
// precomputed combination table. In this version Output is a direct
// wrapper around Query; an activation function would hook in here.
type Neuron struct {
	table *ComboTable
}

// NewNeuron wraps a built combination table.
func NewNeuron(table *ComboTable) *Neuron {
	return &Neuron{table: table}
}

// Output returns the neuron's output for an input tuple.
func (n *Neuron) Output(inputs ...int) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("neuron has no table")
	}
	return n.table.Query(inputs...)
}
