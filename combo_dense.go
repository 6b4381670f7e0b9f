package weighttab

// denseStore keeps combination results in a flat array addressed by the
// mixed-radix encoding of the input tuple, most significant input first.
// With radix r and arity k, tuple (i0,...,ik-1) lives at
// i0*r^(k-1) + ... + ik-1.
type denseStore struct {
	radix   int
	arity   int
	entries int
	values  []float64
}

func newDenseStore(arity, radix int) *denseStore {
	size := 1
	for i := 0; i < arity; i++ {
		size *= radix
	}
	return &denseStore{
		radix:  radix,
		arity:  arity,
		values: make([]float64, size),
	}
}

// index encodes a tuple as a flat array position. Callers validate
// arity and input ranges before reaching the store.
func (s *denseStore) index(inputs []int) int {
	assert(len(inputs) == s.arity, "dense store: tuple arity mismatch")
	idx := 0
	for _, in := range inputs {
		assert(in >= 0 && in < s.radix, "dense store: input outside radix")
		idx = idx*s.radix + in
	}
	return idx
}

func (s *denseStore) put(inputs []int, value float64) {
	s.values[s.index(inputs)] = value
	s.entries++
}

func (s *denseStore) get(inputs []int) (float64, bool) {
	return s.values[s.index(inputs)], true
}

func (s *denseStore) stats() comboStoreStats {
	return comboStoreStats{
		Backend:    "dense",
		Entries:    s.entries,
		TotalSlots: len(s.values),
	}
}
