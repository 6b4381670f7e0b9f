package weighttab

// Backend selects the storage strategy for a combination table.
type Backend int

const (
	// DenseBackend stores one slot per combination in a flat array
	// addressed by the mixed-radix encoding of the tuple. Compact and
	// the default.
	DenseBackend Backend = iota
	// SparseBackend stores combinations in a prefix trie keyed by the
	// decimal encoding of the tuple.
	SparseBackend
)

// comboStore is the internal backend abstraction for combination-table
// storage. Builds write every tuple exactly once; afterward the store
// is read-only.
type comboStore interface {
	put(inputs []int, value float64)
	get(inputs []int) (float64, bool)
	stats() comboStoreStats
}

type comboStoreStats struct {
	Backend    string
	Entries    int
	TotalSlots int
}

func (s comboStoreStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.TotalSlots)
}
